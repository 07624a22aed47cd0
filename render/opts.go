package render

type renderOpts struct {
	colors *Colors
	indent string
}

type Option func(*renderOpts)

// RenderColors enables colored output.
func RenderColors(c *Colors) Option {
	return func(o *renderOpts) { o.colors = c }
}

// RenderIndent overrides the indent unit, tab by default.
func RenderIndent(s string) Option {
	return func(o *renderOpts) { o.indent = s }
}

func buildOpts(opts []Option) *renderOpts {
	o := &renderOpts{indent: "\t"}
	for _, f := range opts {
		f(o)
	}
	return o
}
