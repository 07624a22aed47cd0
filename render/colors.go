package render

import (
	"strings"

	"github.com/hornwitser/factorio-dat/diff"
	"github.com/hornwitser/factorio-dat/ir"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
	Kind    map[diff.Kind]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
		Kind:    map[diff.Kind]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.NilType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	colors.Kind[diff.Added] = color.GreenString
	colors.Kind[diff.Removed] = color.RedString
	colors.Kind[diff.Changed] = color.YellowString
	colors.Kind[diff.TypeMismatch] = color.MagentaString

	for k, f := range colors.Map {
		colors.Map[k] = escapePercent(f)
	}
	for k, f := range colors.Kind {
		colors.Kind[k] = escapePercent(f)
	}
	return colors
}

func escapePercent(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func (c *Colors) KindColor(k diff.Kind, s string) string {
	f := c.Kind[k]
	if f == nil {
		return c.Default(s)
	}
	return f(s)
}
