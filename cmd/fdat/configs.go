package main

import (
	"io"
	"os"

	"github.com/hornwitser/factorio-dat/format"
	"github.com/hornwitser/factorio-dat/parse"
	"github.com/hornwitser/factorio-dat/render"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colored output'"`
	Agent bool `cli:"name=agent desc='start a diagnostics agent for profiling long runs'"`

	Format *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) fmtOpt(cc *cli.Context, a string) (any, error) {
	f, err := format.ParseFormat(a)
	if err != nil {
		return nil, err
	}
	cfg.Format = &f
	return f, nil
}

// parseOpts selects the input format: an explicit -f wins, otherwise
// the format is inferred from the file name when there is one.
func (cfg *MainConfig) parseOpts(fileName string) []parse.ParseOption {
	if cfg.Format != nil {
		return []parse.ParseOption{parse.ParseFormat(*cfg.Format)}
	}
	if fileName != "" && fileName != "-" {
		return []parse.ParseOption{parse.ParseFileName(fileName)}
	}
	return nil
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.Option {
	if cfg.Color {
		return []render.Option{render.RenderColors(render.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []render.Option{render.RenderColors(render.NewColors())}
	}
	return nil
}

type Dat2JSONConfig struct {
	*MainConfig

	Dat2JSON *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Filter string `cli:"name=e desc='keep only entries matching this expression over path, kind and file'"`

	Diff *cli.Command
}

type VerifyConfig struct {
	*MainConfig

	Verify *cli.Command
}

type AnalyzeConfig struct {
	*MainConfig

	Analyze *cli.Command
}
