package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hornwitser/factorio-dat/ir"
	"github.com/hornwitser/factorio-dat/parse"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func fdatMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Agent {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("unable to start diagnostics agent: %w", err)
		}
		defer agent.Close()
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// getDatFile reads and decodes one dat file, with "-" meaning the
// command input.
func getDatFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Document, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}
