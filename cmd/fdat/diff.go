package main

import (
	"fmt"
	"path/filepath"

	"github.com/hornwitser/factorio-dat/diff"
	"github.com/hornwitser/factorio-dat/render"

	"github.com/scott-cotton/cli"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	oldDoc, err := getDatFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	newDoc, err := getDatFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	rep, err := diff.Diff(oldDoc, newDoc)
	if err != nil {
		return err
	}
	rep.File = filepath.Base(args[0])
	if cfg.Filter != "" {
		prg, err := diff.CompileFilter(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		rep, err = diff.Filter(rep, prg)
		if err != nil {
			return err
		}
	}
	if err := render.DiffReport(rep, cc.Out, cfg.renderOpts(cc.Out)...); err != nil {
		return err
	}
	if !rep.Empty() {
		return cli.ExitCodeErr(1)
	}
	return nil
}
