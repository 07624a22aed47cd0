package main

import (
	"fmt"

	"github.com/hornwitser/factorio-dat/render"

	"github.com/scott-cotton/cli"
)

func dat2json(cfg *Dat2JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dat2JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	rOpts := cfg.renderOpts(cc.Out)
	for _, file := range args {
		doc, err := getDatFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := render.JSON(doc, cc.Out, rOpts...); err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
	}
	return nil
}
