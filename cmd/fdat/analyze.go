package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hornwitser/factorio-dat/render"
	"github.com/hornwitser/factorio-dat/report"

	"github.com/scott-cotton/cli"
)

func analyze(cfg *AnalyzeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Analyze.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: analyze requires a report directory or zip, got %v", cli.ErrUsage, args)
	}
	dir := args[0]
	if rest, ok := strings.CutSuffix(dir, ".zip"); ok {
		fmt.Fprintf(cc.Out, "unpacking %s\n", dir)
		if err := report.Unpack(dir, rest); err != nil {
			return err
		}
		dir = rest
	}
	refDir, desDir, err := report.Open(dir)
	if err != nil {
		return err
	}
	analysis, err := report.Analyze(context.Background(), refDir, desDir)
	if err != nil {
		return err
	}
	return renderAnalysis(cfg, cc, analysis)
}

func renderAnalysis(cfg *AnalyzeConfig, cc *cli.Context, analysis *report.Analysis) error {
	rOpts := cfg.renderOpts(cc.Out)
	differs := false
	for i := range analysis.Sections {
		s := &analysis.Sections[i]
		if s.Identical {
			continue
		}
		differs = true
		header := s.Name + " differs"
		fmt.Fprintf(cc.Out, "\n%s\n%s\n", header, strings.Repeat("-", len(header)))
		switch {
		case s.Err != nil:
			fmt.Fprintf(cc.Out, "analysis failed: %v\n", s.Err)
		case s.Diff != nil:
			if err := render.DiffReport(s.Diff, cc.Out, rOpts...); err != nil {
				return err
			}
		case s.TagDiff != nil:
			if err := render.TagDiff(s.TagDiff, cc.Out, rOpts...); err != nil {
				return err
			}
		}
	}
	if !differs {
		fmt.Fprintf(cc.Out, "no differences found\n")
		return nil
	}
	return cli.ExitCodeErr(1)
}
