package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "input format: achievements, achievements-modded, mod-settings, script",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "fdat").
		WithSynopsis("fdat [opts] command [opts]").
		WithDescription("fdat decodes, converts and compares Factorio dat files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fdatMain(cfg, cc, args)
		}).
		WithSubs(
			Dat2JSONCommand(cfg),
			DiffCommand(cfg),
			VerifyCommand(cfg),
			AnalyzeCommand(cfg))
}

func Dat2JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &Dat2JSONConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dat2json").
		WithAliases("j", "json").
		WithSynopsis("dat2json [files]").
		WithDescription("decode dat files and print them as JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return dat2json(cfg, cc, args)
		})
	cfg.Dat2JSON = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff <reference> <desynced>").
		WithDescription("structurally compare two dat files of the same format").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffCmd(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VerifyConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("verify").
		WithAliases("v").
		WithSynopsis("verify [files]").
		WithDescription("decode and re-encode dat files, checking byte-stable round trips").
		WithRun(func(cc *cli.Context, args []string) error {
			return verify(cfg, cc, args)
		})
	cfg.Verify = cmd
	return cmd
}

func AnalyzeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AnalyzeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("analyze").
		WithAliases("a", "an").
		WithSynopsis("analyze <report-dir-or-zip>").
		WithDescription("analyze a desync report, comparing the reference and desynced captures").
		WithRun(func(cc *cli.Context, args []string) error {
			return analyze(cfg, cc, args)
		})
	cfg.Analyze = cmd
	return cmd
}
