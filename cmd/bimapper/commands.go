package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "bimapper").
		WithSynopsis("bimapper [opts] command [opts]").
		WithDescription("bimapper maps data in both directions with a declarative definition.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bimapperMain(cfg, cc, args)
		}).
		WithSubs(
			RunCommand(cfg),
			CheckCommand(cfg),
			DumpCommand(cfg),
			LintCommand(cfg))
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("run").
		WithAliases("r").
		WithSynopsis("run [-r] [-async] [-y] -d def.yaml [input]").
		WithDescription("map input (a file, or stdin when omitted or -) with a definition").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runMapping(cfg, cc, args)
		})
	cfg.Run = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-color] -d def.yaml [input]").
		WithDescription("map input forward then back and show what did not survive the round trip").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump -d def.yaml").
		WithDescription("print the prepared steps of a definition").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func LintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LintConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("lint").
		WithAliases("l").
		WithSynopsis("lint -d def.yaml").
		WithDescription("report problems in a definition file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lint(cfg, cc, args)
		})
	cfg.Lint = cmd
	return cmd
}
