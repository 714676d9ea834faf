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
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "tp").
		WithSynopsis("tp [opts] command [opts]").
		WithDescription("tp computes and replays structural differences between JSON/YAML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tpMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			ApplyCommand(cfg),
			CheckCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-x policy] [-report] <base> <target>").
		WithDescription("compare two documents and write a change export").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "reconstruct").
		WithSynopsis("apply [-x policy] [-t target] [-verify target] <base> <export>").
		WithDescription("replay a change export onto a base document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithSynopsis("check <policy>").
		WithDescription("compile an exclusion policy and report unusable rules").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
