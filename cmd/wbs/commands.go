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
	return cli.NewCommandAt(&cfg.Main, "wbs").
		WithSynopsis("wbs [opts] command [opts]").
		WithDescription("wbs is a tool for working with breakdown structure plans.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return wbsMain(cfg, cc, args)
		}).
		WithSubs(
			TreeCommand(cfg),
			FindCommand(cfg),
			AncestorsCommand(cfg),
			AddCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg))
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg, Depth: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [-depth n] [-kind] [-attrs] <plan> [path]").
		WithDescription("print the outline of a plan").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Tree.Parse(cc, args)
			if err != nil {
				return err
			}
			return tree(cfg, cc.Out, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find (-name name | -q expr) [-from path] [-children] [-skipErrors] <plan>").
		WithDescription("find the first node matching a name or expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Find.Parse(cc, args)
			if err != nil {
				return err
			}
			return find(cfg, cc.Out, args)
		})
}

func AncestorsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AncestorsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Ancestors, "ancestors").
		WithAliases("anc").
		WithSynopsis("ancestors [-self] <plan> <path>").
		WithDescription("list the ancestors of a node up to its top node").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Ancestors.Parse(cc, args)
			if err != nil {
				return err
			}
			return ancestors(cfg, cc.Out, args)
		})
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Add, "add").
		WithAliases("a").
		WithSynopsis("add [-kind k] <plan> <path> [path...]").
		WithDescription("get or create nodes along paths and print the outline").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Add.Parse(cc, args)
			if err != nil {
				return err
			}
			return add(cfg, cc.Out, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check <plan> [plan...]").
		WithDescription("build plans and report their size").
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Check.Parse(cc, args)
			if err != nil {
				return err
			}
			return check(cfg, cc.Out, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-kind] [-attrs] <plan> <plan>").
		WithDescription("diff the outlines of two plans").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Diff.Parse(cc, args)
			if err != nil {
				return err
			}
			return diff(cfg, cc.Out, args)
		})
}
