package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/wbs"
	"github.com/signadot/wbs/debug"
	"github.com/signadot/wbs/plan"
)

func wbsMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
		debug.SetAll(true)
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

// loadTree builds the tree described by the plan file.
func loadTree(file string) (*wbs.Node, error) {
	p, err := plan.LoadFile(file)
	if err != nil {
		return nil, err
	}
	root, err := p.Build()
	if err != nil {
		return nil, fmt.Errorf("error building %s: %w", file, err)
	}
	theLog.Debug("loaded plan", "file", file, "nodes", root.Len())
	return root, nil
}

// lookup resolves a slash separated path from the root.
func lookup(root *wbs.Node, path string) (*wbs.Node, error) {
	n, err := root.GetPath(plan.ParsePath(path)...)
	if err != nil {
		return nil, fmt.Errorf("no node at %s: %w", path, err)
	}
	return n, nil
}
