package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/wbs"
	"github.com/signadot/wbs/plan"
	"github.com/signadot/wbs/query"
)

func find(cfg *FindConfig, w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: find requires 1 plan, got %v", cli.ErrUsage, args)
	}
	if (cfg.Name == "") == (cfg.Query == "") {
		return fmt.Errorf("%w: find requires exactly one of -name or -q", cli.ErrUsage)
	}
	pred, err := cfg.predicate()
	if err != nil {
		return err
	}
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}
	from := root
	if cfg.From != "" {
		from, err = lookup(root, cfg.From)
		if err != nil {
			return err
		}
	}
	opts := []wbs.FindOption{wbs.DirectChildren(cfg.Children)}
	if cfg.SkipErrors {
		opts = append(opts, wbs.SkipErrors())
	}
	n, err := from.FindByFunc(pred, opts...)
	if err != nil {
		return err
	}
	theLog.Debug("found", "path", plan.FormatPath(n.Path()), "level", n.Level())
	_, err = fmt.Fprintln(w, plan.FormatPath(n.Path()))
	return err
}

func (cfg *FindConfig) predicate() (wbs.Predicate, error) {
	if cfg.Query != "" {
		return query.Compile(cfg.Query)
	}
	name := cfg.Name
	return func(n *wbs.Node) (bool, error) {
		return n.Name() == name, nil
	}, nil
}
