package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/wbs/plan"
)

func ancestors(cfg *AncestorsConfig, w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: ancestors requires a plan and a path, got %v", cli.ErrUsage, args)
	}
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}
	n, err := lookup(root, args[1])
	if err != nil {
		return err
	}
	for _, a := range n.GetAncestors(cfg.Self) {
		if _, err := fmt.Fprintln(w, plan.FormatPath(a.Path())); err != nil {
			return err
		}
	}
	return nil
}
