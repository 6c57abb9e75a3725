package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/wbs/outline"
)

func tree(cfg *TreeConfig, w io.Writer, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: tree requires a plan and an optional path, got %v", cli.ErrUsage, args)
	}
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}
	n := root
	if len(args) == 2 {
		n, err = lookup(root, args[1])
		if err != nil {
			return err
		}
	}
	opts := []outline.Option{
		outline.MaxDepth(cfg.Depth),
		outline.ShowKind(cfg.Kind),
		outline.ShowAttrs(cfg.Attrs),
		outline.WithColors(cfg.colors(w)),
	}
	if err := outline.Write(w, n, opts...); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
