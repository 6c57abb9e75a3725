package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/wbs/outline"
)

func diff(cfg *DiffConfig, w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 plans, got %v", cli.ErrUsage, args)
	}
	a, err := loadTree(args[0])
	if err != nil {
		return err
	}
	b, err := loadTree(args[1])
	if err != nil {
		return err
	}
	diffs := outline.Diff(a, b, outline.ShowKind(cfg.Kind), outline.ShowAttrs(cfg.Attrs))
	if !outline.Changed(diffs) {
		return nil
	}
	if err := outline.WriteDiff(w, diffs, cfg.colors(w)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
