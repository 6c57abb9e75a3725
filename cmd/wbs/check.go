package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least 1 plan", cli.ErrUsage)
	}
	for _, file := range args {
		root, err := loadTree(file)
		if err != nil {
			return err
		}
		theLog.Info("checked", "file", file, "nodes", root.Len(), "depth", root.Depth())
		if _, err := fmt.Fprintf(w, "%s: %d nodes, depth %d\n", file, root.Len(), root.Depth()); err != nil {
			return err
		}
	}
	return nil
}
