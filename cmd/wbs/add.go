package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/wbs"
	"github.com/signadot/wbs/outline"
	"github.com/signadot/wbs/plan"
)

func add(cfg *AddConfig, w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: add requires a plan and at least one path, got %v", cli.ErrUsage, args)
	}
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}
	var opts []wbs.Option
	if cfg.Kind != "" {
		opts = append(opts, wbs.WithKind(wbs.Kind(cfg.Kind)))
	}
	for _, path := range args[1:] {
		if _, err := getOrCreatePath(root, plan.ParsePath(path), opts...); err != nil {
			return fmt.Errorf("error adding %s: %w", path, err)
		}
	}
	if err := outline.Write(w, root, outline.WithColors(cfg.colors(w))); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func getOrCreatePath(n *wbs.Node, names []string, opts ...wbs.Option) (*wbs.Node, error) {
	cur := n
	for _, name := range names {
		next, err := cur.GetOrCreateChild(name, opts...)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
