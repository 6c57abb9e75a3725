package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/wbs/outline"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	NoColor bool `cli:"name=noColor desc='output without color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='debug logging'"`

	Main *cli.Command
}

// colors returns the palette for w, or nil when w should be plain.
func (cfg *MainConfig) colors(w io.Writer) *outline.Colors {
	switch {
	case cfg.NoColor:
		return nil
	case cfg.Color:
		return outline.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return outline.NewColors()
	}
	return nil
}

type TreeConfig struct {
	*MainConfig
	Depth int  `cli:"name=depth desc='maximum depth, negative for all'"`
	Kind  bool `cli:"name=kind desc='show node kinds'"`
	Attrs bool `cli:"name=attrs desc='show node attributes'"`

	Tree *cli.Command
}

type FindConfig struct {
	*MainConfig
	Name       string `cli:"name=name desc='node name to find'"`
	Query      string `cli:"name=q aliases=query desc='expression the node must satisfy'"`
	From       string `cli:"name=from desc='path of the node to search from'"`
	Children   bool   `cli:"name=children desc='only search direct children'"`
	SkipErrors bool   `cli:"name=skipErrors desc='treat query errors as non-matching'"`

	Find *cli.Command
}

type AncestorsConfig struct {
	*MainConfig
	Self bool `cli:"name=self desc='include the node itself'"`

	Ancestors *cli.Command
}

type AddConfig struct {
	*MainConfig
	Kind string `cli:"name=kind desc='kind of created nodes'"`

	Add *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Kind  bool `cli:"name=kind desc='compare node kinds'"`
	Attrs bool `cli:"name=attrs desc='compare node attributes'"`

	Diff *cli.Command
}
