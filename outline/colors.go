package outline

import (
	"github.com/fatih/color"

	"github.com/signadot/wbs"
)

type Colorable struct {
	Kind wbs.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	MarkerColor ColorAttr = iota
	NameColor
	KindColor
	AttrsColor
	InsertColor
	DeleteColor
)

// Colors maps what is rendered to a formatting function. Lookups for a kind
// fall back to the entry with an empty kind, then to Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the default palette. Its functions always emit escape
// sequences; whether to use colors at all is up to the caller.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	able := Colorable{Attr: MarkerColor}
	colors.Map[able] = rgb(255, 0, 196)
	able.Attr = NameColor
	colors.Map[able] = rgb(128, 168, 196)
	able.Attr = KindColor
	colors.Map[able] = rgb(74, 92, 138)
	able.Attr = AttrsColor
	colors.Map[able] = rgb(96, 96, 96)
	able.Attr = InsertColor
	colors.Map[able] = rgb(8, 196, 16)
	able.Attr = DeleteColor
	colors.Map[able] = rgb(196, 96, 16)
	return colors
}

// SetKind colors attr of nodes of kind k with f.
func (c *Colors) SetKind(k wbs.Kind, attr ColorAttr, f func(string, ...any) string) {
	c.Map[Colorable{Kind: k, Attr: attr}] = f
}

func (c *Colors) Color(k wbs.Kind, attr ColorAttr, v string) string {
	if c == nil {
		return v
	}
	if f, ok := c.Map[Colorable{Kind: k, Attr: attr}]; ok {
		return f("%s", v)
	}
	if f, ok := c.Map[Colorable{Attr: attr}]; ok {
		return f("%s", v)
	}
	if c.Default == nil {
		return v
	}
	return c.Default("%s", v)
}

func rgb(r, g, b int) func(string, ...any) string {
	c := color.RGB(r, g, b)
	c.EnableColor()
	return c.SprintfFunc()
}

func colorDefault(f string, args ...any) string {
	return color.New(color.Reset).Sprintf(f, args...)
}
