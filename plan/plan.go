// Package plan builds breakdown structures from declarative YAML plans.
//
// A plan sets the tree policy and lists its items; an item is either a bare
// name or a mapping:
//
//	kind: task
//	uniform: false
//	allowDuplicates: false
//	items:
//	- name: design
//	  attrs: {owner: arch}
//	  items: [schema, api]
//	- build
//
// Plans are only read. Building goes through wbs.Node.AddChild so every tree
// policy is enforced while building.
package plan

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/wbs"
	"github.com/signadot/wbs/debug"
)

type Plan struct {
	Kind            string `yaml:"kind"`
	Uniform         bool   `yaml:"uniform"`
	AllowDuplicates bool   `yaml:"allowDuplicates"`
	Items           []Item `yaml:"items"`
}

type Item struct {
	Name  string         `yaml:"name"`
	Kind  string         `yaml:"kind"`
	Attrs map[string]any `yaml:"attrs"`
	Items []Item         `yaml:"items"`
}

type item Item

func (it *Item) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		*it = Item{Name: name}
		return nil
	}
	var x item
	if err := unmarshal(&x); err != nil {
		return err
	}
	*it = Item(x)
	return nil
}

func Parse(d []byte) (*Plan, error) {
	p := &Plan{}
	if err := yaml.UnmarshalWithOptions(d, p, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return p, nil
}

func Load(r io.Reader) (*Plan, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading plan: %w", err)
	}
	return Parse(bytes.TrimSpace(d))
}

func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return p, nil
}

func (p *Plan) kind() wbs.Kind {
	if p.Kind == "" {
		return wbs.DefaultKind
	}
	return wbs.Kind(p.Kind)
}

// Build returns the root of a new tree holding the plan's items.
func (p *Plan) Build() (*wbs.Node, error) {
	root := wbs.NewRoot(
		wbs.WithKind(p.kind()),
		wbs.Uniform(p.Uniform),
		wbs.AllowDuplicates(p.AllowDuplicates))
	if err := p.addItems(root, p.Items, nil); err != nil {
		return nil, err
	}
	if debug.Plan() {
		debug.Logf("plan built %d nodes, depth %d\n", root.Len(), root.Depth())
	}
	return root, nil
}

func (p *Plan) addItems(parent *wbs.Node, items []Item, path []string) error {
	for i := range items {
		it := &items[i]
		itPath := append(path[:len(path):len(path)], it.Name)
		if it.Name == "" {
			return fmt.Errorf("%w: item %d under /%s", ErrNoName, i, strings.Join(path, "/"))
		}
		kind := p.kind()
		if it.Kind != "" {
			kind = wbs.Kind(it.Kind)
		}
		child, err := parent.AddChild(wbs.New(it.Name, wbs.WithKind(kind), wbs.WithAttrs(it.Attrs)))
		if err != nil {
			return fmt.Errorf("error adding /%s: %w", strings.Join(itPath, "/"), err)
		}
		if debug.Plan() {
			debug.Logf("plan item /%s\n", strings.Join(itPath, "/"))
		}
		if err := p.addItems(child, it.Items, itPath); err != nil {
			return err
		}
	}
	return nil
}

// ParsePath splits a slash separated node path. Leading, trailing and
// repeated slashes are ignored.
func ParsePath(s string) []string {
	var res []string
	for _, elt := range strings.Split(s, "/") {
		if elt == "" {
			continue
		}
		res = append(res, elt)
	}
	return res
}

func FormatPath(names []string) string {
	return "/" + strings.Join(names, "/")
}
