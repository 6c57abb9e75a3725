// Package query compiles expressions into node predicates.
//
// Expressions are written in the expr language
// (https://expr-lang.org) and evaluated against an [Env] built from each
// node:
//
//	level >= 2 && leaf
//	name startsWith "design" || attrs.owner == "ops"
//	kind == "task" && children > 3
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/wbs"
)

// Env is the environment of a node predicate.
type Env struct {
	Name     string         `expr:"name"`
	Kind     string         `expr:"kind"`
	Level    int            `expr:"level"`
	Leaf     bool           `expr:"leaf"`
	Top      bool           `expr:"top"`
	Children int            `expr:"children"`
	Path     []string       `expr:"path"`
	Attrs    map[string]any `expr:"attrs"`
}

func EnvOf(n *wbs.Node) Env {
	attrs := n.Attrs()
	if attrs == nil {
		attrs = map[string]any{}
	}
	return Env{
		Name:     n.Name(),
		Kind:     string(n.Kind()),
		Level:    n.Level(),
		Leaf:     n.IsLeaf(),
		Top:      n.IsTop(),
		Children: len(n.Children()),
		Path:     n.Path(),
		Attrs:    attrs,
	}
}

// Compile compiles src into a predicate. src must evaluate to a boolean.
func Compile(src string) (wbs.Predicate, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return predicate(prg), nil
}

func MustCompile(src string) wbs.Predicate {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

func predicate(prg *vm.Program) wbs.Predicate {
	return func(n *wbs.Node) (bool, error) {
		res, err := expr.Run(prg, EnvOf(n))
		if err != nil {
			return false, err
		}
		b, ok := res.(bool)
		if !ok {
			return false, fmt.Errorf("query returned %T, not bool", res)
		}
		return b, nil
	}
}
