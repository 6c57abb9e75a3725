// Package outline renders breakdown structures as text outlines.
//
// With no options, Write produces exactly what wbs.Node.Tree does. Options
// add colors, limit depth, change the indentation, or annotate nodes with
// their kind and attributes.
package outline

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/wbs"
)

const marker = `\`

type outlineOpts struct {
	colors    *Colors
	maxDepth  int
	indent    string
	showKind  bool
	showAttrs bool
}

type Option func(*outlineOpts)

func WithColors(c *Colors) Option {
	return func(o *outlineOpts) { o.colors = c }
}

// MaxDepth limits the output to d levels below the node written. A negative
// d means no limit.
func MaxDepth(d int) Option {
	return func(o *outlineOpts) { o.maxDepth = d }
}

func Indent(s string) Option {
	return func(o *outlineOpts) { o.indent = s }
}

func ShowKind(v bool) Option {
	return func(o *outlineOpts) { o.showKind = v }
}

func ShowAttrs(v bool) Option {
	return func(o *outlineOpts) { o.showAttrs = v }
}

func newOpts(opts []Option) *outlineOpts {
	o := &outlineOpts{maxDepth: -1, indent: "  "}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Write writes the outline of the subtree at n to w. Lines are separated,
// not terminated, by newlines.
func Write(w io.Writer, n *wbs.Node, opts ...Option) error {
	o := newOpts(opts)
	buf := bytes.NewBuffer(nil)
	depth := 0
	err := n.Visit(func(x *wbs.Node, isPost bool) (bool, error) {
		if isPost {
			depth--
			return false, nil
		}
		if depth > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(o.indent, depth))
		writeNode(buf, x, o)
		depth++
		return o.maxDepth < 0 || depth <= o.maxDepth, nil
	})
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func String(n *wbs.Node, opts ...Option) string {
	var b strings.Builder
	Write(&b, n, opts...)
	return b.String()
}

func writeNode(buf *bytes.Buffer, x *wbs.Node, o *outlineOpts) {
	k := x.Kind()
	buf.WriteString(o.colors.Color(k, MarkerColor, marker))
	if x.Name() != "" {
		buf.WriteString(o.colors.Color(k, NameColor, x.Name()))
	}
	if x.IsRoot() && x.Name() == "" {
		return
	}
	if o.showKind {
		buf.WriteByte(' ')
		buf.WriteString(o.colors.Color(k, KindColor, "["+string(k)+"]"))
	}
	if o.showAttrs {
		attrs := x.Attrs()
		if len(attrs) == 0 {
			return
		}
		parts := make([]string, 0, len(attrs))
		for _, key := range slices.Sorted(maps.Keys(attrs)) {
			parts = append(parts, fmt.Sprintf("%s=%v", key, attrs[key]))
		}
		buf.WriteByte(' ')
		buf.WriteString(o.colors.Color(k, AttrsColor, "{"+strings.Join(parts, ", ")+"}"))
	}
}
