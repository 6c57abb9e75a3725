package outline

import (
	"bytes"
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/wbs"
)

// Diff compares the outlines of a and b, rendered with opts, line by line.
func Diff(a, b *wbs.Node, opts ...Option) []diffpatch.Diff {
	return DiffText(String(a, opts...), String(b, opts...))
}

// DiffText diffs two outlines line by line.
func DiffText(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	c1, c2, lines := dmp.DiffLinesToChars(from+"\n", to+"\n")
	diffs := dmp.DiffMain(c1, c2, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func Changed(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// WriteDiff writes diffs as lines prefixed with "+ ", "- " or two spaces.
func WriteDiff(w io.Writer, diffs []diffpatch.Diff, colors *Colors) error {
	buf := bytes.NewBuffer(nil)
	for i := range diffs {
		diff := &diffs[i]
		prefix, attr := "  ", ColorAttr(-1)
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix, attr = "+ ", InsertColor
		case diffpatch.DiffDelete:
			prefix, attr = "- ", DeleteColor
		}
		for _, ln := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			ln = prefix + ln
			if attr >= 0 {
				ln = colors.Color("", attr, ln)
			}
			buf.WriteString(ln)
			buf.WriteByte('\n')
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}
