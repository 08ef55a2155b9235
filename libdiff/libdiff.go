// Package libdiff computes text differences between renderings of
// documents.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one line of a line diff.
type Line struct {
	Op   diffpatch.Operation
	Text string
}

func (l Line) String() string {
	switch l.Op {
	case diffpatch.DiffInsert:
		return "+ " + l.Text
	case diffpatch.DiffDelete:
		return "- " + l.Text
	}
	return "  " + l.Text
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			res = append(res, Line{Op: d.Type, Text: ln})
		}
	}
	return res
}

// Changed reports whether any line of ls is not an equal line.
func Changed(ls []Line) bool {
	for _, l := range ls {
		if l.Op != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Unified renders the line diff of from and to with "+ ", "- " and "  "
// prefixes.  It returns "" when there is no difference.
func Unified(from, to string) string {
	ls := Lines(from, to)
	if !Changed(ls) {
		return ""
	}
	buf := &strings.Builder{}
	for _, l := range ls {
		buf.WriteString(l.String())
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Strings diffs two strings character by character and renders the result
// with ANSI colors.  Multi-line inputs are first diffed by line.
func Strings(from, to string) string {
	dmp := diffpatch.New()
	multiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, multiLine)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
