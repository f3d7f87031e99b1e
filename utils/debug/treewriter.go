// Package debug has helpers to produce human readable dumps of program
// structures for debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates indented lines, depth is number of indentation
// levels. Zero value is not usable, use NewTreeWriter.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{w: &strings.Builder{}}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

// Line writes formatted line at depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.w.WriteString(strings.Repeat(indent, depth))
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Text writes label followed by quoted value, so control characters and line
// terminators stay visible. Empty value is written as <empty>.
func (tw *TreeWriter) Text(depth int, label, value string) {
	if len(value) == 0 {
		tw.Line(depth, "%s: <empty>", label)
		return
	}
	tw.Line(depth, "%s: %s", label, strconv.Quote(value))
}

// Lines writes multi-line value one line per entry under label, keeping
// terminators visible.
func (tw *TreeWriter) Lines(depth int, label, value string) {
	lines := strings.SplitAfter(value, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	tw.Line(depth, "%s: %d line(s)", label, len(lines))
	for i, l := range lines {
		tw.Line(depth+1, "%d: %s", i+1, strconv.Quote(l))
	}
}
