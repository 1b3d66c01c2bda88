// Package debug renders nested structures as indented text for debug logs.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates depth-indented lines describing a tree.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// Line writes a formatted line at the given depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Quoted writes a labeled value at the given depth, quoting the value so
// embedded spaces and escapes stay visible. Empty values stay empty.
func (tw TreeWriter) Quoted(depth int, label, value string) {
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	if value != "" {
		tw.w.WriteString(strconv.Quote(value))
	}
	tw.w.WriteByte('\n')
}
