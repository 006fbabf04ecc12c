// pattern: Functional Core

// Package frame turns a tree and a selection into the lines of one full
// redraw, independent of any terminal.
package frame

import (
	"strings"

	"treeview/internal/tree"
)

const (
	// Indent is repeated once per depth level.
	Indent = "  "
	// MarkerBranch prefixes items that have children.
	MarkerBranch = "●"
	// MarkerLeaf prefixes items without children.
	MarkerLeaf = "○"
)

// Kind distinguishes tree rows from diagnostic rows.
type Kind int

const (
	KindItem Kind = iota
	KindDiagnostic
)

// Line is one row of a frame.
type Line struct {
	Kind     Kind
	ItemID   int // only meaningful for KindItem
	Depth    int
	Text     string
	Selected bool
}

// Frame is the complete content of one redraw: the visible tree followed by
// the diagnostic log.
type Frame struct {
	Lines []Line
}

// Build renders every visible item in depth-first order, marking the one
// whose id equals selected, then appends the diagnostics.
func Build(t *tree.Tree, selected int, diagnostics []string) Frame {
	var f Frame
	t.Walk(func(item *tree.Item, depth int) {
		f.Lines = append(f.Lines, Line{
			Kind:     KindItem,
			ItemID:   item.ID,
			Depth:    depth,
			Text:     ItemText(item, depth),
			Selected: item.ID == selected,
		})
	})
	for _, d := range diagnostics {
		f.Lines = append(f.Lines, Line{Kind: KindDiagnostic, Text: d})
	}
	return f
}

// ItemText formats a single item row.
func ItemText(item *tree.Item, depth int) string {
	marker := MarkerLeaf
	if !item.IsLeaf() {
		marker = MarkerBranch
	}
	return strings.Repeat(Indent, depth) + marker + " " + item.Title
}

// Items returns only the tree rows.
func (f Frame) Items() []Line {
	return f.filter(KindItem)
}

// Diagnostics returns only the diagnostic rows.
func (f Frame) Diagnostics() []Line {
	return f.filter(KindDiagnostic)
}

func (f Frame) filter(k Kind) []Line {
	var out []Line
	for _, l := range f.Lines {
		if l.Kind == k {
			out = append(out, l)
		}
	}
	return out
}

// Selected returns the selected row, if any is visible.
func (f Frame) Selected() (Line, bool) {
	for _, l := range f.Lines {
		if l.Selected {
			return l, true
		}
	}
	return Line{}, false
}

// String joins the rows without styling.
func (f Frame) String() string {
	texts := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}
