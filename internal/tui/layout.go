// pattern: Functional Core

package tui

// Region defines a horizontal band of the terminal.
type Region struct {
	Y      int // Top position (0-indexed)
	Width  int // Width in cells
	Height int // Height in lines
}

// Layout holds computed regions for the frame, top to bottom.
type Layout struct {
	Tree        Region // Visible tree rows
	Diagnostics Region // Tail of the diagnostic log
	Help        Region // Key help footer
}

// ComputeLayout stacks the tree, the diagnostic log and the help footer.
// The tree always gets every row it needs; the diagnostics get whatever is
// left above the footer, so only the most recent entries are shown once the
// log outgrows the screen. A zero height means the size is not known yet and
// nothing is clipped.
func ComputeLayout(width, height, treeRows, diagnosticRows, helpRows int) Layout {
	diagHeight := diagnosticRows
	if height > 0 {
		avail := height - treeRows - helpRows
		if avail < 0 {
			avail = 0
		}
		if diagHeight > avail {
			diagHeight = avail
		}
	}

	y := 0
	tree := Region{Y: y, Width: width, Height: treeRows}
	y += treeRows

	diagnostics := Region{Y: y, Width: width, Height: diagHeight}
	y += diagHeight

	help := Region{Y: y, Width: width, Height: helpRows}

	return Layout{
		Tree:        tree,
		Diagnostics: diagnostics,
		Help:        help,
	}
}
