package tui

import "testing"

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name           string
		width          int
		height         int
		treeRows       int
		diagRows       int
		helpRows       int
		wantDiagHeight int
		wantHelpY      int
	}{
		{
			name:     "everything fits",
			width:    80,
			height:   24,
			treeRows: 13, diagRows: 3, helpRows: 1,
			wantDiagHeight: 3,
			wantHelpY:      16,
		},
		{
			name:     "log tail clipped",
			width:    80,
			height:   24,
			treeRows: 13, diagRows: 40, helpRows: 1,
			wantDiagHeight: 10, // 24 - 13 - 1
			wantHelpY:      23,
		},
		{
			name:     "tree taller than screen",
			width:    80,
			height:   10,
			treeRows: 13, diagRows: 2, helpRows: 1,
			wantDiagHeight: 0,
			wantHelpY:      13,
		},
		{
			name:     "size unknown",
			width:    0,
			height:   0,
			treeRows: 13, diagRows: 100, helpRows: 0,
			wantDiagHeight: 100,
			wantHelpY:      113,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := ComputeLayout(tt.width, tt.height, tt.treeRows, tt.diagRows, tt.helpRows)

			if layout.Tree.Y != 0 || layout.Tree.Height != tt.treeRows {
				t.Errorf("Tree = %+v, want Y=0 Height=%d", layout.Tree, tt.treeRows)
			}
			if layout.Diagnostics.Y != tt.treeRows {
				t.Errorf("Diagnostics.Y = %d, want %d", layout.Diagnostics.Y, tt.treeRows)
			}
			if layout.Diagnostics.Height != tt.wantDiagHeight {
				t.Errorf("Diagnostics.Height = %d, want %d", layout.Diagnostics.Height, tt.wantDiagHeight)
			}
			if layout.Help.Y != tt.wantHelpY {
				t.Errorf("Help.Y = %d, want %d", layout.Help.Y, tt.wantHelpY)
			}
			if layout.Help.Height != tt.helpRows {
				t.Errorf("Help.Height = %d, want %d", layout.Help.Height, tt.helpRows)
			}
			for _, r := range []Region{layout.Tree, layout.Diagnostics, layout.Help} {
				if r.Width != tt.width {
					t.Errorf("region width = %d, want %d", r.Width, tt.width)
				}
			}
		})
	}
}
