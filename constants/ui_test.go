package constants

import "testing"

// TestBoardFitsArea verifies the board plus its border fits the area budget
func TestBoardFitsArea(t *testing.T) {
	tests := []struct {
		name   string
		needed int
		budget int
	}{
		{
			name:   "Width",
			needed: BoardSize*CellWidth + 2,
			budget: BoardAreaWidth,
		},
		{
			name:   "Height",
			needed: BoardSize + 2,
			budget: BoardAreaHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.needed > tt.budget {
				t.Errorf("Board needs %d cells, budget is %d", tt.needed, tt.budget)
			}
		})
	}
}

// TestSplitPercentBounds verifies the split share is a valid percentage
func TestSplitPercentBounds(t *testing.T) {
	if SplitPercent <= 0 || SplitPercent >= 100 {
		t.Errorf("Expected SplitPercent in (0,100), got %d", SplitPercent)
	}
}
