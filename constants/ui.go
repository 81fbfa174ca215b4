package constants

// Board geometry
const (
	// BoardSize is the number of columns and rows on the board
	BoardSize = 8

	// CellWidth is the number of terminal columns per board square
	CellWidth = 2

	// BoardAreaWidth is the column budget for the bordered board, anchored top-left
	BoardAreaWidth = 18

	// BoardAreaHeight is the row budget for the bordered board
	BoardAreaHeight = 10

	// BoardTitle is drawn on the top edge of the board border
	BoardTitle = "Board"
)

// Input
const (
	// QuitRune exits either program
	QuitRune = 'q'
)

// Quadrants layout
const (
	// SplitPercent is the share given to the first partition of every split
	SplitPercent = 50

	PanelLeft        = "Left"
	PanelBottomRight = "Bottom Right"
	PanelTopMiddle   = "Top Middle"
	PanelTopRight    = "Top Right"
)

// Program names, used as command names and log prefixes
const (
	GridCursorName = "gridcursor"
	QuadrantsName  = "quadrants"
)
