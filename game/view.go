package game

// CellState is how a cell should be drawn.
type CellState int

const (
	CellHidden CellState = iota
	CellBlank
	CellNumber
	CellMine
	CellFlagged
)

func (s CellState) String() string {
	switch s {
	case CellHidden:
		return "hidden"
	case CellBlank:
		return "blank"
	case CellNumber:
		return "number"
	case CellMine:
		return "mine"
	case CellFlagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// CellView is the render-ready state of one cell. Count is set for
// CellNumber. Enabled reports whether activating the cell would do anything;
// flagged cells are not.
type CellView struct {
	Index   int
	Row     int
	Col     int
	State   CellState
	Count   int
	Enabled bool
}
