package models

// Unrevealed is the nearby mine count of a cell that has not been activated.
const Unrevealed = -1

// Cell is one position on the board. Row, Col and Index are fixed when the
// board is generated; the mine flag, the player's flag and the nearby mine
// count change as the game is set up and played.
type Cell struct {
	row   int
	col   int
	index int

	isMine      bool
	flagged     bool
	nearbyMines int
}

func newCell(row, col, index int) Cell {
	return Cell{
		row:         row,
		col:         col,
		index:       index,
		nearbyMines: Unrevealed,
	}
}

func (c Cell) Row() int { return c.row }
func (c Cell) Col() int { return c.col }
func (c Cell) Index() int { return c.index }

func (c Cell) IsMine() bool { return c.isMine }

// IsFlagged reports whether the player marked the cell as a suspected mine.
func (c Cell) IsFlagged() bool { return c.flagged }

// NearbyMineCount returns the number of adjacent mines, or Unrevealed.
func (c Cell) NearbyMineCount() int { return c.nearbyMines }

// WasActivated reports whether the cell has been revealed.
func (c Cell) WasActivated() bool { return c.nearbyMines > Unrevealed }

// A mine is never unset.
func (c *Cell) setMine() { c.isMine = true }

// Revealing a cell drops its flag.
func (c *Cell) setNearbyMineCount(n int) {
	c.nearbyMines = n
	c.flagged = false
}
