package models

import (
	"github.com/gammazero/deque"
)

// NoHint is returned by Generate when every cell holds a mine.
const NoHint = -1

// Rand is the randomness a board draws from. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0,n).
	Intn(n int) int
}

// Outcome tells what activating a cell did.
type Outcome int

const (
	Revealed Outcome = iota
	MineHit
)

func (o Outcome) String() string {
	switch o {
	case Revealed:
		return "revealed"
	case MineHit:
		return "mine hit"
	default:
		return "unknown"
	}
}

// ActivationResult is returned by Board.Activate. Count is the target's
// nearby mine count when Outcome is Revealed. Revealed lists the indices
// activated by this call, target first, in the order the cascade reached
// them; it is empty when the target was already activated or is a mine.
type ActivationResult struct {
	Outcome  Outcome
	Count    int
	Revealed []int
}

// Board is the grid for one game. Cells are stored in row-major order so a
// cell's index is row*width+col.
type Board struct {
	width     int
	height    int
	mineCount int
	cells     []Cell
}

// Generate builds a width x height board with mineCount mines placed uniformly
// at random and returns it together with a random safe cell index that can
// serve as a starting hint.
func Generate(width, height, mineCount int, rng Rand) (*Board, int, error) {
	if width <= 0 || height <= 0 || mineCount < 0 || mineCount >= width*height {
		return nil, NoHint, invalidConfiguration(width, height, mineCount)
	}

	b := &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		cells:     make([]Cell, 0, width*height),
	}
	for i := 0; i < width*height; i++ {
		b.cells = append(b.cells, newCell(i/width, i%width, i))
	}

	return b, b.placeMines(mineCount, rng), nil
}

// placeMines draws mineCount cells out of the clean list one at a time, so
// every subset of that size is equally likely to become the mine set. It
// returns a random cell left clean, or NoHint if none is.
func (b *Board) placeMines(mineCount int, rng Rand) int {
	clean := make([]int, len(b.cells))
	for i := range clean {
		clean[i] = i
	}

	for i := 0; i < mineCount && len(clean) > 0; i++ {
		j := rng.Intn(len(clean))
		b.cells[clean[j]].setMine()
		clean = append(clean[:j], clean[j+1:]...)
	}

	if len(clean) == 0 {
		return NoHint
	}
	return clean[rng.Intn(len(clean))]
}

func (b *Board) Width() int { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) MineCount() int { return b.mineCount }
func (b *Board) Len() int { return len(b.cells) }

// Cell returns a copy of the cell at index.
func (b *Board) Cell(index int) Cell {
	b.mustIndex(index)
	return b.cells[index]
}

// RevealedCount returns how many cells have been activated.
func (b *Board) RevealedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.WasActivated() {
			n++
		}
	}
	return n
}

// SafeRemaining returns how many safe cells are still hidden.
func (b *Board) SafeRemaining() int {
	return len(b.cells) - b.mineCount - b.RevealedCount()
}

// AdjacentIndex returns the index of the cell at (rowOffset, colOffset) from c.
// Offsets outside [-1,1] name no neighbour and are rejected. Wrap-around is
// rejected by bounding the target column to [0,width) before the linear index
// is formed: past the last column the index would land on the first column of
// the next row. The row bound follows from the index range check.
func (b *Board) AdjacentIndex(c Cell, rowOffset, colOffset int) (int, bool) {
	if rowOffset < -1 || rowOffset > 1 || colOffset < -1 || colOffset > 1 {
		return -1, false
	}

	col := c.col + colOffset
	if col < 0 || col >= b.width {
		return -1, false
	}

	index := (c.row+rowOffset)*b.width + col
	if index < 0 || index >= len(b.cells) {
		return -1, false
	}
	return index, true
}

// neighbours calls fn with the index of every cell adjacent to index.
func (b *Board) neighbours(index int, fn func(int)) {
	c := b.cells[index]
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if n, ok := b.AdjacentIndex(c, dr, dc); ok {
				fn(n)
			}
		}
	}
}

// CountAdjacentMines returns the number of mines around the cell at index.
func (b *Board) CountAdjacentMines(index int) int {
	b.mustIndex(index)

	count := 0
	b.neighbours(index, func(n int) {
		if b.cells[n].isMine {
			count++
		}
	})
	return count
}

// ToggleFlag flips the flag on the cell at index and reports whether the cell
// is flagged afterwards. Activated cells cannot be flagged.
func (b *Board) ToggleFlag(index int) bool {
	b.mustIndex(index)

	c := &b.cells[index]
	if c.WasActivated() {
		return false
	}
	c.flagged = !c.flagged
	return c.flagged
}

// FlagCount returns how many cells are flagged.
func (b *Board) FlagCount() int {
	n := 0
	for _, c := range b.cells {
		if c.flagged {
			n++
		}
	}
	return n
}

// Activate reveals the cell at index. A cell with no adjacent mines also
// reveals every neighbour that is not yet activated, and so on outward until
// the region is bordered by numbered cells. Flags on cells the cascade reaches
// are cleared. Activating a mine changes nothing.
func (b *Board) Activate(index int) ActivationResult {
	b.mustIndex(index)

	if b.cells[index].isMine {
		return ActivationResult{Outcome: MineHit, Count: Unrevealed}
	}

	res := ActivationResult{Outcome: Revealed}
	var queue deque.Deque[int]

	reveal := func(i int) int {
		count := b.CountAdjacentMines(i)
		if !b.cells[i].WasActivated() {
			res.Revealed = append(res.Revealed, i)
		}
		b.cells[i].setNearbyMineCount(count)
		if count == 0 {
			queue.PushBack(i)
		}
		return count
	}

	res.Count = reveal(index)
	for queue.Len() > 0 {
		b.neighbours(queue.PopFront(), func(n int) {
			if c := b.cells[n]; !c.isMine && !c.WasActivated() {
				reveal(n)
			}
		})
	}
	return res
}
