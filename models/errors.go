package models

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a board cannot be generated from
// the requested dimensions and mine count.
var ErrInvalidConfiguration = errors.New("invalid board configuration")

func invalidConfiguration(width, height, mineCount int) error {
	return fmt.Errorf("%w: width=%d height=%d mines=%d", ErrInvalidConfiguration, width, height, mineCount)
}

// mustIndex panics when index does not address a cell. An out-of-range index
// is a caller bug; continuing would operate on a board that does not exist.
func (b *Board) mustIndex(index int) {
	if index < 0 || index >= len(b.cells) {
		panic(fmt.Sprintf("minefield: cell index %d out of range [0,%d)", index, len(b.cells)))
	}
}
