package gridsheet

import (
	"errors"
	"fmt"

	"github.com/lhalvorsen/gridsheet/position"
)

// ErrCircularDependency is returned by Cell.Set (and, through it,
// Sheet.SetCell) when committing the candidate content would create a
// cycle in the reference graph. The target cell is left fully unchanged.
var ErrCircularDependency = errors.New("circular dependency")

// InvalidPositionError is returned by every Sheet operation when given a
// Position outside [0, position.MaxRows) x [0, position.MaxCols).
type InvalidPositionError struct {
	Pos position.Position
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position: %s", e.Pos)
}

func (e *InvalidPositionError) Is(target error) bool {
	return target == position.ErrInvalidPosition
}
