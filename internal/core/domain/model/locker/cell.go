package locker

import (
	"errors"
	"fmt"

	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

// MinPosition is the first row and the first column of every locker grid.
const MinPosition = 1

// ErrCellIsNotConstructed is returned for a zero Cell.
var ErrCellIsNotConstructed = errs.NewValueIsRequiredError("cell must be created via NewCell")

// Cell is a 1-based position in a locker grid.
//
// Example:
//
//	cell, err := locker.NewCell(2, 3)
//	fmt.Print(cell) // row 2, column 3
type Cell struct { //nolint:recvcheck //using for validation
	row    int
	column int
	guard  guard.ConstructorGuard
}

// NewCell creates a cell. Row and column start at 1; the upper bound depends
// on the locker and is checked by Within.
func NewCell(row, column int) (Cell, error) {
	c := Cell{guard: guard.NewConstructorGuard()}
	if err := errors.Join(c.setRow(row), c.setColumn(column)); err != nil {
		return Cell{}, err
	}
	return c, nil
}

func (c Cell) Validate() error {
	return c.guard.Validate(ErrCellIsNotConstructed)
}

func (c Cell) Row() int    { return c.row }
func (c Cell) Column() int { return c.column }

func (c Cell) String() string {
	return fmt.Sprintf("row %d, column %d", c.row, c.column)
}

func (c Cell) IsEqual(other Cell) bool {
	return c.row == other.row && c.column == other.column
}

// Within checks the cell fits a grid of rows × columns.
func (c Cell) Within(rows, columns int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.row > rows {
		return errs.NewValueIsOutOfRangeError("row", c.row, MinPosition, rows)
	}
	if c.column > columns {
		return errs.NewValueIsOutOfRangeError("column", c.column, MinPosition, columns)
	}
	return nil
}

func (c *Cell) setRow(row int) error {
	if row < MinPosition {
		return errs.NewValueIsOutOfRangeErrorWithCause("row", row, MinPosition, "unbounded",
			fmt.Errorf("%d is before the first row", row))
	}
	c.row = row
	return nil
}

func (c *Cell) setColumn(column int) error {
	if column < MinPosition {
		return errs.NewValueIsOutOfRangeErrorWithCause("column", column, MinPosition, "unbounded",
			fmt.Errorf("%d is before the first column", column))
	}
	c.column = column
	return nil
}
