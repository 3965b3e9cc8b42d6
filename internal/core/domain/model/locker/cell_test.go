package locker_test

import (
	"testing"

	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCell(t *testing.T) {
	t.Run("should create cell at the first position", func(t *testing.T) {
		c, err := locker.NewCell(1, 1)
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, 1, c.Row())
		assert.Equal(t, 1, c.Column())
		assert.Equal(t, "row 1, column 1", c.String())
	})

	t.Run("should reject zero row and column", func(t *testing.T) {
		_, err := locker.NewCell(0, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "before the first row")
		assert.Contains(t, err.Error(), "before the first column")
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var c locker.Cell
		assert.ErrorIs(t, c.Validate(), errs.ErrValueIsRequired)
	})
}

func TestCell_Within(t *testing.T) {
	c, err := locker.NewCell(3, 2)
	require.NoError(t, err)

	assert.NoError(t, c.Within(3, 2))
	assert.ErrorIs(t, c.Within(2, 2), errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, c.Within(3, 1), errs.ErrValueIsOutOfRange)
}

func TestCell_IsEqual(t *testing.T) {
	a, _ := locker.NewCell(1, 2)
	b, _ := locker.NewCell(1, 2)
	c, _ := locker.NewCell(2, 1)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
