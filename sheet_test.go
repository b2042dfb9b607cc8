package gridsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lhalvorsen/gridsheet/position"
)

func Test_Sheet_RefAPI(t *testing.T) {
	s := NewSheet()
	assert.NoError(t, s.SetCellRef("A1", "=1+2"))

	c, err := s.GetCellRef("A1")
	assert.NoError(t, err)
	assert.Equal(t, NumberValue(3), c.Value())

	assert.NoError(t, s.ClearCellRef("A1"))
	c, err = s.GetCellRef("A1")
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func Test_Sheet_RefAPI_invalidRef(t *testing.T) {
	s := NewSheet()
	assert.Error(t, s.SetCellRef("not-a-ref", "1"))
	_, err := s.GetCellRef("not-a-ref")
	assert.Error(t, err)
	assert.Error(t, s.ClearCellRef("not-a-ref"))
}

func Test_Sheet_SetCell_invalidPosition(t *testing.T) {
	s := NewSheet()
	bad := position.Position{Row: -1, Col: 0}
	err := s.SetCell(bad, "1")
	assert.Error(t, err)
	assert.ErrorIs(t, err, position.ErrInvalidPosition)
}

func Test_Sheet_SetCell_failedSetOnNewPositionLeavesSheetUntouched(t *testing.T) {
	s := NewSheet()
	err := s.SetCell(pos(8, 25), "=(")
	assert.Error(t, err)

	rows, cols := s.PrintableSize()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)

	c, err := s.GetCell(pos(8, 25))
	assert.NoError(t, err)
	assert.Nil(t, c, "a rejected Set on a previously absent position must not materialize it")
}

func Test_Sheet_GetCell_absentIsNilNotError(t *testing.T) {
	s := NewSheet()
	c, err := s.GetCell(pos(5, 5))
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func Test_Sheet_ClearCell_onAbsentCellIsNoop(t *testing.T) {
	s := NewSheet()
	assert.NoError(t, s.ClearCell(pos(0, 0)))
}

func Test_Sheet_PrintableSize_zeroIffEmpty(t *testing.T) {
	s := NewSheet()
	rows, cols := s.PrintableSize()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)

	assert.NoError(t, s.SetCell(pos(0, 0), "1"))
	rows, cols = s.PrintableSize()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)

	assert.NoError(t, s.ClearCell(pos(0, 0)))
	rows, cols = s.PrintableSize()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}

func Test_Sheet_escapedTextRoundTrip(t *testing.T) {
	s := NewSheet()
	assert.NoError(t, s.SetCell(pos(0, 0), "'42"))
	c, _ := s.GetCell(pos(0, 0))
	assert.Equal(t, "'42", c.Text())
	assert.Equal(t, TextValue("42"), c.Value())
}

func Test_Sheet_settingIdenticalContentTwiceIsIdempotent(t *testing.T) {
	s := NewSheet()
	assert.NoError(t, s.SetCell(pos(0, 0), "=1+2"))
	first, _ := s.GetCell(pos(0, 0))
	v1 := first.Value()

	assert.NoError(t, s.SetCell(pos(0, 0), "=1+2"))
	second, _ := s.GetCell(pos(0, 0))
	assert.Equal(t, v1, second.Value())
	assert.Empty(t, second.References())
}
