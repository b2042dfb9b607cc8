package gridsheet

import (
	"io"

	"github.com/lhalvorsen/gridsheet/position"
)

// Sheet is the façade spec.md §2 describes: a single-sheet, single-threaded
// grid of cells, exposing Set/Get/Clear plus whole-sheet printing. It is
// the sole owner of every Cell it creates.
type Sheet struct {
	grid *SparseGrid
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{grid: newSparseGrid()}
}

func checkPos(pos position.Position) error {
	if !pos.Valid() {
		return &InvalidPositionError{Pos: pos}
	}
	return nil
}

// SetCell parses and installs text as pos's content. On a parse failure or
// a would-be cycle, pos is left unchanged and the error is returned
// (*formula.ParseError or ErrCircularDependency); on success, every cell
// downstream of pos has its cache invalidated.
//
// If pos has no cell yet, the candidate is built and Set before it is ever
// stored in the grid: a failing Set must not leave a stray Empty cell
// behind, matching the original source's Sheet::SetCell (sheet.cpp:211-226),
// which only calls data_.SetCell after new_cell->Set succeeds.
func (s *Sheet) SetCell(pos position.Position, text string) error {
	if err := checkPos(pos); err != nil {
		return err
	}
	if cell := s.lookup(pos); cell != nil {
		return cell.Set(text)
	}
	cell := newCell(s, pos)
	if err := cell.Set(text); err != nil {
		return err
	}
	s.grid.put(pos, cell)
	return nil
}

// GetCell returns the cell materialized at pos, or nil if the sheet has
// never stored anything there (an absent cell reads as Empty without
// needing to exist).
func (s *Sheet) GetCell(pos position.Position) (*Cell, error) {
	if err := checkPos(pos); err != nil {
		return nil, err
	}
	return s.lookup(pos), nil
}

// ClearCell resets pos to Empty, invalidating every downstream cache. If
// the cell ends up both Empty and unreferenced, it is dropped from the
// grid entirely, preserving the sparse-storage invariant.
func (s *Sheet) ClearCell(pos position.Position) error {
	if err := checkPos(pos); err != nil {
		return err
	}
	cell := s.lookup(pos)
	if cell == nil {
		return nil
	}
	cell.Clear()
	if !cell.IsReferenced() {
		s.grid.erase(pos)
	}
	return nil
}

// PrintableSize returns the (rows, cols) of the smallest rectangle
// anchored at A1 that covers every materialized cell.
func (s *Sheet) PrintableSize() (rows, cols int) {
	return s.grid.printableSize()
}

// PrintValues writes the printable rectangle's evaluated values.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.grid.printValues(w)
}

// PrintTexts writes the printable rectangle's raw textual forms.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.grid.printTexts(w)
}

// SetCellRef parses ref as A1-notation before delegating to SetCell, a
// convenience for callers (the REPL in particular) that only have strings.
func (s *Sheet) SetCellRef(ref, text string) error {
	pos, err := position.Parse(ref)
	if err != nil {
		return err
	}
	return s.SetCell(pos, text)
}

// GetCellRef is GetCell via an A1-notation string.
func (s *Sheet) GetCellRef(ref string) (*Cell, error) {
	pos, err := position.Parse(ref)
	if err != nil {
		return nil, err
	}
	return s.GetCell(pos)
}

// ClearCellRef is ClearCell via an A1-notation string.
func (s *Sheet) ClearCellRef(ref string) error {
	pos, err := position.Parse(ref)
	if err != nil {
		return err
	}
	return s.ClearCell(pos)
}

// lookup returns the cell at pos without materializing it, or nil.
func (s *Sheet) lookup(pos position.Position) *Cell {
	return s.grid.get(pos)
}

// materialize returns the cell at pos, creating and storing an Empty one
// first if the grid has never seen pos (invariant I4: every reference,
// even a dangling one pointed at from elsewhere, has a live Cell once it
// has been named by a formula or addressed directly).
func (s *Sheet) materialize(pos position.Position) *Cell {
	if c := s.grid.get(pos); c != nil {
		return c
	}
	c := newCell(s, pos)
	s.grid.put(pos, c)
	return c
}
