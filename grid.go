package gridsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/lhalvorsen/gridsheet/position"
)

// gridRow holds one row's occupied cells plus the ordered set of its
// occupied column indices, mirroring the original source's Row<T> (a
// std::map<int, T> paired with a std::set<int> of populated columns).
type gridRow struct {
	cells map[int]*Cell
	cols  orderedIntSet
}

func newGridRow() *gridRow {
	return &gridRow{cells: make(map[int]*Cell)}
}

// SparseGrid stores only the cells a sheet has ever materialized, indexed
// by row then column, grounded on the original source's
// maps::RowsAndColumns<Cell> (spec.md §3, §9 "Sparse storage").
type SparseGrid struct {
	rows   map[int]*gridRow
	rowSet orderedIntSet
}

func newSparseGrid() *SparseGrid {
	return &SparseGrid{rows: make(map[int]*gridRow)}
}

// get returns the cell at pos, or nil if the grid has never materialized it.
func (g *SparseGrid) get(pos position.Position) *Cell {
	row, ok := g.rows[pos.Row]
	if !ok {
		return nil
	}
	return row.cells[pos.Col]
}

// put installs cell at pos, growing the row/column index as needed.
func (g *SparseGrid) put(pos position.Position, cell *Cell) {
	row, ok := g.rows[pos.Row]
	if !ok {
		row = newGridRow()
		g.rows[pos.Row] = row
		g.rowSet.add(pos.Row)
	}
	row.cells[pos.Col] = cell
	row.cols.add(pos.Col)
}

// erase removes any cell at pos, pruning an emptied row from the index.
func (g *SparseGrid) erase(pos position.Position) {
	row, ok := g.rows[pos.Row]
	if !ok {
		return
	}
	delete(row.cells, pos.Col)
	row.cols.remove(pos.Col)
	if row.cols.empty() {
		delete(g.rows, pos.Row)
		g.rowSet.remove(pos.Row)
	}
}

// printableSize returns the smallest (rows, cols) rectangle, anchored at
// (0,0), that covers every materialized cell: one past the highest
// occupied row and column index the grid currently holds. It is (0, 0) iff
// the grid holds nothing (invariant I5).
func (g *SparseGrid) printableSize() (rows, cols int) {
	maxRow, ok := g.rowSet.max()
	if !ok {
		return 0, 0
	}
	maxCol := -1
	for _, row := range g.rows {
		if m, ok := row.cols.max(); ok && m > maxCol {
			maxCol = m
		}
	}
	return maxRow + 1, maxCol + 1
}

// printValues writes the printable rectangle's evaluated values, one row
// per line, columns tab-separated, absent cells rendered as "".
func (g *SparseGrid) printValues(w io.Writer) error {
	return g.print(w, func(c *Cell) string { return c.Value().String() })
}

// printTexts writes the printable rectangle's raw textual forms, same
// layout as printValues.
func (g *SparseGrid) printTexts(w io.Writer) error {
	return g.print(w, func(c *Cell) string { return c.Text() })
}

func (g *SparseGrid) print(w io.Writer, render func(*Cell) string) error {
	rows, cols := g.printableSize()
	var line strings.Builder
	for r := 0; r < rows; r++ {
		line.Reset()
		row := g.rows[r]
		for col := 0; col < cols; col++ {
			if col > 0 {
				line.WriteByte('\t')
			}
			if row != nil {
				if c, ok := row.cells[col]; ok {
					line.WriteString(render(c))
				}
			}
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return fmt.Errorf("gridsheet: writing row %d: %w", r, err)
		}
	}
	return nil
}
