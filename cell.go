package gridsheet

import (
	"sort"
	"strconv"

	"golang.org/x/exp/maps"

	"github.com/lhalvorsen/gridsheet/formula"
	"github.com/lhalvorsen/gridsheet/position"
)

// Cell owns one grid position's content plus the two adjacency sets that
// make up the dependency graph: refsOut (cells this cell's formula reads)
// and refsIn (cells whose formulas read this one). The sheet exclusively
// owns every Cell; refsOut/refsIn are non-owning cross-references into that
// same owner (spec.md §5 — "Shared-resource policy").
type Cell struct {
	sheet   *Sheet
	pos     position.Position
	content CellContent

	refsOut map[position.Position]*Cell
	refsIn  map[position.Position]*Cell

	cache *Value // nil means "not memoized"
}

func newCell(sheet *Sheet, pos position.Position) *Cell {
	return &Cell{
		sheet:   sheet,
		pos:     pos,
		content: emptyContent,
		refsOut: make(map[position.Position]*Cell),
		refsIn:  make(map[position.Position]*Cell),
	}
}

// Position returns the cell's own coordinates.
func (c *Cell) Position() position.Position { return c.pos }

// Set replaces the cell's content with the parsed form of text. It is
// exception-safe: if it returns a non-nil error (*formula.ParseError or
// ErrCircularDependency), the cell is left byte-for-byte as it was before
// the call.
//
// The six steps below mirror spec.md §4.2 exactly and must run in this
// order: the cycle check (3) walks the *old* refsIn, and must complete
// before the new edges are installed (6).
func (c *Cell) Set(text string) error {
	// 1. Build the candidate content; nothing has changed yet.
	newContent, err := newContent(text)
	if err != nil {
		return err
	}

	// 2. Materialize every referenced position (I4) and collect handles.
	refs := newContent.references()
	newRefsOut := make(map[position.Position]*Cell, len(refs))
	for _, p := range refs {
		if !p.Valid() {
			// Resolved lazily at evaluation time as a Ref error; an
			// out-of-bounds reference cannot be materialized or tracked.
			continue
		}
		if p == c.pos {
			// A self-reference points at c itself; materializing it would
			// leave a second, stray cell at c's position when c is not yet
			// in the grid.
			newRefsOut[p] = c
			continue
		}
		newRefsOut[p] = c.sheet.materialize(p)
	}

	// 3. Cycle check against the graph as it exists *before* this edit.
	if len(newRefsOut) > 0 && c.wouldCycle(newRefsOut) {
		return ErrCircularDependency
	}

	// 4. Commit.
	c.content = newContent
	c.cache = nil

	// 5. Invalidate downstream caches (uses the old refsIn; unaffected by
	// the edit, since new references don't change who depends on c).
	c.invalidateDownstream()

	// 6. Rewire edges: drop c from its old precedents' refsIn, then install
	// the new out-edges both ways.
	for _, old := range c.refsOut {
		delete(old.refsIn, c.pos)
	}
	c.refsOut = newRefsOut
	for p, target := range newRefsOut {
		target.refsIn[c.pos] = c
	}

	return nil
}

// Clear resets the cell to Empty, drops its out-edges, and invalidates
// every downstream cache — the same invalidation Set performs. (spec.md's
// source material omits this in Clear; SPEC_FULL.md §4.2 follows the
// spec's explicit algorithm text instead of that omission.)
func (c *Cell) Clear() {
	for _, old := range c.refsOut {
		delete(old.refsIn, c.pos)
	}
	c.refsOut = make(map[position.Position]*Cell)
	c.content = emptyContent
	c.cache = nil
	c.invalidateDownstream()
}

// Value returns the cell's memoized value, computing and caching it first
// if necessary. It never returns an error: formula failures are embedded
// in the returned Value.
func (c *Cell) Value() Value {
	if c.cache != nil {
		return *c.cache
	}
	v := c.content.value(c.resolve)
	c.cache = &v
	return v
}

// Text returns the cell's textual form: "" for Empty, the raw string for
// Text (escape sign included), "="+canonical expression for Formula.
func (c *Cell) Text() string { return c.content.text }

// References returns the positions this cell's formula reads, in ascending
// order. Empty for non-formula content.
func (c *Cell) References() []position.Position {
	out := maps.Keys(c.refsOut)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// IsReferenced reports whether any other cell's formula currently reads
// this one.
func (c *Cell) IsReferenced() bool { return len(c.refsIn) > 0 }

// resolve is the Resolver a formula.AST uses to look up a referenced
// position's numeric value (spec.md §4.2 "Value algorithm").
func (c *Cell) resolve(p position.Position) (float64, error) {
	if !p.Valid() {
		return 0, &formula.EvalError{Kind: formula.Ref}
	}

	other := c.sheet.lookup(p)
	if other == nil {
		return 0, nil // an unmaterialized reference behaves as 0
	}

	v := other.Value()
	switch v.Kind {
	case ValueNumber:
		return v.Number, nil

	case ValueText:
		if v.Text == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(v.Text, 64)
		if err != nil {
			return 0, &formula.EvalError{Kind: formula.Value}
		}
		return f, nil

	case ValueError:
		return 0, &formula.EvalError{Kind: v.Err}
	}
	return 0, nil
}

// wouldCycle reports whether adding edges from c to every cell in
// candidates would create a cycle. It walks refsIn starting at c — c's
// downstream consumers, transitively — and answers yes iff any of them is
// one of the candidate targets (including c itself, for a direct
// self-reference). This reuses the invariant that the pre-edit graph is
// already a DAG, so no temporary graph snapshot is needed (spec.md §9).
func (c *Cell) wouldCycle(candidates map[position.Position]*Cell) bool {
	visited := make(map[position.Position]bool)
	stack := []*Cell{c}

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		if _, isTarget := candidates[cur.pos]; isTarget {
			return true
		}
		if visited[cur.pos] {
			continue
		}
		visited[cur.pos] = true

		for _, consumer := range cur.refsIn {
			if !visited[consumer.pos] {
				stack = append(stack, consumer)
			}
		}
	}
	return false
}

// invalidateDownstream clears the memoized cache of c and every cell
// transitively reachable from c via refsIn (its consumers), visiting each
// at most once.
func (c *Cell) invalidateDownstream() {
	visited := make(map[position.Position]bool)
	stack := []*Cell{c}

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		if visited[cur.pos] {
			continue
		}
		visited[cur.pos] = true
		cur.cache = nil

		for _, consumer := range cur.refsIn {
			if !visited[consumer.pos] {
				stack = append(stack, consumer)
			}
		}
	}
}
