// Package gridsheet implements a single-sheet, in-memory spreadsheet
// evaluation engine: a sparse grid of cells holding text or formulas,
// evaluated lazily and memoized until an upstream edit invalidates the
// cache. Formulas are parsed by the formula package; grid coordinates and
// A1-notation conversion live in the position package.
package gridsheet
