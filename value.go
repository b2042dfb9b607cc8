package gridsheet

import (
	"strconv"

	"github.com/lhalvorsen/gridsheet/formula"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// ValueNumber holds a float64 in Number.
	ValueNumber ValueKind = iota
	// ValueText holds a string in Text.
	ValueText
	// ValueError holds a formula.ErrorKind in Err.
	ValueError
)

// Value is the tagged union a cell's evaluation produces: a number, a
// string, or a formula error. It is a plain struct rather than an
// interface, keeping with this package's tagged-struct style for sum
// types instead of a class hierarchy.
type Value struct {
	Kind   ValueKind
	Number float64
	Text   string
	Err    formula.ErrorKind
}

// NumberValue constructs a numeric Value.
func NumberValue(n float64) Value { return Value{Kind: ValueNumber, Number: n} }

// TextValue constructs a string Value.
func TextValue(s string) Value { return Value{Kind: ValueText, Text: s} }

// ErrorValue constructs an error Value of the given kind.
func ErrorValue(k formula.ErrorKind) Value { return Value{Kind: ValueError, Err: k} }

// String renders v the way PrintValues does: numbers with default numeric
// formatting, text verbatim, errors as their short Excel-style tag.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case ValueText:
		return v.Text
	case ValueError:
		return v.Err.Tag()
	default:
		return ""
	}
}
