package gridsheet

import (
	"strings"

	"github.com/lhalvorsen/gridsheet/formula"
	"github.com/lhalvorsen/gridsheet/position"
)

// escapeSign, when leading a Text cell's raw input, marks the rest of the
// string as a literal to display verbatim even if it would otherwise be
// mistaken for something else (e.g. a number). It is stripped in Value but
// preserved in Text.
const escapeSign = '\''

// formulaSign selects the Formula variant when it leads the input and at
// least one character follows; a lone "=" is ordinary text.
const formulaSign = '='

// contentKind tags which of the three CellContent variants is held.
type contentKind int

const (
	contentEmpty contentKind = iota
	contentText
	contentFormula
)

// CellContent is the polymorphic sum type {Empty, Text, Formula} described
// by spec.md §4.1. It is implemented as a tagged struct, not a class
// hierarchy: the Formula variant's only extra state is a parsed *formula.AST,
// so replacing a cell's content is a single struct assignment.
type CellContent struct {
	kind contentKind
	text string      // raw textual form: "", the literal text, or "="+canonical
	ast  *formula.AST // non-nil iff kind == contentFormula
}

// emptyContent is the content every cell starts life with.
var emptyContent = CellContent{kind: contentEmpty}

// newContent classifies raw input into a CellContent, parsing it as a
// formula when it begins with formulaSign and has at least one further
// character. It returns a *formula.ParseError, leaving the caller free to
// discard the candidate without having mutated anything.
func newContent(raw string) (CellContent, error) {
	switch {
	case raw == "":
		return emptyContent, nil

	case raw[0] == formulaSign && len(raw) >= 2:
		ast, err := formula.Parse(raw[1:])
		if err != nil {
			return CellContent{}, err
		}
		var canonical strings.Builder
		ast.Print(&canonical)
		return CellContent{kind: contentFormula, text: string(formulaSign) + canonical.String(), ast: ast}, nil

	default:
		return CellContent{kind: contentText, text: raw}, nil
	}
}

// references returns the positions this content depends on: always empty
// for Empty and Text, the formula's referenced cells (ascending, deduped)
// for Formula.
func (c CellContent) references() []position.Position {
	if c.kind != contentFormula {
		return nil
	}
	return c.ast.Cells()
}

// value computes c's Value, consulting resolver for any cell reference a
// Formula variant contains.
func (c CellContent) value(resolver formula.Resolver) Value {
	switch c.kind {
	case contentEmpty:
		return TextValue("")

	case contentText:
		if len(c.text) > 0 && c.text[0] == escapeSign {
			return TextValue(c.text[1:])
		}
		return TextValue(c.text)

	case contentFormula:
		n, err := c.ast.Execute(resolver)
		if err != nil {
			if ee, ok := err.(*formula.EvalError); ok {
				return ErrorValue(ee.Kind)
			}
			return ErrorValue(formula.Arithmetic)
		}
		return NumberValue(n)

	default:
		return TextValue("")
	}
}
