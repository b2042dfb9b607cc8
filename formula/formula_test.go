package formula

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lhalvorsen/gridsheet/position"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected node
		wantErr  bool
	}{
		{name: "literal", input: "1", expected: numberNode{value: 1}},
		{
			name:     "addition",
			input:    "1+1",
			expected: binaryNode{op: '+', x: numberNode{value: 1}, y: numberNode{value: 1}},
		},
		{
			name:     "ignores whitespace",
			input:    "  12 + 14",
			expected: binaryNode{op: '+', x: numberNode{value: 12}, y: numberNode{value: 14}},
		},
		{
			name:     "cell reference",
			input:    "A1*13",
			expected: binaryNode{op: '*', x: ref(0, 0), y: numberNode{value: 13}},
		},
		{
			name:  "mul before add",
			input: "A1*B2+C3*D4",
			expected: binaryNode{
				op: '+',
				x:  binaryNode{op: '*', x: ref(0, 0), y: ref(1, 1)},
				y:  binaryNode{op: '*', x: ref(2, 2), y: ref(3, 3)},
			},
		},
		{
			name:     "unary minus folds into literal",
			input:    "-123",
			expected: numberNode{value: -123},
		},
		{
			name:     "division is left-associative",
			input:    "A1/B2/C3",
			expected: binaryNode{op: '/', x: binaryNode{op: '/', x: ref(0, 0), y: ref(1, 1)}, y: ref(2, 2)},
		},
		{
			name:    "trailing operator",
			input:   "A1*",
			wantErr: true,
		},
		{
			name:    "empty expression",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unbalanced parens",
			input:   "(1+1",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ast.root)
		})
	}
}

func Test_AST_Cells(t *testing.T) {
	ast, err := Parse("B2+A1*A1+C3")
	assert.NoError(t, err)
	assert.Equal(t, []position.Position{
		{Row: 0, Col: 0},
		{Row: 1, Col: 1},
		{Row: 2, Col: 2},
	}, ast.Cells())
}

func Test_AST_Execute(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		resolver Resolver
		expected float64
		wantErr  ErrorKind
	}{
		{name: "literal arithmetic", input: "1+2*3", expected: 7},
		{
			name:     "resolves references",
			input:    "A1+A2",
			resolver: constResolver(map[string]float64{"A1": 3, "A2": 4}),
			expected: 7,
		},
		{
			name:     "division by zero",
			input:    "1/0",
			resolver: constResolver(nil),
			wantErr:  Div0,
		},
		{
			name:     "propagates resolver error",
			input:    "A1+1",
			resolver: func(position.Position) (float64, error) { return 0, &EvalError{Kind: Ref} },
			wantErr:  Ref,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast, err := Parse(tt.input)
			assert.NoError(t, err)
			resolver := tt.resolver
			if resolver == nil {
				resolver = constResolver(nil)
			}
			got, err := ast.Execute(resolver)
			if tt.wantErr != 0 {
				assert.Error(t, err)
				ee, ok := err.(*EvalError)
				assert.True(t, ok)
				assert.Equal(t, tt.wantErr, ee.Kind)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func Test_AST_Print(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "preserves left-assoc without parens", input: "1+2+3", expected: "1+2+3"},
		{name: "adds parens for right operand of subtraction", input: "1-(2-3)", expected: "1-(2-3)"},
		{name: "drops redundant parens", input: "(1+2)+3", expected: "1+2+3"},
		{name: "keeps parens precedence requires", input: "(1+2)*3", expected: "(1+2)*3"},
		{name: "cell reference", input: "A1+1", expected: "A1+1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast, err := Parse(tt.input)
			assert.NoError(t, err)
			var out strings.Builder
			ast.Print(&out)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func ref(row, col int) node {
	return refNode{pos: position.Position{Row: row, Col: col}}
}

func constResolver(vals map[string]float64) Resolver {
	return func(p position.Position) (float64, error) {
		return vals[p.String()], nil
	}
}
