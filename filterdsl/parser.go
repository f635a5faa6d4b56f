// Package filterdsl implements a small search-filter language that compiles
// to parameterized SQL conditions.
//
// A filter is a conjunction of comparisons:
//
//	price > 100 and name contains "bolt" and active = true
//
// Supported operators: = != > >= < <= contains. Values are double-quoted
// strings, numbers, booleans, or bare words.
package filterdsl

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// --- Participle grammar structs ---
// These define the filter grammar using struct tags.

// Expr is a conjunction of conditions joined with "and".
type Expr struct {
	Conds []*Cond `parser:"@@ ( 'and' @@ )*"`
}

// Cond is a single comparison: field op value.
type Cond struct {
	Field string `parser:"@Ident"`
	Op    string `parser:"@( Op | 'contains' )"`
	Value *Value `parser:"@@"`
}

// Value is a literal operand: quoted string, number, boolean, or bare word.
// Exactly one branch is set after parsing.
type Value struct {
	Str   *string  `parser:"  @String"`
	Num   *float64 `parser:"| @Number"`
	True  bool     `parser:"| @'true'"`
	False bool     `parser:"| @'false'"`
	Word  *string  `parser:"| @Ident"`
}

var filterLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `-?[0-9]+(?:\.[0-9]+)?`},
	{Name: "Op", Pattern: `!=|>=|<=|[=<>]`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
})

var filterParser = participle.MustBuild[Expr](
	participle.Lexer(filterLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a filter expression. A blank input is an error: the caller
// should omit the WHERE clause entirely rather than pass an empty filter.
func Parse(input string) (*Expr, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &ParseError{Input: input, Message: "empty filter"}
	}
	expr, err := filterParser.ParseString("filter", input)
	if err != nil {
		return nil, &ParseError{Input: input, Message: "parse filter", Cause: err}
	}
	return expr, nil
}

// unquote removes surrounding quotes and resolves escapes in a string literal.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	replacer := strings.NewReplacer(`\"`, `"`, `\\`, `\`)
	return replacer.Replace(s)
}
