package filterdsl

import (
	"fmt"
	"regexp"
	"strings"
)

// columnRe constrains field names to plain SQL identifiers. Field names are
// interpolated into the clause text, so anything else is rejected.
var columnRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// sqlOps maps filter operators to their SQL spelling.
var sqlOps = map[string]string{
	"=":  "=",
	"!=": "<>",
	">":  ">",
	">=": ">=",
	"<":  "<",
	"<=": "<=",
}

// SQL compiles the expression into a parameterized condition string and its
// argument list, suitable for appending after WHERE. Values are always bound
// as placeholders, never interpolated.
func (e *Expr) SQL() (string, []any, error) {
	var clauses []string
	var args []any

	for _, c := range e.Conds {
		if !columnRe.MatchString(c.Field) {
			return "", nil, &InvalidFieldError{Field: c.Field}
		}

		arg := c.Value.arg()
		if c.Op == "contains" {
			s, ok := arg.(string)
			if !ok {
				return "", nil, &ParseError{
					Input:   c.Field,
					Message: "contains requires a string operand",
				}
			}
			clauses = append(clauses, fmt.Sprintf(`%s LIKE ? ESCAPE '\'`, c.Field))
			args = append(args, "%"+escapeLike(s)+"%")
			continue
		}

		op, ok := sqlOps[c.Op]
		if !ok {
			return "", nil, &ParseError{Input: c.Op, Message: "unsupported operator"}
		}
		clauses = append(clauses, fmt.Sprintf("%s %s ?", c.Field, op))
		args = append(args, arg)
	}

	return strings.Join(clauses, " AND "), args, nil
}

// Where is a convenience that parses input and compiles it in one call.
func Where(input string) (string, []any, error) {
	expr, err := Parse(input)
	if err != nil {
		return "", nil, err
	}
	return expr.SQL()
}

// arg returns the Go value of the parsed literal.
func (v *Value) arg() any {
	switch {
	case v.Str != nil:
		return unquote(*v.Str)
	case v.Num != nil:
		return *v.Num
	case v.True:
		return true
	case v.False:
		return false
	case v.Word != nil:
		return *v.Word
	}
	return nil
}

// escapeLike escapes the LIKE wildcards in a contains operand.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
