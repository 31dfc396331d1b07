package arith

import "fmt"

// Print renders an expression tree as a fully parenthesized string. Number
// literals keep their source text, and the grouping of every operation is
// spelled out, so parsing the printed form again builds a tree that prints
// to the exact same string.
func Print(expr Expr) string {
	switch expr := expr.(type) {
	case *NumberExpr:
		return expr.Token.Lexeme
	case *PrefixExpr:
		return fmt.Sprintf("(%s%s)", expr.Op.Lexeme, Print(expr.Operand))
	case *InfixExpr:
		return fmt.Sprintf(
			"(%s %s %s)",
			Print(expr.Left),
			expr.Op.Lexeme,
			Print(expr.Right),
		)
	}
	panic(fmt.Sprintf("unknown expression type %T", expr))
}
