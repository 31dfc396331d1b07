package arith

import "strconv"

// Expr is implemented by every node of an expression tree. The set of
// implementations is closed, operations on a tree switch exhaustively over
// the concrete node types.
type Expr interface {
	expr()
}

// NumberExpr is a leaf node holding a single number literal.
type NumberExpr struct {
	Token Token
	Value float64
}

// NewNumberExpr creates a new leaf node from a NUMBER token.
func NewNumberExpr(token Token) *NumberExpr {
	// NOTE: we're ignoring the error, since the lexer has already verified
	// that the lexeme contains a valid 64-bit floating point.
	value, _ := strconv.ParseFloat(token.Lexeme, 64)
	return &NumberExpr{token, value}
}

// PrefixExpr is a unary operator applied to the expression that follows it.
type PrefixExpr struct {
	Op      Token
	Operand Expr
}

// NewPrefixExpr creates a new node applying an operator to an already parsed
// operand.
func NewPrefixExpr(op Token, operand Expr) *PrefixExpr {
	return &PrefixExpr{op, operand}
}

// InfixExpr is a binary operator applied to the expressions on its two sides.
type InfixExpr struct {
	Op    Token
	Left  Expr
	Right Expr
}

// NewInfixExpr creates a new node applying an operator to two already parsed
// sub-expressions.
func NewInfixExpr(op Token, left Expr, right Expr) *InfixExpr {
	return &InfixExpr{op, left, right}
}

func (expr *NumberExpr) expr() {}
func (expr *PrefixExpr) expr() {}
func (expr *InfixExpr) expr()  {}
