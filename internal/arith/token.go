package arith

import "fmt"

// Token groups a run of characters that was matched as a single unit during
// the scanning phase.
type Token struct {
	Typ    TokenType
	Lexeme string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Typ.String(), t.Lexeme)
}

const (
	// EOF is emitted once the input is exhausted. Every read past the end of
	// the input returns another EOF token.
	EOF TokenType = iota

	// Operators
	PLUS
	MINUS
	MODULO
	DIVIDE
	MULTIPLY

	// Grouping
	L_PAREN
	R_PAREN

	// Literals
	NUMBER
)

// TokenType identifies the group of lexemes that a token belongs to.
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case MODULO:
		return "%"
	case DIVIDE:
		return "/"
	case MULTIPLY:
		return "*"
	case L_PAREN:
		return "("
	case R_PAREN:
		return ")"
	case NUMBER:
		return "NUMBER"
	}
	return ""
}
