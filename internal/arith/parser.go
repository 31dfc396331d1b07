package arith

import "fmt"

// Binding powers of the operators, from loosest to tightest. The gaps
// between the binary levels leave room for new operators without
// renumbering the existing ones.
const (
	precedenceNone     = -1
	precedenceAdditive = 1
	precedenceMultiply = 7
	precedenceDivide   = 8
	precedenceModulo   = 9
	precedenceUnary    = 10
)

// precedenceOf returns the binding power of a token when it appears in infix
// position. Token types that can never continue an expression get a power
// below every operator, so a climbing loop always stops on them.
func precedenceOf(typ TokenType) int {
	switch typ {
	case MODULO:
		return precedenceModulo
	case DIVIDE:
		return precedenceDivide
	case MULTIPLY:
		return precedenceMultiply
	case PLUS, MINUS:
		return precedenceAdditive
	}
	return precedenceNone
}

// Parser builds an expression tree from the tokens produced by a lexer,
// using precedence climbing. The parser is the sole consumer of the lexer it
// holds and keeps a single token of lookahead.
type Parser struct {
	lexer   *Lexer
	current Token
	next    Token
}

// NewParser creates a new parser that reads tokens from the given lexer.
func NewParser(lexer *Lexer) *Parser {
	parser := new(Parser)
	parser.lexer = lexer
	return parser
}

// Parse consumes the token stream and returns the tree of the single
// expression it contains. Input left over after that expression ends is
// reported as an error, there are no partial results.
func (parser *Parser) Parse() (Expr, error) {
	// Two advances fill the current token and the lookahead.
	if err := parser.advance(); err != nil {
		return nil, err
	}
	if err := parser.advance(); err != nil {
		return nil, err
	}
	expr, err := parser.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if parser.next.Typ != EOF {
		return nil, NewUnexpectedTokenError(parser.next, "Expect end of expression.")
	}
	return expr, nil
}

// parseExpression parses an expression whose operators all bind tighter than
// minPrecedence, leaving the current token on the last token it consumed.
// The comparison against the lookahead's power is strict, so chains of
// operators at the same level group to the left.
func (parser *Parser) parseExpression(minPrecedence int) (Expr, error) {
	expr, err := parser.parsePrimary()
	if err != nil {
		return nil, err
	}
	for precedenceOf(parser.next.Typ) > minPrecedence {
		if err := parser.advance(); err != nil {
			return nil, err
		}
		switch op := parser.current; op.Typ {
		case PLUS, MINUS, MODULO, DIVIDE, MULTIPLY:
			if err := parser.advance(); err != nil {
				return nil, err
			}
			right, err := parser.parseExpression(precedenceOf(op.Typ))
			if err != nil {
				return nil, err
			}
			expr = NewInfixExpr(op, expr, right)
		default:
			return nil, NewUnexpectedTokenError(parser.current, "Expect operator.")
		}
	}
	return expr, nil
}

// parsePrimary parses the operand an infix operator applies to: a number, a
// unary operator applied to another operand, or a parenthesized
// sub-expression. Parentheses reset the precedence context, the grouped
// expression is parsed from the lowest level regardless of the operators
// around it.
func (parser *Parser) parsePrimary() (Expr, error) {
	switch op := parser.current; op.Typ {
	case NUMBER:
		return NewNumberExpr(op), nil
	case PLUS, MINUS:
		if err := parser.advance(); err != nil {
			return nil, err
		}
		operand, err := parser.parseExpression(precedenceUnary)
		if err != nil {
			return nil, err
		}
		return NewPrefixExpr(op, operand), nil
	case MODULO, DIVIDE, MULTIPLY:
		return nil, NewUnexpectedTokenError(
			op,
			fmt.Sprintf("Unary '%s' expressions are not supported.", op.Lexeme),
		)
	case L_PAREN:
		if err := parser.advance(); err != nil {
			return nil, err
		}
		expr, err := parser.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if parser.next.Typ != R_PAREN {
			return nil, NewUnmatchedParenthesisError(parser.next)
		}
		if err := parser.advance(); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, NewUnexpectedTokenError(op, "Expect expression.")
	}
}

// advance shifts the lookahead into the current token and pulls a new token
// from the lexer. Past the end of the input both tokens settle to EOF, only
// a lexing failure stops the stream.
func (parser *Parser) advance() error {
	token, err := parser.lexer.NextToken()
	if err != nil {
		return err
	}
	parser.current = parser.next
	parser.next = token
	return nil
}
