package arith

import (
	"strconv"
	"unicode"
)

// Lexer reads an arithmetic expression and produces one token at a time on
// demand.
type Lexer struct {
	start   int
	current int
	source  []rune
}

// NewLexer creates a new lexer that reads from the given source.
func NewLexer(source []rune) *Lexer {
	lexer := new(Lexer)
	lexer.start = 0
	lexer.current = 0
	lexer.source = source
	return lexer
}

// NextToken consumes and returns the next token found in the source.
// Whitespaces are skipped and are never part of a token. Once the source is
// exhausted an EOF token is returned, and every call made past that point
// returns another EOF token, so callers can read beyond the end without
// special-casing.
func (lexer *Lexer) NextToken() (Token, error) {
	lexer.skipWhitespace()
	if !lexer.hasNext() {
		return Token{EOF, ""}, nil
	}
	lexer.start = lexer.current
	switch lexer.advance() {
	case '+':
		return lexer.token(PLUS), nil
	case '-':
		return lexer.token(MINUS), nil
	case '%':
		return lexer.token(MODULO), nil
	case '/':
		return lexer.token(DIVIDE), nil
	case '*':
		return lexer.token(MULTIPLY), nil
	case '(':
		return lexer.token(L_PAREN), nil
	case ')':
		return lexer.token(R_PAREN), nil
	default:
		return lexer.scanNumber()
	}
}

// scanNumber consumes the maximal run of digits and dots that starts at the
// character which triggered the scan. Characters that don't form a token on
// their own also end up here, so a run that can't be parsed as a number
// covers both malformed literals and characters that are not part of the
// language.
func (lexer *Lexer) scanNumber() (Token, error) {
	for isNumeric(lexer.peek()) {
		lexer.advance()
	}
	lexeme := string(lexer.source[lexer.start:lexer.current])
	if _, err := strconv.ParseFloat(lexeme, 64); err != nil {
		return Token{}, NewInvalidNumberLiteralError(lexeme)
	}
	return lexer.token(NUMBER), nil
}

// token builds a token of the given type carrying the lexeme from `start` to
// `current`.
func (lexer *Lexer) token(typ TokenType) Token {
	return Token{typ, string(lexer.source[lexer.start:lexer.current])}
}

func (lexer *Lexer) skipWhitespace() {
	for lexer.hasNext() {
		switch lexer.source[lexer.current] {
		case ' ', '\r', '\t', '\n':
			lexer.current++
		default:
			return
		}
	}
}

// hasNext returns true if the lexer has not read past the source length
func (lexer *Lexer) hasNext() bool {
	return lexer.current < len(lexer.source)
}

// advance consumes and returns the rune at the current position
func (lexer *Lexer) advance() rune {
	r := lexer.source[lexer.current]
	lexer.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (lexer *Lexer) peek() rune {
	if !lexer.hasNext() {
		return '\x00'
	}
	return lexer.source[lexer.current]
}

func isNumeric(r rune) bool {
	return r == '.' || unicode.IsDigit(r)
}
