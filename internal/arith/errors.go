package arith

import "fmt"

// InvalidNumberLiteralError wraps a run of characters that was scanned as a
// number literal but could not be parsed as one.
type InvalidNumberLiteralError struct {
	literal string
}

// NewInvalidNumberLiteralError creates a new lexing error
func NewInvalidNumberLiteralError(literal string) error {
	return &InvalidNumberLiteralError{literal}
}

func (err *InvalidNumberLiteralError) Error() string {
	return fmt.Sprintf("Error: Invalid number literal '%s'.", err.literal)
}

// UnexpectedTokenError wraps the error message returned by the parser with
// the token that no grammar rule could accept.
type UnexpectedTokenError struct {
	token   Token
	message string
}

// NewUnexpectedTokenError creates a new parsing error
func NewUnexpectedTokenError(token Token, message string) error {
	return &UnexpectedTokenError{token, message}
}

func (err *UnexpectedTokenError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf("Error at end: %s", err.message)
	}
	return fmt.Sprintf(
		"Error at '%s': %s",
		err.token.Lexeme,
		err.message,
	)
}

// UnmatchedParenthesisError is returned when an opening parenthesis was
// never closed; it carries the token found in place of the ')'.
type UnmatchedParenthesisError struct {
	token Token
}

// NewUnmatchedParenthesisError creates a new parsing error
func NewUnmatchedParenthesisError(token Token) error {
	return &UnmatchedParenthesisError{token}
}

func (err *UnmatchedParenthesisError) Error() string {
	if err.token.Typ == EOF {
		return "Error at end: Expect ')' after expression."
	}
	return fmt.Sprintf(
		"Error at '%s': Expect ')' after expression.",
		err.token.Lexeme,
	)
}
