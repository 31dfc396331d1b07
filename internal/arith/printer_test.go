package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintNode(t *testing.T) {
	testCases := []struct {
		expr Expr
		out  string
	}{
		// number literals keep their source text
		{number("7"), "7"},
		{number("007"), "007"},
		{number("4.50"), "4.50"},
		// no space between a prefix operator and its operand
		{prefix(MINUS, number("8")), "(-8)"},
		{prefix(PLUS, number("8")), "(+8)"},
		{prefix(MINUS, prefix(MINUS, number("8"))), "(-(-8))"},
		// spaces around an infix operator
		{infix(PLUS, number("1"), number("2")), "(1 + 2)"},
		{infix(MODULO,
			infix(MULTIPLY, number("1"), number("2")),
			prefix(MINUS, number("3"))),
			"((1 * 2) % (-3))"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.out, Print(tc.expr))
	}
}

func TestPrintParsed(t *testing.T) {
	testCases := []struct {
		src string
		out string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"8 / 4 / 2", "((8 / 4) / 2)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"-2 + 4.5 * 7 - -8", "(((-2) + (4.5 * 7)) - (-8))"},
		{"((7))", "7"},
		{"8/(4/2)", "(8 / (4 / 2))"},
		{"1+2%3*4", "(1 + ((2 % 3) * 4))"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parseSource(tc.src)

		assert.NoError(err)
		assert.Equal(tc.out, Print(expr))
	}
}

func TestPrintRoundTrip(t *testing.T) {
	sources := []string{
		"7",
		"4.5",
		"-2",
		"--8",
		"1 + 2 * 3",
		"1 * 2 + 3",
		"8 / 4 / 2",
		"(1 + 2) * 3",
		"8 / (4 / 2)",
		"-2 + 4.5 * 7 - -8",
		"1 - 2 % 3 * 4 + (5 / 6)",
	}

	assert := assert.New(t)
	for _, src := range sources {
		expr, err := parseSource(src)
		assert.NoError(err)

		// the printed form is fully parenthesized, parsing it again must
		// yield the same printed form
		printed := Print(expr)
		reparsed, err := parseSource(printed)
		assert.NoError(err)
		assert.Equal(printed, Print(reparsed))
	}
}
