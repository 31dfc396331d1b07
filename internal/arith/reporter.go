package arith

import (
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to
// the user. A reporter is defined to separate errors reporting code from
// errors displaying code, the lexer and parser only return errors and
// whoever drives them decides how those are shown.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

// Reset clears the error flag so that one reporter can serve many inputs.
func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}
