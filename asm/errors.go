package asm

import (
	"github.com/pkg/errors"
)

// errorf builds a fatal assembler error. The assembler aborts on the
// first one it produces, per spec: there is no multi-error accumulation
// and no partial output.
func errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// lineErrorf is errorf with a source line number prefixed, used wherever
// a line's position is known: in the parser, pass one and pass two.
func lineErrorf(lineNo int, format string, args ...interface{}) error {
	return errors.Wrapf(errorf(format, args...), "line %d", lineNo)
}
