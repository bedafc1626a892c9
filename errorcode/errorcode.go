package errorcode

import (
	"context"
	"errors"

	"github.com/akalin/gfnum/gf"
)

type Errorcode int

const (
	Success                     Errorcode = 0
	InvalidCommandLineArguments Errorcode = 1
	InvalidInput                Errorcode = 2
	InvalidField                Errorcode = 3
	FieldMismatch               Errorcode = 4
	DivisionByZero              Errorcode = 5
	Canceled                    Errorcode = 6
	LogicError                  Errorcode = 7
)

// FromError maps an error returned by gf or factor to an exit code.
func FromError(err error) Errorcode {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, gf.ErrInvalidField), errors.Is(err, gf.ErrOrderOverflow):
		return InvalidField
	case errors.Is(err, gf.ErrFieldMismatch):
		return FieldMismatch
	case errors.Is(err, gf.ErrDivisionByZero), errors.Is(err, gf.ErrGCDUndefined):
		return DivisionByZero
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Canceled
	}
	return LogicError
}
