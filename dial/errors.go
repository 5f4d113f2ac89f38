package dial

import "github.com/curtisnewbie/timedial/util/errs"

const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidUnit   = "INVALID_UNIT"
	ErrCodeCannotSetWeek = "CANNOT_SET_WEEK"
)

var (
	// Value passed to a constructor is not a recognized moment, date-like value or text.
	ErrInvalidInput = errs.NewErrfCode(ErrCodeInvalidInput, "unrecognized date value")

	// Unit token does not match any entry of the unit table.
	ErrInvalidUnit = errs.NewErrfCode(ErrCodeInvalidUnit, "invalid unit")

	// Week has no single field that can be overwritten.
	ErrCannotSetWeek = errs.NewErrfCode(ErrCodeCannotSetWeek, "cannot set a week")
)

// Panics if err is not nil, otherwise m is returned.
func Must(m Moment, err error) Moment {
	if err != nil {
		panic(err)
	}
	return m
}
