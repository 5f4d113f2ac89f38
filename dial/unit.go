package dial

// Index of a calendar field in a Tuple.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldMillisecond
)

func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	case FieldMillisecond:
		return "millisecond"
	}
	return "unknown"
}

// Resolved unit token, the field it moves and how many of that field make up one unit.
type Unit struct {
	Field      Field
	Multiplier int
}

var (
	UnitYear        = Unit{FieldYear, 1}
	UnitMonth       = Unit{FieldMonth, 1}
	UnitWeek        = Unit{FieldDay, 7}
	UnitDay         = Unit{FieldDay, 1}
	UnitHour        = Unit{FieldHour, 1}
	UnitMinute      = Unit{FieldMinute, 1}
	UnitSecond      = Unit{FieldSecond, 1}
	UnitMillisecond = Unit{FieldMillisecond, 1}
)

// Resolve unit token.
//
// Tokens are case-sensitive, 'm' is month while 'M' is minute:
//
//	y, year, years                  -> UnitYear
//	m, month, months                -> UnitMonth
//	w, week, weeks                  -> UnitWeek
//	d, day, days                    -> UnitDay
//	H, hour, hours                  -> UnitHour
//	M, minute, minutes              -> UnitMinute
//	S, second, seconds              -> UnitSecond
//	MS, millisecond, milliseconds   -> UnitMillisecond
//
// Unknown token yields an error that matches ErrInvalidUnit.
func ResolveUnit(token string) (Unit, error) {
	switch token {
	case "y", "year", "years":
		return UnitYear, nil
	case "m", "month", "months":
		return UnitMonth, nil
	case "w", "week", "weeks":
		return UnitWeek, nil
	case "d", "day", "days":
		return UnitDay, nil
	case "H", "hour", "hours":
		return UnitHour, nil
	case "M", "minute", "minutes":
		return UnitMinute, nil
	case "S", "second", "seconds":
		return UnitSecond, nil
	case "MS", "millisecond", "milliseconds":
		return UnitMillisecond, nil
	}
	return Unit{}, ErrInvalidUnit.WithInternalMsg("unit: %q", token)
}

func (u Unit) IsWeek() bool {
	return u.Multiplier == 7
}

// Year or month, arithmetic on these may roll over into the following month.
func (u Unit) monthScale() bool {
	return u.Field <= FieldMonth
}
