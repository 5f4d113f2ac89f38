package dial

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/curtisnewbie/timedial/util/utillog"
	"github.com/spf13/cast"
)

// Shift the moment by amount units.
//
// Year and month arithmetic never rolls over into the following month, the result is clamped
// to the last day of the target month instead, e.g., Jan 31 + 1 month is Feb 28 (or 29).
// Other units carry and borrow normally.
func (m Moment) Add(amount int, unit string) (Moment, error) {
	u, err := ResolveUnit(unit)
	if err != nil {
		return Moment{}, err
	}
	loc := m.t.Location()
	tp := tupleOf(m.t)
	day := tp[FieldDay]
	tp[u.Field] += amount * u.Multiplier
	nt := tp.time(loc)

	if u.monthScale() && day > 28 && nt.Day() != day {
		ct := tupleOf(nt)
		ct[FieldMonth] -= 1
		ct[FieldDay] = DaysInMonth(ct[FieldYear], time.Month(ct[FieldMonth]))
		clamped := ct.time(loc)
		utillog.Debugf("%v %+d %v rolled over to %v, clamped to %v", m, amount, unit, wrap(nt), wrap(clamped))
		nt = clamped
	}
	return wrap(nt), nil
}

// Same as Add(-amount, unit).
func (m Moment) Subtract(amount int, unit string) (Moment, error) {
	return m.Add(-amount, unit)
}

// Overwrite fields of base (or m when base is absent), values are keyed by unit token.
//
// Week can't be set, a "week" key yields an error that matches ErrCannotSetWeek. Out of range
// values are normalized without any month clamping, e.g., {"day": 31} in February rolls into
// March.
func (m Moment) Set(values map[string]int, base ...Moment) (Moment, error) {
	src := m
	if len(base) > 0 {
		src = base[0]
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	tp := tupleOf(src.t)
	for _, k := range keys {
		u, err := ResolveUnit(k)
		if err != nil {
			return Moment{}, err
		}
		if u.IsWeek() {
			return Moment{}, ErrCannotSetWeek.WithInternalMsg("key: %q", k)
		}
		tp[u.Field] = values[k]
	}
	return wrap(tp.time(src.t.Location())), nil
}

// Same as Set, but values are converted to int first, e.g., "3", "08", 3.0 or int64(3).
//
// Strings are always read as decimal.
func (m Moment) SetAny(values map[string]any, base ...Moment) (Moment, error) {
	iv := make(map[string]int, len(values))
	for k, v := range values {
		var n int
		var err error
		if s, ok := v.(string); ok {
			n, err = strconv.Atoi(strings.TrimSpace(s))
		} else {
			n, err = cast.ToIntE(v)
		}
		if err != nil {
			return Moment{}, ErrInvalidInput.Wrapf(err, "key: %q, value: %#v", k, v)
		}
		iv[k] = n
	}
	return m.Set(iv, base...)
}

// Earliest instant of the unit that contains ref (or m when ref is absent).
//
// Week starts on Sunday.
func (m Moment) StartOf(unit string, ref ...Moment) (Moment, error) {
	return m.snap(unit, false, ref)
}

// Latest instant (at millisecond precision) of the unit that contains ref (or m when ref is
// absent).
//
// Week ends on Saturday.
func (m Moment) EndOf(unit string, ref ...Moment) (Moment, error) {
	return m.snap(unit, true, ref)
}

type snapCtx struct {
	unit    Unit
	weekday int
}

// Reset applied when snapping to a level, each level resets the next finer field.
type snapLevel struct {
	field Field
	start func(tp *Tuple, c snapCtx)
	end   func(tp *Tuple, c snapCtx)
}

// Ordered from the most significant level, snapping to a level applies it and every finer one.
var snapLevels = []snapLevel{
	{
		field: FieldYear,
		start: func(tp *Tuple, c snapCtx) { tp[FieldMonth] = int(time.January) },
		end:   func(tp *Tuple, c snapCtx) { tp[FieldMonth] = int(time.December) },
	},
	{
		field: FieldMonth,
		start: func(tp *Tuple, c snapCtx) { tp[FieldDay] = 1 },
		end: func(tp *Tuple, c snapCtx) {
			tp[FieldDay] = DaysInMonth(tp[FieldYear], time.Month(tp[FieldMonth]))
		},
	},
	{
		field: FieldDay,
		start: func(tp *Tuple, c snapCtx) {
			if c.unit.IsWeek() {
				tp[FieldDay] -= c.weekday
			}
			tp[FieldHour] = 0
		},
		end: func(tp *Tuple, c snapCtx) {
			if c.unit.IsWeek() {
				tp[FieldDay] += 6 - c.weekday
			}
			tp[FieldHour] = 23
		},
	},
	{
		field: FieldHour,
		start: func(tp *Tuple, c snapCtx) { tp[FieldMinute] = 0 },
		end:   func(tp *Tuple, c snapCtx) { tp[FieldMinute] = 59 },
	},
	{
		field: FieldMinute,
		start: func(tp *Tuple, c snapCtx) { tp[FieldSecond] = 0 },
		end:   func(tp *Tuple, c snapCtx) { tp[FieldSecond] = 59 },
	},
	{
		field: FieldSecond,
		start: func(tp *Tuple, c snapCtx) { tp[FieldMillisecond] = 0 },
		end:   func(tp *Tuple, c snapCtx) { tp[FieldMillisecond] = 999 },
	},
}

func (m Moment) snap(unit string, end bool, ref []Moment) (Moment, error) {
	u, err := ResolveUnit(unit)
	if err != nil {
		return Moment{}, err
	}
	src := m
	if len(ref) > 0 {
		src = ref[0]
	}

	c := snapCtx{unit: u, weekday: int(src.t.Weekday())}
	tp := tupleOf(src.t)
	for _, lv := range snapLevels {
		if lv.field < u.Field {
			continue
		}
		if end {
			lv.end(&tp, c)
		} else {
			lv.start(&tp, c)
		}
	}
	return wrap(tp.time(src.t.Location())), nil
}
