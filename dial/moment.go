package dial

import (
	"reflect"
	"time"

	"github.com/spf13/cast"
)

const (
	unixSecPersudoMax = 9999999999 // 2286-11-21, should be enough :D
)

// Immutable wrapper of a point in time, truncated to millisecond precision.
//
// Every operation returns a new Moment, the receiver is never changed. Calendar fields are
// read in the location the wrapped time.Time carries.
//
// To cast from time.Time to Moment, use [FromInstant]. To cast from Moment to time.Time, use
// [Moment.Unwrap].
type Moment struct {
	t time.Time
}

// Value that can be converted to time.Time, e.g., atom.Time of miso.
type Convertible interface {
	ToTime() time.Time
}

// Value that wraps a time.Time and exposes it directly.
type Unwrapper interface {
	Unwrap() time.Time
}

func wrap(t time.Time) Moment {
	return Moment{t.Truncate(time.Millisecond)}
}

// Current time in the configured location.
func Now() Moment {
	return wrap(time.Now().In(loadSettings().Location))
}

func FromInstant(t time.Time) Moment {
	return wrap(t)
}

func FromUnixMilli(ms int64) Moment {
	return wrap(time.UnixMilli(ms).In(loadSettings().Location))
}

// Nil c, including a nil pointer held in c, yields an error that matches ErrInvalidInput.
func FromConvertible(c Convertible) (Moment, error) {
	if isNil(c) {
		return Moment{}, ErrInvalidInput.WithInternalMsg("nil Convertible: %T", c)
	}
	return wrap(c.ToTime()), nil
}

// Parse text with the generic parser.
//
// Epoch values (milliseconds, or seconds when not larger than 9999999999) and every layout in
// Settings.ParseLayouts are tried in the configured location.
func FromText(s string) (Moment, error) {
	st := loadSettings()
	t, err := parseText(s, st.ParseLayouts, st.Location)
	if err != nil {
		return Moment{}, ErrInvalidInput.Wrapf(err, "text: %q", s)
	}
	return wrap(t), nil
}

// Parse text with the configured Formatter and pattern.
//
// Empty pattern is the same as calling FromText.
func FromTextPattern(s string, pattern string) (Moment, error) {
	if pattern == "" {
		return FromText(s)
	}
	st := loadSettings()
	t, err := st.Formatter.Parse(s, pattern, st.Location)
	if err != nil {
		return Moment{}, ErrInvalidInput.Wrapf(err, "text: %q, pattern: %q", s, pattern)
	}
	return wrap(t), nil
}

// Create Moment from one of the supported values:
//
//   - nil: current time
//   - Moment, *Moment
//   - time.Time, *time.Time
//   - Convertible (ToTime() time.Time)
//   - Unwrapper (Unwrap() time.Time)
//   - string, *string, []byte: parsed with FromText
//   - integers: epoch milliseconds, or seconds when not larger than 9999999999
//
// Nil pointers and any other value yield an error that matches ErrInvalidInput.
func Of(v any) (Moment, error) {
	switch tv := v.(type) {
	case nil:
		return Now(), nil
	case Moment:
		return tv, nil
	case *Moment:
		if tv != nil {
			return *tv, nil
		}
	case time.Time:
		return wrap(tv), nil
	case *time.Time:
		if tv != nil {
			return wrap(*tv), nil
		}
	case Convertible:
		return FromConvertible(tv)
	case Unwrapper:
		if !isNil(tv) {
			return wrap(tv.Unwrap()), nil
		}
	case string:
		return FromText(tv)
	case *string:
		if tv != nil {
			return FromText(*tv)
		}
	case []byte:
		return FromText(string(tv))
	case int, int32, int64, uint, uint32, uint64:
		return fromEpoch(cast.ToInt64(tv)), nil
	}
	return Moment{}, ErrInvalidInput.WithInternalMsg("value: %#v (%T)", v, v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func fromEpoch(val int64) Moment {
	loc := loadSettings().Location
	if val > unixSecPersudoMax {
		return FromUnixMilli(val)
	}
	return wrap(time.Unix(val, 0).In(loc)) // in sec
}

func (m Moment) Unwrap() time.Time {
	return m.t
}

// Same as [Moment.Unwrap].
func (m Moment) ToNative() time.Time {
	return m.t
}

func (m Moment) IsZero() bool {
	return m.t.IsZero()
}

// Same instant with fields read in loc.
func (m Moment) In(loc *time.Location) Moment {
	return Moment{m.t.In(loc)}
}

func (m Moment) UTC() Moment {
	return Moment{m.t.UTC()}
}

func (m Moment) Location() *time.Location {
	return m.t.Location()
}

func (m Moment) Year() int {
	return m.t.Year()
}

func (m Moment) Month() time.Month {
	return m.t.Month()
}

// Day of month.
func (m Moment) Day() int {
	return m.t.Day()
}

func (m Moment) Weekday() time.Weekday {
	return m.t.Weekday()
}

func (m Moment) Hour() int {
	return m.t.Hour()
}

func (m Moment) Minute() int {
	return m.t.Minute()
}

func (m Moment) Second() int {
	return m.t.Second()
}

func (m Moment) Millisecond() int {
	return m.t.Nanosecond() / int(time.Millisecond)
}

func (m Moment) UTCYear() int {
	return m.t.UTC().Year()
}

func (m Moment) UTCMonth() time.Month {
	return m.t.UTC().Month()
}

func (m Moment) UTCDay() int {
	return m.t.UTC().Day()
}

func (m Moment) UTCWeekday() time.Weekday {
	return m.t.UTC().Weekday()
}

func (m Moment) UTCHour() int {
	return m.t.UTC().Hour()
}

func (m Moment) UTCMinute() int {
	return m.t.UTC().Minute()
}

func (m Moment) UTCSecond() int {
	return m.t.UTC().Second()
}

func (m Moment) UTCMillisecond() int {
	return m.t.UTC().Nanosecond() / int(time.Millisecond)
}

// Difference between UTC and the wall clock in minutes, positive west of Greenwich.
func (m Moment) TimezoneOffset() int {
	_, offset := m.t.Zone()
	return -offset / 60
}

// Milliseconds since unix epoch.
func (m Moment) UnixMilli() int64 {
	return m.t.UnixMilli()
}

// Same as [Moment.UnixMilli].
func (m Moment) RawInstant() int64 {
	return m.t.UnixMilli()
}

// Value of a single calendar field, month is 1-based.
func (m Moment) Field(f Field) int {
	if f < FieldYear || f > FieldMillisecond {
		return 0
	}
	return tupleOf(m.t)[f]
}

func (m Moment) Fields() Tuple {
	return tupleOf(m.t)
}

// Number of days in the moment's month.
func (m Moment) DaysInMonth() int {
	return DaysInMonth(m.t.Year(), m.t.Month())
}

func (m Moment) String() string {
	return m.t.Format(stringFormat)
}

func (m Moment) GoString() string {
	return m.String()
}
