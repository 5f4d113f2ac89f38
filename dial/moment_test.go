package dial

import (
	"testing"
	"time"

	"github.com/curtisnewbie/timedial/util/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type convertibleTime struct {
	t time.Time
}

func (c convertibleTime) ToTime() time.Time {
	return c.t
}

type unwrappableTime struct {
	t time.Time
}

func (u unwrappableTime) Unwrap() time.Time {
	return u.t
}

func useUTC(t *testing.T) {
	SetLocation(time.UTC)
	t.Cleanup(ResetSettings)
}

func TestFromInstantTruncates(t *testing.T) {
	m := FromInstant(time.Date(2024, 1, 31, 10, 20, 30, 456_789_123, time.UTC))
	testutil.TestEqual(t, 456, m.Millisecond())
	testutil.TestEqual(t, 456_000_000, m.Unwrap().Nanosecond())
	testutil.TestEqual(t, int64(1706696430456), m.UnixMilli())
	testutil.TestEqual(t, m.UnixMilli(), m.RawInstant())
}

func TestFromUnixMilli(t *testing.T) {
	useUTC(t)
	m := FromUnixMilli(-86_400_000)
	requireMoment(t, at(1969, 12, 31, 0, 0, 0, 0), m)
	testutil.TestEqual(t, time.UTC, m.Location())

	loc := time.FixedZone("UTC+8", 8*60*60)
	SetLocation(loc)
	m = FromUnixMilli(1706659200000)
	testutil.TestEqual(t, loc, m.Location())
	testutil.TestEqual(t, 8, m.Hour())
}

func TestOf(t *testing.T) {
	useUTC(t)
	tt := time.Date(2024, 1, 31, 10, 20, 30, 456_000_000, time.UTC)
	expected := FromInstant(tt)

	before := time.Now().Add(-time.Second)
	now, err := Of(nil)
	require.NoError(t, err)
	testutil.TestTrue(t, now.Unwrap().After(before))

	values := []any{
		tt,
		&tt,
		expected,
		&expected,
		convertibleTime{tt},
		unwrappableTime{tt},
		"2024-01-31T10:20:30.456Z",
		"2024-01-31 10:20:30.456",
		[]byte("2024-01-31T10:20:30.456"),
		int64(1706696430456),
		"1706696430456",
	}
	for _, v := range values {
		m, err := Of(v)
		require.NoError(t, err, "%#v", v)
		require.Truef(t, expected.Eq(m), "%T: %v", v, m)
	}

	secs, err := Of(1706696430)
	require.NoError(t, err)
	testutil.TestEqual(t, int64(1706696430000), secs.UnixMilli())

	s := "2024-01-31"
	day, err := Of(&s)
	require.NoError(t, err)
	requireMoment(t, at(2024, 1, 31, 0, 0, 0, 0), day)
}

func TestOfInvalidInput(t *testing.T) {
	var nilMoment *Moment
	var nilTime *time.Time
	var nilStr *string
	var nilConv *convertibleTime
	var nilUnwrap *unwrappableTime
	for _, v := range []any{struct{}{}, 1.5, true, nilMoment, nilTime, nilStr, nilConv, nilUnwrap, "not a date", ""} {
		_, err := Of(v)
		require.ErrorIs(t, err, ErrInvalidInput, "%#v", v)
		t.Logf("%v", err)
	}

	_, err := FromConvertible(nil)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = FromConvertible(nilConv)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = FromTextPattern("31/01/2024", "2006-01-02")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(FromText("2024-01-31")) })
	assert.Panics(t, func() { Must(FromText("nope")) })
}

func TestFromTextPattern(t *testing.T) {
	useUTC(t)
	m, err := FromTextPattern("31/01/2024 10:20", "02/01/2006 15:04")
	require.NoError(t, err)
	requireMoment(t, at(2024, 1, 31, 10, 20, 0, 0), m)

	m, err = FromTextPattern("2024-01-31", "")
	require.NoError(t, err)
	requireMoment(t, at(2024, 1, 31, 0, 0, 0, 0), m)

	SetFormatter(TokenFormatter{})
	m, err = FromTextPattern("31.01.2024 10:20:30.456", "DD.MM.YYYY HH:mm:ss.SSS")
	require.NoError(t, err)
	requireMoment(t, at(2024, 1, 31, 10, 20, 30, 456), m)
}

func TestAccessors(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	m := FromInstant(time.Date(2024, 1, 1, 7, 20, 30, 456_000_000, loc))

	testutil.TestEqual(t, 2024, m.Year())
	testutil.TestEqual(t, time.January, m.Month())
	testutil.TestEqual(t, 1, m.Day())
	testutil.TestEqual(t, time.Monday, m.Weekday())
	testutil.TestEqual(t, 7, m.Hour())
	testutil.TestEqual(t, 20, m.Minute())
	testutil.TestEqual(t, 30, m.Second())
	testutil.TestEqual(t, 456, m.Millisecond())

	testutil.TestEqual(t, 2023, m.UTCYear())
	testutil.TestEqual(t, time.December, m.UTCMonth())
	testutil.TestEqual(t, 31, m.UTCDay())
	testutil.TestEqual(t, time.Sunday, m.UTCWeekday())
	testutil.TestEqual(t, 23, m.UTCHour())
	testutil.TestEqual(t, 20, m.UTCMinute())
	testutil.TestEqual(t, 30, m.UTCSecond())
	testutil.TestEqual(t, 456, m.UTCMillisecond())

	testutil.TestEqual(t, -480, m.TimezoneOffset())
	testutil.TestEqual(t, 300, FromInstant(time.Date(2024, 1, 1, 0, 0, 0, 0, time.FixedZone("", -5*60*60))).TimezoneOffset())
	testutil.TestEqual(t, 0, m.UTC().TimezoneOffset())

	testutil.TestEqual(t, Tuple{2024, 1, 1, 7, 20, 30, 456}, m.Fields())
	testutil.TestEqual(t, 7, m.Field(FieldHour))
	testutil.TestEqual(t, 0, m.Field(Field(42)))
	testutil.TestTrue(t, m.Eq(m.In(time.UTC)))
	testutil.TestTrue(t, m.ToNative().Equal(m.Unwrap()))
	testutil.TestEqual(t, "2024-01-01 07:20:30.456 (UTC+8)", m.String())
}

func TestArithmeticKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	m := FromInstant(time.Date(2024, 1, 31, 1, 0, 0, 0, loc))

	s, err := m.StartOf("day")
	require.NoError(t, err)
	testutil.TestEqual(t, loc, s.Location())
	testutil.TestEqual(t, 0, s.Hour())
	testutil.TestEqual(t, 31, s.Day())

	n, err := m.Add(1, "month")
	require.NoError(t, err)
	testutil.TestEqual(t, loc, n.Location())
	testutil.TestEqual(t, 29, n.Day())
}

func TestCompare(t *testing.T) {
	a := at(2024, 1, 31, 0, 0, 0, 0)
	b := at(2024, 1, 31, 0, 0, 0, 1)
	ms := []Moment{a, b, a}

	for _, x := range ms {
		for _, y := range ms {
			n := 0
			for _, v := range []bool{x.Lt(y), x.Eq(y), x.Gt(y)} {
				if v {
					n++
				}
			}
			testutil.TestEqual(t, 1, n)
			testutil.TestEqual(t, x.Lt(y) || x.Eq(y), x.Lte(y))
			testutil.TestEqual(t, x.Gt(y) || x.Eq(y), x.Gte(y))
		}
	}

	testutil.TestTrue(t, a.Lt(b))
	testutil.TestTrue(t, b.Gt(a))
	testutil.TestEqual(t, -1, a.Compare(b))
	testutil.TestEqual(t, 1, b.Compare(a))
	testutil.TestEqual(t, 0, a.Compare(a))

	// time.Time is an Instant as well
	testutil.TestTrue(t, a.Eq(a.Unwrap()))
	testutil.TestTrue(t, a.Lte(b.Unwrap()))

	var nilMoment *Moment
	var nilTime *time.Time
	for _, o := range []Instant{nil, nilMoment, nilTime} {
		testutil.TestFalse(t, a.Eq(o))
		testutil.TestFalse(t, a.Gt(o))
		testutil.TestFalse(t, a.Gte(o))
		testutil.TestFalse(t, a.Lt(o))
		testutil.TestFalse(t, a.Lte(o))
		testutil.TestEqual(t, 1, a.Compare(o))
	}
}
