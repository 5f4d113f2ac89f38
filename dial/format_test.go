package dial

import (
	"testing"
	"time"

	"github.com/curtisnewbie/timedial/util/testutil"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestFormatLayout(t *testing.T) {
	t.Cleanup(ResetSettings)
	m := at(2024, 1, 31, 10, 20, 30, 456)

	testutil.TestEqual(t, "2024-01-31 10:20:30.456", m.Format(""))
	testutil.TestEqual(t, "2024/01/31", m.Format("2006/01/02"))

	SetDefaultPattern(SQLDateFormat)
	testutil.TestEqual(t, "2024-01-31", m.Format(""))
	SetDefaultPattern("")
	testutil.TestEqual(t, "2024-01-31 10:20:30.456", m.Format(""))
}

func TestFormatToken(t *testing.T) {
	t.Cleanup(ResetSettings)
	SetFormatter(TokenFormatter{})

	m := at(2024, 1, 7, 15, 4, 5, 60)
	cases := map[string]string{
		"YYYY-MM-DD HH:mm:ss.SSS": "2024-01-07 15:04:05.060",
		"YY/M/D H:m:s":            "24/1/7 15:4:5",
		"dddd, MMMM D, YYYY":      "Sunday, January 7, 2024",
		"ddd MMM DD d":            "Sun Jan 07 0",
		"hh:mm A / h:mm a":        "03:04 PM / 3:04 pm",
		"ss.SS ss.S":              "05.06 05.0",
		"[Today is] dddd":         "Today is Sunday",
		"ZZ Z":                    "+00:00 +0000",
		"[YYYY] YYYY":             "YYYY 2024",
		"YYYY年MM月DD日":             "2024年01月07日",
	}
	for pattern, expected := range cases {
		testutil.TestEqual(t, expected, m.Format(pattern))
	}

	midnight := at(2024, 1, 7, 0, 0, 0, 0)
	testutil.TestEqual(t, "12 AM", midnight.Format("h A"))
	testutil.TestEqual(t, "24-01-07 00:00:00.000", midnight.Format("YY-MM-DD HH:mm:ss.SSS"))
}

func TestTokenFormatterRoundTrip(t *testing.T) {
	f := TokenFormatter{}
	patterns := []string{
		"YYYY-MM-DD HH:mm:ss.SSS",
		"DD/MM/YYYY hh:mm:ss.SSS A",
		"dddd, MMMM D, YYYY H:mm:ss.SSS",
		"YYYY-MM-DD[T]HH:mm:ss.SSSZZ",
		"YYYY年MM月DD日 HH:mm:ss.SSS",
	}
	loc := time.FixedZone("UTC+8", 8*60*60)
	tt := time.Date(2024, 2, 29, 23, 59, 58, 999_000_000, loc)
	for _, p := range patterns {
		s := f.Format(tt, p)
		v, err := f.Parse(s, p, loc)
		require.NoError(t, err, p)
		require.Truef(t, v.Equal(tt), "%v: %v -> %v", p, s, v)
	}
}

func TestTokenLayout(t *testing.T) {
	l, err := TokenLayout("YYYY-MM-DD HH:mm:ss.SSS ZZ")
	require.NoError(t, err)
	testutil.TestEqual(t, "2006-01-02 15:04:05.000 -07:00", l)

	_, err = TokenLayout("YYYY d")
	require.Error(t, err)
	_, err = TokenLayout("ssSSS")
	require.Error(t, err)

	_, err = TokenFormatter{}.Parse("2024", "YYYY d", time.UTC)
	require.Error(t, err)
}

func TestMarshalJSON(t *testing.T) {
	t.Cleanup(ResetSettings)
	SetLocation(time.UTC)

	type payload struct {
		At Moment `json:"at"`
	}
	m := at(2024, 1, 31, 10, 20, 30, 456)

	b, err := jsoniter.Marshal(payload{At: m})
	require.NoError(t, err)
	testutil.TestEqual(t, `{"at":1706696430456}`, string(b))

	var p payload
	require.NoError(t, jsoniter.Unmarshal(b, &p))
	requireMoment(t, m, p.At)

	require.NoError(t, jsoniter.Unmarshal([]byte(`{"at":"2024-01-31 10:20:30.456"}`), &p))
	requireMoment(t, m, p.At)

	SetFormatter(TokenFormatter{})
	SetMarshalPattern("YYYY-MM-DD HH:mm:ss.SSS")
	b, err = jsoniter.Marshal(payload{At: m})
	require.NoError(t, err)
	testutil.TestEqual(t, `{"at":"2024-01-31 10:20:30.456"}`, string(b))

	p = payload{}
	require.NoError(t, jsoniter.Unmarshal(b, &p))
	requireMoment(t, m, p.At)

	require.Error(t, jsoniter.Unmarshal([]byte(`{"at":"yesterday"}`), &p))
}

func TestMarshalJSONAroundEpoch(t *testing.T) {
	t.Cleanup(ResetSettings)
	SetLocation(time.UTC)

	for _, m := range []Moment{
		at(1969, 12, 31, 0, 0, 0, 0),
		at(1970, 1, 1, 0, 0, 5, 0),
		at(1970, 1, 1, 0, 0, 0, 0),
		at(1900, 2, 28, 23, 59, 59, 999),
	} {
		b, err := jsoniter.Marshal(m)
		require.NoError(t, err)

		var v Moment
		require.NoError(t, jsoniter.Unmarshal(b, &v))
		requireMoment(t, m, v)
	}

	var v Moment
	require.NoError(t, jsoniter.Unmarshal([]byte(`5000`), &v))
	testutil.TestEqual(t, int64(5000), v.UnixMilli())

	// quoted numbers are text, small values are still read as seconds
	require.NoError(t, jsoniter.Unmarshal([]byte(`"5"`), &v))
	testutil.TestEqual(t, int64(5000), v.UnixMilli())
}

func TestSettings(t *testing.T) {
	t.Cleanup(ResetSettings)

	AddParseLayout("02/01/2006", SQLDateFormat)
	AddParseLayout("02/01/2006")
	st := CurrentSettings()
	testutil.TestEqual(t, len(DefaultSettings().ParseLayouts)+1, len(st.ParseLayouts))

	SetLocation(time.UTC)
	m, err := FromText("31/01/2024")
	require.NoError(t, err)
	requireMoment(t, at(2024, 1, 31, 0, 0, 0, 0), m)

	SetParseLayouts("02/01/2006")
	_, err = FromText("2024-01-31")
	require.ErrorIs(t, err, ErrInvalidInput)

	SetParseLayouts()
	require.Equal(t, DefaultSettings().ParseLayouts, CurrentSettings().ParseLayouts)
	m, err = FromText("2024-01-31")
	require.NoError(t, err)
	requireMoment(t, at(2024, 1, 31, 0, 0, 0, 0), m)
	SetParseLayouts("02/01/2006")

	// mutating the copy doesn't leak into the settings
	st = CurrentSettings()
	st.ParseLayouts[0] = "nope"
	testutil.TestEqual(t, "02/01/2006", CurrentSettings().ParseLayouts[0])

	Configure(Settings{Pattern: "2006"})
	st = CurrentSettings()
	testutil.TestEqual(t, "2006", st.Pattern)
	testutil.TestEqual(t, time.Local, st.Location)
	testutil.TestEqual(t, len(DefaultSettings().ParseLayouts), len(st.ParseLayouts))
	_, ok := st.Formatter.(LayoutFormatter)
	testutil.TestTrue(t, ok)
}
