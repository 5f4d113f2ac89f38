package dial

import (
	"strconv"

	"github.com/curtisnewbie/timedial/util/strutil"
)

// Implements encoding/json Marshaler.
//
// Marshaled as milliseconds since epoch, or as a string in Settings.MarshalPattern when it's
// configured.
func (m Moment) MarshalJSON() ([]byte, error) {
	st := loadSettings()
	if st.MarshalPattern != "" {
		return []byte(strconv.Quote(st.Formatter.Format(m.t, st.MarshalPattern))), nil
	}
	return []byte(strconv.FormatInt(m.UnixMilli(), 10)), nil
}

// Implements encoding/json Unmarshaler.
//
// Accepts epoch milliseconds (what MarshalJSON writes), text in Settings.MarshalPattern and
// anything FromText accepts.
func (m *Moment) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "" || s == "null" {
		return nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil { // json number
		*m = FromUnixMilli(ms)
		return nil
	}
	s = strutil.UnquoteStr(s)

	if st := loadSettings(); st.MarshalPattern != "" {
		if t, err := st.Formatter.Parse(s, st.MarshalPattern, st.Location); err == nil {
			*m = wrap(t)
			return nil
		}
	}
	v, err := FromText(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
