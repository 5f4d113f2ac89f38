package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/curtisnewbie/timedial/dial"
	"github.com/curtisnewbie/timedial/util/errs"
	"github.com/curtisnewbie/timedial/util/utillog"
)

// Build dial.Settings from the props.
func (a *AppConfig) Settings() (dial.Settings, error) {
	st := dial.DefaultSettings()

	switch f := strings.ToLower(strings.TrimSpace(a.GetPropStr(PropFormatter))); f {
	case "", FormatterLayout:
		st.Formatter = dial.LayoutFormatter{}
	case FormatterToken:
		st.Formatter = dial.TokenFormatter{}
	default:
		return st, fmt.Errorf("invalid %v: '%v'", PropFormatter, f)
	}

	if p := a.GetPropStr(PropFormatPattern); p != "" {
		st.Pattern = p
	}
	if l := a.GetPropStrSlice(PropParseLayouts); len(l) > 0 {
		st.ParseLayouts = l
	}
	loc, err := ParseLocation(a.GetPropStr(PropLocation))
	if err != nil {
		return st, err
	}
	st.Location = loc
	st.MarshalPattern = a.GetPropStr(PropJsonPattern)
	return st, nil
}

// Apply props to package dial and the logger.
func (a *AppConfig) Apply() error {
	st, err := a.Settings()
	if err != nil {
		return errs.WrapErrf(err, "failed to apply config")
	}

	if lv := a.GetPropStr(PropLoggingLevel); lv != "" && !utillog.SetLogLevel(lv) {
		utillog.Warnf("Unrecognized %v: '%v', ignored", PropLoggingLevel, lv)
	}
	if f := a.GetPropStr(PropLoggingFile); f != "" {
		utillog.SetLogFile(utillog.RollingLogFileParam{
			Filename:   f,
			MaxSize:    a.GetPropInt(PropLoggingFileMaxSize),
			MaxBackups: a.GetPropInt(PropLoggingFileMaxBackups),
		})
	}

	dial.Configure(st)
	utillog.Debugf("Applied settings, formatter: %T, pattern: '%v', location: %v, parse layouts: %v",
		st.Formatter, st.Pattern, st.Location, st.ParseLayouts)
	return nil
}

// Parse location, one of `Local`, `UTC`, offset like `+08:00` or `-0530`, or offset in hours like `8`.
//
// IANA names are not supported, locations are fixed offsets.
func ParseLocation(s string) (*time.Location, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "local":
		return time.Local, nil
	case "utc", "z":
		return time.UTC, nil
	}

	if len(strings.TrimLeft(s, "+-")) <= 2 {
		h, err := strconv.Atoi(s)
		if err != nil || h < -12 || h > 14 {
			return nil, fmt.Errorf("invalid location offset: '%v'", s)
		}
		if h == 0 {
			return time.UTC, nil
		}
		return time.FixedZone("", h*60*60), nil
	}

	for _, layout := range []string{"-07:00", "-0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			_, off := t.Zone()
			return time.FixedZone(s, off), nil
		}
	}
	return nil, fmt.Errorf("invalid location: '%v'", s)
}
