package dial

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

const (
	StdDateTimeMilliFormat = "2006-01-02 15:04:05.000"
	ClassicDateTimeFormat  = "2006/01/02 15:04:05"
	SQLDateTimeFormat      = "2006-01-02 15:04:05.999999"
	SQLDateTimeFormatWithT = "2006-01-02T15:04:05.999999"
	SQLDateFormat          = "2006-01-02"

	stringFormat = "2006-01-02 15:04:05.000 (MST)"
)

// Package level settings read by every Moment operation.
//
// Settings are replaced as a whole, readers always see a consistent snapshot.
type Settings struct {
	Formatter      Formatter      // format / parse collaborator, LayoutFormatter by default.
	Pattern        string         // pattern used when Moment.Format is called with an empty pattern.
	ParseLayouts   []string       // layouts tried when text is parsed without a pattern.
	Location       *time.Location // location used by Now and text parsing.
	MarshalPattern string         // json marshal pattern, empty means epoch milliseconds.
}

var (
	settings   atomic.Pointer[Settings]
	settingsMu sync.Mutex // serializes writers only
)

func init() {
	s := DefaultSettings()
	settings.Store(&s)
}

func DefaultSettings() Settings {
	return Settings{
		Formatter: LayoutFormatter{},
		Pattern:   StdDateTimeMilliFormat,
		ParseLayouts: []string{
			time.RFC3339Nano,
			SQLDateTimeFormat,
			SQLDateFormat,
			SQLDateTimeFormatWithT,
			ClassicDateTimeFormat,
		},
		Location: time.Local,
	}
}

// Get a copy of current settings.
func CurrentSettings() Settings {
	s := *settings.Load()
	s.ParseLayouts = slices.Clone(s.ParseLayouts)
	return s
}

func loadSettings() *Settings {
	return settings.Load()
}

// Replace current settings, zero fields fall back to the defaults.
func Configure(s Settings) {
	def := DefaultSettings()
	if s.Formatter == nil {
		s.Formatter = def.Formatter
	}
	if s.Pattern == "" {
		s.Pattern = def.Pattern
	}
	if len(s.ParseLayouts) < 1 {
		s.ParseLayouts = def.ParseLayouts
	} else {
		s.ParseLayouts = slices.Clone(s.ParseLayouts)
	}
	if s.Location == nil {
		s.Location = def.Location
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings.Store(&s)
}

func updateSettings(f func(s *Settings)) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	s := *settings.Load()
	s.ParseLayouts = slices.Clone(s.ParseLayouts)
	f(&s)
	settings.Store(&s)
}

// Reset settings to the defaults.
func ResetSettings() {
	Configure(DefaultSettings())
}

func SetFormatter(f Formatter) {
	if f == nil {
		f = LayoutFormatter{}
	}
	updateSettings(func(s *Settings) { s.Formatter = f })
}

func SetDefaultPattern(pattern string) {
	if pattern == "" {
		pattern = StdDateTimeMilliFormat
	}
	updateSettings(func(s *Settings) { s.Pattern = pattern })
}

func SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	updateSettings(func(s *Settings) { s.Location = loc })
}

func SetMarshalPattern(pattern string) {
	updateSettings(func(s *Settings) { s.MarshalPattern = pattern })
}

// Add extra layouts tried by the generic text parser, duplicates are ignored.
func AddParseLayout(layouts ...string) {
	updateSettings(func(s *Settings) {
		for _, l := range layouts {
			if !slices.Contains(s.ParseLayouts, l) {
				s.ParseLayouts = append(s.ParseLayouts, l)
			}
		}
	})
}

// Overwrite the layouts tried by the generic text parser, no layouts restores the defaults.
func SetParseLayouts(layouts ...string) {
	if len(layouts) < 1 {
		layouts = DefaultSettings().ParseLayouts
	}
	updateSettings(func(s *Settings) {
		s.ParseLayouts = s.ParseLayouts[:0]
		for _, l := range layouts {
			if !slices.Contains(s.ParseLayouts, l) {
				s.ParseLayouts = append(s.ParseLayouts, l)
			}
		}
	})
}
