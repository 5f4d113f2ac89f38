package dial

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Text format and parse collaborator.
type Formatter interface {
	Format(t time.Time, pattern string) string
	Parse(text string, pattern string, loc *time.Location) (time.Time, error)
}

// Format with the configured Formatter, empty pattern uses Settings.Pattern.
func (m Moment) Format(pattern string) string {
	st := loadSettings()
	if pattern == "" {
		pattern = st.Pattern
	}
	return st.Formatter.Format(m.t, pattern)
}

// Formatter that takes Go layouts, e.g., "2006-01-02 15:04:05".
type LayoutFormatter struct{}

func (LayoutFormatter) Format(t time.Time, pattern string) string {
	return t.Format(pattern)
}

func (LayoutFormatter) Parse(text string, pattern string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(pattern, text, loc)
}

// Formatter that takes moment style tokens, e.g., "YYYY-MM-DD HH:mm:ss.SSS".
//
//	YYYY 2024      YY 24
//	MMMM January   MMM Jan     MM 01    M 1
//	DD   02        D  2
//	dddd Monday    ddd Mon     d  1 (weekday, 0 is Sunday; format only)
//	HH   15        H  15
//	hh   03        h  3
//	mm   04        m  4
//	ss   05        s  5
//	SSS  millis    SS centis   S  decis
//	A    PM        a  pm
//	ZZ   -07:00    Z  -0700
//
// Text enclosed in brackets is copied literally, e.g., "[at] HH:mm". When parsing, fractional
// seconds (S, SS, SSS) must follow a '.' or ',' and literal text must not contain sequences
// that Go layouts treat as elements (e.g., "Jan", "Mon", "PM" or digits).
type TokenFormatter struct{}

var patternTokens = []string{
	"YYYY", "YY",
	"MMMM", "MMM", "MM", "M",
	"DD", "D",
	"dddd", "ddd", "d",
	"HH", "H", "hh", "h",
	"mm", "m",
	"ss", "s",
	"SSS", "SS", "S",
	"A", "a",
	"ZZ", "Z",
}

type patternChunk struct {
	token   string
	literal string
}

func splitPattern(pattern string) []patternChunk {
	chunks := []patternChunk{}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			chunks = append(chunks, patternChunk{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			if j := strings.IndexByte(pattern[i+1:], ']'); j >= 0 {
				lit.WriteString(pattern[i+1 : i+1+j])
				i += j + 2
				continue
			}
		}
		matched := ""
		for _, tk := range patternTokens {
			if strings.HasPrefix(pattern[i:], tk) {
				matched = tk
				break
			}
		}
		if matched == "" {
			lit.WriteByte(pattern[i])
			i++
			continue
		}
		flush()
		chunks = append(chunks, patternChunk{token: matched})
		i += len(matched)
	}
	flush()
	return chunks
}

func (TokenFormatter) Format(t time.Time, pattern string) string {
	var b strings.Builder
	for _, c := range splitPattern(pattern) {
		if c.token == "" {
			b.WriteString(c.literal)
			continue
		}
		b.WriteString(formatToken(t, c.token))
	}
	return b.String()
}

func formatToken(t time.Time, tk string) string {
	ms := t.Nanosecond() / int(time.Millisecond)
	switch tk {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return t.Weekday().String()
	case "ddd":
		return t.Weekday().String()[:3]
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12(t.Hour()))
	case "h":
		return strconv.Itoa(hour12(t.Hour()))
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "SSS":
		return fmt.Sprintf("%03d", ms)
	case "SS":
		return fmt.Sprintf("%02d", ms/10)
	case "S":
		return strconv.Itoa(ms / 100)
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	case "ZZ":
		return t.Format("-07:00")
	case "Z":
		return t.Format("-0700")
	}
	return tk
}

func hour12(h int) int {
	h = h % 12
	if h == 0 {
		return 12
	}
	return h
}

var tokenLayouts = map[string]string{
	"YYYY": "2006",
	"YY":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"DD":   "02",
	"D":    "2",
	"dddd": "Monday",
	"ddd":  "Mon",
	"HH":   "15",
	"H":    "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"m":    "4",
	"ss":   "05",
	"s":    "5",
	"SSS":  "000",
	"SS":   "00",
	"S":    "0",
	"A":    "PM",
	"a":    "pm",
	"ZZ":   "-07:00",
	"Z":    "-0700",
}

// Translate token pattern to Go layout.
func TokenLayout(pattern string) (string, error) {
	var b strings.Builder
	prev := byte(0)
	for _, c := range splitPattern(pattern) {
		if c.token == "" {
			b.WriteString(c.literal)
			prev = c.literal[len(c.literal)-1]
			continue
		}
		l, ok := tokenLayouts[c.token]
		if !ok {
			return "", fmt.Errorf("token %q can't be parsed", c.token)
		}
		if c.token[0] == 'S' && prev != '.' && prev != ',' {
			return "", fmt.Errorf("token %q must follow '.' or ','", c.token)
		}
		b.WriteString(l)
		prev = l[len(l)-1]
	}
	return b.String(), nil
}

func (TokenFormatter) Parse(text string, pattern string, loc *time.Location) (time.Time, error) {
	layout, err := TokenLayout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(layout, text, loc)
}
