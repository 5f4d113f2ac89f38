package json

import (
	"io"
	"strings"
	"unicode"

	"github.com/curtisnewbie/timedial/util/errs"
	jsoniter "github.com/json-iterator/go"
)

var (
	config = jsoniter.Config{EscapeHTML: true, SortMapKeys: true}.Froze()
)

func init() {
	config.RegisterExtension(&lowercaseNamingExtension{jsoniter.DummyExtension{}})
}

// Write json as bytes.
func WriteJson(body any) ([]byte, error) {
	return config.Marshal(body)
}

// Write indented json as string.
func SWriteIndent(body any) (string, error) {
	buf, err := config.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", errs.WrapErrf(err, "failed to write json")
	}
	return string(buf), nil
}

// Parse json string.
func SParseJsonAs[T any](body string) (T, error) {
	var t T
	if err := config.UnmarshalFromString(body, &t); err != nil {
		return t, errs.WrapErrf(err, "failed to parse json, body: %v", body)
	}
	return t, nil
}

// Encode json, one value per line.
func EncodeJson(writer io.Writer, body any) error {
	return config.NewEncoder(writer).Encode(body)
}

// Change first rune to lower case.
func LowercaseNamingStrategy(name string) string {
	ru := []rune(name)
	if len(ru) < 1 {
		return name
	}
	ru[0] = unicode.ToLower(ru[0])
	return string(ru)
}

// Renames exported fields without an explicit json name, e.g., UnixMilli -> unixMilli.
type lowercaseNamingExtension struct {
	jsoniter.DummyExtension
}

func (extension *lowercaseNamingExtension) UpdateStructDescriptor(structDescriptor *jsoniter.StructDescriptor) {
	for _, binding := range structDescriptor.Fields {
		if unicode.IsLower(rune(binding.Field.Name()[0])) || binding.Field.Name()[0] == '_' {
			continue
		}
		if tag, ok := binding.Field.Tag().Lookup("json"); ok {
			name, _, _ := strings.Cut(tag, ",")
			if name != "" {
				continue // hidden or explicitly named
			}
		}
		name := LowercaseNamingStrategy(binding.Field.Name())
		binding.ToNames = []string{name}
		binding.FromNames = []string{name}
	}
}
