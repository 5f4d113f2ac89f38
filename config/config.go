package config

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/curtisnewbie/timedial/util/errs"
	"github.com/curtisnewbie/timedial/util/strutil"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// AppConfig holds timedial props, backed by viper.
//
// Props come from (lowest to highest): defaults, yaml files and `key=value` args.
type AppConfig struct {
	mu sync.RWMutex
	vp *viper.Viper
}

// Create AppConfig with default props registered.
func New() *AppConfig {
	a := &AppConfig{vp: viper.New()}
	a.vp.SetConfigType("yml")
	for k, v := range defaultProps {
		a.SetDefProp(k, v)
	}
	return a
}

func (a *AppConfig) SetProp(prop string, val any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.vp.Set(prop, val)
}

func (a *AppConfig) SetDefProp(prop string, defVal any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.vp.SetDefault(prop, defVal)
}

func (a *AppConfig) HasProp(prop string) bool {
	return readProp(a, prop, (*viper.Viper).IsSet)
}

func (a *AppConfig) GetPropStr(prop string) string {
	return readProp(a, prop, (*viper.Viper).GetString)
}

func (a *AppConfig) GetPropInt(prop string) int {
	return readProp(a, prop, (*viper.Viper).GetInt)
}

// Get prop as string slice.
//
// A string value is treated as a comma separated list, e.g., "2006-01-02, 02/01/2006".
func (a *AppConfig) GetPropStrSlice(prop string) []string {
	v := readProp(a, prop, (*viper.Viper).Get)
	s, ok := v.(string)
	if !ok {
		return cast.ToStringSlice(v)
	}
	var l []string
	for _, p := range strings.Split(s, ",") {
		if !strutil.IsBlankStr(p) {
			l = append(l, strings.TrimSpace(p))
		}
	}
	return l
}

func readProp[T any](a *AppConfig, prop string, get func(vp *viper.Viper, key string) T) T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return get(a.vp, prop)
}

// Merge yaml props read from reader, the reader is not closed.
func (a *AppConfig) LoadConfigFromReader(reader io.Reader) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.vp.MergeConfig(reader); err != nil {
		return errs.WrapErrf(err, "failed to merge yaml config")
	}
	return nil
}

func (a *AppConfig) LoadConfigFromStr(s string) error {
	return a.LoadConfigFromReader(strings.NewReader(s))
}

// Merge yaml props from file, a blank path is ignored.
func (a *AppConfig) LoadConfigFromFile(configFile string) error {
	if strutil.IsBlankStr(configFile) {
		return nil
	}
	f, err := os.Open(configFile)
	if err != nil {
		return errs.WrapErrf(err, "failed to open config file '%s'", configFile)
	}
	defer f.Close()
	return a.LoadConfigFromReader(f)
}

// Overwrite props with `key=value` args, a key given more than once becomes a slice.
func (a *AppConfig) OverwriteConf(args []string) {
	for k, v := range ArgKeyVal(args) {
		if len(v) == 1 {
			a.SetProp(k, v[0])
		} else {
			a.SetProp(k, v)
		}
	}
}

// Collect `key=value` args, anything else is skipped.
func ArgKeyVal(args []string) map[string][]string {
	m := map[string][]string{}
	for _, s := range args {
		if k, v, ok := strutil.SplitKV(s, "="); ok {
			m[k] = append(m[k], v)
		}
	}
	return m
}
