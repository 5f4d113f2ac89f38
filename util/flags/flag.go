package flags

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/curtisnewbie/timedial/util/errs"
)

// FlagSet wraps flag.FlagSet with required flags, description and extra usage text.
type FlagSet struct {
	fs          *flag.FlagSet
	required    map[string]struct{}
	description string
	extra       string
}

func NewFlagSet(name string, out io.Writer) *FlagSet {
	f := &FlagSet{
		fs:       flag.NewFlagSet(name, flag.ContinueOnError),
		required: map[string]struct{}{},
	}
	f.fs.SetOutput(out)
	f.fs.Usage = f.usage
	return f
}

func updateUsage(usage string, required bool) string {
	if required {
		usage = strings.TrimSpace(usage)
		if usage != "" {
			usage = usage + ". "
		}
		usage = usage + "Required."
	}
	return usage
}

func (f *FlagSet) markRequired(name string, required bool) {
	if required {
		f.required[name] = struct{}{}
	}
}

func (f *FlagSet) Int(name string, value int, usage string, required bool) *int {
	p := f.fs.Int(name, value, updateUsage(usage, required))
	f.markRequired(name, required)
	return p
}

func (f *FlagSet) Bool(name string, value bool, usage string, required bool) *bool {
	p := f.fs.Bool(name, value, updateUsage(usage, required))
	f.markRequired(name, required)
	return p
}

func (f *FlagSet) String(name string, value string, usage string, required bool) *string {
	p := f.fs.String(name, value, updateUsage(usage, required))
	f.markRequired(name, required)
	return p
}

// StrSliceFlag collects every occurrence of a repeated flag.
type StrSliceFlag []string

func (s *StrSliceFlag) String() string {
	return fmt.Sprintf("%v", []string(*s))
}

func (s *StrSliceFlag) Set(t string) error {
	*s = append(*s, t)
	return nil
}

func (f *FlagSet) StrSlice(name string, usage string, required bool) *StrSliceFlag {
	p := new(StrSliceFlag)
	f.fs.Var(p, name, updateUsage(usage, required))
	f.markRequired(name, required)
	return p
}

func (f *FlagSet) WithDescription(s string) {
	f.description = s
}

func (f *FlagSet) WithExtra(s string) {
	f.extra = s
}

// Args returns the non-flag arguments left after Parse.
func (f *FlagSet) Args() []string {
	return f.fs.Args()
}

// Visited reports whether the flag was given on the command line.
func (f *FlagSet) Visited(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

func (f *FlagSet) usage() {
	out := f.fs.Output()
	if f.description != "" {
		fmt.Fprintf(out, "\n%s\n", f.description)
	}
	fmt.Fprintf(out, "Usage of %s:\n", f.fs.Name())
	f.fs.PrintDefaults()
	if f.extra != "" {
		fmt.Fprintf(out, "\n%s\n", f.extra)
	}
}

// Parse parses args and checks that every required flag is present.
//
// flag.ErrHelp is returned as is when -h or -help is given.
func (f *FlagSet) Parse(args []string) error {
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	missing := make([]string, 0, len(f.required))
	for name := range f.required {
		if !f.Visited(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		fmt.Fprintf(f.fs.Output(), "Arg '%v' is required \n\n", strings.Join(missing, "', '"))
		f.fs.Usage()
		return errs.NewErrf("missing required args: %v", missing)
	}
	return nil
}
