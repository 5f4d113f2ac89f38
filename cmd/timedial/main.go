package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/curtisnewbie/timedial/config"
	"github.com/curtisnewbie/timedial/dial"
	"github.com/curtisnewbie/timedial/util/cli"
	"github.com/curtisnewbie/timedial/util/errs"
	"github.com/curtisnewbie/timedial/util/flags"
	"github.com/curtisnewbie/timedial/util/json"
	"github.com/curtisnewbie/timedial/util/strutil"
	"github.com/curtisnewbie/timedial/util/utillog"
	"github.com/curtisnewbie/timedial/version"
	"gopkg.in/yaml.v2"
)

const (
	OpAdd         = "add"
	OpSubtract    = "subtract"
	OpSet         = "set"
	OpStartOf     = "startOf"
	OpEndOf       = "endOf"
	OpDaysInMonth = "daysInMonth"
	OpFormat      = "format"
	OpCompare     = "compare"

	OutputText = "text"
	OutputJson = "json"
	OutputYaml = "yaml"

	exitOk    = 0
	exitOpErr = 1
	exitUsage = 2
)

var errUsage = errs.NewErrfCode("USAGE", "invalid usage")

type Result struct {
	Op        string `yaml:"op"`
	Input     string `yaml:"input"`
	Result    string `yaml:"result"`
	UnixMilli *int64 `json:",omitempty" yaml:"unixMilli,omitempty"`
}

type cmdArgs struct {
	from    string
	pattern string
	op      string
	amount  int
	unit    string
	set     []string
	other   string
	format  string
	output  string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	f := flags.NewFlagSet("timedial", out)
	f.WithDescription("timedial, " + version.Version + ", applies one calendar operation to a moment.")
	f.WithExtra(strings.Join([]string{
		"Trailing key=value args overwrite config props, e.g., timedial.location=UTC",
		"",
		"Examples:",
		"  timedial -from 2024-01-31 -op add -amount 1 -unit month",
		"  timedial -from now -op endOf -unit week -output json",
		"  timedial -from 2024-01-31 -op set -set year=2023 -set month=2",
	}, "\n"))

	from := f.String("from", "", "Input moment, text, epoch or 'now'", true)
	pattern := f.String("pattern", "", "Pattern used to parse -from and -other, defaults to the generic parser", false)
	op := f.String("op", "", "Operation: add, subtract, set, startOf, endOf, daysInMonth, format, compare", true)
	amount := f.Int("amount", 0, "Amount for add and subtract", false)
	unit := f.String("unit", "", "Unit for add, subtract, startOf and endOf", false)
	set := f.StrSlice("set", "Field value for set, e.g., -set month=2, repeatable", false)
	other := f.String("other", "", "Other moment, compared with -from for compare, reference moment for startOf and endOf", false)
	format := f.String("format", "", "Output pattern, defaults to timedial.format.pattern", false)
	output := f.String("output", OutputText, "Output: text, json or yaml", false)
	confFile := f.String("conf", "", "Config file", false)
	debug := f.Bool("debug", false, "Enable debug log", false)

	if err := f.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOk
		}
		return exitUsage
	}

	p := cli.NewPrinter(out, cli.PrintWithDebug(*debug))
	utillog.SetOutput(out)

	conf := config.New()
	if err := conf.LoadConfigFromFile(*confFile); err != nil {
		p.ErrorPrintlnf("Failed to load config, %v", err)
		return exitOpErr
	}
	conf.OverwriteConf(f.Args())
	if err := conf.Apply(); err != nil {
		p.ErrorPrintlnf("%v", err)
		return exitOpErr
	}
	if *debug {
		utillog.SetLogLevel("debug")
	}

	ca := cmdArgs{
		from:    *from,
		pattern: *pattern,
		op:      *op,
		amount:  *amount,
		unit:    *unit,
		set:     *set,
		other:   *other,
		format:  *format,
		output:  strings.ToLower(strings.TrimSpace(*output)),
	}
	p.DebugPrintlnf("Args: %+v", ca)

	res, err := execute(ca)
	if err != nil {
		p.ErrorPrintlnf("%v", err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		if p.Debug() {
			p.DebugPrintlnf("%v", errs.ErrorStackTrace(err))
		}
		return exitOpErr
	}

	if err := printResult(p, ca.output, res); err != nil {
		p.ErrorPrintlnf("%v", err)
		return exitOpErr
	}
	return exitOk
}

func parseMoment(s string, pattern string) (dial.Moment, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "now") {
		return dial.Now(), nil
	}
	if pattern != "" {
		return dial.FromTextPattern(s, pattern)
	}
	return dial.Of(s)
}

func execute(ca cmdArgs) (Result, error) {
	res := Result{Op: ca.op}
	switch ca.output {
	case OutputText, OutputJson, OutputYaml:
	default:
		return res, errUsage.WithInternalMsg("unknown output '%v'", ca.output)
	}

	m, err := parseMoment(ca.from, ca.pattern)
	if err != nil {
		return res, err
	}
	res.Input = m.Format(ca.format)

	var ref []dial.Moment
	if ca.other != "" {
		o, err := parseMoment(ca.other, ca.pattern)
		if err != nil {
			return res, err
		}
		ref = append(ref, o)
	}

	requireUnit := func() error {
		if strutil.IsBlankStr(ca.unit) {
			return errUsage.WithInternalMsg("-unit is required for %v", ca.op)
		}
		return nil
	}

	var v dial.Moment
	switch ca.op {
	case OpAdd, OpSubtract:
		if err := requireUnit(); err != nil {
			return res, err
		}
		if ca.op == OpAdd {
			v, err = m.Add(ca.amount, ca.unit)
		} else {
			v, err = m.Subtract(ca.amount, ca.unit)
		}
	case OpSet:
		if len(ca.set) < 1 {
			return res, errUsage.WithInternalMsg("-set is required for %v", ca.op)
		}
		values := make(map[string]any, len(ca.set))
		for _, kv := range ca.set {
			k, val, ok := strutil.SplitKV(kv, "=")
			if !ok {
				return res, errUsage.WithInternalMsg("malformed -set '%v', expected key=value", kv)
			}
			values[k] = val
		}
		v, err = m.SetAny(values, ref...)
	case OpStartOf, OpEndOf:
		if err := requireUnit(); err != nil {
			return res, err
		}
		if ca.op == OpStartOf {
			v, err = m.StartOf(ca.unit, ref...)
		} else {
			v, err = m.EndOf(ca.unit, ref...)
		}
	case OpDaysInMonth:
		res.Result = strconv.Itoa(m.DaysInMonth())
		return res, nil
	case OpFormat:
		v = m
	case OpCompare:
		if len(ref) < 1 {
			return res, errUsage.WithInternalMsg("-other is required for %v", ca.op)
		}
		res.Result = strconv.Itoa(m.Compare(ref[0]))
		return res, nil
	default:
		return res, errUsage.WithInternalMsg("unknown op '%v'", ca.op)
	}
	if err != nil {
		return res, err
	}

	res.Result = v.Format(ca.format)
	ms := v.UnixMilli()
	res.UnixMilli = &ms
	return res, nil
}

func printResult(p *cli.Printer, output string, res Result) error {
	switch output {
	case OutputJson:
		s, err := json.SWriteIndent(res)
		if err != nil {
			return err
		}
		p.Printlnf("%s", s)
	case OutputYaml:
		b, err := yaml.Marshal(res)
		if err != nil {
			return errs.WrapErrf(err, "failed to write yaml")
		}
		p.Printf("%s", b)
	default:
		rows := [][2]string{{"op", res.Op}, {"input", res.Input}, {"result", res.Result}}
		if res.UnixMilli != nil {
			rows = append(rows, [2]string{"unixMilli", strconv.FormatInt(*res.UnixMilli, 10)})
		}
		for _, r := range rows {
			p.Printlnf("%s : %s", strutil.PadSpace(-9, r[0]), r[1])
		}
	}
	return nil
}
