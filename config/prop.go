package config

// timedialconfig-section: Moment Configuration
const (

	// timedialconfig-prop: formatter used by Moment.Format and pattern parsing, `layout` (Go layouts) or `token` (YYYY-MM-DD style) | layout
	PropFormatter = "timedial.formatter"

	// timedialconfig-prop: pattern used when Moment.Format is called with an empty pattern | 2006-01-02 15:04:05.000
	PropFormatPattern = "timedial.format.pattern"

	// timedialconfig-prop: layouts tried when text is parsed without a pattern (`slice of string`) | built-in list
	PropParseLayouts = "timedial.parse.layouts"

	// timedialconfig-prop: location of wall clock fields, `Local`, `UTC`, an offset like `+08:00` or offset in hours like `8` | Local
	PropLocation = "timedial.location"

	// timedialconfig-prop: json marshal pattern, empty means epoch milliseconds |
	PropJsonPattern = "timedial.json.pattern"
)

// timedialconfig-section: Logging Configuration
const (

	// timedialconfig-prop: log level, `trace`, `debug`, `info`, `warn` or `error` | info
	PropLoggingLevel = "logging.level"

	// timedialconfig-prop: rolling log file, empty means stdout |
	PropLoggingFile = "logging.rolling.file"

	// timedialconfig-prop: max size of log file in mb | 50
	PropLoggingFileMaxSize = "logging.rolling.max-size"

	// timedialconfig-prop: max number of backup log files | 3
	PropLoggingFileMaxBackups = "logging.rolling.max-backups"
)

const (
	FormatterLayout = "layout"
	FormatterToken  = "token"
)

var defaultProps = map[string]any{
	PropFormatter:             FormatterLayout,
	PropFormatPattern:         "2006-01-02 15:04:05.000",
	PropLocation:              "Local",
	PropLoggingLevel:          "info",
	PropLoggingFileMaxSize:    50,
	PropLoggingFileMaxBackups: 3,
}
