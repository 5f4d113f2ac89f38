// Package for calendar arithmetic.
//
// The core type in this package is [Moment], an immutable wrapper of [time.Time] at millisecond
// precision. Every operation returns a new [Moment]:
//
//	m := dial.Must(dial.FromText("2024-01-31"))
//	next, _ := m.Add(1, "month")     // 2024-02-29, clamped to the end of February
//	sun, _ := m.StartOf("week")       // 2024-01-28 00:00:00.000
//	sat, _ := m.EndOf("week")         // 2024-02-03 23:59:59.999
//
// Units are given as tokens, see [ResolveUnit]. Month and year arithmetic clamps to the last day
// of the target month, other units carry and borrow the way [time.Date] normalizes fields.
//
// Text is formatted and parsed by the configured [Formatter], [LayoutFormatter] (Go layouts) by
// default. Use [SetFormatter] with [TokenFormatter] for "YYYY-MM-DD" style patterns.
package dial
