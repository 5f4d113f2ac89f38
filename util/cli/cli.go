package cli

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Printer writes CLI output lines, with optional time prefix and debug lines.
type Printer struct {
	out        io.Writer
	debug      bool
	timePrefix bool
}

func NewPrinter(out io.Writer, op ...func(p *Printer)) *Printer {
	p := &Printer{out: out}
	for _, f := range op {
		f(p)
	}
	return p
}

func PrintWithDebug(debug bool) func(*Printer) {
	return func(p *Printer) {
		p.debug = debug
	}
}

func PrintWithTime() func(*Printer) {
	return func(p *Printer) {
		p.timePrefix = true
	}
}

func (p *Printer) Debug() bool {
	return p.debug
}

func (p *Printer) Printf(pat string, args ...any) {
	fmt.Fprintf(p.out, pat, args...)
}

func (p *Printer) Printlnf(pat string, args ...any) {
	p.write("", pat, args...)
}

func (p *Printer) DebugPrintlnf(pat string, args ...any) {
	if p.debug {
		p.write("[DEBUG] ", pat, args...)
	}
}

func (p *Printer) ErrorPrintlnf(pat string, args ...any) {
	p.write("[ERROR] ", pat, args...)
}

func (p *Printer) write(prefix string, pat string, args ...any) {
	b := strings.Builder{}
	b.WriteString(prefix)
	if p.timePrefix {
		b.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
		b.WriteRune(' ')
	}
	b.WriteString(fmt.Sprintf(pat, args...))
	b.WriteRune('\n')
	io.WriteString(p.out, b.String())
}
