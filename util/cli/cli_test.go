package cli

import (
	"bytes"
	"testing"

	"github.com/curtisnewbie/timedial/util/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)
	p.Printlnf("a: %v", 1)
	p.DebugPrintlnf("hidden")
	p.ErrorPrintlnf("bad %s", "unit")
	testutil.TestEqual(t, "a: 1\n[ERROR] bad unit\n", out.String())

	out.Reset()
	p = NewPrinter(&out, PrintWithDebug(true))
	testutil.TestTrue(t, p.Debug())
	p.DebugPrintlnf("shown")
	testutil.TestEqual(t, "[DEBUG] shown\n", out.String())

	out.Reset()
	p = NewPrinter(&out, PrintWithTime())
	p.Printlnf("x")
	require.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} x\n$`, out.String())
}
