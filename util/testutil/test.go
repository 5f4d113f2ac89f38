package testutil

import (
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
)

// Test if expected == actual, else call t.Fatalf with values printed
func TestEqual[V comparable](t *testing.T, expected V, actual V) {
	t.Helper()
	caller := callerLine()
	if expected != actual {
		t.Fatalf("[FAIL] %v -> Expected: %v, actual: %v", caller, expected, actual)
	} else {
		t.Logf("[PASS] %v -> Expected: %v, actual: %v", caller, expected, actual)
	}
}

// Test if actual is true, else call t.Fatalf with values printed
func TestTrue(t *testing.T, actual bool) {
	t.Helper()
	caller := callerLine()
	if !actual {
		t.Fatalf("[FAIL] %v -> Expected: true, actual: %v", caller, actual)
	}
}

// Test if actual is false, else call t.Fatalf with values printed
func TestFalse(t *testing.T, actual bool) {
	t.Helper()
	caller := callerLine()
	if actual {
		t.Fatalf("[FAIL] %v -> Expected: false, actual: %v", caller, actual)
	}
}

// Test if err is nil, else call t.Fatalf with the error printed
func TestNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("[FAIL] %v -> Unexpected error: %v", callerLine(), err)
	}
}

func callerLine() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%v:%-4v", filepath.Base(file), line)
}
