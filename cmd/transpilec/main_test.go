package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benzoXdev/transpilec/internal/transpile"
)

// TestPrintRunErrorParseErrorIsBare covers SPEC_FULL.md's scenario 6: a
// ParseError must print as a bare "Line N: <message>", with no "Error: "
// prefix, through main's actual print path.
func TestPrintRunErrorParseErrorIsBare(t *testing.T) {
	_, err := transpile.Transpile("if a:\n\tprint(1)\n", transpile.BuiltinRegistry())
	if err == nil {
		t.Fatal("expected a tab ParseError")
	}
	var buf bytes.Buffer
	printRunError(&buf, err)
	out := buf.String()
	if strings.Contains(out, "Error:") {
		t.Errorf("ParseError output must not carry the Error: prefix, got %q", out)
	}
	if !strings.HasPrefix(out, "Line 2: Tabs are not allowed. Use 4 spaces.") {
		t.Errorf("expected bare Line N: message, got %q", out)
	}
}

// TestPrintRunErrorOtherErrorsKeepPrefix covers the non-ParseError shape:
// a plain error still gets the two-line "Error: ...\nHint: ..." report.
func TestPrintRunErrorOtherErrorsKeepPrefix(t *testing.T) {
	var buf bytes.Buffer
	printRunError(&buf, errFixture("Input file not found."))
	out := buf.String()
	if !strings.Contains(out, "Error: Input file not found.") {
		t.Errorf("expected Error: prefix for non-ParseError, got %q", out)
	}
	if !strings.Contains(out, "Hint:") {
		t.Errorf("expected a hint line for a recognized message, got %q", out)
	}
}

type errFixture string

func (e errFixture) Error() string { return string(e) }
