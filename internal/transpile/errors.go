package transpile

import (
	"fmt"
	"strings"
)

// ParseError is the single-shot, fail-fast error type produced by the
// scanner and statement classifier. It always carries a 1-based line
// number, per the error handling contract.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Msg)
}

func parseErr(line int, format string, args ...interface{}) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// CompileError wraps a non-zero exit from the downstream target compiler.
type CompileError struct {
	ExitCode int
	Err      error
}

func (e *CompileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Compilation failed.: %v", e.Err)
	}
	return "Compilation failed."
}

func (e *CompileError) Unwrap() error { return e.Err }

// ExitCode is the exit code a CLI driver should report for err, per the
// error taxonomy in the spec: 1 for argument/I-O/configuration errors, 2
// for ParseError, 3 for CompileError, 0 if err is nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch err.(type) {
	case *ParseError:
		return 2
	case *CompileError:
		return 3
	default:
		return 1
	}
}

// ErrorHint returns a short, actionable hint for common failures, or "" if
// none applies — mirroring the teacher's standalone ErrorHint lookup table.
func ErrorHint(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Input file not found"):
		return "Check the path; the translator resolves it relative to the current directory."
	case strings.Contains(msg, "unknown module"):
		return "Known modules: BIFMath, BIFitertools, BIFtkinter, plus anything added via --registry."
	case strings.Contains(msg, "Tabs are not allowed"):
		return "Re-indent the file with spaces; most editors can convert tabs on save."
	case strings.Contains(msg, "Indentation must be multiples of 4"):
		return "Align every block to 4, 8, 12, ... spaces."
	case strings.Contains(msg, "executable file not found"):
		return "Install a C++ toolchain or point --compiler at one explicitly."
	case strings.Contains(msg, "Compilation failed"):
		return "Inspect the emitted .cpp file in --outdir and re-run the compiler manually for the full diagnostic."
	case strings.Contains(msg, "parsing registry file"):
		return "Check the --registry file's TOML syntax; each [modules.NAME] table takes header and using keys."
	case strings.Contains(msg, "registry"):
		return "Builtin modules (BIFMath, BIFitertools, BIFtkinter) cannot be redefined by --registry."
	}
	return ""
}
