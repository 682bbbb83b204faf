package transpile

import "github.com/fatih/color"

// Named color helpers replace the teacher's hand-rolled ANSI escape table:
// fatih/color already auto-disables itself when stderr is not a terminal,
// so this file only needs to name the roles it plays elsewhere (report,
// banner, CLI driver).
var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errColor     = color.New(color.FgRed)
	hintColor    = color.New(color.FgHiBlack)
	stageColor   = color.New(color.FgCyan)
	boldCyan     = color.New(color.FgCyan, color.Bold)
)

// Success formats s in the color used for passing/confirmatory output.
func Success(format string, a ...interface{}) string { return successColor.Sprintf(format, a...) }

// Warn formats s in the color used for warnings.
func Warn(format string, a ...interface{}) string { return warnColor.Sprintf(format, a...) }

// Err formats s in the color used for fatal errors.
func Err(format string, a ...interface{}) string { return errColor.Sprintf(format, a...) }

// Hint formats s in the dim color used for error hints.
func Hint(format string, a ...interface{}) string { return hintColor.Sprintf(format, a...) }

// Stage formats s in the color used for pipeline stage/report labels.
func Stage(format string, a ...interface{}) string { return stageColor.Sprintf(format, a...) }
