package transpile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Report holds per-run transpilation counts, the way the teacher's Report
// holds per-run obfuscation counts — redirected here at statement/import
// statistics instead of obfuscation techniques.
type Report struct {
	InputPath      string        `json:"inputPath"`
	OutputPath     string        `json:"outputPath"`
	Imports        []string      `json:"imports"`
	Declarations   int           `json:"declarations"`
	Reassignments  int           `json:"reassignments"`
	Branches       int           `json:"branches"`
	Loops          int           `json:"loops"`
	StatementCount int           `json:"statementCount"`
	PromotionCount int           `json:"promotionCount"`
	InputSize      int           `json:"inputSize"`
	OutputSize     int           `json:"outputSize"`
	Duration       time.Duration `json:"duration"`
}

// ComputeReport assembles a Report from a finished Result.
func ComputeReport(inputPath, outputPath string, result *Result, inputSize, outputSize int, duration time.Duration) Report {
	return Report{
		InputPath:      inputPath,
		OutputPath:     outputPath,
		Imports:        result.Imports,
		Declarations:   result.Declarations,
		Reassignments:  result.Reassignments,
		Branches:       result.Branches,
		Loops:          result.Loops,
		StatementCount: result.Statements,
		PromotionCount: result.Promotions,
		InputSize:      inputSize,
		OutputSize:     outputSize,
		Duration:       duration,
	}
}

// ToJSON returns the report as indented JSON.
func (r Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// PrintReport writes the report to stderr in the teacher's labeled,
// colorized block style.
func PrintReport(r Report) {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, boldCyan.Sprint("=== Transpile Report ==="))
	fmt.Fprintf(os.Stderr, "%s %s\n", Warn("Input:"), r.InputPath)
	fmt.Fprintf(os.Stderr, "%s %s\n", Warn("Output:"), r.OutputPath)
	if len(r.Imports) > 0 {
		fmt.Fprintf(os.Stderr, "%s %s\n", Warn("Imports:"), strings.Join(r.Imports, ", "))
	}
	fmt.Fprintf(os.Stderr, "%s %d declared, %d reassigned\n", Warn("Variables:"), r.Declarations, r.Reassignments)
	fmt.Fprintf(os.Stderr, "%s %d branches, %d loops\n", Warn("Control flow:"), r.Branches, r.Loops)
	fmt.Fprintf(os.Stderr, "%s %d statements, %d literals promoted\n", Warn("Complexity:"), r.StatementCount, r.PromotionCount)
	fmt.Fprintf(os.Stderr, "%s %d -> %d bytes\n", Warn("Size:"), r.InputSize, r.OutputSize)
	fmt.Fprintf(os.Stderr, "%s %s\n", Warn("Duration:"), r.Duration.Round(time.Millisecond))
	fmt.Fprintln(os.Stderr, boldCyan.Sprint("========================="))
}
