// Package transpiler is the embeddable front door onto the transpile engine,
// for callers that want the source-to-source translation without the CLI.
package transpiler

import (
	"github.com/benzoXdev/transpilec/internal/transpile"
)

type (
	ModuleRegistry = transpile.ModuleRegistry
	ModuleEntry    = transpile.ModuleEntry
	Result         = transpile.Result
)

// BuiltinRegistry returns the three built-in module bindings (math,
// itertools, tkinter) with no extensions applied.
func BuiltinRegistry() ModuleRegistry {
	return transpile.BuiltinRegistry()
}

// Translate parses source and returns the assembled C++ program, using
// registry to resolve `from X import Y` module aliases. Pass
// BuiltinRegistry() when no TOML extension file is in play.
func Translate(source string, registry ModuleRegistry) (string, error) {
	result, err := transpile.Transpile(source, registry)
	if err != nil {
		return "", err
	}
	return transpile.Assemble(result, registry), nil
}

// TranslateWithResult is Translate plus the intermediate Result, for callers
// that want declaration/branch/loop counts without recomputing them.
func TranslateWithResult(source string, registry ModuleRegistry) (string, *Result, error) {
	result, err := transpile.Transpile(source, registry)
	if err != nil {
		return "", nil, err
	}
	return transpile.Assemble(result, registry), result, nil
}
