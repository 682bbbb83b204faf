package transpile

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// registryFile is the shape of an optional --registry TOML extension file:
//
//	[modules.BIFJson]
//	header = "libs/BIFJson/BIFJson.h"
//	using  = "using bif::json::BIFJson;"
type registryFile struct {
	Modules map[string]moduleTOML `toml:"modules"`
}

type moduleTOML struct {
	Header string `toml:"header"`
	Using  string `toml:"using"`
}

// LoadRegistryExtension parses a TOML module-registry extension file into a
// plain map of additional bindings.
func LoadRegistryExtension(path string) (map[string]ModuleEntry, error) {
	var doc registryFile
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("parsing registry file: %w", err)
	}
	extra := make(map[string]ModuleEntry, len(doc.Modules))
	for name, m := range doc.Modules {
		extra[name] = ModuleEntry{Header: m.Header, Using: m.Using}
	}
	return extra, nil
}

// MergeRegistry returns a new ModuleRegistry combining base with extra. It
// is a configuration error for extra to redefine any identifier already
// present in base — the three builtin modules are guaranteed regardless of
// configuration.
func MergeRegistry(base ModuleRegistry, extra map[string]ModuleEntry) (ModuleRegistry, error) {
	merged := make(ModuleRegistry, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for name, entry := range extra {
		if _, exists := base[name]; exists {
			return nil, fmt.Errorf("registry file cannot redefine builtin module: %s", name)
		}
		merged[name] = entry
	}
	return merged, nil
}
