package transpile

import (
	"os"
	"strings"
)

const preamble = "#include <iostream>\n#include <string>\n#include <vector>\n"

const inputShim = `std::string ` + inputShimName + `(const std::string& prompt) {
    if (!prompt.empty()) {
        std::cout << prompt;
    }
    std::string line;
    std::getline(std::cin, line);
    return line;
}
`

// Assemble concatenates the fixed preamble, the per-run header includes and
// using-declarations for every imported module (in first-seen order), the
// input shim, and a main() wrapping the emitted body — the exact ordering
// specified for the output artifact.
func Assemble(result *Result, registry ModuleRegistry) string {
	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString("\n")

	for _, mod := range result.Imports {
		entry, _ := registry.Lookup(mod)
		sb.WriteString("#include \"" + entry.Header + "\"\n")
	}
	sb.WriteString("\n")

	for _, mod := range result.Imports {
		entry, _ := registry.Lookup(mod)
		sb.WriteString(entry.Using + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(inputShim)
	sb.WriteString("\n")

	sb.WriteString("int main() {\n")
	for _, line := range result.Body {
		sb.WriteString("    " + line + "\n")
	}
	sb.WriteString("    return 0;\n")
	sb.WriteString("}\n")

	return sb.String()
}

// WriteIfDifferent writes content to path only if the existing file (if
// any) has different bytes, returning whether a write happened. This is the
// correctness contract the build-freshness check depends on: an unchanged
// emit must not touch the source file's mtime.
func WriteIfDifferent(path string, content string) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && string(existing) == content {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
