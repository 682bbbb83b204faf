package transpile

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"
)

// maxInputSize guards against accidentally pointing the translator at a
// multi-gigabyte file.
const maxInputSize = 100 * 1024 * 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadSource reads and validates an input script: it must exist, be a
// regular file under maxInputSize, and decode as valid UTF-8. Any BOM is
// stripped before the scanner ever sees the first line.
func ReadSource(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("Input file not found.")
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("input is a directory, not a file: %s", path)
	}
	if fi.Size() > maxInputSize {
		return "", fmt.Errorf("file too large (%d bytes, max %d)", fi.Size(), maxInputSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8 — save it as UTF-8 (with or without BOM)")
	}
	return string(data), nil
}
