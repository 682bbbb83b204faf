package transpile

const (
	version = "1.0.0"
)

// Banner returns the colored CLI banner, printed once per run.
func Banner() string {
	return boldCyan.Sprint("transpilec") + " | v." + version
}

// Version returns the bare version string.
func Version() string { return version }
