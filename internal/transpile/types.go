package transpile

// ModuleEntry is one binding in a ModuleRegistry: the header to #include and
// the using-declaration to emit for a module identifier.
type ModuleEntry struct {
	Header string
	Using  string
}

// ModuleRegistry is a static, lookup-only mapping from module identifier to
// its ModuleEntry. Built once per run from the builtin bindings plus any
// TOML extension supplied on the command line.
type ModuleRegistry map[string]ModuleEntry

// BuiltinRegistry returns the three module bindings shipped with the core.
// Callers must treat the returned map as read-only; use MergeRegistry to
// add entries rather than mutating it in place.
func BuiltinRegistry() ModuleRegistry {
	return ModuleRegistry{
		"BIFMath": {
			Header: "libs/BIFMath/BIFMath.h",
			Using:  "using bif::math::BIFMath;",
		},
		"BIFitertools": {
			Header: "libs/BIFitertools/BIFitertools.h",
			Using:  "using bif::itertools::BIFitertools;",
		},
		"BIFtkinter": {
			Header: "libs/BIFtkinter/BIFtkinter.h",
			Using:  "using bif::tkinter::BIFWindow;",
		},
	}
}

// Lookup returns the entry for a module identifier.
func (r ModuleRegistry) Lookup(name string) (ModuleEntry, bool) {
	e, ok := r[name]
	return e, ok
}

// Result is the output of a single Transpile run: the emitted body lines
// (unindented; the emitter applies a flat four-space prefix) and the
// ordered, deduplicated list of imported module identifiers.
type Result struct {
	Body    []string
	Imports []string

	// Counted for TranspileReport; not part of the wire contract.
	Declarations  int
	Reassignments int
	Branches      int
	Loops         int
	Promotions    int
	Statements    int
}

// state is the per-run mutable TranspileState.
type state struct {
	indentStack   []int
	expectIndent  bool
	defined       map[string]bool
	imports       []string
	importsSeen   map[string]bool
	importedNames map[string]string
	registry      ModuleRegistry

	result Result
}

func newState(registry ModuleRegistry) *state {
	return &state{
		indentStack:   []int{0},
		defined:       make(map[string]bool),
		importsSeen:   make(map[string]bool),
		importedNames: make(map[string]string),
		registry:      registry,
	}
}

func (s *state) addImport(name string) {
	if s.importsSeen[name] {
		return
	}
	s.importsSeen[name] = true
	s.imports = append(s.imports, name)
}
