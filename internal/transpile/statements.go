package transpile

import "strings"

// Transpile runs the full statement-level line driver over source and
// returns the emitted body lines plus the ordered imports list, or the
// first ParseError encountered.
func Transpile(source string, registry ModuleRegistry) (*Result, error) {
	st := newState(registry)
	lines := strings.Split(source, "\n")

	for idx, raw := range lines {
		lineNo := idx + 1
		line := strings.TrimRight(raw, "\r")
		line = StripComment(line)
		line = strings.TrimRight(line, " ")
		// Leading-tab detection must run before indentation is measured: a
		// tab anywhere on the line is rejected outright.
		if strings.ContainsRune(line, '\t') {
			return nil, parseErr(lineNo, "Tabs are not allowed. Use 4 spaces.")
		}
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if indent%4 != 0 {
			return nil, parseErr(lineNo, "Indentation must be multiples of 4 spaces.")
		}

		top := st.indentStack[len(st.indentStack)-1]
		switch {
		case indent > top:
			if !st.expectIndent {
				return nil, parseErr(lineNo, "Unexpected indentation.")
			}
			st.indentStack = append(st.indentStack, indent)
			st.expectIndent = false
		case indent < top:
			for len(st.indentStack) > 1 && indent < st.indentStack[len(st.indentStack)-1] {
				st.result.Body = append(st.result.Body, "}")
				st.indentStack = st.indentStack[:len(st.indentStack)-1]
			}
			if indent != st.indentStack[len(st.indentStack)-1] {
				return nil, parseErr(lineNo, "Unexpected indentation.")
			}
		}
		if st.expectIndent && indent == st.indentStack[len(st.indentStack)-1] {
			return nil, parseErr(lineNo, "Expected indented block.")
		}

		emitted, err := classify(st, trimmed, lineNo)
		if err != nil {
			return nil, err
		}
		st.result.Statements++
		st.result.Body = append(st.result.Body, emitted...)
	}

	for len(st.indentStack) > 1 {
		st.result.Body = append(st.result.Body, "}")
		st.indentStack = st.indentStack[:len(st.indentStack)-1]
	}

	st.result.Imports = st.imports
	return &st.result, nil
}

// classify dispatches a non-blank, comment-stripped, leading-space-trimmed
// line to the statement handler matching its prefix, per the transpiler's
// statement table.
func classify(st *state, stripped string, lineNo int) ([]string, error) {
	switch {
	case strings.HasPrefix(stripped, "import "):
		return nil, handleImport(st, stripped, lineNo)
	case strings.HasPrefix(stripped, "from "):
		return nil, handleFromImport(st, stripped, lineNo)
	case strings.HasPrefix(stripped, "for ") && strings.HasSuffix(stripped, ":"):
		return handleFor(st, stripped, lineNo)
	case strings.HasPrefix(stripped, "if ") && strings.HasSuffix(stripped, ":"):
		expr := strings.TrimSpace(stripped[len("if ") : len(stripped)-1])
		norm, promoted := NormalizeExprCounted(expr, st.imports, st.importedNames)
		st.expectIndent = true
		st.result.Branches++
		st.result.Promotions += promoted
		return []string{"if (" + norm + ") {"}, nil
	case strings.HasPrefix(stripped, "while ") && strings.HasSuffix(stripped, ":"):
		expr := strings.TrimSpace(stripped[len("while ") : len(stripped)-1])
		norm, promoted := NormalizeExprCounted(expr, st.imports, st.importedNames)
		st.expectIndent = true
		st.result.Loops++
		st.result.Promotions += promoted
		return []string{"while (" + norm + ") {"}, nil
	case stripped == "else:":
		st.expectIndent = true
		return []string{"else {"}, nil
	case strings.HasPrefix(stripped, "print(") && strings.HasSuffix(stripped, ")"):
		return handlePrint(st, stripped), nil
	default:
		return handleAssignOrExpr(st, stripped, lineNo)
	}
}

func handleImport(st *state, stripped string, lineNo int) error {
	name := strings.TrimSpace(stripped[len("import "):])
	if !IsValidIdentifier(name) {
		return parseErr(lineNo, "invalid import name: %s", name)
	}
	if _, ok := st.registry.Lookup(name); !ok {
		return parseErr(lineNo, "unknown module: %s", name)
	}
	st.addImport(name)
	return nil
}

func handleFromImport(st *state, stripped string, lineNo int) error {
	rest := strings.TrimSpace(stripped[len("from "):])
	sep := " import "
	idx := strings.Index(rest, sep)
	if idx < 0 {
		return parseErr(lineNo, "invalid import syntax")
	}
	moduleName := strings.TrimSpace(rest[:idx])
	namesPart := strings.TrimSpace(rest[idx+len(sep):])
	if !IsValidIdentifier(moduleName) {
		return parseErr(lineNo, "invalid import name: %s", moduleName)
	}
	if _, ok := st.registry.Lookup(moduleName); !ok {
		return parseErr(lineNo, "unknown module: %s", moduleName)
	}
	if namesPart == "" {
		return parseErr(lineNo, "no imports listed")
	}
	names := SplitTopLevelArgs(namesPart)
	if len(names) == 0 {
		return parseErr(lineNo, "no imports listed")
	}
	st.addImport(moduleName)
	for _, n := range names {
		if !IsValidIdentifier(n) {
			return parseErr(lineNo, "invalid import name: %s", n)
		}
		st.importedNames[n] = moduleName
	}
	return nil
}

func handleFor(st *state, stripped string, lineNo int) ([]string, error) {
	inner := strings.TrimSpace(stripped[len("for ") : len(stripped)-1])
	idx := -1
	mask := StringMask(inner)
	for i := 0; i+3 < len(inner); i++ {
		if !mask[i] && inner[i:i+4] == " in " {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, parseErr(lineNo, "invalid for-loop syntax")
	}
	name := strings.TrimSpace(inner[:idx])
	listText := strings.TrimSpace(inner[idx+4:])
	if !IsValidIdentifier(name) {
		return nil, parseErr(lineNo, "invalid for-loop syntax")
	}
	items := SplitTopLevelArgs(listText)
	if len(items) == 0 {
		return nil, parseErr(lineNo, "empty for-loop iterable")
	}
	normItems := make([]string, len(items))
	for i, item := range items {
		norm, promoted := NormalizeExprCounted(item, st.imports, st.importedNames)
		normItems[i] = norm
		st.result.Promotions += promoted
	}
	st.expectIndent = true
	st.result.Loops++
	header := "for (auto " + name + " : std::vector<double>{" + strings.Join(normItems, ", ") + "}) {"
	return []string{header}, nil
}

func handlePrint(st *state, stripped string) []string {
	argsText := stripped[len("print(") : len(stripped)-1]
	args := SplitTopLevelArgs(argsText)
	if len(args) == 0 {
		return []string{"std::cout << std::endl;"}
	}
	normArgs := make([]string, len(args))
	for i, a := range args {
		norm, promoted := NormalizeExprCounted(a, st.imports, st.importedNames)
		normArgs[i] = norm
		st.result.Promotions += promoted
	}
	var sb strings.Builder
	sb.WriteString("std::cout")
	for i, a := range normArgs {
		if i > 0 {
			sb.WriteString(` << " "`)
		}
		sb.WriteString(" << ")
		sb.WriteString(a)
	}
	sb.WriteString(" << std::endl;")
	return []string{sb.String()}
}

func handleAssignOrExpr(st *state, stripped string, lineNo int) ([]string, error) {
	idx := findAssignEquals(stripped)
	if idx < 0 {
		norm, promoted := NormalizeExprCounted(stripped, st.imports, st.importedNames)
		st.result.Promotions += promoted
		return []string{norm + ";"}, nil
	}
	name := strings.TrimSpace(stripped[:idx])
	if !IsValidIdentifier(name) {
		return nil, parseErr(lineNo, "invalid variable name: %s", name)
	}
	exprText := strings.TrimSpace(stripped[idx+1:])
	norm, promoted := NormalizeExprCounted(exprText, st.imports, st.importedNames)
	st.result.Promotions += promoted
	if st.defined[name] {
		st.result.Reassignments++
		return []string{name + " = " + norm + ";"}, nil
	}
	st.defined[name] = true
	st.result.Declarations++
	return []string{"auto " + name + " = " + norm + ";"}, nil
}

// findAssignEquals locates the first outside-string '=' that is not part of
// ==, !=, <=, or >=, i.e. a genuine assignment operator. Returns -1 if none.
func findAssignEquals(s string) int {
	mask := StringMask(s)
	for i := 0; i < len(s); i++ {
		if s[i] != '=' || mask[i] {
			continue
		}
		if i > 0 {
			prev := s[i-1]
			if prev == '!' || prev == '<' || prev == '>' || prev == '=' {
				continue
			}
		}
		if i+1 < len(s) && s[i+1] == '=' {
			continue
		}
		return i
	}
	return -1
}
