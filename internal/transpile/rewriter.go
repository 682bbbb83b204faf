package transpile

import "strings"

// logicKeywords lists the call-form names recognized by rewriteLogicFunctions,
// longest-irrelevant since the three are mutually exclusive prefixes.
var logicKeywords = []string{"not", "and", "or"}

var keywordReplacements = map[string]string{
	"and":   "&&",
	"or":    "||",
	"not":   "!",
	"True":  "true",
	"False": "false",
	"None":  "nullptr",
}

// NormalizeExpr runs the fixed-order expression pass pipeline described by
// the transpiler's wire contract: logic-functions, keyword replacement,
// input-call rewrite, module-access rewrite, imported-name qualification
// and, only when the result still contains a division, integer-literal
// promotion.
func NormalizeExpr(expr string, imports []string, importedNames map[string]string) string {
	e, _ := NormalizeExprCounted(expr, imports, importedNames)
	return e
}

// NormalizeExprCounted is NormalizeExpr plus the number of integer literals
// the final pass promoted to floating point, for TranspileReport's
// PromotionCount.
func NormalizeExprCounted(expr string, imports []string, importedNames map[string]string) (string, int) {
	e := rewriteLogicFunctions(expr)
	e = replaceKeywords(e)
	e = rewriteInputCall(e)
	e = rewriteModuleAccess(e, imports)
	e = qualifyImportedNames(e, importedNames)
	promoted := 0
	if ExprHasDivision(e) {
		e, promoted = promoteIntLiterals(e)
	}
	return e, promoted
}

// rewriteLogicFunctions rewrites and(a,b,...)/or(a,b,...)/not(x) call forms
// into their C++ boolean-operator equivalents. Any call whose arity does not
// match (not with != 1 arg, and/or with < 2 args) is left verbatim.
func rewriteLogicFunctions(expr string) string {
	mask := StringMask(expr)
	var out strings.Builder
	i := 0
	for i < len(expr) {
		if !mask[i] && IsIdentBoundary(expr, i) {
			if name, ok := matchLogicPrefix(expr, i); ok {
				openPos := i + len(name)
				if closePos, ok2 := FindMatchingParen(expr, openPos); ok2 {
					argsText := expr[openPos+1 : closePos]
					args := SplitTopLevelArgs(argsText)
					if rewritten, handled := applyLogicCall(name, args); handled {
						out.WriteString(rewritten)
						i = closePos + 1
						continue
					}
				}
			}
		}
		out.WriteByte(expr[i])
		i++
	}
	return out.String()
}

func matchLogicPrefix(expr string, i int) (string, bool) {
	for _, name := range logicKeywords {
		if strings.HasPrefix(expr[i:], name+"(") {
			return name, true
		}
	}
	return "", false
}

func applyLogicCall(name string, args []string) (string, bool) {
	switch name {
	case "not":
		if len(args) == 1 {
			return "(!(" + rewriteLogicFunctions(strings.TrimSpace(args[0])) + "))", true
		}
	case "and":
		if len(args) >= 2 {
			return joinLogicArgs(args, "&&"), true
		}
	case "or":
		if len(args) >= 2 {
			return joinLogicArgs(args, "||"), true
		}
	}
	return "", false
}

func joinLogicArgs(args []string, op string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = "(" + rewriteLogicFunctions(strings.TrimSpace(a)) + ")"
	}
	return "(" + strings.Join(parts, " "+op+" ") + ")"
}

// replaceKeywords substitutes whole-word and/or/not/True/False/None with
// their C++ equivalents, outside strings. By this point and/or/not remain
// either as bare boolean operators or as the head of a call whose arity the
// logic-function pass left verbatim; both are replaced here (and(a) -> &&(a)).
func replaceKeywords(expr string) string {
	mask := StringMask(expr)
	var out strings.Builder
	i := 0
	for i < len(expr) {
		if !mask[i] && isIdentChar(expr[i]) && IsIdentBoundary(expr, i) {
			j := i
			for j < len(expr) && !mask[j] && isIdentChar(expr[j]) {
				j++
			}
			word := expr[i:j]
			if rep, ok := keywordReplacements[word]; ok {
				out.WriteString(rep)
			} else {
				out.WriteString(word)
			}
			i = j
			continue
		}
		out.WriteByte(expr[i])
		i++
	}
	return out.String()
}

const inputShimName = "bif_input"

// rewriteInputCall replaces literal input( with the runtime shim's name.
func rewriteInputCall(expr string) string {
	mask := StringMask(expr)
	var out strings.Builder
	i := 0
	for i < len(expr) {
		if !mask[i] && IsIdentBoundary(expr, i) && strings.HasPrefix(expr[i:], "input(") {
			out.WriteString(inputShimName + "(")
			i += len("input(")
			continue
		}
		out.WriteByte(expr[i])
		i++
	}
	return out.String()
}

// rewriteModuleAccess replaces M. with M:: for every module M present in
// the current run's ordered imports list.
func rewriteModuleAccess(expr string, imports []string) string {
	if len(imports) == 0 {
		return expr
	}
	mask := StringMask(expr)
	var out strings.Builder
	i := 0
	for i < len(expr) {
		matched := false
		if !mask[i] && IsIdentBoundary(expr, i) {
			for _, m := range imports {
				token := m + "."
				if strings.HasPrefix(expr[i:], token) {
					out.WriteString(m + "::")
					i += len(token)
					matched = true
					break
				}
			}
		}
		if matched {
			continue
		}
		out.WriteByte(expr[i])
		i++
	}
	return out.String()
}

// qualifyImportedNames replaces bare identifiers bound via `from M import
// name` with Module::name.
func qualifyImportedNames(expr string, importedNames map[string]string) string {
	if len(importedNames) == 0 {
		return expr
	}
	mask := StringMask(expr)
	var out strings.Builder
	i := 0
	for i < len(expr) {
		if !mask[i] && isIdentChar(expr[i]) && IsIdentBoundary(expr, i) {
			j := i
			for j < len(expr) && !mask[j] && isIdentChar(expr[j]) {
				j++
			}
			word := expr[i:j]
			if mod, ok := importedNames[word]; ok {
				out.WriteString(mod + "::" + word)
			} else {
				out.WriteString(word)
			}
			i = j
			continue
		}
		out.WriteByte(expr[i])
		i++
	}
	return out.String()
}

// promoteIntLiterals appends .0 to any bare integer literal (no '.' and no
// exponent) so division is forced to floating-point semantics. Only called
// when the expression contains a division. Returns the rewritten expression
// and the number of literals actually promoted.
func promoteIntLiterals(expr string) (string, int) {
	mask := StringMask(expr)
	var out strings.Builder
	promoted := 0
	i := 0
	for i < len(expr) {
		if !mask[i] && isDigit(expr[i]) && IsIdentBoundary(expr, i) {
			k := i
			for k < len(expr) && isDigit(expr[k]) {
				k++
			}
			hasDot := false
			hasExp := false
			if k < len(expr) && expr[k] == '.' && k+1 < len(expr) && isDigit(expr[k+1]) {
				hasDot = true
				k++
				for k < len(expr) && isDigit(expr[k]) {
					k++
				}
			}
			if k < len(expr) && (expr[k] == 'e' || expr[k] == 'E') {
				m := k + 1
				if m < len(expr) && (expr[m] == '+' || expr[m] == '-') {
					m++
				}
				if m < len(expr) && isDigit(expr[m]) {
					hasExp = true
					k = m
					for k < len(expr) && isDigit(expr[k]) {
						k++
					}
				}
			}
			literal := expr[i:k]
			out.WriteString(literal)
			if !hasDot && !hasExp {
				out.WriteString(".0")
				promoted++
			}
			i = k
			continue
		}
		out.WriteByte(expr[i])
		i++
	}
	return out.String(), promoted
}
