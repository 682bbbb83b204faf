package transpile

import "testing"

func TestNormalizeExprLogicFunctions(t *testing.T) {
	got := NormalizeExpr("and(True, not(False))", nil, nil)
	want := "((true) && ((!(false))))"
	if got != want {
		t.Errorf("NormalizeExpr logic rewrite = %q, want %q", got, want)
	}
}

func TestNormalizeExprOrNested(t *testing.T) {
	got := NormalizeExpr("or(a, and(b, c))", nil, nil)
	want := "((a) || (((b) && (c))))"
	if got != want {
		t.Errorf("NormalizeExpr = %q, want %q", got, want)
	}
}

func TestNormalizeExprKeywords(t *testing.T) {
	got := NormalizeExpr("x == None", nil, nil)
	if got != "x == nullptr" {
		t.Errorf("got %q, want %q", got, "x == nullptr")
	}
}

func TestNormalizeExprKeywordsNotACallForm(t *testing.T) {
	got := NormalizeExpr("a and b", nil, nil)
	if got != "a && b" {
		t.Errorf("got %q, want %q", got, "a && b")
	}
}

func TestNormalizeExprInputCall(t *testing.T) {
	got := NormalizeExpr(`input("name: ")`, nil, nil)
	want := `bif_input("name: ")`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeExprModuleAccess(t *testing.T) {
	got := NormalizeExpr("BIFMath.sqrt(4)", []string{"BIFMath"}, nil)
	want := "BIFMath::sqrt(4)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeExprImportedNameQualification(t *testing.T) {
	got := NormalizeExpr("sqrt(4)", nil, map[string]string{"sqrt": "BIFMath"})
	want := "BIFMath::sqrt(4)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeExprIntPromotionOnlyWithDivision(t *testing.T) {
	withDiv := NormalizeExpr("1 / 2", nil, nil)
	if withDiv != "1.0 / 2.0" {
		t.Errorf("got %q, want %q", withDiv, "1.0 / 2.0")
	}
	withoutDiv := NormalizeExpr("1 + 2", nil, nil)
	if withoutDiv != "1 + 2" {
		t.Errorf("got %q, want %q", withoutDiv, "1 + 2")
	}
}

func TestNormalizeExprIntPromotionSkipsFloats(t *testing.T) {
	got := NormalizeExpr("1.5 / 2", nil, nil)
	if got != "1.5 / 2.0" {
		t.Errorf("got %q, want %q", got, "1.5 / 2.0")
	}
}

func TestNormalizeExprLogicArityMismatchFallsBackToOperator(t *testing.T) {
	// and() with a single argument doesn't match the call-form rewrite, so
	// "and" only gets the plain keyword substitution applied afterward.
	got := NormalizeExpr("and(a)", nil, nil)
	if got != "&&(a)" {
		t.Errorf("got %q, want %q", got, "&&(a)")
	}
}
