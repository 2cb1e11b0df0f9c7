package errors

import (
	"strings"
	"testing"
)

func TestFormatWithPosition(t *testing.T) {
	r := NewReporter("prog.arcs", "let x = input\nreturn x / 0\n")
	err := DivByZero().At(Position{Line: 2, Column: 11}, 1)

	out := r.Format(err)
	if !strings.Contains(out, "E0200") {
		t.Fatalf("expected error code in output, got:\n%s", out)
	}
	if !strings.Contains(out, "prog.arcs:2:11") {
		t.Fatalf("expected location in output, got:\n%s", out)
	}
}

func TestFormatWithoutPosition(t *testing.T) {
	r := NewReporter("", "")
	err := InputArityMismatch(1, 2)

	out := r.Format(err)
	if !strings.Contains(out, "E0100") {
		t.Fatalf("expected error code in output, got:\n%s", out)
	}
	if !strings.Contains(out, "expected 2 input(s), got 1") {
		t.Fatalf("expected note in output, got:\n%s", out)
	}
}

func TestErrorCategory(t *testing.T) {
	if GetErrorCategory(ErrorZeroSizedArray) != "Elaboration" {
		t.Fatal("expected zero-sized array to be categorized as Elaboration")
	}
	if GetErrorCategory(ErrorDivByZero) != "Witness Engine" {
		t.Fatal("expected div-by-zero to be categorized as Witness Engine")
	}
}
