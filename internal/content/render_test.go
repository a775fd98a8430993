package content

import (
	"strings"
	"testing"
)

func TestRenderPlain(t *testing.T) {
	r := NewPlainRenderer()

	got := r.Render("Solve $x^2 = 4$ for x.")
	if got.Degraded() {
		t.Error("expected no degradation")
	}
	if want := "Solve x² = 4 for x."; got.String() != want {
		t.Errorf("Render = %q, want %q", got.String(), want)
	}
}

func TestRenderDegradesBadFormula(t *testing.T) {
	r := NewPlainRenderer()

	got := r.Render(`Before $\badcmd{x}$ after`)
	if !got.Degraded() {
		t.Fatal("expected degraded result")
	}
	out := got.String()
	if !strings.Contains(out, `\badcmd{x}`) {
		t.Errorf("degraded output should keep the raw source, got %q", out)
	}
	if !strings.Contains(out, "[formula unavailable]") {
		t.Errorf("degraded output should carry the marker, got %q", out)
	}
	// Siblings render normally.
	if !strings.Contains(out, "Before ") || !strings.Contains(out, " after") {
		t.Errorf("sibling text fragments should survive, got %q", out)
	}
}

func TestRenderScopesFailurePerFragment(t *testing.T) {
	r := NewPlainRenderer()

	got := r.Render(`$x^2$ and $\nope$`)
	if len(got.Fragments) != 3 {
		t.Fatalf("fragments = %d, want 3", len(got.Fragments))
	}
	if got.Fragments[0].Degraded {
		t.Error("valid formula should not degrade")
	}
	if got.Fragments[0].Output != "x²" {
		t.Errorf("first fragment = %q, want %q", got.Fragments[0].Output, "x²")
	}
	if !got.Fragments[2].Degraded {
		t.Error("invalid formula should degrade")
	}
	if got.Fragments[2].Err == nil {
		t.Error("degraded fragment should keep its error")
	}
}

func TestRenderEmpty(t *testing.T) {
	r := NewPlainRenderer()
	got := r.Render("")
	if got.String() != "" || got.Degraded() {
		t.Errorf("empty content should render empty, got %q", got.String())
	}
}
