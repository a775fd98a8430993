package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func testSummary() Summary {
	return Summary{
		DeckTitle: "Algebra Warm-up",
		Total:     12,
		Checked:   10,
		Correct:   7,
		Reviewed:  2,
		Duration:  15 * time.Minute,
	}
}

func TestSummaryAccuracy(t *testing.T) {
	s := testSummary()
	if got := s.Accuracy(); got != 0.7 {
		t.Errorf("Accuracy = %v, want 0.7", got)
	}

	empty := Summary{Total: 5}
	if got := empty.Accuracy(); got != 0 {
		t.Errorf("Accuracy with no checked questions = %v, want 0", got)
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Algebra Warm-up") {
		t.Error("expected deck title in view")
	}
	if !strings.Contains(view, "marked for review") {
		t.Error("expected review count in view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
