package content

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// RenderedFragment is the outcome of rendering a single fragment. A failed
// math fragment degrades to its raw source with Degraded set; the error is
// kept for inspection but is never propagated to the caller.
type RenderedFragment struct {
	Fragment Fragment
	Output   string
	Degraded bool
	Err      error
}

// Rendered is the displayable result of rendering a content string.
type Rendered struct {
	Fragments []RenderedFragment
}

// String joins fragment outputs into the final display string.
func (r Rendered) String() string {
	var b strings.Builder
	for _, f := range r.Fragments {
		b.WriteString(f.Output)
	}
	return b.String()
}

// Degraded reports whether any fragment failed to render.
func (r Rendered) Degraded() bool {
	for _, f := range r.Fragments {
		if f.Degraded {
			return true
		}
	}
	return false
}

// Renderer turns raw content into displayable terminal output. Failures are
// scoped to the fragment that caused them: a formula that cannot be rendered
// falls back to its source text with a visible marker, and sibling fragments
// render normally. Render never returns an error and never panics.
type Renderer struct {
	mathStyle   lipgloss.Style
	markerStyle lipgloss.Style
	plain       bool
}

// NewRenderer creates a Renderer with the standard theme styling.
func NewRenderer() *Renderer {
	return &Renderer{
		mathStyle:   lipgloss.NewStyle().Foreground(theme.Secondary),
		markerStyle: lipgloss.NewStyle().Foreground(theme.Error),
	}
}

// NewPlainRenderer creates a Renderer without styling, for non-TTY output.
func NewPlainRenderer() *Renderer {
	return &Renderer{plain: true}
}

// Render parses raw content and renders every fragment, degrading failed
// formulas in place.
func (r *Renderer) Render(raw string) Rendered {
	frags := Parse(raw)
	out := Rendered{Fragments: make([]RenderedFragment, 0, len(frags))}

	for _, f := range frags {
		out.Fragments = append(out.Fragments, r.renderFragment(f))
	}
	return out
}

func (r *Renderer) renderFragment(f Fragment) RenderedFragment {
	if f.Kind == KindText {
		return RenderedFragment{Fragment: f, Output: f.Source}
	}

	formatted, err := FormatMath(f.Source)
	if err != nil {
		return RenderedFragment{
			Fragment: f,
			Output:   f.Source + " " + r.marker(),
			Degraded: true,
			Err:      err,
		}
	}

	if r.plain {
		return RenderedFragment{Fragment: f, Output: formatted}
	}
	return RenderedFragment{Fragment: f, Output: r.mathStyle.Render(formatted)}
}

func (r *Renderer) marker() string {
	const marker = "[formula unavailable]"
	if r.plain {
		return marker
	}
	return r.markerStyle.Render(marker)
}
