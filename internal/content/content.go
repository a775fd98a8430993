package content

import "strings"

// FragmentKind distinguishes plain text from embedded formulas.
type FragmentKind int

const (
	KindText FragmentKind = iota
	KindMath
)

// Fragment is a single piece of question content: either plain text or the
// source of a formula delimited by $...$ in the raw content string.
type Fragment struct {
	Kind   FragmentKind
	Source string
}

// Parse splits raw content into text and math fragments. Formulas are
// delimited by single dollar signs; "\$" escapes a literal dollar. An
// unterminated formula is treated as plain text from the opening delimiter,
// so malformed content still parses.
func Parse(raw string) []Fragment {
	var frags []Fragment
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			frags = append(frags, Fragment{Kind: KindText, Source: text.String()})
			text.Reset()
		}
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && runes[i+1] == '$' {
			text.WriteRune('$')
			i++
			continue
		}
		if r != '$' {
			text.WriteRune(r)
			continue
		}

		// Find the closing delimiter.
		end := -1
		for j := i + 1; j < len(runes); j++ {
			if runes[j] == '$' && runes[j-1] != '\\' {
				end = j
				break
			}
		}
		if end < 0 {
			// No closing $: keep the rest as text.
			text.WriteString(string(runes[i:]))
			break
		}

		flush()
		frags = append(frags, Fragment{Kind: KindMath, Source: string(runes[i+1 : end])})
		i = end
	}
	flush()

	return frags
}
