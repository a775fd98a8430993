package content

import (
	"fmt"
	"strings"
)

// symbols maps supported TeX commands to unicode replacements.
var symbols = map[string]string{
	"pi":     "π",
	"theta":  "θ",
	"alpha":  "α",
	"beta":   "β",
	"gamma":  "γ",
	"delta":  "δ",
	"lambda": "λ",
	"mu":     "μ",
	"sigma":  "σ",
	"times":  "×",
	"cdot":   "·",
	"div":    "÷",
	"pm":     "±",
	"le":     "≤",
	"leq":    "≤",
	"ge":     "≥",
	"geq":    "≥",
	"ne":     "≠",
	"neq":    "≠",
	"approx": "≈",
	"infty":  "∞",
	"sum":    "Σ",
	"int":    "∫",
	"to":     "→",
	"degree": "°",
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', 'n': 'ⁿ', 'x': 'ˣ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', 'n': 'ₙ',
}

// FormatMath converts a small TeX subset to a unicode rendering suitable for
// a terminal. Supported: \frac{a}{b}, \sqrt{x}, ^ and _ scripts, and the
// symbol commands above. Anything outside that subset is an error; callers
// are expected to degrade the fragment rather than fail the whole content.
func FormatMath(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("empty formula")
	}

	var out strings.Builder
	runes := []rune(src)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			name, rest, err := readCommand(runes[i+1:])
			if err != nil {
				return "", err
			}
			rendered, consumed, err := renderCommand(name, rest)
			if err != nil {
				return "", err
			}
			out.WriteString(rendered)
			i += len(name) + consumed
		case '^':
			arg, consumed, err := readScriptArg(runes[i+1:])
			if err != nil {
				return "", fmt.Errorf("superscript: %w", err)
			}
			mapped, err := mapScript(arg, superscripts)
			if err != nil {
				return "", err
			}
			out.WriteString(mapped)
			i += consumed
		case '_':
			arg, consumed, err := readScriptArg(runes[i+1:])
			if err != nil {
				return "", fmt.Errorf("subscript: %w", err)
			}
			mapped, err := mapScript(arg, subscripts)
			if err != nil {
				return "", err
			}
			out.WriteString(mapped)
			i += consumed
		case '{', '}':
			return "", fmt.Errorf("unexpected %q at position %d", r, i)
		default:
			out.WriteRune(r)
		}
	}

	return out.String(), nil
}

// readCommand reads the command name following a backslash.
func readCommand(runes []rune) (string, []rune, error) {
	var name strings.Builder
	for _, r := range runes {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			name.WriteRune(r)
			continue
		}
		break
	}
	if name.Len() == 0 {
		return "", nil, fmt.Errorf("bare backslash")
	}
	return name.String(), runes[name.Len():], nil
}

// renderCommand renders a command given the runes that follow its name.
// Returns the rendering and how many of those runes were consumed.
func renderCommand(name string, rest []rune) (string, int, error) {
	if sym, ok := symbols[name]; ok {
		return sym, 0, nil
	}

	switch name {
	case "sqrt":
		arg, consumed, err := readBraced(rest)
		if err != nil {
			return "", 0, fmt.Errorf("\\sqrt: %w", err)
		}
		inner, err := FormatMath(arg)
		if err != nil {
			return "", 0, err
		}
		return "√(" + inner + ")", consumed, nil
	case "frac":
		num, n1, err := readBraced(rest)
		if err != nil {
			return "", 0, fmt.Errorf("\\frac numerator: %w", err)
		}
		den, n2, err := readBraced(rest[n1:])
		if err != nil {
			return "", 0, fmt.Errorf("\\frac denominator: %w", err)
		}
		top, err := FormatMath(num)
		if err != nil {
			return "", 0, err
		}
		bottom, err := FormatMath(den)
		if err != nil {
			return "", 0, err
		}
		return fracString(top, bottom), n1 + n2, nil
	}

	return "", 0, fmt.Errorf("unsupported command \\%s", name)
}

// fracString renders a fraction inline, parenthesizing compound operands.
func fracString(top, bottom string) string {
	if strings.ContainsAny(top, " +-") {
		top = "(" + top + ")"
	}
	if strings.ContainsAny(bottom, " +-") {
		bottom = "(" + bottom + ")"
	}
	return top + "⁄" + bottom
}

// readBraced reads a {...} group, honoring nesting.
func readBraced(runes []rune) (string, int, error) {
	if len(runes) == 0 || runes[0] != '{' {
		return "", 0, fmt.Errorf("expected '{'")
	}
	depth := 0
	for i, r := range runes {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return string(runes[1:i]), i + 1, nil
			}
		}
	}
	return "", 0, fmt.Errorf("unbalanced braces")
}

// readScriptArg reads the argument of ^ or _: a single rune or a braced group.
func readScriptArg(runes []rune) (string, int, error) {
	if len(runes) == 0 {
		return "", 0, fmt.Errorf("missing argument")
	}
	if runes[0] == '{' {
		arg, consumed, err := readBraced(runes)
		return arg, consumed, err
	}
	return string(runes[0]), 1, nil
}

// mapScript converts each rune through the given script table.
func mapScript(arg string, table map[rune]rune) (string, error) {
	var out strings.Builder
	for _, r := range arg {
		mapped, ok := table[r]
		if !ok {
			return "", fmt.Errorf("no script form for %q", r)
		}
		out.WriteRune(mapped)
	}
	return out.String(), nil
}
