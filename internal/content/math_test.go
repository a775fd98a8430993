package content

import "testing"

func TestFormatMath(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain arithmetic", "2 + 2 = 4", "2 + 2 = 4"},
		{"superscript digit", "x^2", "x²"},
		{"superscript braced", "x^{23}", "x²³"},
		{"subscript", "a_1", "a₁"},
		{"symbol pi", `2\pi r`, "2π r"},
		{"times", `3 \times 4`, "3 × 4"},
		{"leq", `x \le 5`, "x ≤ 5"},
		{"sqrt", `\sqrt{16}`, "√(16)"},
		{"sqrt nested", `\sqrt{x^2}`, "√(x²)"},
		{"frac simple", `\frac{1}{2}`, "1⁄2"},
		{"frac compound numerator", `\frac{a + b}{2}`, "(a + b)⁄2"},
		{"infinity", `\infty`, "∞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatMath(tt.src)
			if err != nil {
				t.Fatalf("FormatMath(%q) error: %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("FormatMath(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestFormatMathErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unsupported command", `\unknowncmd`},
		{"bare backslash", `\`},
		{"unbalanced braces", `\sqrt{16`},
		{"missing frac denominator", `\frac{1}`},
		{"stray brace", "{x}"},
		{"unmappable superscript", "x^z"},
		{"missing script argument", "x^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := FormatMath(tt.src); err == nil {
				t.Errorf("FormatMath(%q) = %q, want error", tt.src, got)
			}
		})
	}
}
