package content

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Fragment
	}{
		{
			name: "plain text only",
			raw:  "What is two plus two?",
			want: []Fragment{{Kind: KindText, Source: "What is two plus two?"}},
		},
		{
			name: "single formula",
			raw:  "$x^2$",
			want: []Fragment{{Kind: KindMath, Source: "x^2"}},
		},
		{
			name: "text around formula",
			raw:  "Solve $x^2 = 4$ for x.",
			want: []Fragment{
				{Kind: KindText, Source: "Solve "},
				{Kind: KindMath, Source: "x^2 = 4"},
				{Kind: KindText, Source: " for x."},
			},
		},
		{
			name: "multiple formulas",
			raw:  "$a$ and $b$",
			want: []Fragment{
				{Kind: KindMath, Source: "a"},
				{Kind: KindText, Source: " and "},
				{Kind: KindMath, Source: "b"},
			},
		},
		{
			name: "escaped dollar is literal",
			raw:  `costs \$5`,
			want: []Fragment{{Kind: KindText, Source: "costs $5"}},
		},
		{
			name: "unterminated formula stays text",
			raw:  "price is $x plus tax",
			want: []Fragment{{Kind: KindText, Source: "price is $x plus tax"}},
		},
		{
			name: "empty string",
			raw:  "",
			want: nil,
		},
		{
			name: "empty formula",
			raw:  "a$$b",
			want: []Fragment{
				{Kind: KindText, Source: "a"},
				{Kind: KindMath, Source: ""},
				{Kind: KindText, Source: "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}
