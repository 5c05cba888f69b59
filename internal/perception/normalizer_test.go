package perception

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// English
		{"plain set", "set to 42", "set to 42"},
		{"set counter to n", "set counter to 50", "set counter to 50"},
		{"increase synonym", "increase the counter", "increment the counter"},
		{"add synonym", "add", "increment"},
		{"go down idiom", "go down", "decrement"},
		{"count up idiom", "count up", "increment"},
		{"one more idiom", "one more", "increment"},
		{"clear synonym", "clear it", "reset it"},
		{"back to zero", "back to zero", "reset"},
		{"plus shorthand", "+1", "increment"},
		{"minus shorthand", "-1", "decrement"},
		{"shorthand after noun", "counter +1", "counter increment"},

		// Japanese
		{"ja polite increment", "カウンターを増やしてください", "counter increment"},
		{"ja increment stem", "増やして", "increment"},
		{"ja reset polite", "リセットして", "reset"},
		{"ja reset plain", "リセット", "reset"},
		{"ja zero reset", "0にリセット", "to 0 reset"},
		{"ja set polite", "42に設定してください", "set to 42"},
		{"ja set colloquial", "値を42にして", "number set to 42"},
		{"ja fullwidth digits", "４２に設定", "set to 42"},
		{"ja countdown compound", "カウントダウン", "decrement"},

		// Korean
		{"ko polite increment", "카운터를 증가시켜줘", "counter increment"},
		{"ko increment stem", "증가", "increment"},
		{"ko decrement idiom", "더 빼", "decrement"},
		{"ko reset polite", "초기화해줘", "reset"},
		{"ko set with particle", "42로 설정해줘", "set to 42"},
		{"ko set duplicate concept", "세팅 7", "set to 7"},
		{"ko zero reset", "영으로 리셋", "to 0 reset"},

		// Degenerate input
		{"empty", "", ""},
		{"whitespace only", "   \t  ", ""},
		{"unsupported script", "compteur à zéro", "compteur à zéro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Once folded to canonical keywords, no further rule may fire.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"카운터를 증가시켜줘",
		"カウンターを増やしてください",
		"0にリセット",
		"42に設定してください",
		"42로 설정해줘",
		"set counter to 50",
		"increase the counter",
		"+1",
		"go down",
		"영으로 리셋",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", input, once, twice)
		}
	}
}

func TestNormalizeCompoundBeforeSuffixStrip(t *testing.T) {
	// A reset idiom ending in a politeness suffix must survive as a keyword
	// instead of being truncated by the generic suffix strip.
	for _, input := range []string{"リセットして", "초기화해줘", "리셋해줘"} {
		got := Normalize(input)
		if !strings.Contains(got, "reset") {
			t.Errorf("Normalize(%q) = %q, want a reset keyword", input, got)
		}
	}
}
