package alias

import "testing"

func TestLeadingWord(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"   ":            "",
		"yt <$1>":        "yt",
		"  gh <$1> <$2>": "gh",
		"g":              "g",
	}
	for in, want := range tests {
		if got := LeadingWord(in); got != want {
			t.Errorf("LeadingWord(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInGroup(t *testing.T) {
	tests := []struct {
		alias string
		word  string
		want  bool
	}{
		{"yt <$1>", "yt", true},
		{"yt", "yt", true},
		{"ytm <$1>", "yt", false},
		{"YT <$1>", "yt", false},
		{"yt <$1>", "", false},
		{"g <$&>", "gh", false},
	}
	for _, tt := range tests {
		if got := InGroup(tt.alias, tt.word); got != tt.want {
			t.Errorf("InGroup(%q, %q) = %v, want %v", tt.alias, tt.word, got, tt.want)
		}
	}
}
