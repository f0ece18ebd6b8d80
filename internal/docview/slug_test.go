package docview

import "testing"

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Background", "background"},
		{"spaces", "Part One", "part-one"},
		{"punctuation run collapses", "Q&A: Budget / Finance", "q-a-budget-finance"},
		{"leading and trailing trimmed", "  (Appendix)  ", "appendix"},
		{"digits kept", "2024 Budget", "2024-budget"},
		{"apostrophe", "Mayor's Report", "mayor-s-report"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlug_Idempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"Part One", "Q&A: Budget", "2024 Budget", "Mayor's Report"} {
		once := Slug(input)
		twice := Slug(once)
		if once != twice {
			t.Errorf("Slug not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
