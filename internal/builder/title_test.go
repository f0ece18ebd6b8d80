package builder

import "testing"

func TestResolveTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		declared string
		body     string
		filename string
		want     string
	}{
		{
			name:     "declared title wins",
			declared: "Housing Policy",
			body:     "# Something Else\n",
			filename: "policy.md",
			want:     "Housing Policy",
		},
		{
			name:     "first top-level heading",
			declared: "",
			body:     "intro text\n\n# Zoning Update\n\n# Second Heading\n",
			filename: "zoning.md",
			want:     "Zoning Update",
		},
		{
			name:     "lower-level headings are not titles",
			declared: "",
			body:     "## Background\n\ntext\n",
			filename: "notes.md",
			want:     "notes",
		},
		{
			name:     "filename fallback",
			declared: "",
			body:     "no headings here\n",
			filename: "notes.md",
			want:     "notes",
		},
		{
			name:     "whitespace declared title falls through",
			declared: "   ",
			body:     "# Real Title\n",
			filename: "doc.md",
			want:     "Real Title",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveTitle(tt.declared, []byte(tt.body), tt.filename)
			if got != tt.want {
				t.Errorf("ResolveTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
