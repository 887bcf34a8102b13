package suggest

import "testing"

func TestExtractJSONFromMarkdown(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json code fence",
			input: "```json\n[{\"name\": \"充電器\"}]\n```",
			want:  `[{"name": "充電器"}]`,
		},
		{
			name:  "plain code fence",
			input: "```\n[1, 2]\n```",
			want:  "[1, 2]",
		},
		{
			name:  "no fence",
			input: `[{"name": "パスポート"}]`,
			want:  `[{"name": "パスポート"}]`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n```json\n[]\n```\n  ",
			want:  "[]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSONFromMarkdown(tc.input); got != tc.want {
				t.Errorf("extractJSONFromMarkdown() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSanitizeSuggestions(t *testing.T) {
	input := []PackingSuggestion{
		{Name: "充電器", Category: "electronics", Quantity: 1},
		{Name: "", Category: "electronics", Quantity: 1},
		{Name: "謎のアイテム", Category: "made-up-category", Quantity: 0},
		{Name: "靴下", Category: "clothing", Quantity: -3},
	}

	got := sanitizeSuggestions(input)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3 (nameless dropped)", len(got))
	}
	if got[1].Category != "other" {
		t.Errorf("unknown category should fall back to other, got %q", got[1].Category)
	}
	if got[1].Quantity != 1 || got[2].Quantity != 1 {
		t.Error("quantities below 1 should clamp to 1")
	}
}
