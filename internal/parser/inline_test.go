package parser

import "testing"

func TestProcessInlineMarkdown(t *testing.T) {
	link := func(text, href string) string {
		return `<a href="` + href + `" target="_blank" rel="noopener noreferrer" class="` + LinkClass + `">` + text + `</a>`
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "emphasis precedence",
			input:    "***bold-italic*** and **bold** and *italic*",
			expected: "<strong><em>bold-italic</em></strong> and <strong>bold</strong> and <em>italic</em>",
		},
		{
			name:     "strong wrapping underscore",
			input:    "**_both_**",
			expected: "<strong><em>both</em></strong>",
		},
		{
			name:     "underscore wrapping strong",
			input:    "_**both**_",
			expected: "<strong><em>both</em></strong>",
		},
		{
			name:     "underscore emphasis",
			input:    "an _aside_ here",
			expected: "an <em>aside</em> here",
		},
		{
			name:     "non-greedy matching",
			input:    "**a** b **c**",
			expected: "<strong>a</strong> b <strong>c</strong>",
		},
		{
			name:     "link",
			input:    "Visit [our shop](https://shop.example/deals) today",
			expected: "Visit " + link("our shop", "https://shop.example/deals") + " today",
		},
		{
			name:     "bold link text",
			input:    "[**Deal**](/d)",
			expected: link("<strong>Deal</strong>", "/d"),
		},
		{
			name:     "unbalanced marker stays literal",
			input:    "5 * 3",
			expected: "5 * 3",
		},
		{
			name:     "plain text",
			input:    "no markup",
			expected: "no markup",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ProcessInlineMarkdown(tc.input)
			if got != tc.expected {
				t.Errorf("ProcessInlineMarkdown(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestInlineRules_Individually(t *testing.T) {
	tests := []struct {
		rule     string
		input    string
		expected string
	}{
		{"strong-em", "***x***", "<strong><em>x</em></strong>"},
		{"strong-em-underscore-inner", "**_x_**", "<strong><em>x</em></strong>"},
		{"strong-em-underscore-outer", "_**x**_", "<strong><em>x</em></strong>"},
		{"strong", "**x**", "<strong>x</strong>"},
		{"em", "*x*", "<em>x</em>"},
		{"em-underscore", "_x_", "<em>x</em>"},
		{"link", "[t](u)", `<a href="u" target="_blank" rel="noopener noreferrer" class="` + LinkClass + `">t</a>`},
	}

	rules := make(map[string]InlineRule)
	for _, r := range InlineRules() {
		rules[r.Name] = r
	}

	for _, tc := range tests {
		t.Run(tc.rule, func(t *testing.T) {
			r, ok := rules[tc.rule]
			if !ok {
				t.Fatalf("rule %q not found", tc.rule)
			}
			if got := r.Apply(tc.input); got != tc.expected {
				t.Errorf("%s.Apply(%q) = %q, want %q", tc.rule, tc.input, got, tc.expected)
			}
		})
	}
}

func TestInlineRules_Order(t *testing.T) {
	rules := InlineRules()
	position := make(map[string]int)
	for i, r := range rules {
		position[r.Name] = i
	}

	for _, triple := range []string{"strong-em", "strong-em-underscore-inner", "strong-em-underscore-outer"} {
		if position[triple] > position["strong"] || position[triple] > position["em"] {
			t.Errorf("rule %s must run before double and single emphasis", triple)
		}
	}
	if position["strong"] > position["em"] {
		t.Error("strong must run before em")
	}
	if position["link"] != len(rules)-1 {
		t.Error("link must run last")
	}
}

func TestInlineRules_ReturnsCopy(t *testing.T) {
	rules := InlineRules()
	rules[0] = InlineRule{Name: "changed"}

	if InlineRules()[0].Name == "changed" {
		t.Error("expected InlineRules to return a copy")
	}
}

func TestHTMLToMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strong em", "<strong><em>x</em></strong>", "***x***"},
		{"strong", "a <strong>b</strong>", "a **b**"},
		{"em", "<em>c</em>", "*c*"},
		{"anchor", ProcessInlineMarkdown("[Shop](https://s.example)"), "[Shop](https://s.example)"},
		{"other tags stripped", "<span>x</span><br/>y", "xy"},
		{"plain", "nothing", "nothing"},
		{"entities decoded", "Tom &amp; Jerry&#39;s <strong>deal</strong>", "Tom & Jerry's **deal**"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTMLToMarkdown(tc.input); got != tc.expected {
				t.Errorf("HTMLToMarkdown(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
