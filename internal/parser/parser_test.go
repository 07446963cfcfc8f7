package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/roboco-io/postblocks/internal/block"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected Format
	}{
		{
			name:     "stored blocks",
			content:  `[{"type":"h1","content":"Hi","rawMarkdown":"# Hi"}]`,
			expected: FormatBlocks,
		},
		{
			name:     "stored blocks with surrounding whitespace",
			content:  "  \n[{\"type\":\"paragraph\",\"content\":\"x\",\"rawMarkdown\":\"x\"}]\n",
			expected: FormatBlocks,
		},
		{
			name:     "empty array",
			content:  "[]",
			expected: FormatBlocks,
		},
		{
			name:     "markdown",
			content:  "# Hello\n\nWorld",
			expected: FormatMarkdown,
		},
		{
			name:     "array without type",
			content:  `[{"content":"x"}]`,
			expected: FormatMarkdown,
		},
		{
			name:     "array of numbers",
			content:  "[1,2,3]",
			expected: FormatMarkdown,
		},
		{
			name:     "object instead of array",
			content:  `{"type":"h1"}`,
			expected: FormatMarkdown,
		},
		{
			name:     "truncated json",
			content:  `[{"type":"h1","content":`,
			expected: FormatMarkdown,
		},
		{
			name:     "empty type",
			content:  `[{"type":""}]`,
			expected: FormatMarkdown,
		},
		{
			name:     "empty string",
			content:  "",
			expected: FormatMarkdown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectFormat(tc.content)
			if got != tc.expected {
				t.Errorf("DetectFormat(%q) = %v, want %v", tc.content, got, tc.expected)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatBlocks, "blocks"},
		{FormatMarkdown, "markdown"},
		{FormatUnknown, "unknown"},
		{Format(999), "unknown"},
	}

	for _, tc := range tests {
		got := tc.format.String()
		if got != tc.expected {
			t.Errorf("Format(%d).String() = %q, want %q", int(tc.format), got, tc.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
	}{
		{"blocks", FormatBlocks},
		{"JSON", FormatBlocks},
		{"markdown", FormatMarkdown},
		{" md ", FormatMarkdown},
		{"html", FormatUnknown},
	}

	for _, tc := range tests {
		if got := ParseFormat(tc.name); got != tc.expected {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.name, got, tc.expected)
		}
	}
}

func TestParseStoredContent_Blocks(t *testing.T) {
	stored := `[{"type":"h1","content":"Hi","rawMarkdown":"# Hi"},{"type":"ul","content":"[\"a\"]","rawMarkdown":"- a"}]`

	got := ParseStoredContent(stored)
	expected := []block.Block{
		{Type: block.TypeHeading1, Content: "Hi", RawMarkdown: "# Hi"},
		{Type: block.TypeList, Content: `["a"]`, RawMarkdown: "- a"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ParseStoredContent() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStoredContent_LegacyMarkdown(t *testing.T) {
	input := "# Hello\n\nWorld"

	got := ParseStoredContent(input)
	expected := ParseMarkdownContent(input).Blocks
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ParseStoredContent() mismatch (-want +got):\n%s", diff)
	}
	if len(got) != 2 || got[0].Type != block.TypeHeading1 || got[0].Content != "Hello" ||
		got[1].Type != block.TypeParagraph || got[1].Content != "World" {
		t.Errorf("unexpected blocks: %+v", got)
	}
}

func TestParseStoredContent_Fallbacks(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
		wantType  block.Type
	}{
		{"empty string", "", 0, ""},
		{"empty array", "[]", 0, ""},
		{"typed array with bad payload", `[{"type":"h1","content":5}]`, 1, block.TypeParagraph},
		{"broken json", `[{"type":"h1"`, 1, block.TypeParagraph},
		{"plain sentence", "Just text", 1, block.TypeParagraph},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseStoredContent(tc.content)
			if len(got) != tc.wantCount {
				t.Fatalf("expected %d blocks, got %d: %+v", tc.wantCount, len(got), got)
			}
			if tc.wantCount > 0 && got[0].Type != tc.wantType {
				t.Errorf("expected %s block, got %s", tc.wantType, got[0].Type)
			}
		})
	}
}
