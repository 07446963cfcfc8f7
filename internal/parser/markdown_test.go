package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/roboco-io/postblocks/internal/block"
)

func TestParseMarkdownContent_Empty(t *testing.T) {
	got := ParseMarkdownContent("")

	if len(got.Blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(got.Blocks))
	}
	if got.PlainText != "" {
		t.Errorf("expected empty plain text, got %q", got.PlainText)
	}

	blank := ParseMarkdownContent("\n   \n\t\n")
	if len(blank.Blocks) != 0 {
		t.Errorf("expected blank lines to produce no blocks, got %d", len(blank.Blocks))
	}
}

func TestParseMarkdownContent_Blocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []block.Block
	}{
		{
			name:  "heading levels",
			input: "# One\n## Two\n### Three\n#### Four",
			expected: []block.Block{
				{Type: block.TypeHeading1, Content: "One", RawMarkdown: "# One"},
				{Type: block.TypeHeading2, Content: "Two", RawMarkdown: "## Two"},
				{Type: block.TypeHeading3, Content: "Three", RawMarkdown: "### Three"},
				{Type: block.TypeParagraph, Content: "#### Four", RawMarkdown: "#### Four"},
			},
		},
		{
			name:  "heading with inline spans",
			input: "## Top **10** deals",
			expected: []block.Block{
				{Type: block.TypeHeading2, Content: "Top <strong>10</strong> deals", RawMarkdown: "## Top **10** deals"},
			},
		},
		{
			name:  "blockquote is single line",
			input: "> first\n> second",
			expected: []block.Block{
				{Type: block.TypeBlockquote, Content: "first", RawMarkdown: "> first"},
				{Type: block.TypeBlockquote, Content: "second", RawMarkdown: "> second"},
			},
		},
		{
			name:  "image",
			input: "![Summer sale](/img/sale.png)",
			expected: []block.Block{
				{Type: block.TypeImage, Content: `{"alt":"Summer sale","src":"/img/sale.png"}`, RawMarkdown: "![Summer sale](/img/sale.png)"},
			},
		},
		{
			name:  "image with empty alt",
			input: "  ![](a.png)  ",
			expected: []block.Block{
				{Type: block.TypeImage, Content: `{"alt":"","src":"a.png"}`, RawMarkdown: "![](a.png)"},
			},
		},
		{
			name:  "list contiguity",
			input: "- item one\n- item two\n\n- item three",
			expected: []block.Block{
				{Type: block.TypeList, Content: `["item one","item two"]`, RawMarkdown: "- item one\n- item two"},
				{Type: block.TypeList, Content: `["item three"]`, RawMarkdown: "- item three"},
			},
		},
		{
			name:  "ordered list ignores numbering",
			input: "1. a\n1. b\n7. c",
			expected: []block.Block{
				{Type: block.TypeOrderedList, Content: `["a","b","c"]`, RawMarkdown: "1. a\n1. b\n7. c"},
			},
		},
		{
			name:  "different list kinds break the run",
			input: "- a\n1. b\n- c",
			expected: []block.Block{
				{Type: block.TypeList, Content: `["a"]`, RawMarkdown: "- a"},
				{Type: block.TypeOrderedList, Content: `["b"]`, RawMarkdown: "1. b"},
				{Type: block.TypeList, Content: `["c"]`, RawMarkdown: "- c"},
			},
		},
		{
			name:  "list items render inline spans",
			input: "- **Free** shipping",
			expected: []block.Block{
				{Type: block.TypeList, Content: `["<strong>Free</strong> shipping"]`, RawMarkdown: "- **Free** shipping"},
			},
		},
		{
			name:  "paragraph per line",
			input: "first line\nsecond line",
			expected: []block.Block{
				{Type: block.TypeParagraph, Content: "first line", RawMarkdown: "first line"},
				{Type: block.TypeParagraph, Content: "second line", RawMarkdown: "second line"},
			},
		},
		{
			name:  "indented lines are trimmed",
			input: "   # Title  \n\t- item",
			expected: []block.Block{
				{Type: block.TypeHeading1, Content: "Title", RawMarkdown: "# Title"},
				{Type: block.TypeList, Content: `["item"]`, RawMarkdown: "- item"},
			},
		},
		{
			name:  "windows line endings",
			input: "# A\r\n\r\nB",
			expected: []block.Block{
				{Type: block.TypeHeading1, Content: "A", RawMarkdown: "# A"},
				{Type: block.TypeParagraph, Content: "B", RawMarkdown: "B"},
			},
		},
		{
			name:  "markers without text are paragraphs",
			input: "#\n-\n1.",
			expected: []block.Block{
				{Type: block.TypeParagraph, Content: "#", RawMarkdown: "#"},
				{Type: block.TypeParagraph, Content: "-", RawMarkdown: "-"},
				{Type: block.TypeParagraph, Content: "1.", RawMarkdown: "1."},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseMarkdownContent(tc.input)
			if diff := cmp.Diff(tc.expected, got.Blocks); diff != "" {
				t.Errorf("ParseMarkdownContent(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestParseMarkdownContent_MalformedImage(t *testing.T) {
	got := ParseMarkdownContent("Before\n![broken](\nAfter")

	if len(got.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(got.Blocks), got.Blocks)
	}
	if got.Blocks[0].Content != "Before" || got.Blocks[1].Content != "After" {
		t.Errorf("unexpected blocks: %+v", got.Blocks)
	}
	if len(got.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(got.Warnings))
	}
	if got.Warnings[0].Line != 2 {
		t.Errorf("expected warning on line 2, got %d", got.Warnings[0].Line)
	}
}

func TestParseMarkdownContent_InlineImageIsParagraph(t *testing.T) {
	got := ParseMarkdownContent("See ![x](y.png) here")

	if len(got.Blocks) != 1 || got.Blocks[0].Type != block.TypeParagraph {
		t.Errorf("expected a single paragraph, got %+v", got.Blocks)
	}
}

func TestParseMarkdownContent_PlainText(t *testing.T) {
	input := "# Big **Sale**\n\nSave *now*\n\n- one\n- two\n\n> quoted\n\n![Alt text](a.png)"

	got := ParseMarkdownContent(input)
	expected := "Big **Sale**\nSave *now*\none\ntwo\nquoted\nAlt text\n"
	if got.PlainText != expected {
		t.Errorf("PlainText = %q, want %q", got.PlainText, expected)
	}
}

func TestParseMarkdownContent_OrderPreserved(t *testing.T) {
	input := "# A\npara 1\n## B\npara 2\n### C"

	got := ParseMarkdownContent(input)
	types := make([]block.Type, len(got.Blocks))
	for i, b := range got.Blocks {
		types[i] = b.Type
	}
	expected := []block.Type{
		block.TypeHeading1, block.TypeParagraph, block.TypeHeading2,
		block.TypeParagraph, block.TypeHeading3,
	}
	if diff := cmp.Diff(expected, types); diff != "" {
		t.Errorf("block order mismatch (-want +got):\n%s", diff)
	}
}
