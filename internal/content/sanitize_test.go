package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/roboco-io/postblocks/internal/block"
	"github.com/roboco-io/postblocks/internal/parser"
)

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"script removed", "<p>Hi</p><script>alert(1)</script>", "<p>Hi</p>"},
		{"case insensitive across lines", "<SCRIPT type=\"text/javascript\">\nx()\n</SCRIPT>after", "after"},
		{"non-greedy", "<script>a</script>keep<script>b</script>", "keep"},
		{"double quoted handler", `<img src="x.png" onerror="alert(1)">`, `<img src="x.png">`},
		{"single quoted handler", `<a href="#" onClick='go()'>x</a>`, `<a href="#">x</a>`},
		{"plain text untouched", "Nothing on here", "Nothing on here"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeContent(tc.input); got != tc.expected {
				t.Errorf("SanitizeContent(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range Policies() {
		got, err := ParsePolicy(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePolicy(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePolicy("lenient"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSanitizeBlocks_Basic(t *testing.T) {
	blocks := parser.ParseMarkdownContent("*x*<script>bad()</script>\n\n- <b onclick=\"steal()\">a</b>").Blocks

	got := SanitizeBlocks(blocks, PolicyBasic)
	if len(got) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(got))
	}
	if got[0].Content != "<em>x</em>" {
		t.Errorf("paragraph = %q", got[0].Content)
	}

	node, err := block.Decode(got[1])
	if err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	list := node.(block.List)
	if len(list.Items) != 1 || list.Items[0] != "<b>a</b>" {
		t.Errorf("list items = %v", list.Items)
	}
	if got[1].RawMarkdown != blocks[1].RawMarkdown {
		t.Error("expected raw markdown to be preserved")
	}
}

func TestSanitizeBlocks_UGC(t *testing.T) {
	blocks := parser.ParseMarkdownContent("**Deal** at [shop](https://shop.example) <iframe src=\"x\"></iframe>").Blocks

	got := SanitizeBlocks(blocks, PolicyUGC)
	content := got[0].Content
	if !strings.Contains(content, "<strong>Deal</strong>") {
		t.Errorf("expected strong to survive: %s", content)
	}
	if !strings.Contains(content, `href="https://shop.example"`) {
		t.Errorf("expected link to survive: %s", content)
	}
	if strings.Contains(content, "iframe") {
		t.Errorf("expected iframe to be removed: %s", content)
	}
}

func TestSanitizeBlocks_Strict(t *testing.T) {
	blocks := parser.ParseMarkdownContent("## **Big** deal").Blocks

	got := SanitizeBlocks(blocks, PolicyStrict)
	if got[0].Content != "Big deal" {
		t.Errorf("heading = %q, want %q", got[0].Content, "Big deal")
	}
	if got[0].Type != block.TypeHeading2 {
		t.Errorf("expected type to be preserved, got %s", got[0].Type)
	}
}

func TestSanitizeBlocks_DropsUndecodable(t *testing.T) {
	blocks := []block.Block{
		{Type: block.TypeList, Content: "broken"},
		{Type: block.TypeParagraph, Content: "ok"},
	}

	got := SanitizeBlocks(blocks, PolicyBasic)
	if len(got) != 1 || got[0].Content != "ok" {
		t.Errorf("unexpected blocks: %+v", got)
	}
}

func TestSanitizeBlocks_KeepsCharactersReadable(t *testing.T) {
	blocks := parser.ParseMarkdownContent("Tom & Jerry's [deal](https://x.com)\n![A & B](a.png)").Blocks

	tests := []struct {
		policy   Policy
		markdown string
	}{
		{PolicyBasic, "Tom & Jerry's [deal](https://x.com)\n\n![A & B](a.png)"},
		{PolicyUGC, "Tom & Jerry's [deal](https://x.com)\n\n![A & B](a.png)"},
		{PolicyStrict, "Tom & Jerry's deal\n\n![A & B](a.png)"},
	}

	for _, tc := range tests {
		t.Run(string(tc.policy), func(t *testing.T) {
			got := SanitizeBlocks(blocks, tc.policy)
			if len(got) != 2 {
				t.Fatalf("expected 2 blocks, got %d", len(got))
			}

			node, err := block.Decode(got[1])
			if err != nil {
				t.Fatalf("failed to decode image: %v", err)
			}
			if img := node.(block.Image); img.Alt != "A & B" || img.Src != "a.png" {
				t.Errorf("image = %+v, want alt %q", img, "A & B")
			}

			if md := parser.ContentToMarkdown(got); md != tc.markdown {
				t.Errorf("ContentToMarkdown() = %q, want %q", md, tc.markdown)
			}
		})
	}
}

func TestSanitizeBlocks_UGCKeepsLinkRel(t *testing.T) {
	blocks := parser.ParseMarkdownContent("[shop](https://shop.example)").Blocks

	content := SanitizeBlocks(blocks, PolicyUGC)[0].Content
	for _, want := range []string{"noopener", "noreferrer", `target="_blank"`, parser.LinkClass} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in %s", want, content)
		}
	}
}
