package parser

import (
	"fmt"
	"strings"

	"github.com/roboco-io/postblocks/internal/block"
)

// ContentToMarkdown rebuilds editable markdown from blocks. The output is
// not guaranteed to match the markdown it was parsed from byte for byte.
// Blocks whose content cannot be decoded are skipped, as are empty lists and
// images without a source.
func ContentToMarkdown(blocks []block.Block) string {
	parts := make([]string, 0, len(blocks))

	for _, b := range blocks {
		node, err := block.Decode(b)
		if err != nil {
			continue
		}
		if md := nodeToMarkdown(node); md != "" {
			parts = append(parts, md)
		}
	}

	return strings.Join(parts, "\n\n")
}

func nodeToMarkdown(node block.Node) string {
	switch n := node.(type) {
	case block.Heading:
		return strings.Repeat("#", n.Level) + " " + HTMLToMarkdown(n.Text)
	case block.Paragraph:
		return HTMLToMarkdown(n.Text)
	case block.Quote:
		return "> " + HTMLToMarkdown(n.Text)
	case block.List:
		if n.IsEmpty() {
			return ""
		}
		lines := make([]string, len(n.Items))
		for i, item := range n.Items {
			prefix := "- "
			if n.Ordered {
				prefix = fmt.Sprintf("%d. ", i+1)
			}
			lines[i] = prefix + HTMLToMarkdown(item)
		}
		return strings.Join(lines, "\n")
	case block.Image:
		if !n.HasSource() {
			return ""
		}
		return fmt.Sprintf("![%s](%s)", n.Alt, n.Src)
	default:
		return ""
	}
}
