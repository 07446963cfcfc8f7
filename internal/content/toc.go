package content

import (
	"fmt"

	"github.com/roboco-io/postblocks/internal/parser"
)

// TOCItem is one table of contents entry.
type TOCItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// GenerateTableOfContents lists the headings of content in document order.
// IDs are heading-1, heading-2, ... counted across all levels.
func GenerateTableOfContents(content string) []TOCItem {
	items := make([]TOCItem, 0)
	for _, b := range parser.ParseStoredContent(content) {
		level := b.Type.HeadingLevel()
		if level == 0 {
			continue
		}
		items = append(items, TOCItem{
			ID:    fmt.Sprintf("heading-%d", len(items)+1),
			Text:  StripHTMLTags(b.Content),
			Level: level,
		})
	}
	return items
}
