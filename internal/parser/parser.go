// Package parser converts between author markdown and stored content blocks.
package parser

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/roboco-io/postblocks/internal/block"
)

// Format represents the representation a content string is stored in.
type Format int

const (
	FormatUnknown  Format = iota
	FormatBlocks          // JSON array of content blocks
	FormatMarkdown        // raw author markdown
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatBlocks:
		return "blocks"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name to a Format. Unrecognised names yield
// FormatUnknown.
func ParseFormat(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blocks", "json":
		return FormatBlocks
	case "markdown", "md":
		return FormatMarkdown
	default:
		return FormatUnknown
	}
}

// DetectFormat sniffs whether content is a stored block array or markdown.
// Any string is valid markdown, so the result is never FormatUnknown.
func DetectFormat(content string) Format {
	if IsBlockArray(content) {
		return FormatBlocks
	}
	return FormatMarkdown
}

// IsBlockArray reports whether content is a JSON array whose first element
// carries a non-empty string "type" field. An empty array counts as a block
// array so that serialized empty content stays stable.
func IsBlockArray(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") || !gjson.Valid(trimmed) {
		return false
	}

	doc := gjson.Parse(trimmed)
	if !doc.IsArray() {
		return false
	}

	first := doc.Get("0")
	if !first.Exists() {
		return true
	}
	typ := first.Get("type")
	return typ.Type == gjson.String && typ.Str != ""
}

// ParseStoredContent reads content that is either a stored block array or
// legacy raw markdown. It never fails: anything that does not decode as
// blocks is parsed as markdown.
func ParseStoredContent(content string) []block.Block {
	if IsBlockArray(content) {
		if blocks, err := block.Unmarshal(strings.TrimSpace(content)); err == nil {
			return blocks
		}
	}
	return ParseMarkdownContent(content).Blocks
}
