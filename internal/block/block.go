// Package block defines the content block model for blog posts.
// Blocks are produced by the markdown parser and stored as a JSON array.
package block

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Type represents the type of content block.
type Type string

const (
	TypeHeading1    Type = "h1"
	TypeHeading2    Type = "h2"
	TypeHeading3    Type = "h3"
	TypeParagraph   Type = "paragraph"
	TypeList        Type = "ul"
	TypeOrderedList Type = "ol"
	TypeBlockquote  Type = "blockquote"
	TypeImage       Type = "image"
)

// Types returns every supported block type in a stable order.
func Types() []Type {
	return []Type{
		TypeHeading1, TypeHeading2, TypeHeading3,
		TypeParagraph, TypeList, TypeOrderedList,
		TypeBlockquote, TypeImage,
	}
}

// IsHeading reports whether t is a heading type.
func (t Type) IsHeading() bool {
	return t == TypeHeading1 || t == TypeHeading2 || t == TypeHeading3
}

// HeadingLevel returns 1-3 for heading types and 0 otherwise.
func (t Type) HeadingLevel() int {
	switch t {
	case TypeHeading1:
		return 1
	case TypeHeading2:
		return 2
	case TypeHeading3:
		return 3
	default:
		return 0
	}
}

// HeadingType returns the block type for a heading level (1-3).
func HeadingType(level int) (Type, error) {
	switch level {
	case 1:
		return TypeHeading1, nil
	case 2:
		return TypeHeading2, nil
	case 3:
		return TypeHeading3, nil
	default:
		return "", fmt.Errorf("unsupported heading level: %d", level)
	}
}

// Block is the stored unit of content. The encoding of Content depends on
// Type: an HTML fragment for headings, paragraphs and quotes, a JSON array
// of HTML fragments for lists, and a JSON {alt, src} object for images.
type Block struct {
	Type        Type   `json:"type"`
	Content     string `json:"content"`
	RawMarkdown string `json:"rawMarkdown"`
}

// Warning describes an input line the parser could not turn into a block.
type Warning struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Line <= 0 {
		return w.Message
	}
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// ParsedContent is the parser output envelope.
type ParsedContent struct {
	Blocks    []Block   `json:"blocks"`
	PlainText string    `json:"plainText"`
	Warnings  []Warning `json:"warnings,omitempty"`
}

// NewParsedContent creates an empty parse result.
func NewParsedContent() *ParsedContent {
	return &ParsedContent{
		Blocks: make([]Block, 0),
	}
}

// Add appends a block and records its pre-HTML text.
func (p *ParsedContent) Add(b Block, text string) {
	p.Blocks = append(p.Blocks, b)
	p.PlainText += text + "\n"
}

// Warn records a dropped line.
func (p *ParsedContent) Warn(line int, format string, args ...any) {
	p.Warnings = append(p.Warnings, Warning{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// Marshal encodes blocks as a compact JSON array. HTML characters are kept
// literal so stored fragments stay readable, and a nil slice encodes as [].
func Marshal(blocks []Block) (string, error) {
	return marshal(blocks, "")
}

// MarshalIndent encodes blocks as a JSON array indented with two spaces.
func MarshalIndent(blocks []Block) (string, error) {
	return marshal(blocks, "  ")
}

func marshal(blocks []Block, indent string) (string, error) {
	if blocks == nil {
		blocks = []Block{}
	}
	s, err := encodeJSON(blocks, indent)
	if err != nil {
		return "", fmt.Errorf("failed to encode blocks: %w", err)
	}
	return s, nil
}

func encodeJSON(v any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Unmarshal decodes a JSON array of blocks.
func Unmarshal(data string) ([]Block, error) {
	var blocks []Block
	if err := json.Unmarshal([]byte(data), &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode blocks: %w", err)
	}
	if blocks == nil {
		blocks = []Block{}
	}
	return blocks, nil
}

// Equal reports whether two block sequences serialize identically.
func Equal(a, b []Block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
