// Package ingest turns post source files into markdown the block parser can
// read.
package ingest

import (
	"context"
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/microcosm-cc/bluemonday"
)

// Converter turns one kind of source file into markdown.
//
// Implementations are stateless and safe for concurrent use.
type Converter interface {
	// Convert transforms input into markdown.
	Convert(ctx context.Context, input []byte) (string, error)

	// SupportedExtensions returns the extensions handled, with the leading dot.
	SupportedExtensions() []string

	// Name is used in logs.
	Name() string
}

type markdownConverter struct{}

// NewMarkdownConverter returns a passthrough converter for markdown files.
func NewMarkdownConverter() Converter {
	return markdownConverter{}
}

func (markdownConverter) Convert(_ context.Context, input []byte) (string, error) {
	return string(input), nil
}

func (markdownConverter) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

func (markdownConverter) Name() string {
	return "markdown"
}

type textConverter struct{}

// NewTextConverter returns a converter for plain text. Every line of plain
// text is already a paragraph in the block dialect.
func NewTextConverter() Converter {
	return textConverter{}
}

func (textConverter) Convert(_ context.Context, input []byte) (string, error) {
	return string(input), nil
}

func (textConverter) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

func (textConverter) Name() string {
	return "plaintext"
}

type blocksConverter struct{}

// NewBlocksConverter returns a passthrough converter for stored block
// arrays. Callers read the result with parser.ParseStoredContent, which
// accepts both stored blocks and markdown.
func NewBlocksConverter() Converter {
	return blocksConverter{}
}

func (blocksConverter) Convert(_ context.Context, input []byte) (string, error) {
	return string(input), nil
}

func (blocksConverter) SupportedExtensions() []string {
	return []string{".json"}
}

func (blocksConverter) Name() string {
	return "blocks"
}

// htmlConverter sanitizes HTML and then converts it to markdown.
type htmlConverter struct {
	policy    *bluemonday.Policy
	converter *md.Converter
}

// NewHTMLConverter returns a converter for HTML pages.
func NewHTMLConverter() Converter {
	return &htmlConverter{
		policy:    bluemonday.UGCPolicy(),
		converter: md.NewConverter("", true, nil),
	}
}

func (c *htmlConverter) Convert(ctx context.Context, input []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sanitized := c.policy.SanitizeBytes(input)

	markdown, err := c.converter.ConvertString(string(sanitized))
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	return markdown, nil
}

func (c *htmlConverter) SupportedExtensions() []string {
	return []string{".html", ".htm"}
}

func (c *htmlConverter) Name() string {
	return "html"
}
