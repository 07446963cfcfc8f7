// Package content derives excerpts, tables of contents, reading time,
// validation results, diffs and backups from stored post content.
//
// Every function accepts stored content, either a JSON block array or legacy
// raw markdown, and re-parses it with parser.ParseStoredContent.
package content

import (
	"errors"
	"fmt"

	"github.com/roboco-io/postblocks/internal/block"
	"github.com/roboco-io/postblocks/internal/parser"
)

var (
	// ErrInvalidContent is returned when content claims to be stored blocks but is not.
	ErrInvalidContent = errors.New("invalid content format")
	// ErrUnsupportedFormat is returned for unknown source or output formats.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// SourceFormat tells NormalizeContent how to read its input.
type SourceFormat string

const (
	SourceAuto     SourceFormat = "auto"
	SourceMarkdown SourceFormat = "markdown"
)

// OutputFormat selects the representation returned by GetContentInFormat.
type OutputFormat string

const (
	OutputJSON     OutputFormat = "json"
	OutputMarkdown OutputFormat = "markdown"
)

// NormalizeContent returns content as a stored block array. With SourceAuto,
// content that already is a block array is returned unchanged; anything else
// is parsed as markdown. SourceMarkdown always parses.
func NormalizeContent(content string, source SourceFormat) (string, error) {
	switch source {
	case SourceAuto, "":
		if parser.IsBlockArray(content) {
			return content, nil
		}
	case SourceMarkdown:
	default:
		return "", fmt.Errorf("%w: source %q", ErrUnsupportedFormat, source)
	}
	return block.Marshal(parser.ParseMarkdownContent(content).Blocks)
}

// MigrateContent re-serializes legacy or current content as a block array.
// If serialization fails the input is returned unchanged.
func MigrateContent(oldContent string) string {
	migrated, err := block.Marshal(parser.ParseStoredContent(oldContent))
	if err != nil {
		return oldContent
	}
	return migrated
}

// GetContentInFormat returns content as pretty-printed block JSON or as
// reconstructed markdown.
func GetContentInFormat(content string, format OutputFormat) (string, error) {
	blocks := parser.ParseStoredContent(content)

	switch format {
	case OutputJSON:
		return block.MarshalIndent(blocks)
	case OutputMarkdown:
		return parser.ContentToMarkdown(blocks), nil
	default:
		return "", fmt.Errorf("%w: output %q", ErrUnsupportedFormat, format)
	}
}
