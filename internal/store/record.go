// Package store defines the tagged envelope post content is persisted in.
//
// A Record always names the format of its content, so readers never have to
// guess. Untagged legacy values are converted once with FromLegacy.
package store

import (
	"errors"
	"fmt"

	"github.com/roboco-io/postblocks/internal/block"
	"github.com/roboco-io/postblocks/internal/parser"
)

// CurrentVersion is the envelope version written by this package.
const CurrentVersion = 1

var (
	// ErrUnknownFormat is returned for records with an unrecognised format tag.
	ErrUnknownFormat = errors.New("unknown content format")
	// ErrInvalidBlocks is returned when a blocks record does not hold a valid block array.
	ErrInvalidBlocks = errors.New("invalid stored blocks")
)

// Format tags stored alongside content.
const (
	FormatBlocks   = "blocks"
	FormatMarkdown = "markdown"
)

// Record is the persisted form of post content.
type Record struct {
	Format  string `json:"format" yaml:"format"`
	Version int    `json:"version" yaml:"version"`
	Content string `json:"content" yaml:"content"`
}

// EncodeBlocks wraps blocks in a blocks record.
func EncodeBlocks(blocks []block.Block) (Record, error) {
	data, err := block.Marshal(blocks)
	if err != nil {
		return Record{}, err
	}
	return Record{Format: FormatBlocks, Version: CurrentVersion, Content: data}, nil
}

// EncodeMarkdown wraps raw markdown in a markdown record.
func EncodeMarkdown(markdown string) Record {
	return Record{Format: FormatMarkdown, Version: CurrentVersion, Content: markdown}
}

// Decode returns the blocks held by a record. Blocks records are decoded
// strictly; a corrupt payload is an error rather than being re-read as
// markdown.
func Decode(r Record) ([]block.Block, error) {
	switch r.Format {
	case FormatBlocks:
		if err := ValidateBlocksJSON(r.Content); err != nil {
			return nil, err
		}
		return block.Unmarshal(r.Content)
	case FormatMarkdown:
		return parser.ParseMarkdownContent(r.Content).Blocks, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, r.Format)
	}
}

// Normalize converts a record to a blocks record.
func Normalize(r Record) (Record, error) {
	blocks, err := Decode(r)
	if err != nil {
		return Record{}, err
	}
	return EncodeBlocks(blocks)
}

// FromLegacy converts an untagged stored string into a blocks record,
// sniffing its format the way older readers did.
func FromLegacy(content string) (Record, error) {
	return EncodeBlocks(parser.ParseStoredContent(content))
}
