package content

import (
	"strings"

	"github.com/roboco-io/postblocks/internal/parser"
)

// Validation error messages.
const (
	MsgEmptyContent = "Content cannot be empty"
	MsgNoBlocks     = "No valid content blocks found"
	MsgParseFailed  = "Failed to parse content"
)

// parseMarkdown and lintWarnings are swapped in tests.
var (
	parseMarkdown = parser.ParseMarkdownContent
	lintWarnings  = LintMarkdown
)

// ValidationResult reports whether markdown can be saved. Warnings point at
// lines that will not be stored the way the author probably intended; they
// never make the result invalid.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidateMarkdownSyntax checks author markdown before it is saved. It
// never panics; a failure inside the parser or linter is reported as
// MsgParseFailed.
func ValidateMarkdownSyntax(markdown string) (result ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ValidationResult{Errors: []string{MsgParseFailed}}
		}
	}()

	result = ValidationResult{Errors: []string{}}

	if strings.TrimSpace(markdown) == "" {
		result.Errors = append(result.Errors, MsgEmptyContent)
		return result
	}

	parsed := parseMarkdown(markdown)
	if len(parsed.Blocks) == 0 {
		result.Errors = append(result.Errors, MsgNoBlocks)
	}

	for _, w := range parsed.Warnings {
		result.Warnings = append(result.Warnings, w.String())
	}
	for _, w := range lintWarnings(markdown) {
		result.Warnings = append(result.Warnings, w.String())
	}

	result.Valid = len(result.Errors) == 0
	return result
}
