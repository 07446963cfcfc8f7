package content

import (
	"html"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/roboco-io/postblocks/internal/block"
	"github.com/roboco-io/postblocks/internal/parser"
)

const (
	// DefaultExcerptLength is the excerpt bound used when none is given.
	DefaultExcerptLength = 200
	// DefaultWordsPerMinute is the reading speed used for reading time.
	DefaultWordsPerMinute = 200
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTMLTags removes every <...> sequence from fragment.
func StripHTMLTags(fragment string) string {
	if fragment == "" {
		return ""
	}
	return tagPattern.ReplaceAllString(fragment, "")
}

// ExtractPlainText builds an excerpt from the paragraph and heading blocks
// of content. Lists, quotes and images are left out. Text longer than
// maxLength runes is cut and suffixed with "...". A non-positive maxLength
// means DefaultExcerptLength.
func ExtractPlainText(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	var sb strings.Builder
	length := 0
	for _, b := range parser.ParseStoredContent(content) {
		if b.Type != block.TypeParagraph && !b.Type.IsHeading() {
			continue
		}
		text := html.UnescapeString(StripHTMLTags(b.Content))
		sb.WriteString(text)
		sb.WriteByte(' ')
		length += utf8.RuneCountInString(text) + 1
		if length >= maxLength {
			break
		}
	}

	text := strings.TrimSpace(sb.String())
	if runes := []rune(text); len(runes) > maxLength {
		return strings.TrimSpace(string(runes[:maxLength])) + "..."
	}
	return text
}

// CountWords counts whitespace-separated words in the full excerpt text of
// content.
func CountWords(content string) int {
	return len(strings.Fields(ExtractPlainText(content, math.MaxInt)))
}

// CalculateReadingTime estimates reading time in minutes at
// DefaultWordsPerMinute. The result is at least 1.
func CalculateReadingTime(content string) int {
	return ReadingTime(content, DefaultWordsPerMinute)
}

// ReadingTime estimates reading time in minutes at the given speed,
// rounding up. A non-positive wordsPerMinute means DefaultWordsPerMinute.
func ReadingTime(content string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	words := CountWords(content)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
