package parser

import (
	"regexp"
	"strings"

	"github.com/roboco-io/postblocks/internal/block"
)

var (
	imagePattern       = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)
	orderedItemPattern = regexp.MustCompile(`^\d+\. `)
)

// ParseMarkdownContent converts markdown into content blocks.
//
// Parsing is line oriented: every non-blank line starts a block, and only
// list items are merged, when they form a contiguous run. Lines the parser
// cannot use are dropped and reported in Warnings.
func ParseMarkdownContent(markdown string) block.ParsedContent {
	result := block.NewParsedContent()
	if markdown == "" {
		return *result
	}

	lines := strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "# "):
			addHeading(result, 1, line)
		case strings.HasPrefix(line, "## "):
			addHeading(result, 2, line)
		case strings.HasPrefix(line, "### "):
			addHeading(result, 3, line)
		case strings.HasPrefix(line, "> "):
			text := strings.TrimSpace(line[2:])
			result.Add(block.Encode(block.Quote{Text: ProcessInlineMarkdown(text)}, line), text)
		case strings.HasPrefix(line, "!["):
			m := imagePattern.FindStringSubmatch(line)
			if m == nil {
				result.Warn(i+1, "malformed image syntax dropped: %s", line)
				continue
			}
			result.Add(block.Encode(block.NewImage(m[1], m[2]), line), m[1])
		case strings.HasPrefix(line, "- "):
			i = addList(result, lines, i, false)
		case orderedItemPattern.MatchString(line):
			i = addList(result, lines, i, true)
		default:
			result.Add(block.Encode(block.Paragraph{Text: ProcessInlineMarkdown(line)}, line), line)
		}
	}

	return *result
}

func addHeading(result *block.ParsedContent, level int, line string) {
	text := strings.TrimSpace(line[level+1:])
	result.Add(block.Encode(block.Heading{Level: level, Text: ProcessInlineMarkdown(text)}, line), text)
}

// addList consumes the contiguous run of list items starting at lines[start]
// and returns the index of the last line consumed.
func addList(result *block.ParsedContent, lines []string, start int, ordered bool) int {
	list := block.NewList(ordered)
	var raw, plain []string

	i := start
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		text, ok := listItemText(line, ordered)
		if !ok {
			break
		}
		list.AddItem(ProcessInlineMarkdown(text))
		raw = append(raw, line)
		plain = append(plain, text)
	}

	result.Add(block.Encode(*list, strings.Join(raw, "\n")), strings.Join(plain, "\n"))
	return i - 1
}

func listItemText(line string, ordered bool) (string, bool) {
	if ordered {
		loc := orderedItemPattern.FindStringIndex(line)
		if loc == nil {
			return "", false
		}
		return strings.TrimSpace(line[loc[1]:]), true
	}
	if !strings.HasPrefix(line, "- ") {
		return "", false
	}
	return strings.TrimSpace(line[2:]), true
}
