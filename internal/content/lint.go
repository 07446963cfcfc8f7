package content

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/roboco-io/postblocks/internal/block"
)

var lintMarkdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// LintMarkdown reports CommonMark constructs in markdown that the block
// parser does not support and will store as something else.
func LintMarkdown(markdown string) []block.Warning {
	src := []byte(markdown)
	doc := lintMarkdown.Parser().Parse(text.NewReader(src))

	var warnings []block.Warning
	warn := func(n ast.Node, msg string) {
		warnings = append(warnings, block.Warning{Line: lineOf(n, src), Message: msg})
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			warn(n, "code blocks are not supported; each line is stored as a paragraph")
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock:
			warn(n, "raw HTML blocks are stored as paragraph text")
			return ast.WalkSkipChildren, nil
		case *ast.ThematicBreak:
			warnings = append(warnings, block.Warning{
				Line:    thematicBreakLine(n, src),
				Message: "horizontal rules are not supported; the line is stored as a paragraph",
			})
		case *extast.Table:
			warn(n, "tables are not supported; each row is stored as a paragraph")
			return ast.WalkSkipChildren, nil
		case *ast.Heading:
			if node.Level > 3 {
				warn(n, "heading levels deeper than ### are stored as paragraphs")
			} else if isSetextHeading(node, src) {
				warn(n, "underlined headings are not supported; prefix the line with # instead")
			}
		case *ast.List:
			if node.Parent() != nil && node.Parent().Kind() == ast.KindListItem {
				warn(n, "nested lists are not supported; nested items are stored as paragraphs")
			} else if !node.IsOrdered() && node.Marker != '-' {
				warn(n, "only '-' bullets start a list; this list is stored as paragraphs")
			} else if node.IsOrdered() && node.Marker != '.' {
				warn(n, "only '1.' style numbering starts an ordered list")
			}
		case *ast.Paragraph:
			if node.Parent() != nil && node.Parent().Kind() == ast.KindDocument && node.Lines().Len() > 1 {
				warn(n, "paragraph spans several lines; each line is stored as its own paragraph")
			}
		}
		return ast.WalkContinue, nil
	})

	return warnings
}

// lineOf returns the 1-based source line of the first text segment under n,
// or 0 when the node carries no segments.
func lineOf(n ast.Node, src []byte) int {
	for c := n; c != nil; c = c.FirstChild() {
		if c.Type() != ast.TypeBlock || c.Lines().Len() == 0 {
			continue
		}
		start := c.Lines().At(0).Start
		line := bytes.Count(src[:start], []byte("\n")) + 1
		if _, fenced := c.(*ast.FencedCodeBlock); fenced && line > 1 {
			line--
		}
		return line
	}
	return 0
}

// thematicBreakLine finds the source line of a thematic break, which carries
// no segments, by scanning forward from the end of the previous sibling.
func thematicBreakLine(n ast.Node, src []byte) int {
	from := 0
	if prev := n.PreviousSibling(); prev != nil {
		if _, ok := prev.(*ast.ThematicBreak); ok {
			from = thematicBreakLine(prev, src)
		} else {
			from = lastLineOf(prev, src)
		}
	}

	lines := strings.Split(string(src), "\n")
	for i := from; i < len(lines); i++ {
		if isThematicBreak(lines[i]) {
			return i + 1
		}
	}
	return 0
}

// lastLineOf returns the 1-based line of the last text segment under n.
func lastLineOf(n ast.Node, src []byte) int {
	line := 0
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || c.Type() != ast.TypeBlock || c.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}
		seg := c.Lines().At(c.Lines().Len() - 1)
		if l := bytes.Count(src[:seg.Start], []byte("\n")) + 1; l > line {
			line = l
		}
		return ast.WalkContinue, nil
	})
	return line
}

func isThematicBreak(line string) bool {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, line)
	if len(compact) < 3 {
		return false
	}
	marker := compact[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	return strings.Count(compact, string(marker)) == len(compact)
}

func isSetextHeading(h *ast.Heading, src []byte) bool {
	if h.Lines().Len() == 0 {
		return false
	}
	start := h.Lines().At(0).Start
	lineStart := bytes.LastIndexByte(src[:start], '\n') + 1
	return !strings.HasPrefix(strings.TrimSpace(string(src[lineStart:start])), "#")
}
