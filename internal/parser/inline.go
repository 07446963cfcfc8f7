package parser

import (
	"html"
	"regexp"
)

// LinkClass is the class attribute given to rendered links.
const LinkClass = "text-blue-600 hover:text-blue-800 underline"

// InlineRule is one substitution step of inline span processing.
type InlineRule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply runs the rule over text.
func (r InlineRule) Apply(text string) string {
	return r.Pattern.ReplaceAllString(text, r.Replacement)
}

// inlineRules are applied in order, each to the previous result. Triple
// emphasis must run before double and single emphasis so that ***x*** is
// not split into nested partial matches.
var inlineRules = []InlineRule{
	{"strong-em", regexp.MustCompile(`\*\*\*(.*?)\*\*\*`), "<strong><em>${1}</em></strong>"},
	{"strong-em-underscore-inner", regexp.MustCompile(`\*\*_(.*?)_\*\*`), "<strong><em>${1}</em></strong>"},
	{"strong-em-underscore-outer", regexp.MustCompile(`_\*\*(.*?)\*\*_`), "<strong><em>${1}</em></strong>"},
	{"strong", regexp.MustCompile(`\*\*(.*?)\*\*`), "<strong>${1}</strong>"},
	{"em", regexp.MustCompile(`\*(.*?)\*`), "<em>${1}</em>"},
	{"em-underscore", regexp.MustCompile(`_(.*?)_`), "<em>${1}</em>"},
	{"link", regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`),
		`<a href="${2}" target="_blank" rel="noopener noreferrer" class="` + LinkClass + `">${1}</a>`},
}

// InlineRules returns a copy of the ordered inline substitution table.
func InlineRules() []InlineRule {
	rules := make([]InlineRule, len(inlineRules))
	copy(rules, inlineRules)
	return rules
}

// ProcessInlineMarkdown renders bold, italic and link spans to HTML.
// There is no escaping: literal *, _, [ and ] are always treated as markup.
func ProcessInlineMarkdown(text string) string {
	for _, rule := range inlineRules {
		text = rule.Apply(text)
	}
	return text
}

// htmlRules reverse ProcessInlineMarkdown. Anchors must be rewritten before
// the catch-all tag strip.
var htmlRules = []InlineRule{
	{"strong", regexp.MustCompile(`</?strong>`), "**"},
	{"em", regexp.MustCompile(`</?em>`), "*"},
	{"link", regexp.MustCompile(`<a\s[^>]*?href="([^"]*)"[^>]*>(.*?)</a>`), "[${2}](${1})"},
	{"tags", regexp.MustCompile(`<[^>]*>`), ""},
}

// HTMLToMarkdown converts an inline HTML fragment back to markdown spans.
// Character entities left by sanitizing are decoded.
func HTMLToMarkdown(fragment string) string {
	for _, rule := range htmlRules {
		fragment = rule.Apply(fragment)
	}
	return html.UnescapeString(fragment)
}
