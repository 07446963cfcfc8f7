package content

import (
	"fmt"
	"html"
	"regexp"

	"github.com/microcosm-cc/bluemonday"

	"github.com/roboco-io/postblocks/internal/block"
)

var (
	scriptPattern       = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	eventHandlerPattern = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*(?:"[^"]*"|'[^']*')`)
)

// SanitizeContent removes <script> elements and inline on* event handler
// attributes from content.
func SanitizeContent(content string) string {
	content = scriptPattern.ReplaceAllString(content, "")
	return eventHandlerPattern.ReplaceAllString(content, "")
}

// Policy selects how SanitizeBlocks cleans HTML fragments.
type Policy string

const (
	// PolicyBasic strips scripts and event handlers only.
	PolicyBasic Policy = "basic"
	// PolicyUGC additionally applies bluemonday's user generated content policy.
	PolicyUGC Policy = "ugc"
	// PolicyStrict removes all markup.
	PolicyStrict Policy = "strict"
)

// Policies returns the supported sanitization policies.
func Policies() []Policy {
	return []Policy{PolicyBasic, PolicyUGC, PolicyStrict}
}

// ParsePolicy maps a policy name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	for _, p := range Policies() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: sanitize policy %q", ErrUnsupportedFormat, name)
}

var (
	ugcPolicy    = newUGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// newUGCPolicy allows what the inline renderer produces, including the
// link class, target and rel attributes. bluemonday still adds nofollow to
// rel.
func newUGCPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[\w\s:-]+$`)).OnElements("a")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^[a-z\s]+$`)).OnElements("a")
	return p
}

// SanitizeFragment cleans a single HTML fragment with the given policy.
func SanitizeFragment(fragment string, policy Policy) string {
	fragment = SanitizeContent(fragment)
	switch policy {
	case PolicyUGC:
		return ugcPolicy.Sanitize(fragment)
	case PolicyStrict:
		return strictPolicy.Sanitize(fragment)
	default:
		return fragment
	}
}

// sanitizeText cleans plain text such as image alt text. bluemonday escapes
// its output, so the text is unescaped again before it goes back into JSON.
func sanitizeText(text string, policy Policy) string {
	text = SanitizeContent(text)
	if policy == PolicyBasic {
		return text
	}
	return html.UnescapeString(strictPolicy.Sanitize(text))
}

// SanitizeBlocks returns a copy of blocks with every HTML fragment cleaned.
// List items and image alt text are cleaned individually so the JSON
// payloads stay intact. Blocks that fail to decode are dropped.
func SanitizeBlocks(blocks []block.Block, policy Policy) []block.Block {
	out := make([]block.Block, 0, len(blocks))
	for _, b := range blocks {
		node, err := block.Decode(b)
		if err != nil {
			continue
		}

		switch n := node.(type) {
		case block.Heading:
			n.Text = SanitizeFragment(n.Text, policy)
			node = n
		case block.Paragraph:
			n.Text = SanitizeFragment(n.Text, policy)
			node = n
		case block.Quote:
			n.Text = SanitizeFragment(n.Text, policy)
			node = n
		case block.List:
			items := make([]string, len(n.Items))
			for i, item := range n.Items {
				items[i] = SanitizeFragment(item, policy)
			}
			n.Items = items
			node = n
		case block.Image:
			n.Alt = sanitizeText(n.Alt, policy)
			node = n
		}

		out = append(out, block.Encode(node, b.RawMarkdown))
	}
	return out
}
