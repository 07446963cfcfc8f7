package block

import (
	"encoding/json"
	"fmt"
)

// Node is the typed form of a block's content.
type Node interface {
	// Kind returns the stored block type for this node.
	Kind() Type
}

// Heading is a level 1-3 heading. Text is an HTML fragment.
type Heading struct {
	Level int
	Text  string
}

// Kind implements Node.
func (h Heading) Kind() Type {
	t, err := HeadingType(h.Level)
	if err != nil {
		return ""
	}
	return t
}

// Paragraph is a single line of prose. Text is an HTML fragment.
type Paragraph struct {
	Text string
}

// Kind implements Node.
func (Paragraph) Kind() Type { return TypeParagraph }

// Quote is a single-line blockquote. Text is an HTML fragment.
type Quote struct {
	Text string
}

// Kind implements Node.
func (Quote) Kind() Type { return TypeBlockquote }

// Decode interprets a stored block's content according to its type.
func Decode(b Block) (Node, error) {
	switch b.Type {
	case TypeHeading1, TypeHeading2, TypeHeading3:
		return Heading{Level: b.Type.HeadingLevel(), Text: b.Content}, nil
	case TypeParagraph:
		return Paragraph{Text: b.Content}, nil
	case TypeBlockquote:
		return Quote{Text: b.Content}, nil
	case TypeList, TypeOrderedList:
		var items []string
		if err := json.Unmarshal([]byte(b.Content), &items); err != nil {
			return nil, fmt.Errorf("invalid %s content: %w", b.Type, err)
		}
		return List{Ordered: b.Type == TypeOrderedList, Items: items}, nil
	case TypeImage:
		var img Image
		if err := json.Unmarshal([]byte(b.Content), &img); err != nil {
			return nil, fmt.Errorf("invalid image content: %w", err)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unknown block type: %q", b.Type)
	}
}

// Encode produces the stored form of a node. raw is kept as RawMarkdown.
func Encode(n Node, raw string) Block {
	b := Block{Type: n.Kind(), RawMarkdown: raw}

	switch v := n.(type) {
	case Heading:
		b.Content = v.Text
	case Paragraph:
		b.Content = v.Text
	case Quote:
		b.Content = v.Text
	case List:
		b.Content = mustJSON(v.itemsOrEmpty())
	case Image:
		b.Content = mustJSON(v)
	}
	return b
}

// mustJSON encodes values that cannot fail to marshal (strings and string
// structs), keeping HTML characters literal.
func mustJSON(v any) string {
	s, err := encodeJSON(v, "")
	if err != nil {
		panic(err)
	}
	return s
}
