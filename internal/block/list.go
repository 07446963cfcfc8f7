package block

// List is an ordered or unordered list. Items are HTML fragments; lists
// never contain nested blocks.
type List struct {
	Ordered bool
	Items   []string
}

// NewList creates a new list.
func NewList(ordered bool) *List {
	return &List{
		Ordered: ordered,
		Items:   make([]string, 0),
	}
}

// Kind implements Node.
func (l List) Kind() Type {
	if l.Ordered {
		return TypeOrderedList
	}
	return TypeList
}

// AddItem adds an item to the list.
func (l *List) AddItem(html string) {
	l.Items = append(l.Items, html)
}

// IsEmpty returns true if the list has no items.
func (l List) IsEmpty() bool {
	return len(l.Items) == 0
}

func (l List) itemsOrEmpty() []string {
	if l.Items == nil {
		return []string{}
	}
	return l.Items
}
