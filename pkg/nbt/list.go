package nbt

// List is a homogeneous sequence of tags.
// An empty list has element type TypeEnd until the first element is added.
type List struct {
	elem  Type
	items []Tag
}

func NewList() *List {
	return &List{}
}

// ListOf creates a list from tags, which must all share one type.
// It returns nil if they do not.
func ListOf(tags ...Tag) *List {
	l := &List{items: make([]Tag, 0, len(tags))}
	for _, t := range tags {
		if !l.Add(t) {
			return nil
		}
	}
	return l
}

func (l *List) Type() Type { return TypeList }

// ElemType returns the type shared by the list's elements.
func (l *List) ElemType() Type {
	if l == nil {
		return TypeEnd
	}
	return l.elem
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Get returns the i-th element, or nil when i is out of range.
func (l *List) Get(i int) Tag {
	if l == nil || i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Add appends v. It returns false, leaving the list unchanged, if v's type
// differs from the element type.
func (l *List) Add(v Tag) bool {
	if v == nil || v.Type() == TypeEnd {
		return false
	}
	if len(l.items) == 0 {
		l.elem = v.Type()
	} else if v.Type() != l.elem {
		return false
	}
	l.items = append(l.items, v)
	return true
}

// Set replaces the i-th element. It returns false if i is out of range or v
// has the wrong type.
func (l *List) Set(i int, v Tag) bool {
	if i < 0 || i >= len(l.items) || v == nil {
		return false
	}
	if len(l.items) > 1 && v.Type() != l.elem {
		return false
	}
	l.elem = v.Type()
	l.items[i] = v
	return true
}

// RemoveAt deletes the i-th element.
func (l *List) RemoveAt(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	if len(l.items) == 0 {
		l.elem = TypeEnd
	}
}

// SetElemType sets the element type of an empty list, as read from the wire.
func (l *List) SetElemType(t Type) bool {
	if len(l.items) > 0 {
		return t == l.elem
	}
	l.elem = t
	return true
}

func (l *List) String() string {
	return Format(l)
}
