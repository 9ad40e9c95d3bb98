package nbt

import "sort"

// Tree is a compound node: a mapping from string keys to tags.
// It is the capability the typed accessor layer is built on.
type Tree interface {
	Tag
	// Get returns the tag stored at key, or nil.
	Get(key string) Tag
	// Set stores v at key. A nil v removes the key.
	Set(key string, v Tag)
	Remove(key string)
	HasKeyOfType(key string, t Type) bool
	// Keys returns the present keys in sorted order.
	Keys() []string
	Len() int
	Clear()
}

var _ Tree = &Compound{}

// Compound is the map-backed Tree.
type Compound struct {
	m map[string]Tag
}

func NewCompound() *Compound {
	return &Compound{m: make(map[string]Tag)}
}

// CompoundOf creates a compound over m. The map is used directly, not copied.
func CompoundOf(m map[string]Tag) *Compound {
	if m == nil {
		m = make(map[string]Tag)
	}
	return &Compound{m: m}
}

func (c *Compound) Type() Type { return TypeCompound }

func (c *Compound) Get(key string) Tag {
	if c == nil {
		return nil
	}
	return c.m[key]
}

func (c *Compound) Set(key string, v Tag) {
	if v == nil {
		delete(c.m, key)
		return
	}
	if c.m == nil {
		c.m = make(map[string]Tag)
	}
	c.m[key] = v
}

func (c *Compound) Remove(key string) {
	if c == nil {
		return
	}
	delete(c.m, key)
}

func (c *Compound) HasKeyOfType(key string, t Type) bool {
	if c == nil {
		return false
	}
	v, ok := c.m[key]
	return ok && v.Type() == t
}

func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.m)
}

func (c *Compound) Clear() {
	for k := range c.m {
		delete(c.m, k)
	}
}

func (c *Compound) String() string {
	return Format(c)
}

// CopyEntries shallow copies every entry of src into dst.
func CopyEntries(dst, src Tree) {
	for _, k := range src.Keys() {
		dst.Set(k, src.Get(k))
	}
}
