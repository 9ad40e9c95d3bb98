// Package typed provides typed accessors over an untyped nbt.Tree.
//
// Reads are total: a missing key, a value of the wrong tag type, or an
// undecodable value yields the documented default instead of an error.
// Values without a native tag (booleans, UUIDs, rich text, several array
// shapes) are encoded onto the native tags in formats that stay compatible
// with existing persisted data.
//
// A Compound is not safe for concurrent mutation. Compounds returned by
// GetNullableCompound and GetCompoundArray are views that share storage with
// their parent; use DeepCopy for an isolated copy.
package typed

import (
	"github.com/pkg/errors"

	"github.com/brendoncarroll/nbtkit/pkg/nbt"
)

// ErrNullArgument is returned when a required argument is nil.
var ErrNullArgument = errors.New("typed: null argument")

var (
	_ nbt.Tree   = &Compound{}
	_ nbt.Copier = &Compound{}
)

// Compound is a typed view over an nbt.Tree.
type Compound struct {
	tree nbt.Tree
}

// New returns an empty compound.
func New() *Compound {
	return &Compound{tree: nbt.NewCompound()}
}

// Wrap returns a compound viewing tree. Changes made through either are
// visible through both. A nil tree yields an empty compound.
func Wrap(tree nbt.Tree) *Compound {
	switch t := tree.(type) {
	case nil:
		return New()
	case *Compound:
		if t == nil {
			return New()
		}
		return &Compound{tree: t.tree}
	default:
		return &Compound{tree: t}
	}
}

// FromTree returns a compound holding a shallow copy of tree's entries.
func FromTree(tree nbt.Tree) *Compound {
	c := New()
	if tree != nil {
		nbt.CopyEntries(c.tree, tree)
	}
	return c
}

// Tree returns the underlying storage.
func (c *Compound) Tree() nbt.Tree {
	return c.tree
}

func (c *Compound) Type() nbt.Type { return nbt.TypeCompound }

// Get returns the raw tag at key, or nil.
func (c *Compound) Get(key string) nbt.Tag {
	return c.tree.Get(key)
}

// Set stores a raw tag at key. A nil tag removes the key.
func (c *Compound) Set(key string, v nbt.Tag) {
	c.tree.Set(key, v)
}

func (c *Compound) Size() int {
	return c.tree.Len()
}

func (c *Compound) Len() int {
	return c.tree.Len()
}

func (c *Compound) IsEmpty() bool {
	return c.tree.Len() == 0
}

// HasKey reports whether key is present, whatever its type.
func (c *Compound) HasKey(key string) bool {
	return c.tree.Get(key) != nil
}

// HasKeyOfType reports whether key is present with exactly type t.
func (c *Compound) HasKeyOfType(key string, t nbt.Type) bool {
	return c.tree.HasKeyOfType(key, t)
}

// Keys returns the present keys. Callers must not depend on their order.
func (c *Compound) Keys() []string {
	return c.tree.Keys()
}

// SwitchKey moves the value at from to to, overwriting anything at to.
// It does nothing if from is absent or equal to to.
func (c *Compound) SwitchKey(from, to string) {
	if from == to {
		return
	}
	v := c.tree.Get(from)
	if v == nil {
		return
	}
	c.tree.Set(to, v)
	c.tree.Remove(from)
}

// Remove deletes key if present. Use RemoveUUID for UUIDs.
func (c *Compound) Remove(key string) {
	c.tree.Remove(key)
}

func (c *Compound) Clear() {
	c.tree.Clear()
}

// Adopt replaces every entry of c with the entries of other.
// Aggregate values are shared with other, not copied.
func (c *Compound) Adopt(other *Compound) error {
	if other == nil {
		return errors.Wrap(ErrNullArgument, "adopt")
	}
	if other.tree == c.tree {
		return nil
	}
	c.tree.Clear()
	nbt.CopyEntries(c.tree, other.tree)
	return nil
}

// DeepCopy returns a compound sharing no storage with c.
func (c *Compound) DeepCopy() *Compound {
	return &Compound{tree: nbt.CopyTree(c.tree)}
}

func (c *Compound) CopyTag() nbt.Tag {
	return c.DeepCopy()
}

// Equal reports whether c and other hold structurally equal entries.
func (c *Compound) Equal(other *Compound) bool {
	if c == nil || other == nil {
		return c == other
	}
	return nbt.TreesEqual(c.tree, other.tree)
}

func (c *Compound) String() string {
	return "TypedCompound" + nbt.Format(c.tree)
}
