package typed

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/brendoncarroll/nbtkit/pkg/component"
	"github.com/brendoncarroll/nbtkit/pkg/nbt"
)

// NullString is the stored value that reads back as a null string.
const NullString = "\x00"

// GetString returns the string at key, or "".
func (c *Compound) GetString(key string) string {
	if v, ok := c.tree.Get(key).(nbt.String); ok {
		return string(v)
	}
	return ""
}

// GetNullableString returns the string at key. It returns nil if the key is
// absent, holds another type, or holds NullString.
func (c *Compound) GetNullableString(key string) *string {
	v, ok := c.tree.Get(key).(nbt.String)
	if !ok || string(v) == NullString {
		return nil
	}
	s := string(v)
	return &s
}

// SetString stores v as is.
func (c *Compound) SetString(key string, v string) {
	c.tree.Set(key, nbt.String(v))
}

// SetNullableString stores *v, or removes key if v is nil.
func (c *Compound) SetNullableString(key string, v *string) {
	if v == nil {
		c.tree.Remove(key)
		return
	}
	c.SetString(key, *v)
}

// GetCompound returns the compound at key, or a new empty compound that is
// not attached to c.
func (c *Compound) GetCompound(key string) *Compound {
	if found := c.GetNullableCompound(key); found != nil {
		return found
	}
	return New()
}

// GetNullableCompound returns the compound at key, or nil. The result shares
// storage with c.
func (c *Compound) GetNullableCompound(key string) *Compound {
	return asCompound(c.tree.Get(key))
}

// SetCompound stores v by reference, or removes key if v is nil.
func (c *Compound) SetCompound(key string, v *Compound) {
	if v == nil {
		c.tree.Remove(key)
		return
	}
	c.tree.Set(key, v)
}

// GetComponent decodes the JSON text component stored at key. It returns an
// empty component if the key does not hold a decodable string.
func (c *Compound) GetComponent(key string) component.Component {
	v, ok := c.tree.Get(key).(nbt.String)
	if !ok {
		return component.Empty()
	}
	comp, err := component.Unmarshal(string(v))
	if err != nil {
		log.Debugf("typed: component at %q: %v", key, err)
		return component.Empty()
	}
	return comp
}

// SetComponent stores the canonical JSON form of v as a string.
func (c *Compound) SetComponent(key string, v *component.Component) error {
	if v == nil {
		return errors.Wrapf(ErrNullArgument, "component for key %q", key)
	}
	s, err := component.Marshal(*v)
	if err != nil {
		return err
	}
	c.SetString(key, s)
	return nil
}

func asCompound(t nbt.Tag) *Compound {
	switch v := t.(type) {
	case *Compound:
		return v
	case nbt.Tree:
		return Wrap(v)
	default:
		return nil
	}
}
