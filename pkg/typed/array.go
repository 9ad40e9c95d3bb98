package typed

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/brendoncarroll/nbtkit/pkg/nbt"
)

// Array getters never return nil. A missing or mistyped key yields an empty
// slice, and list elements of an unexpected type read as zero values.
// Array setters rebuild the stored value from scratch; a nil slice removes
// the key.

func (c *Compound) GetBooleanArray(key string) []bool {
	bytes := c.GetByteArray(key)
	ret := make([]bool, len(bytes))
	for i, b := range bytes {
		ret[i] = b != 0
	}
	return ret
}

// SetBooleanArray stores vs as a byte array of 1s and 0s.
func (c *Compound) SetBooleanArray(key string, vs []bool) {
	if vs == nil {
		c.tree.Remove(key)
		return
	}
	bytes := make(nbt.ByteArray, len(vs))
	for i, v := range vs {
		bytes[i] = boolByte(v)
	}
	c.tree.Set(key, bytes)
}

func (c *Compound) GetByteArray(key string) []byte {
	v, _ := c.tree.Get(key).(nbt.ByteArray)
	return append([]byte{}, v...)
}

func (c *Compound) SetByteArray(key string, vs []byte) {
	if vs == nil {
		c.tree.Remove(key)
		return
	}
	c.tree.Set(key, append(nbt.ByteArray{}, vs...))
}

func (c *Compound) GetIntArray(key string) []int32 {
	v, _ := c.tree.Get(key).(nbt.IntArray)
	return append([]int32{}, v...)
}

func (c *Compound) SetIntArray(key string, vs []int32) {
	if vs == nil {
		c.tree.Remove(key)
		return
	}
	c.tree.Set(key, append(nbt.IntArray{}, vs...))
}

func (c *Compound) GetLongArray(key string) []int64 {
	v, _ := c.tree.Get(key).(nbt.LongArray)
	return append([]int64{}, v...)
}

func (c *Compound) SetLongArray(key string, vs []int64) {
	if vs == nil {
		c.tree.Remove(key)
		return
	}
	c.tree.Set(key, append(nbt.LongArray{}, vs...))
}

// GetShortArray reads a list of short tags.
func (c *Compound) GetShortArray(key string) []int16 {
	l := c.getList(key, nbt.TypeShort)
	ret := make([]int16, l.Len())
	for i := range ret {
		if v, ok := l.Get(i).(nbt.Short); ok {
			ret[i] = int16(v)
		}
	}
	return ret
}

// SetShortArray stores vs as a list of short tags.
func (c *Compound) SetShortArray(key string, vs []int16) {
	if vs == nil {
		c.tree.Remove(key)
		return
	}
	l := nbt.NewList()
	for _, v := range vs {
		l.Add(nbt.Short(v))
	}
	c.tree.Set(key, l)
}

// GetFloatArray reads a list of float tags.
func (c *Compound) GetFloatArray(key string) []float32 {
	l := c.getList(key, nbt.TypeFloat)
	ret := make([]float32, l.Len())
	for i := range ret {
		if v, ok := l.Get(i).(nbt.Float); ok {
			ret[i] = float32(v)
		}
	}
	return ret
}

// SetFloatArray stores vs as a list of float tags.
func (c *Compound) SetFloatArray(key string, vs []float32) {
	if vs == nil {
		c.tree.Remove(key)
		return
	}
	l := nbt.NewList()
	for _, v := range vs {
		l.Add(nbt.Float(v))
	}
	c.tree.Set(key, l)
}

// GetDoubleArray reads a list of double tags.
func (c *Compound) GetDoubleArray(key string) []float64 {
	l := c.getList(key, nbt.TypeDouble)
	ret := make([]float64, l.Len())
	for i := range ret {
		if v, ok := l.Get(i).(nbt.Double); ok {
			ret[i] = float64(v)
		}
	}
	return ret
}

// SetDoubleArray stores vs as a list of double tags.
func (c *Compound) SetDoubleArray(key string, vs []float64) {
	if vs == nil {
		c.tree.Remove(key)
		return
	}
	l := nbt.NewList()
	for _, v := range vs {
		l.Add(nbt.Double(v))
	}
	c.tree.Set(key, l)
}

// GetStringArray reads a list of string tags.
func (c *Compound) GetStringArray(key string) []string {
	l := c.getList(key, nbt.TypeString)
	ret := make([]string, l.Len())
	for i := range ret {
		if v, ok := l.Get(i).(nbt.String); ok {
			ret[i] = string(v)
		}
	}
	return ret
}

// SetStringArray stores vs as a list of string tags.
func (c *Compound) SetStringArray(key string, vs []string) {
	if vs == nil {
		c.tree.Remove(key)
		return
	}
	l := nbt.NewList()
	for _, v := range vs {
		l.Add(nbt.String(v))
	}
	c.tree.Set(key, l)
}

// GetUUIDArray reads a list of UUIDs. Both list shapes are accepted: int
// arrays in the combined form, and compounds holding the UUID at "uuid".
// Elements that do not hold a valid UUID read as uuid.Nil.
func (c *Compound) GetUUIDArray(key string) []uuid.UUID {
	l, ok := c.tree.Get(key).(*nbt.List)
	if !ok {
		return []uuid.UUID{}
	}
	switch l.ElemType() {
	case nbt.TypeIntArray:
		ret := make([]uuid.UUID, l.Len())
		for i := range ret {
			id, ok := uuidFromTag(l.Get(i))
			if !ok {
				log.Debugf("typed: malformed uuid at %q[%d]", key, i)
			}
			ret[i] = id
		}
		return ret
	case nbt.TypeCompound:
		ret := make([]uuid.UUID, l.Len())
		for i := range ret {
			if elem := asCompound(l.Get(i)); elem != nil {
				ret[i] = elem.GetUUID(uuidKey)
			}
		}
		return ret
	default:
		return []uuid.UUID{}
	}
}

// SetUUIDArray stores ids as a list of combined form int arrays.
func (c *Compound) SetUUIDArray(key string, ids []uuid.UUID) {
	if ids == nil {
		c.tree.Remove(key)
		return
	}
	l := nbt.NewList()
	for _, id := range ids {
		l.Add(uuidToTag(id))
	}
	c.tree.Set(key, l)
}

// GetCompoundArray reads a list of compounds. The elements share storage
// with c.
func (c *Compound) GetCompoundArray(key string) []*Compound {
	l := c.getList(key, nbt.TypeCompound)
	ret := make([]*Compound, l.Len())
	for i := range ret {
		if elem := asCompound(l.Get(i)); elem != nil {
			ret[i] = elem
		} else {
			ret[i] = New()
		}
	}
	return ret
}

// SetCompoundArray stores vs by reference as a list of compounds. Nil
// elements are stored as empty compounds.
func (c *Compound) SetCompoundArray(key string, vs []*Compound) {
	if vs == nil {
		c.tree.Remove(key)
		return
	}
	l := nbt.NewList()
	for _, v := range vs {
		if v == nil {
			v = New()
		}
		l.Add(v)
	}
	c.tree.Set(key, l)
}

// getList returns the list at key if its elements have type elem, and an
// empty list otherwise.
func (c *Compound) getList(key string, elem nbt.Type) *nbt.List {
	l, ok := c.tree.Get(key).(*nbt.List)
	if !ok || (l.Len() > 0 && l.ElemType() != elem) {
		return nbt.NewList()
	}
	return l
}
