package typed

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/brendoncarroll/nbtkit/pkg/nbt"
)

// A UUID is stored either as a 4 element int array at key (combined form),
// or as two longs at key+"Most" and key+"Least" (split form). Only the
// combined form is recognized by HasUUID, GetUUID and GetNullableUUID.
const (
	UUIDMostSuffix  = "Most"
	UUIDLeastSuffix = "Least"

	// uuidKey holds the UUID inside each element of a compound-shaped UUID list.
	uuidKey = "uuid"
)

// HasUUID reports whether a combined form UUID is stored at key.
func (c *Compound) HasUUID(key string) bool {
	_, ok := uuidFromTag(c.tree.Get(key))
	return ok
}

// GetUUID returns the combined form UUID at key, or uuid.Nil.
func (c *Compound) GetUUID(key string) uuid.UUID {
	id, _ := uuidFromTag(c.tree.Get(key))
	return id
}

// GetNullableUUID returns the combined form UUID at key, or nil.
func (c *Compound) GetNullableUUID(key string) *uuid.UUID {
	id, ok := uuidFromTag(c.tree.Get(key))
	if !ok {
		return nil
	}
	return &id
}

// GetLegacyUUID returns the split form UUID at key, if both halves are present.
func (c *Compound) GetLegacyUUID(key string) (uuid.UUID, bool) {
	most, ok1 := c.tree.Get(key + UUIDMostSuffix).(nbt.Long)
	least, ok2 := c.tree.Get(key + UUIDLeastSuffix).(nbt.Long)
	if !ok1 || !ok2 {
		return uuid.Nil, false
	}
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], uint64(most))
	binary.BigEndian.PutUint64(id[8:], uint64(least))
	return id, true
}

// SetUUID stores id in the combined form.
func (c *Compound) SetUUID(key string, id uuid.UUID) {
	c.tree.Set(key, uuidToTag(id))
}

// SetLegacyUUID stores id in the split form.
func (c *Compound) SetLegacyUUID(key string, id uuid.UUID) {
	c.tree.Set(key+UUIDMostSuffix, nbt.Long(binary.BigEndian.Uint64(id[:8])))
	c.tree.Set(key+UUIDLeastSuffix, nbt.Long(binary.BigEndian.Uint64(id[8:])))
}

// SetNullableUUID stores id in the split form if legacy is set, and in the
// combined form otherwise. A nil id is the same as RemoveUUID.
func (c *Compound) SetNullableUUID(key string, id *uuid.UUID, legacy bool) {
	switch {
	case id == nil:
		c.RemoveUUID(key)
	case legacy:
		c.SetLegacyUUID(key, *id)
	default:
		c.SetUUID(key, *id)
	}
}

// RemoveUUID removes every key a UUID stored at key may occupy.
func (c *Compound) RemoveUUID(key string) {
	c.tree.Remove(key)
	c.tree.Remove(key + UUIDMostSuffix)
	c.tree.Remove(key + UUIDLeastSuffix)
}

func uuidToTag(id uuid.UUID) nbt.IntArray {
	return nbt.IntArray{
		int32(binary.BigEndian.Uint32(id[0:4])),
		int32(binary.BigEndian.Uint32(id[4:8])),
		int32(binary.BigEndian.Uint32(id[8:12])),
		int32(binary.BigEndian.Uint32(id[12:16])),
	}
}

func uuidFromTag(t nbt.Tag) (uuid.UUID, bool) {
	ints, ok := t.(nbt.IntArray)
	if !ok || len(ints) != 4 {
		return uuid.Nil, false
	}
	var id uuid.UUID
	for i, v := range ints {
		binary.BigEndian.PutUint32(id[i*4:], uint32(v))
	}
	return id, true
}
