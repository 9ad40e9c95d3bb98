package typed

import "github.com/brendoncarroll/nbtkit/pkg/nbt"

// GetBoolean reads a byte tag as a boolean. Any non-zero byte is true.
func (c *Compound) GetBoolean(key string) bool {
	return c.GetByte(key) != 0
}

// SetBoolean stores v as a byte tag holding 1 or 0.
func (c *Compound) SetBoolean(key string, v bool) {
	c.SetByte(key, boolByte(v))
}

func (c *Compound) GetByte(key string) byte {
	if v, ok := c.tree.Get(key).(nbt.Byte); ok {
		return byte(v)
	}
	return 0
}

func (c *Compound) SetByte(key string, v byte) {
	c.tree.Set(key, nbt.Byte(v))
}

func (c *Compound) GetShort(key string) int16 {
	if v, ok := c.tree.Get(key).(nbt.Short); ok {
		return int16(v)
	}
	return 0
}

func (c *Compound) SetShort(key string, v int16) {
	c.tree.Set(key, nbt.Short(v))
}

func (c *Compound) GetInt(key string) int32 {
	if v, ok := c.tree.Get(key).(nbt.Int); ok {
		return int32(v)
	}
	return 0
}

func (c *Compound) SetInt(key string, v int32) {
	c.tree.Set(key, nbt.Int(v))
}

func (c *Compound) GetLong(key string) int64 {
	if v, ok := c.tree.Get(key).(nbt.Long); ok {
		return int64(v)
	}
	return 0
}

func (c *Compound) SetLong(key string, v int64) {
	c.tree.Set(key, nbt.Long(v))
}

func (c *Compound) GetFloat(key string) float32 {
	if v, ok := c.tree.Get(key).(nbt.Float); ok {
		return float32(v)
	}
	return 0
}

func (c *Compound) SetFloat(key string, v float32) {
	c.tree.Set(key, nbt.Float(v))
}

func (c *Compound) GetDouble(key string) float64 {
	if v, ok := c.tree.Get(key).(nbt.Double); ok {
		return float64(v)
	}
	return 0
}

func (c *Compound) SetDouble(key string, v float64) {
	c.tree.Set(key, nbt.Double(v))
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
