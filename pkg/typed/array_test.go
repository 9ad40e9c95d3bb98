package typed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/nbtkit/pkg/nbt"
)

func TestListArraysRoundTrip(t *testing.T) {
	c := New()
	lengths := []int{0, 1, 5}
	for _, n := range lengths {
		strs := make([]string, n)
		floats := make([]float32, n)
		doubles := make([]float64, n)
		shorts := make([]int16, n)
		for i := 0; i < n; i++ {
			strs[i] = string(rune('a' + i))
			floats[i] = float32(i) + 0.25
			doubles[i] = float64(i) * -1.5
			shorts[i] = int16(i - 2)
		}

		c.SetStringArray("s", strs)
		c.SetFloatArray("f", floats)
		c.SetDoubleArray("d", doubles)
		c.SetShortArray("h", shorts)

		require.Equal(t, strs, c.GetStringArray("s"))
		require.Equal(t, floats, c.GetFloatArray("f"))
		require.Equal(t, doubles, c.GetDoubleArray("d"))
		require.Equal(t, shorts, c.GetShortArray("h"))
		require.True(t, c.HasKeyOfType("s", nbt.TypeList))
	}
}

func TestNativeArrays(t *testing.T) {
	c := New()
	c.SetByteArray("b", []byte{1, 2, 255})
	c.SetIntArray("i", []int32{-1, 0, 1})
	c.SetLongArray("l", []int64{1 << 40})
	c.SetBooleanArray("z", []bool{true, false, true})

	require.Equal(t, []byte{1, 2, 255}, c.GetByteArray("b"))
	require.Equal(t, []int32{-1, 0, 1}, c.GetIntArray("i"))
	require.Equal(t, []int64{1 << 40}, c.GetLongArray("l"))
	require.Equal(t, []bool{true, false, true}, c.GetBooleanArray("z"))
	require.Equal(t, []byte{1, 0, 1}, c.GetByteArray("z"))
	require.True(t, c.HasKeyOfType("b", nbt.TypeByteArray))
	require.True(t, c.HasKeyOfType("i", nbt.TypeIntArray))
	require.True(t, c.HasKeyOfType("l", nbt.TypeLongArray))

	// storage is not reachable through returned or passed slices
	in := []int32{5}
	c.SetIntArray("i", in)
	in[0] = 6
	out := c.GetIntArray("i")
	out[0] = 7
	require.Equal(t, []int32{5}, c.GetIntArray("i"))
}

func TestArrayDefaults(t *testing.T) {
	c := New()
	c.SetInt("wrong", 1)
	for _, k := range []string{"missing", "wrong"} {
		assert.NotNil(t, c.GetBooleanArray(k))
		assert.Empty(t, c.GetBooleanArray(k))
		assert.Empty(t, c.GetByteArray(k))
		assert.Empty(t, c.GetShortArray(k))
		assert.Empty(t, c.GetIntArray(k))
		assert.Empty(t, c.GetLongArray(k))
		assert.Empty(t, c.GetFloatArray(k))
		assert.Empty(t, c.GetDoubleArray(k))
		assert.Empty(t, c.GetStringArray(k))
		assert.NotNil(t, c.GetUUIDArray(k))
		assert.Empty(t, c.GetUUIDArray(k))
		assert.NotNil(t, c.GetCompoundArray(k))
		assert.Empty(t, c.GetCompoundArray(k))
	}

	// a list of another element type reads as empty
	c.SetShortArray("shorts", []int16{1, 2})
	assert.Empty(t, c.GetFloatArray("shorts"))
	assert.Empty(t, c.GetStringArray("shorts"))
}

func TestArrayNilRemoves(t *testing.T) {
	c := New()
	c.SetBooleanArray("a", []bool{})
	c.SetByteArray("b", []byte{})
	c.SetShortArray("c", []int16{})
	c.SetIntArray("d", []int32{})
	c.SetLongArray("e", []int64{})
	c.SetFloatArray("f", []float32{})
	c.SetDoubleArray("g", []float64{})
	c.SetStringArray("h", []string{})
	c.SetUUIDArray("i", []uuid.UUID{})
	c.SetCompoundArray("j", []*Compound{})
	require.Equal(t, 10, c.Size())

	c.SetBooleanArray("a", nil)
	c.SetByteArray("b", nil)
	c.SetShortArray("c", nil)
	c.SetIntArray("d", nil)
	c.SetLongArray("e", nil)
	c.SetFloatArray("f", nil)
	c.SetDoubleArray("g", nil)
	c.SetStringArray("h", nil)
	c.SetUUIDArray("i", nil)
	c.SetCompoundArray("j", nil)
	require.True(t, c.IsEmpty())
}

func TestUUIDArray(t *testing.T) {
	c := New()
	ids := []uuid.UUID{uuid.New(), uuid.Nil, uuid.New()}
	c.SetUUIDArray("ids", ids)
	require.Equal(t, ids, c.GetUUIDArray("ids"))

	l := c.Get("ids").(*nbt.List)
	require.Equal(t, nbt.TypeIntArray, l.ElemType())
}

func TestUUIDArrayCompoundShape(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	l := nbt.NewList()
	for _, id := range ids {
		elem := New()
		elem.SetUUID("uuid", id)
		require.True(t, l.Add(elem.Tree()))
	}
	bad := nbt.NewCompound()
	bad.Set("uuid", nbt.String("nope"))
	require.True(t, l.Add(bad))

	c := New()
	c.Set("ids", l)
	require.Equal(t, append(ids, uuid.Nil), c.GetUUIDArray("ids"))
}

func TestUUIDArrayMalformedElement(t *testing.T) {
	l := nbt.ListOf(nbt.IntArray{1, 2, 3, 4}, nbt.IntArray{1})
	c := New()
	c.Set("ids", l)
	got := c.GetUUIDArray("ids")
	require.Len(t, got, 2)
	require.NotEqual(t, uuid.Nil, got[0])
	require.Equal(t, uuid.Nil, got[1])
}

func TestCompoundArray(t *testing.T) {
	a, b := New(), New()
	a.SetInt("n", 1)
	b.SetInt("n", 2)

	c := New()
	c.SetCompoundArray("items", []*Compound{a, nil, b})
	got := c.GetCompoundArray("items")
	require.Len(t, got, 3)
	require.Same(t, a, got[0])
	require.True(t, got[1].IsEmpty())
	require.Equal(t, int32(2), got[2].GetInt("n"))

	// raw elements are wrapped as views
	raw := nbt.NewCompound()
	c.Set("raw", nbt.ListOf(raw))
	view := c.GetCompoundArray("raw")[0]
	view.SetString("k", "v")
	require.Equal(t, nbt.String("v"), raw.Get("k"))
}
