package nbtio

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/nbtkit/pkg/nbt"
)

// Write encodes root as a named compound.
func Write(w io.Writer, name string, root nbt.Tree) error {
	bw := bufio.NewWriter(w)
	e := &encoder{w: bw}
	e.byte(byte(nbt.TypeCompound))
	e.string(name)
	e.payload(root, 0)
	if e.err != nil {
		return e.err
	}
	return bw.Flush()
}

type encoder struct {
	w   *bufio.Writer
	buf [8]byte
	err error
}

func (e *encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *encoder) write(p []byte) {
	if e.err != nil {
		return
	}
	if _, err := e.w.Write(p); err != nil {
		e.fail(err)
	}
}

func (e *encoder) byte(b byte) {
	e.buf[0] = b
	e.write(e.buf[:1])
}

func (e *encoder) uint16(x uint16) {
	binary.BigEndian.PutUint16(e.buf[:2], x)
	e.write(e.buf[:2])
}

func (e *encoder) uint32(x uint32) {
	binary.BigEndian.PutUint32(e.buf[:4], x)
	e.write(e.buf[:4])
}

func (e *encoder) uint64(x uint64) {
	binary.BigEndian.PutUint64(e.buf[:8], x)
	e.write(e.buf[:8])
}

func (e *encoder) length(n int) {
	if n > math.MaxInt32 {
		e.fail(errors.Errorf("nbtio: length %d too large", n))
		return
	}
	e.uint32(uint32(n))
}

func (e *encoder) string(s string) {
	data := encodeMUTF8(s)
	if len(data) > math.MaxUint16 {
		e.fail(errors.Wrapf(ErrStringTooLong, "%d bytes", len(data)))
		return
	}
	e.uint16(uint16(len(data)))
	e.write(data)
}

func (e *encoder) payload(t nbt.Tag, depth int) {
	if depth > MaxDepth {
		e.fail(ErrMaxDepth)
		return
	}
	switch t := t.(type) {
	case nbt.End:
	case nbt.Byte:
		e.byte(byte(t))
	case nbt.Short:
		e.uint16(uint16(t))
	case nbt.Int:
		e.uint32(uint32(t))
	case nbt.Long:
		e.uint64(uint64(t))
	case nbt.Float:
		e.uint32(math.Float32bits(float32(t)))
	case nbt.Double:
		e.uint64(math.Float64bits(float64(t)))
	case nbt.ByteArray:
		e.length(len(t))
		e.write(t)
	case nbt.String:
		e.string(string(t))
	case nbt.IntArray:
		e.length(len(t))
		for _, v := range t {
			e.uint32(uint32(v))
		}
	case nbt.LongArray:
		e.length(len(t))
		for _, v := range t {
			e.uint64(uint64(v))
		}
	case *nbt.List:
		e.byte(byte(t.ElemType()))
		e.length(t.Len())
		for i := 0; i < t.Len(); i++ {
			e.payload(t.Get(i), depth+1)
		}
	case nbt.Tree:
		for _, k := range t.Keys() {
			v := t.Get(k)
			e.byte(byte(v.Type()))
			e.string(k)
			e.payload(v, depth+1)
		}
		e.byte(byte(nbt.TypeEnd))
	default:
		e.fail(errors.Errorf("nbtio: cannot encode %T", t))
	}
}
