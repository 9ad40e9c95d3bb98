package nbtio

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/nbtkit/pkg/nbt"
)

// preallocation cap for array and list payloads; larger inputs grow as read
const maxPrealloc = 1 << 12

// Read decodes a named root compound. Gzip compressed input is detected and
// decompressed.
func Read(r io.Reader) (string, *nbt.Compound, error) {
	br := bufio.NewReader(r)
	src, closer, err := maybeGunzip(br)
	if err != nil {
		return "", nil, err
	}
	if closer != nil {
		defer closer.Close()
	}
	d := &decoder{r: src}
	typ := nbt.Type(d.byte())
	if d.err != nil {
		return "", nil, d.err
	}
	if typ != nbt.TypeCompound {
		return "", nil, errors.Wrapf(ErrBadRoot, "got %v", typ)
	}
	name := d.string()
	root := d.compound(0)
	if d.err != nil {
		return "", nil, d.err
	}
	return name, root, nil
}

type reader interface {
	io.Reader
	io.ByteReader
}

type decoder struct {
	r   reader
	buf [8]byte
	err error
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) read(p []byte) {
	if d.err != nil {
		return
	}
	if _, err := io.ReadFull(d.r, p); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		d.fail(errors.Wrap(err, "nbtio"))
	}
}

func (d *decoder) byte() byte {
	if d.err != nil {
		return 0
	}
	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		d.fail(errors.Wrap(err, "nbtio"))
	}
	return b
}

func (d *decoder) uint16() uint16 {
	d.read(d.buf[:2])
	return binary.BigEndian.Uint16(d.buf[:2])
}

func (d *decoder) uint32() uint32 {
	d.read(d.buf[:4])
	return binary.BigEndian.Uint32(d.buf[:4])
}

func (d *decoder) uint64() uint64 {
	d.read(d.buf[:8])
	return binary.BigEndian.Uint64(d.buf[:8])
}

func (d *decoder) length() int {
	n := int32(d.uint32())
	if n < 0 {
		d.fail(errors.Errorf("nbtio: negative length %d", n))
		return 0
	}
	return int(n)
}

func (d *decoder) string() string {
	n := int(d.uint16())
	data := make([]byte, n)
	d.read(data)
	if d.err != nil {
		return ""
	}
	s, err := decodeMUTF8(data)
	if err != nil {
		d.fail(err)
	}
	return s
}

func (d *decoder) compound(depth int) *nbt.Compound {
	if depth > MaxDepth {
		d.fail(ErrMaxDepth)
		return nil
	}
	c := nbt.NewCompound()
	for d.err == nil {
		typ := nbt.Type(d.byte())
		if typ == nbt.TypeEnd || d.err != nil {
			break
		}
		key := d.string()
		v := d.payload(typ, depth+1)
		if d.err == nil {
			c.Set(key, v)
		}
	}
	return c
}

func (d *decoder) payload(typ nbt.Type, depth int) nbt.Tag {
	switch typ {
	case nbt.TypeByte:
		return nbt.Byte(d.byte())
	case nbt.TypeShort:
		return nbt.Short(d.uint16())
	case nbt.TypeInt:
		return nbt.Int(d.uint32())
	case nbt.TypeLong:
		return nbt.Long(d.uint64())
	case nbt.TypeFloat:
		return nbt.Float(math.Float32frombits(d.uint32()))
	case nbt.TypeDouble:
		return nbt.Double(math.Float64frombits(d.uint64()))
	case nbt.TypeByteArray:
		n := d.length()
		ret := make(nbt.ByteArray, 0, minInt(n, maxPrealloc))
		for len(ret) < n && d.err == nil {
			chunk := make([]byte, minInt(n-len(ret), maxPrealloc))
			d.read(chunk)
			ret = append(ret, chunk...)
		}
		return ret
	case nbt.TypeString:
		return nbt.String(d.string())
	case nbt.TypeList:
		return d.list(depth)
	case nbt.TypeCompound:
		return d.compound(depth)
	case nbt.TypeIntArray:
		n := d.length()
		ret := make(nbt.IntArray, 0, minInt(n, maxPrealloc))
		for i := 0; i < n && d.err == nil; i++ {
			ret = append(ret, int32(d.uint32()))
		}
		return ret
	case nbt.TypeLongArray:
		n := d.length()
		ret := make(nbt.LongArray, 0, minInt(n, maxPrealloc))
		for i := 0; i < n && d.err == nil; i++ {
			ret = append(ret, int64(d.uint64()))
		}
		return ret
	default:
		d.fail(errors.Wrapf(ErrUnknownType, "%d", uint8(typ)))
		return nil
	}
}

func (d *decoder) list(depth int) *nbt.List {
	if depth > MaxDepth {
		d.fail(ErrMaxDepth)
		return nil
	}
	elem := nbt.Type(d.byte())
	n := d.length()
	l := nbt.NewList()
	if d.err != nil {
		return l
	}
	if n > 0 && (elem == nbt.TypeEnd || !elem.Valid()) {
		d.fail(errors.Wrapf(ErrUnknownType, "list of %d", uint8(elem)))
		return l
	}
	for i := 0; i < n && d.err == nil; i++ {
		v := d.payload(elem, depth+1)
		if d.err == nil {
			l.Add(v)
		}
	}
	if n == 0 {
		l.SetElemType(elem)
	}
	return l
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
