// Package nbtio reads and writes tag trees in the binary NBT format.
package nbtio

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/brendoncarroll/nbtkit/pkg/nbt"
)

// MaxDepth is the deepest nesting of lists and compounds accepted.
const MaxDepth = 512

var (
	ErrMaxDepth      = errors.New("nbtio: maximum nesting depth exceeded")
	ErrStringTooLong = errors.New("nbtio: string exceeds 65535 bytes")
	ErrUnknownType   = errors.New("nbtio: unknown tag type")
	ErrBadRoot       = errors.New("nbtio: root tag is not a compound")
)

// Codec converts root compounds to and from bytes.
type Codec interface {
	Marshal(root nbt.Tree) ([]byte, error)
	// Unmarshal accepts both compressed and uncompressed input.
	Unmarshal(data []byte) (*nbt.Compound, error)
	// Name returns the codec identifier used for diagnostics.
	Name() string
}

var (
	_ Codec = Binary{}
	_ Codec = Gzip{}
)

// Binary is the uncompressed encoding with an empty root name.
type Binary struct{}

func (Binary) Marshal(root nbt.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, "", root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Binary) Unmarshal(data []byte) (*nbt.Compound, error) {
	_, root, err := Read(bytes.NewReader(data))
	return root, err
}

func (Binary) Name() string { return "nbt" }

// Gzip is the gzip compressed encoding used by most NBT files on disk.
type Gzip struct {
	// Level is a gzip compression level. Zero means gzip.DefaultCompression.
	Level int
}

func (g Gzip) Marshal(root nbt.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGzip(&buf, "", root, g.Level); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Gzip) Unmarshal(data []byte) (*nbt.Compound, error) {
	_, root, err := Read(bytes.NewReader(data))
	return root, err
}

func (Gzip) Name() string { return "nbt+gzip" }

// WriteGzip is Write through a gzip stream.
func WriteGzip(w io.Writer, name string, root nbt.Tree, level int) error {
	if level == 0 {
		level = gzip.DefaultCompression
	}
	zw, err := gzip.NewWriterLevel(w, level)
	if err != nil {
		return err
	}
	if err := Write(zw, name, root); err != nil {
		return err
	}
	return zw.Close()
}

// IsGzip reports whether data starts with the gzip magic number.
func IsGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

func maybeGunzip(br *bufio.Reader) (reader, io.Closer, error) {
	magic, err := br.Peek(2)
	if err != nil || !IsGzip(magic) {
		// short input fails on the first read instead
		return br, nil, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, nil, errors.Wrap(err, "nbtio: gzip")
	}
	return bufio.NewReader(zr), zr, nil
}
