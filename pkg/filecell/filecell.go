// Package filecell implements a cells.Cell stored in one file.
package filecell

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"

	"github.com/brendoncarroll/go-state/cells"
	"github.com/brendoncarroll/go-state/posixfs"
)

// DefaultMaxSize fits a typical gzipped player or level file.
const DefaultMaxSize = 1 << 22

var _ cells.Cell = &Cell{}

// Cell holds its contents in the file p. A missing file reads as empty.
// Swaps are serialized within one Cell; separate processes are not coordinated.
type Cell struct {
	fs      posixfs.FS
	p       string
	maxSize int
	mu      sync.Mutex
}

func New(fs posixfs.FS, p string) *Cell {
	return NewWithMax(fs, p, DefaultMaxSize)
}

func NewWithMax(fs posixfs.FS, p string, maxSize int) *Cell {
	return &Cell{fs: fs, p: p, maxSize: maxSize}
}

func (c *Cell) CAS(ctx context.Context, actual, prev, next []byte) (bool, int, error) {
	if len(next) > c.MaxSize() {
		return false, 0, cells.ErrTooLarge{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := c.load(ctx)
	if err != nil {
		return false, 0, err
	}
	swapped := false
	if bytes.Equal(data, prev) {
		if err := posixfs.PutFile(ctx, c.fs, c.p, 0o644, bytes.NewReader(next)); err != nil {
			return false, 0, err
		}
		data, swapped = next, true
	}
	if len(actual) < len(data) {
		return swapped, 0, io.ErrShortBuffer
	}
	return swapped, copy(actual, data), nil
}

func (c *Cell) Read(ctx context.Context, buf []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	if len(buf) < len(data) {
		return 0, io.ErrShortBuffer
	}
	return copy(buf, data), nil
}

func (c *Cell) MaxSize() int {
	return c.maxSize
}

func (c *Cell) load(ctx context.Context) ([]byte, error) {
	data, err := posixfs.ReadFile(ctx, c.fs, c.p)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return data, nil
}
