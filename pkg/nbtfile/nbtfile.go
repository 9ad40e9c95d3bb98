// Package nbtfile edits a root compound held in a cells.Cell.
package nbtfile

import (
	"context"

	"github.com/brendoncarroll/go-state/cells"
	"github.com/brendoncarroll/go-state/posixfs"
	"github.com/pkg/errors"

	"github.com/brendoncarroll/nbtkit/pkg/filecell"
	"github.com/brendoncarroll/nbtkit/pkg/nbtio"
	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

type Doc struct {
	cell  cells.Cell
	codec nbtio.Codec
}

func New(cell cells.Cell, codec nbtio.Codec) *Doc {
	if codec == nil {
		codec = nbtio.Gzip{}
	}
	return &Doc{cell: cell, codec: codec}
}

// Open returns a Doc for the file p in the directory dir.
func Open(dir, p string, codec nbtio.Codec) *Doc {
	return New(filecell.New(posixfs.NewDirFS(dir), p), codec)
}

// Load returns the current compound, or an empty one if the cell is empty.
func (d *Doc) Load(ctx context.Context) (*typed.Compound, error) {
	data, err := cells.GetBytes(ctx, d.cell)
	if err != nil {
		return nil, err
	}
	return d.decode(data)
}

// Apply runs fn against the current compound and writes the result back.
// fn may be called more than once if the cell changes concurrently.
func (d *Doc) Apply(ctx context.Context, fn func(c *typed.Compound) error) error {
	return cells.Apply(ctx, d.cell, func(data []byte) ([]byte, error) {
		c, err := d.decode(data)
		if err != nil {
			return nil, err
		}
		if err := fn(c); err != nil {
			return nil, err
		}
		return d.codec.Marshal(c)
	})
}

func (d *Doc) decode(data []byte) (*typed.Compound, error) {
	if len(data) == 0 {
		return typed.New(), nil
	}
	root, err := d.codec.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "nbtfile")
	}
	return typed.Wrap(root), nil
}
