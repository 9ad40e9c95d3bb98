// Package nbtstore keeps named root compounds in a bolt database.
package nbtstore

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"

	"github.com/brendoncarroll/nbtkit/pkg/boltkv"
	"github.com/brendoncarroll/nbtkit/pkg/nbtindex"
	"github.com/brendoncarroll/nbtkit/pkg/nbtio"
	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

const DefaultBucket = "compounds"

var ErrNotFound = errors.New("nbtstore: compound not found")

type Params struct {
	DB     *bolt.DB
	Bucket string
	Codec  nbtio.Codec
}

// DefaultParams opens (creating if needed) the database in dirpath.
func DefaultParams(dirpath string) (*Params, error) {
	db, err := bolt.Open(filepath.Join(dirpath, "nbtkit.db"), 0644, nil)
	if err != nil {
		return nil, err
	}
	log.Debug("connected to db: ", db.Path())
	return &Params{
		DB:     db,
		Bucket: DefaultBucket,
		Codec:  nbtio.Gzip{},
	}, nil
}

// Store also indexes the top level string values of each compound, in the
// same transaction as the write; see Find.
type Store struct {
	kv    boltkv.BoltKV
	idx   *nbtindex.Index
	codec nbtio.Codec
}

func New(params Params) *Store {
	if params.Bucket == "" {
		params.Bucket = DefaultBucket
	}
	if params.Codec == nil {
		params.Codec = nbtio.Gzip{}
	}
	return &Store{
		kv:    boltkv.New(params.DB, params.Bucket),
		idx:   nbtindex.New(params.DB, params.Bucket+".index"),
		codec: params.Codec,
	}
}

func (s *Store) Put(ctx context.Context, name string, c *typed.Compound) (Fingerprint, error) {
	if c == nil {
		return Fingerprint{}, errors.Wrapf(typed.ErrNullArgument, "put %q", name)
	}
	data, err := s.codec.Marshal(c)
	if err != nil {
		return Fingerprint{}, errors.Wrapf(err, "encoding %q", name)
	}
	if err := s.kv.UpdateTx([]byte(name), func(tx *bolt.Tx, _ []byte) ([]byte, error) {
		if err := s.idx.PutTx(tx, name, c); err != nil {
			return nil, err
		}
		return data, nil
	}); err != nil {
		return Fingerprint{}, err
	}
	fp := Hash(data)
	log.WithFields(log.Fields{"name": name, "fp": fp.String()[:8], "codec": s.codec.Name()}).Debug("nbtstore: put")
	return fp, nil
}

// Get returns ErrNotFound if name is absent.
func (s *Store) Get(ctx context.Context, name string) (*typed.Compound, error) {
	data, err := s.kv.Get([]byte(name))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	root, err := s.codec.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", name)
	}
	return typed.Wrap(root), nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	return s.kv.UpdateTx([]byte(name), func(tx *bolt.Tx, _ []byte) ([]byte, error) {
		return nil, s.idx.DeleteTx(tx, name)
	})
}

// Find returns the names of stored compounds whose string entry at key
// equals value.
func (s *Store) Find(ctx context.Context, key, value string) ([]string, error) {
	return s.idx.Find(ctx, key, value)
}

// Apply loads name (empty if absent), calls fn and stores the result, all in
// one transaction. Nothing is written if fn returns an error.
func (s *Store) Apply(ctx context.Context, name string, fn func(c *typed.Compound) error) error {
	return s.kv.UpdateTx([]byte(name), func(tx *bolt.Tx, prev []byte) ([]byte, error) {
		c := typed.New()
		if prev != nil {
			root, err := s.codec.Unmarshal(prev)
			if err != nil {
				return nil, errors.Wrapf(err, "decoding %q", name)
			}
			c = typed.Wrap(root)
		}
		if err := fn(c); err != nil {
			return nil, err
		}
		data, err := s.codec.Marshal(c)
		if err != nil {
			return nil, err
		}
		if err := s.idx.PutTx(tx, name, c); err != nil {
			return nil, err
		}
		return data, nil
	})
}

type Entry struct {
	Name        string      `json:"name"`
	Size        int         `json:"size"`
	Fingerprint Fingerprint `json:"fingerprint"`
}

// List returns every stored compound in name order.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	var ret []Entry
	err := s.kv.ForEach(func(k, v []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		ret = append(ret, Entry{
			Name:        string(k),
			Size:        len(v),
			Fingerprint: Hash(v),
		})
		return nil
	})
	return ret, err
}
