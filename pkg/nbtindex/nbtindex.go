// Package nbtindex maps the top level string values of named compounds
// back to the names holding them.
package nbtindex

import (
	"bytes"
	"context"
	"encoding/binary"

	bolt "go.etcd.io/bbolt"

	"github.com/brendoncarroll/nbtkit/pkg/nbt"
	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

/* Index uses the following buckets

<bucket>/
	k<compound key>/
		f/
			<name> -> <value>
			...
		i/
			<len(value)><value><name> -> nil
			...
*/
type Index struct {
	db     *bolt.DB
	bucket []byte
}

func New(db *bolt.DB, bucketName string) *Index {
	return &Index{db: db, bucket: []byte(bucketName)}
}

// Put replaces the entries for name with the string entries of c.
func (ix *Index) Put(ctx context.Context, name string, c *typed.Compound) error {
	return ix.db.Update(func(tx *bolt.Tx) error {
		return ix.PutTx(tx, name, c)
	})
}

// PutTx is Put within an existing write transaction.
// Entries too large for a bolt key are not indexed.
func (ix *Index) PutTx(tx *bolt.Tx, name string, c *typed.Compound) error {
	root, err := tx.CreateBucketIfNotExists(ix.bucket)
	if err != nil {
		return err
	}
	if err := removeName(root, []byte(name)); err != nil {
		return err
	}
	for _, k := range c.Keys() {
		if !c.HasKeyOfType(k, nbt.TypeString) {
			continue
		}
		value := []byte(c.GetString(k))
		ik := invKey(value, []byte(name))
		if len(ik) > bolt.MaxKeySize || len(keyBucket(k)) > bolt.MaxKeySize {
			continue
		}
		forward, inverted, err := bucketsForKey(root, k)
		if err != nil {
			return err
		}
		if err := forward.Put([]byte(name), value); err != nil {
			return err
		}
		if err := inverted.Put(ik, nil); err != nil {
			return err
		}
	}
	return nil
}

func (ix *Index) Delete(ctx context.Context, name string) error {
	return ix.db.Update(func(tx *bolt.Tx) error {
		return ix.DeleteTx(tx, name)
	})
}

// DeleteTx is Delete within an existing write transaction.
func (ix *Index) DeleteTx(tx *bolt.Tx, name string) error {
	root := tx.Bucket(ix.bucket)
	if root == nil {
		return nil
	}
	return removeName(root, []byte(name))
}

// Find returns, in order, the names whose compound has the string value
// at key.
func (ix *Index) Find(ctx context.Context, key, value string) ([]string, error) {
	var names []string
	err := ix.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(ix.bucket)
		if root == nil {
			return nil
		}
		keyB := root.Bucket(keyBucket(key))
		if keyB == nil {
			return nil
		}
		inverted := keyB.Bucket([]byte("i"))
		if inverted == nil {
			return nil
		}
		prefix := invKey([]byte(value), nil)
		c := inverted.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			names = append(names, string(k[len(prefix):]))
		}
		return nil
	})
	return names, err
}

func removeName(root *bolt.Bucket, name []byte) error {
	c := root.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		if v != nil {
			continue
		}
		keyB := root.Bucket(k)
		forward, inverted := keyB.Bucket([]byte("f")), keyB.Bucket([]byte("i"))
		if forward == nil || inverted == nil {
			continue
		}
		value := forward.Get(name)
		if value == nil {
			continue
		}
		if err := inverted.Delete(invKey(value, name)); err != nil {
			return err
		}
		if err := forward.Delete(name); err != nil {
			return err
		}
	}
	return nil
}

func bucketsForKey(root *bolt.Bucket, key string) (forward, inverted *bolt.Bucket, err error) {
	keyB, err := root.CreateBucketIfNotExists(keyBucket(key))
	if err != nil {
		return nil, nil, err
	}
	if forward, err = keyB.CreateBucketIfNotExists([]byte("f")); err != nil {
		return nil, nil, err
	}
	if inverted, err = keyB.CreateBucketIfNotExists([]byte("i")); err != nil {
		return nil, nil, err
	}
	return forward, inverted, nil
}

// keyBucket names the bucket for a compound key. The prefix keeps the name
// non-empty, since "" is a valid compound key but not a valid bucket name.
func keyBucket(key string) []byte {
	return append([]byte{'k'}, key...)
}

// invKey prefixes value with its length so that values sharing a prefix
// never match each other.
func invKey(value, name []byte) []byte {
	out := binary.AppendUvarint(nil, uint64(len(value)))
	out = append(out, value...)
	return append(out, name...)
}
