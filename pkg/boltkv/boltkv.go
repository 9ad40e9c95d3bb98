package boltkv

import bolt "go.etcd.io/bbolt"

// BoltKV is a single bucket of a bolt database.
// Missing buckets read as empty and are created on first write.
type BoltKV struct {
	db     *bolt.DB
	bucket []byte
}

func New(db *bolt.DB, bucketName string) BoltKV {
	return BoltKV{
		db:     db,
		bucket: []byte(bucketName),
	}
}

// Get returns a copy of the value at key, or nil if it is absent.
func (b BoltKV) Get(key []byte) ([]byte, error) {
	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(b.bucket)
		if b == nil {
			return nil
		}
		if value := b.Get(key); value != nil {
			data = append([]byte{}, value...)
		}
		return nil
	})

	return data, err
}

func (b BoltKV) Put(key, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(b.bucket)
		if err != nil {
			return err
		}
		return b.Put(key, value)
	})
}

func (b BoltKV) Delete(key []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(b.bucket)
		if b == nil {
			return nil
		}
		return b.Delete(key)
	})
}

// Update replaces the value at key with fn's result in one transaction.
// fn receives nil if the key is absent. A nil result deletes the key.
func (b BoltKV) Update(key []byte, fn func(prev []byte) ([]byte, error)) error {
	return b.UpdateTx(key, func(_ *bolt.Tx, prev []byte) ([]byte, error) {
		return fn(prev)
	})
}

// UpdateTx is Update with fn also given the transaction, so other buckets
// can be written together with the value.
func (b BoltKV) UpdateTx(key []byte, fn func(tx *bolt.Tx, prev []byte) ([]byte, error)) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(b.bucket)
		if err != nil {
			return err
		}
		var prev []byte
		if v := b.Get(key); v != nil {
			prev = append([]byte{}, v...)
		}
		next, err := fn(tx, prev)
		if err != nil {
			return err
		}
		if next == nil {
			return b.Delete(key)
		}
		return b.Put(key, next)
	})
}

// ForEach calls fn for every entry in key order. The slices are only valid
// during the call.
func (b BoltKV) ForEach(fn func(k, v []byte) error) error {
	return b.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(b.bucket)
		if b == nil {
			return nil
		}
		return b.ForEach(fn)
	})
}
