package boltkv

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func setup(t testing.TB) BoltKV {
	db, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0644, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, "kv")
}

func TestGetPutDelete(t *testing.T) {
	kv := setup(t)
	v, err := kv.Get([]byte("a"))
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, kv.Put([]byte("a"), []byte("1")))
	v, err = kv.Get([]byte("a"))
	require.NoError(t, err)
	require.Equal(t, []byte("1"), v)

	require.NoError(t, kv.Delete([]byte("a")))
	require.NoError(t, kv.Delete([]byte("missing")))
	v, err = kv.Get([]byte("a"))
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestUpdate(t *testing.T) {
	kv := setup(t)
	require.NoError(t, kv.Update([]byte("k"), func(prev []byte) ([]byte, error) {
		require.Nil(t, prev)
		return []byte("x"), nil
	}))
	require.NoError(t, kv.Update([]byte("k"), func(prev []byte) ([]byte, error) {
		return append(prev, 'y'), nil
	}))
	v, err := kv.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("xy"), v)

	boom := errors.New("boom")
	require.Equal(t, boom, kv.Update([]byte("k"), func([]byte) ([]byte, error) {
		return nil, boom
	}))
	require.NoError(t, kv.Update([]byte("k"), func([]byte) ([]byte, error) {
		return nil, nil
	}))
	v, err = kv.Get([]byte("k"))
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestForEach(t *testing.T) {
	kv := setup(t)
	require.NoError(t, kv.ForEach(func(k, v []byte) error {
		t.Fatal("empty bucket")
		return nil
	}))
	for _, k := range []string{"b", "a", "c"} {
		require.NoError(t, kv.Put([]byte(k), []byte(k)))
	}
	var keys []string
	require.NoError(t, kv.ForEach(func(k, v []byte) error {
		keys = append(keys, string(k))
		return nil
	}))
	require.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestUpdateTxRollback(t *testing.T) {
	kv := setup(t)
	err := kv.UpdateTx([]byte("k"), func(tx *bolt.Tx, prev []byte) ([]byte, error) {
		other, err := tx.CreateBucketIfNotExists([]byte("other"))
		require.NoError(t, err)
		require.NoError(t, other.Put([]byte("side"), []byte("effect")))
		// empty bucket names are rejected by bolt
		_, err = tx.CreateBucketIfNotExists(nil)
		return nil, err
	})
	require.Error(t, err)

	v, err := kv.Get([]byte("k"))
	require.NoError(t, err)
	require.Nil(t, v)
	require.NoError(t, kv.db.View(func(tx *bolt.Tx) error {
		require.Nil(t, tx.Bucket([]byte("other")))
		return nil
	}))
}
