package dao

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

type errorHandler interface {
	Error(args ...interface{})
}

func createDB(t errorHandler) (Db, func()) {
	dir, err := ioutil.TempDir(os.TempDir(), "storm")
	if err != nil {
		t.Error(err)
	}
	db, err := storm.Open(filepath.Join(dir, "storm.db"))
	if err != nil {
		t.Error(err)
	}

	return db, func() {
		db.Close()
		os.RemoveAll(dir)
	}
}

// putRaw writes bytes straight into the bolt file, bypassing storm.
func putRaw(t *testing.T, db Db, key string, value []byte) {
	stormDb := db.(*storm.DB)
	err := stormDb.Bolt.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(SlotBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
	require.NoError(t, err)
}

func TestNewClient(t *testing.T) {
	dir, err := ioutil.TempDir(os.TempDir(), "storm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	dbPath := filepath.Join(dir, "storm.db")
	db, err := NewClient(dbPath, time.Second)
	require.NoError(t, err)
	defer db.Close()

	require.FileExists(t, dbPath, "Expected that db file exists")
}

func TestNewClientExistingDb(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	require.NoError(t, db.SetBytes(SlotBucket, "k", []byte("v")))
	stormDb := db.(*storm.DB)
	dbPath := stormDb.Bolt.Path()
	require.NoError(t, stormDb.Close())

	clnt, err := NewClient(dbPath, time.Second)
	require.NoError(t, err)
	defer clnt.Close()

	value, err := clnt.GetBytes(SlotBucket, "k")
	require.NoError(t, err)
	require.Equal(t, "v", string(value))
}

func TestNewClientMemory(t *testing.T) {
	db, err := NewClient(MemoryPath, time.Second)

	require.NoError(t, err)
	require.IsType(t, &memoryDb{}, db)
}

func TestMemoryDb(t *testing.T) {
	db := NewMemoryDb()

	_, err := db.GetBytes(SlotBucket, "missing")
	require.Equal(t, storm.ErrNotFound, err)

	value := []byte("hello")
	require.NoError(t, db.SetBytes(SlotBucket, "key", value))
	value[0] = 'j'

	got, err := db.GetBytes(SlotBucket, []byte("key"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(got))

	require.Error(t, db.SetBytes(SlotBucket, 42, value))
	require.NoError(t, db.Close())
}
