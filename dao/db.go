package dao

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/dilshat/lead-store/util"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Bucket holding every named slot used by the landing page.
const SlotBucket = "slots"

// Db is the key-value surface the daos need. *storm.DB satisfies it.
type Db interface {
	GetBytes(bucketName string, key interface{}) ([]byte, error)
	SetBytes(bucketName string, key interface{}, value []byte) error
	Close() error
}

// NewClient opens (creating if needed) the bolt file at dbFilePath.
// The special path ":memory:" returns a process-local store instead.
func NewClient(dbFilePath string, timeout time.Duration) (Db, error) {
	if dbFilePath == MemoryPath {
		return NewMemoryDb(), nil
	}

	if !util.FileExists(dbFilePath) {
		zap.L().Info("Creating database", zap.String("path", dbFilePath))
	}

	db, err := storm.Open(dbFilePath, storm.BoltOptions(0600, &bolt.Options{Timeout: timeout, ReadOnly: false}))
	if err != nil {
		return nil, err
	}

	return db, nil
}
