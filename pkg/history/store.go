package history

import (
	"encoding/binary"
	"time"

	bolt "go.etcd.io/bbolt"

	reerrors "github.com/reconcile-ui/reconcile/internal/errors"
)

// bucketLogs holds encoded patch logs keyed by big-endian cycle sequence.
var bucketLogs = []byte("logs")

// Store persists encoded patch logs on disk so a replay session can outlive
// the process. Keys are cycle sequences; iteration order is sequence order.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLogs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores an encoded patch log under its cycle sequence.
func (s *Store) Put(seq uint64, frame []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLogs).Put(seqKey(seq), frame)
	})
}

// Get returns the encoded patch log for one sequence.
func (s *Store) Get(seq uint64) ([]byte, error) {
	var frame []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketLogs).Get(seqKey(seq))
		if v == nil {
			return reerrors.New(reerrors.CodeHistoryMiss).
				WithDetail("cycle %d", seq)
		}
		frame = make([]byte, len(v))
		copy(frame, v)
		return nil
	})
	return frame, err
}

// LastSeq returns the highest stored sequence, or zero when empty.
func (s *Store) LastSeq() (uint64, error) {
	var last uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		k, _ := tx.Bucket(bucketLogs).Cursor().Last()
		if k != nil {
			last = binary.BigEndian.Uint64(k)
		}
		return nil
	})
	return last, err
}

// Walk calls fn for each stored log in sequence order. Returning a non-nil
// error from fn stops the walk.
func (s *Store) Walk(fn func(seq uint64, frame []byte) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLogs).ForEach(func(k, v []byte) error {
			return fn(binary.BigEndian.Uint64(k), v)
		})
	})
}

// Prune removes all but the newest keep entries.
func (s *Store) Prune(keep int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketLogs)
		total := b.Stats().KeyN
		excess := total - keep
		if excess <= 0 {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil && excess > 0; k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
			excess--
		}
		return nil
	})
}

func seqKey(seq uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], seq)
	return k[:]
}
