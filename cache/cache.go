// Package cache provides a bbolt-backed cache for storing scan results.
package cache

import (
	"encoding/binary"
	"os"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketName = "scans"

// DB wraps a bbolt database for caching serialized scan results.
type DB struct {
	db *bolt.DB
}

// Open opens or creates a cache database at the given path.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	// Ensure bucket exists
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

// Close closes the cache database.
func (c *DB) Close() error {
	return c.db.Close()
}

// Path returns the path to the database file.
func (c *DB) Path() string {
	return c.db.Path()
}

// Entry represents a cache entry value.
type Entry struct {
	ScannedAt int64  // Unix timestamp of the last scan
	CreatedAt int64  // Unix timestamp when first created
	Result    []byte // Serialized scan result (JSON)
}

// Result contains the result of a cache lookup.
type Result struct {
	Time time.Time
	Data []byte
}

// MakeKey constructs the cache key from components. contentHash is the
// fingerprint of all relevant files under the scan root.
func MakeKey(contentHash, root string) string {
	return contentHash + ":" + root
}

// ParseKey parses a cache key into its components. The root may itself
// contain colons (Windows drive letters), so only the first separator
// counts.
func ParseKey(key string) (contentHash, root string) {
	parts := strings.SplitN(key, ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

// encodeEntry encodes a cache entry to bytes.
// Format: [ScannedAt:8][CreatedAt:8][ResultLen:4][Result:ResultLen]
func encodeEntry(e Entry) []byte {
	resultLen := len(e.Result)
	buf := make([]byte, 20+resultLen)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(e.ScannedAt))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(e.CreatedAt))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(resultLen))
	if resultLen > 0 {
		copy(buf[20:], e.Result)
	}
	return buf
}

// decodeEntry decodes a cache entry from bytes.
func decodeEntry(data []byte) Entry {
	if len(data) < 20 {
		return Entry{}
	}
	entry := Entry{
		ScannedAt: int64(binary.LittleEndian.Uint64(data[0:8])),
		CreatedAt: int64(binary.LittleEndian.Uint64(data[8:16])),
	}
	resultLen := binary.LittleEndian.Uint32(data[16:20])
	if len(data) >= 20+int(resultLen) {
		// Must copy - bbolt's buffer is only valid during transaction
		entry.Result = make([]byte, resultLen)
		copy(entry.Result, data[20:20+resultLen])
	}
	return entry
}

// Lookup checks if a cache entry exists and returns the stored result.
func (c *DB) Lookup(key string) *Result {
	var result *Result
	c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		data := b.Get([]byte(key))
		if data == nil {
			return nil
		}
		entry := decodeEntry(data)
		result = &Result{
			Time: time.Unix(entry.ScannedAt, 0),
			Data: entry.Result,
		}
		return nil
	})
	return result
}

// Store records a scan result for the given key. CreatedAt is preserved
// when the key already exists.
func (c *DB) Store(key string, t time.Time, data []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}

		entry := Entry{
			ScannedAt: t.Unix(),
			CreatedAt: t.Unix(),
			Result:    data,
		}
		if existing := b.Get([]byte(key)); existing != nil {
			old := decodeEntry(existing)
			entry.CreatedAt = old.CreatedAt
		}

		return b.Put([]byte(key), encodeEntry(entry))
	})
}

// Delete removes the entry for key, if present.
func (c *DB) Delete(key string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// Stats contains cache statistics.
type Stats struct {
	TotalEntries int
	OldestEntry  time.Time
	NewestEntry  time.Time
	DBSize       int64
}

// GetStats returns cache statistics.
func (c *DB) GetStats() Stats {
	var stats Stats
	c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}

		cur := b.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			stats.TotalEntries++
			entry := decodeEntry(v)
			t := time.Unix(entry.ScannedAt, 0)
			if stats.OldestEntry.IsZero() || t.Before(stats.OldestEntry) {
				stats.OldestEntry = t
			}
			if stats.NewestEntry.IsZero() || t.After(stats.NewestEntry) {
				stats.NewestEntry = t
			}
		}
		return nil
	})

	// Get database file size
	if info, err := os.Stat(c.db.Path()); err == nil {
		stats.DBSize = info.Size()
	}

	return stats
}

// DeleteOldEntries removes cache entries older than maxAge.
func (c *DB) DeleteOldEntries(maxAge time.Duration) (deleted int, err error) {
	cutoff := time.Now().Add(-maxAge).Unix()

	err = c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}

		var keysToDelete [][]byte
		cur := b.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			entry := decodeEntry(v)
			if entry.ScannedAt < cutoff {
				keysToDelete = append(keysToDelete, append([]byte{}, k...))
			}
		}

		for _, k := range keysToDelete {
			if err := b.Delete(k); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	return
}

// View provides read-only access to iterate over cache entries.
// The callback receives each key-value pair.
func (c *DB) View(fn func(key string, entry Entry) error) error {
	return c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		cur := b.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			entry := decodeEntry(v)
			if err := fn(string(k), entry); err != nil {
				return err
			}
		}
		return nil
	})
}
