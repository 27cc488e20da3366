package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMakeKeyParseKey(t *testing.T) {
	tests := []struct {
		contentHash string
		root        string
	}{
		{"abc123", "/home/user/src/repo"},
		{"", ""},
		{"hash", "C:/Users/dev/repo"},
	}

	for _, tt := range tests {
		key := MakeKey(tt.contentHash, tt.root)
		gotHash, gotRoot := ParseKey(key)

		if gotHash != tt.contentHash {
			t.Errorf("ParseKey(%q) contentHash = %q, want %q", key, gotHash, tt.contentHash)
		}
		if gotRoot != tt.root {
			t.Errorf("ParseKey(%q) root = %q, want %q", key, gotRoot, tt.root)
		}
	}
}

func TestParseKeyInvalid(t *testing.T) {
	contentHash, root := ParseKey("invalid-key-no-colons")
	if contentHash != "" || root != "" {
		t.Errorf("ParseKey(invalid) should return empty strings, got %q, %q", contentHash, root)
	}
}

func TestEncodeDecodeEntry(t *testing.T) {
	tests := []Entry{
		{
			ScannedAt: time.Now().Unix(),
			CreatedAt: time.Now().Add(-time.Hour).Unix(),
			Result:    []byte(`{"start_path":"/tmp","solutions":[]}`),
		},
		{
			ScannedAt: 1234567890,
			CreatedAt: 1234567800,
			Result:    nil,
		},
		{
			ScannedAt: 0,
			CreatedAt: 0,
			Result:    []byte{},
		},
	}

	for i, tt := range tests {
		encoded := encodeEntry(tt)
		decoded := decodeEntry(encoded)

		if decoded.ScannedAt != tt.ScannedAt {
			t.Errorf("test %d: ScannedAt = %d, want %d", i, decoded.ScannedAt, tt.ScannedAt)
		}
		if decoded.CreatedAt != tt.CreatedAt {
			t.Errorf("test %d: CreatedAt = %d, want %d", i, decoded.CreatedAt, tt.CreatedAt)
		}
		if string(decoded.Result) != string(tt.Result) {
			t.Errorf("test %d: Result = %q, want %q", i, decoded.Result, tt.Result)
		}
	}
}

func TestDecodeEntryTruncated(t *testing.T) {
	entry := decodeEntry(make([]byte, 10))
	if entry.ScannedAt != 0 || entry.CreatedAt != 0 || entry.Result != nil {
		t.Errorf("decodeEntry(short) should return zero entry, got %+v", entry)
	}
}

func TestCacheDB(t *testing.T) {
	// Create temp directory for test database
	tmpDir, err := os.MkdirTemp("", "cache-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")

	// Open database
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	// Test Store and Lookup
	key := MakeKey("content123", "/repo/root")
	now := time.Now()
	data := []byte(`{"start_path":"/repo/root","solutions":[]}`)

	err = db.Store(key, now, data)
	if err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	result := db.Lookup(key)
	if result == nil {
		t.Fatal("Lookup() returned nil for existing key")
	}
	if string(result.Data) != string(data) {
		t.Errorf("Lookup() Data = %q, want %q", result.Data, data)
	}
	if result.Time.Unix() != now.Unix() {
		t.Errorf("Lookup() Time = %v, want %v", result.Time.Unix(), now.Unix())
	}

	// Missing key returns nil
	if got := db.Lookup(MakeKey("other", "/repo/root")); got != nil {
		t.Errorf("Lookup(missing) = %+v, want nil", got)
	}
}

func TestStorePreservesCreatedAt(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cache-created-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	db, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	key := MakeKey("hash", "/repo")
	first := time.Now().Add(-time.Hour)
	second := time.Now()

	if err := db.Store(key, first, []byte("one")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if err := db.Store(key, second, []byte("two")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	var entry Entry
	db.View(func(k string, e Entry) error {
		if k == key {
			entry = e
		}
		return nil
	})

	if entry.CreatedAt != first.Unix() {
		t.Errorf("CreatedAt = %d, want %d (first store)", entry.CreatedAt, first.Unix())
	}
	if entry.ScannedAt != second.Unix() {
		t.Errorf("ScannedAt = %d, want %d (second store)", entry.ScannedAt, second.Unix())
	}
	if string(entry.Result) != "two" {
		t.Errorf("Result = %q, want %q", entry.Result, "two")
	}
}

func TestDelete(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cache-del-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	db, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	key := MakeKey("gone", "/repo")
	db.Store(key, time.Now(), []byte("x"))

	if err := db.Delete(key); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if got := db.Lookup(key); got != nil {
		t.Error("Lookup() should return nil after Delete()")
	}
}

func TestGetStats(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cache-stats-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	// Add some entries
	now := time.Now()
	older := now.Add(-time.Hour)

	db.Store(MakeKey("a", "/p1"), now, nil)
	db.Store(MakeKey("b", "/p2"), older, nil)

	stats := db.GetStats()
	if stats.TotalEntries != 2 {
		t.Errorf("TotalEntries = %d, want 2", stats.TotalEntries)
	}
	if stats.OldestEntry.Unix() != older.Unix() {
		t.Errorf("OldestEntry = %v, want %v", stats.OldestEntry.Unix(), older.Unix())
	}
	if stats.NewestEntry.Unix() != now.Unix() {
		t.Errorf("NewestEntry = %v, want %v", stats.NewestEntry.Unix(), now.Unix())
	}
	if stats.DBSize == 0 {
		t.Error("DBSize should be > 0")
	}
}

func TestDeleteOldEntries(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cache-delete-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	// Add old and new entries
	now := time.Now()
	old := now.Add(-48 * time.Hour) // 2 days ago

	db.Store(MakeKey("new", "/repo/new"), now, nil)
	db.Store(MakeKey("old", "/repo/old"), old, nil)

	// Delete entries older than 1 day
	deleted, err := db.DeleteOldEntries(24 * time.Hour)
	if err != nil {
		t.Fatalf("DeleteOldEntries() failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	// Verify old entry is gone
	stats := db.GetStats()
	if stats.TotalEntries != 1 {
		t.Errorf("TotalEntries = %d after delete, want 1", stats.TotalEntries)
	}
	if db.Lookup(MakeKey("new", "/repo/new")) == nil {
		t.Error("new entry should survive DeleteOldEntries")
	}
}

func TestView(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cache-view-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	db, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	now := time.Now()
	db.Store(MakeKey("h1", "/a"), now, []byte("one"))
	db.Store(MakeKey("h2", "/b"), now, []byte("two"))

	seen := map[string]string{}
	err = db.View(func(key string, entry Entry) error {
		seen[key] = string(entry.Result)
		return nil
	})
	if err != nil {
		t.Fatalf("View() failed: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("View() visited %d entries, want 2", len(seen))
	}
	if seen[MakeKey("h1", "/a")] != "one" {
		t.Errorf("entry h1 = %q, want %q", seen[MakeKey("h1", "/a")], "one")
	}
	if seen[MakeKey("h2", "/b")] != "two" {
		t.Errorf("entry h2 = %q, want %q", seen[MakeKey("h2", "/b")], "two")
	}
}
