package taxonomy

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackaudit/pkg/license"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := NewCache(t.TempDir(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}
	return c
}

func sampleTaxonomy() license.Taxonomy {
	return license.Taxonomy{
		"MIT": {
			Title:       "MIT License",
			SPDXID:      "MIT",
			Permissions: []string{"commercial-use"},
			Conditions:  []string{"include-copyright"},
			Limitations: []string{"liability"},
		},
	}
}

func TestCache_RoundTrip(t *testing.T) {
	c := newTestCache(t)

	if err := c.Save(sampleTaxonomy()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, ok := c.Load()
	if !ok {
		t.Fatal("Load() missed after Save()")
	}
	if len(data) != 1 {
		t.Fatalf("got %d licenses, want 1", len(data))
	}
	if data["MIT"].SPDXID != "MIT" || data["MIT"].Title != "MIT License" {
		t.Errorf("round-tripped entry mismatch: %+v", data["MIT"])
	}
}

func TestCache_EntryRoundTripPreservesFields(t *testing.T) {
	entry := Entry{Version: cacheVersion, Data: sampleTaxonomy(), Timestamp: time.Now().Unix()}
	raw, err := json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Entry
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Version != entry.Version || decoded.Timestamp != entry.Timestamp {
		t.Errorf("got version=%d ts=%d, want version=%d ts=%d",
			decoded.Version, decoded.Timestamp, entry.Version, entry.Timestamp)
	}
	if decoded.Data["MIT"].SPDXID != "MIT" {
		t.Error("data lost in round trip")
	}
}

func TestCache_MissOnAbsentFile(t *testing.T) {
	c := newTestCache(t)
	if _, ok := c.Load(); ok {
		t.Error("Load() hit on an absent file")
	}
}

func writeEntry(t *testing.T, c *Cache, entry Entry) {
	t.Helper()
	raw, err := json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.Path(), raw, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCache_StaleEntryIsMiss(t *testing.T) {
	c := newTestCache(t)
	writeEntry(t, c, Entry{
		Version:   cacheVersion,
		Data:      sampleTaxonomy(),
		Timestamp: time.Now().Unix() - int64(TTL/time.Second) - 1,
	})
	if _, ok := c.Load(); ok {
		t.Error("Load() returned a stale entry")
	}
}

// A version mismatch is a miss regardless of freshness.
func TestCache_VersionGating(t *testing.T) {
	c := newTestCache(t)
	writeEntry(t, c, Entry{
		Version:   cacheVersion + 1,
		Data:      sampleTaxonomy(),
		Timestamp: time.Now().Unix(),
	})
	if _, ok := c.Load(); ok {
		t.Error("Load() returned an entry with a mismatched schema version")
	}
}

func TestCache_CorruptInputTolerance(t *testing.T) {
	for _, content := range []string{"", "not valid json {{{", "{}"} {
		t.Run("content="+content, func(t *testing.T) {
			c := newTestCache(t)
			if err := os.WriteFile(c.Path(), []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, ok := c.Load(); ok {
				t.Errorf("Load() accepted corrupt content %q", content)
			}
		})
	}
}

func TestCache_Freshness(t *testing.T) {
	c := newTestCache(t)
	ttlSecs := int64(TTL / time.Second)
	now := c.now().Unix()

	tests := []struct {
		name      string
		timestamp int64
		want      bool
	}{
		{"now", now, true},
		{"one second inside TTL", now - ttlSecs + 1, true},
		{"exactly TTL old", now - ttlSecs, false},
		{"past TTL", now - ttlSecs - 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.isFresh(tt.timestamp); got != tt.want {
				t.Errorf("isFresh(%d) = %v, want %v", tt.timestamp, got, tt.want)
			}
		})
	}
}

// A clock that moved backward must yield age 0, never a negative value.
func TestCache_SaturatingAge(t *testing.T) {
	c := newTestCache(t)
	future := c.now().Unix() + 1000
	if got := c.age(future); got != 0 {
		t.Errorf("age(future timestamp) = %d, want 0", got)
	}
	if !c.isFresh(future) {
		t.Error("a future timestamp must read as fresh, not overflowed")
	}
}

func TestCache_RoundTrippedEntryIsFresh(t *testing.T) {
	c := newTestCache(t)
	if err := c.Save(sampleTaxonomy()); err != nil {
		t.Fatal(err)
	}
	st := c.Status()
	if !st.IsFresh {
		t.Error("a just-saved entry must be fresh")
	}
}

func TestCache_Clear(t *testing.T) {
	c := newTestCache(t)
	// Clearing an absent cache is a successful no-op.
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() on absent file failed: %v", err)
	}

	if err := c.Save(sampleTaxonomy()); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if _, err := os.Stat(c.Path()); !os.IsNotExist(err) {
		t.Error("file still present after Clear()")
	}
}

func TestCache_Status(t *testing.T) {
	c := newTestCache(t)

	t.Run("absent", func(t *testing.T) {
		st := c.Status()
		if st.Exists {
			t.Error("Exists = true for absent file")
		}
		if st.SizeBytes != 0 || st.AgeSecs != 0 || st.LicenseCount != 0 || st.IsFresh {
			t.Errorf("expected zeroed status, got %+v", st)
		}
	})

	t.Run("present", func(t *testing.T) {
		if err := c.Save(sampleTaxonomy()); err != nil {
			t.Fatal(err)
		}
		st := c.Status()
		if !st.Exists || !st.IsFresh {
			t.Errorf("got %+v, want exists and fresh", st)
		}
		if st.LicenseCount != 1 {
			t.Errorf("LicenseCount = %d, want 1", st.LicenseCount)
		}
		if st.SizeBytes == 0 {
			t.Error("SizeBytes = 0 for a present file")
		}
	})

	t.Run("corrupt", func(t *testing.T) {
		if err := os.WriteFile(c.Path(), []byte("garbage"), 0o644); err != nil {
			t.Fatal(err)
		}
		st := c.Status()
		if !st.Exists {
			t.Error("Exists = false for a present corrupt file")
		}
		if st.IsFresh || st.LicenseCount != 0 {
			t.Errorf("corrupt file must report zeroed fields, got %+v", st)
		}
	})
}

func TestNewCache_DefaultDir(t *testing.T) {
	base, err := os.UserCacheDir()
	if err != nil {
		t.Skip("cannot determine user cache directory")
	}
	c, err := NewCache("", log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}
	want := filepath.Join(base, appDirName, cacheFileName)
	if c.Path() != want {
		t.Errorf("Path() = %s, want %s", c.Path(), want)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{500, "500 B"},
		{2048, "2.00 KB"},
		{1048576, "1.00 MB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "just now"},
		{30, "just now"},
		{300, "5 minutes ago"},
		{7200, "2 hours ago"},
		{172800, "2 days ago"},
	}
	for _, tt := range tests {
		if got := FormatAge(tt.secs); got != tt.want {
			t.Errorf("FormatAge(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
