// Package taxonomy persists a versioned, time-bounded snapshot of the
// canonical license taxonomy so repeated runs avoid refetching it from the
// remote authority. The cache is advisory: every degraded state (missing,
// corrupt, stale, wrong schema version) reads as a miss, never as an error.
package taxonomy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackaudit/pkg/license"
)

const (
	// cacheVersion is the snapshot schema version. Bumping it forces a
	// one-time full refresh for every existing cache.
	cacheVersion = 1

	// TTL bounds how long a snapshot is trusted.
	TTL = 30 * 24 * time.Hour

	appDirName    = "stackaudit"
	cacheFileName = "github_licenses.json"
)

// Entry is the on-disk snapshot layout.
type Entry struct {
	Version   int              `json:"version"`
	Data      license.Taxonomy `json:"data"`
	Timestamp int64            `json:"timestamp"` // seconds since epoch at capture
}

// Cache manages the taxonomy snapshot file. It is a single-writer,
// single-reader-per-process resource; concurrent processes racing on the file
// degrade to last-write-wins, which is acceptable because the content is
// re-fetchable.
type Cache struct {
	path   string
	logger *log.Logger
	now    func() time.Time
}

// NewCache creates a cache rooted at dir. An empty dir selects the default
// location under the user cache directory. The directory is created eagerly
// so Save only has to deal with file-level failures.
func NewCache(dir string, logger *log.Logger) (*Cache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("determine user cache dir: %w", err)
		}
		dir = filepath.Join(base, appDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		path:   filepath.Join(dir, cacheFileName),
		logger: logger,
		now:    time.Now,
	}, nil
}

// Path returns the absolute path of the snapshot file.
func (c *Cache) Path() string { return c.path }

// Load returns the cached taxonomy, or ok=false when there is no usable
// snapshot: the file is missing, unparsable, carries a different schema
// version, or has aged past the TTL. Corrupt input is logged as a warning and
// treated like a miss; it is never partially trusted.
func (c *Cache) Load() (license.Taxonomy, bool) {
	content, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		c.logger.Debug("no taxonomy cache found", "path", c.path)
		return nil, false
	}
	if err != nil {
		c.logger.Warn("failed to read taxonomy cache, will re-fetch", "err", err)
		return nil, false
	}

	entry, ok := c.parse(content)
	if !ok {
		return nil, false
	}
	c.logger.Debug("loaded taxonomy from cache", "licenses", len(entry.Data))
	return entry.Data, true
}

// parse validates raw snapshot content: schema version and freshness.
func (c *Cache) parse(content []byte) (*Entry, bool) {
	var entry Entry
	if err := json.Unmarshal(content, &entry); err != nil {
		c.logger.Warn("corrupt taxonomy cache, will re-fetch", "err", err)
		return nil, false
	}
	if entry.Version != cacheVersion {
		c.logger.Debug("taxonomy cache version mismatch, will re-fetch",
			"got", entry.Version, "want", cacheVersion)
		return nil, false
	}
	if !c.isFresh(entry.Timestamp) {
		c.logger.Debug("taxonomy cache is stale, will re-fetch")
		return nil, false
	}
	return &entry, true
}

// Save writes a fresh snapshot stamped with the current schema version and
// time. Only filesystem errors surface; a half-written file is caught by the
// parse failure on the next Load rather than by a transactional write.
func (c *Cache) Save(data license.Taxonomy) error {
	entry := Entry{
		Version:   cacheVersion,
		Data:      data,
		Timestamp: c.now().Unix(),
	}
	content, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize taxonomy cache: %w", err)
	}
	if err := os.WriteFile(c.path, content, 0o644); err != nil {
		return fmt.Errorf("write taxonomy cache: %w", err)
	}
	c.logger.Debug("saved taxonomy cache", "licenses", len(data), "path", c.path)
	return nil
}

// Clear removes the snapshot file. Removing an absent file succeeds.
func (c *Cache) Clear() error {
	err := os.Remove(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("clear taxonomy cache: %w", err)
	}
	return nil
}

// Status holds read-only introspection about the snapshot file.
type Status struct {
	Exists       bool   `json:"exists"`
	Path         string `json:"path"`
	SizeBytes    int64  `json:"size_bytes"`
	IsFresh      bool   `json:"is_fresh"`
	AgeSecs      int64  `json:"age_secs"`
	LicenseCount int    `json:"license_count"`
}

// Status inspects the snapshot without mutating it. A missing file reports
// Exists=false; a corrupt file reports Exists=true with zeroed freshness
// fields. It never fails.
func (c *Cache) Status() Status {
	st := Status{Path: c.path}

	info, err := os.Stat(c.path)
	if err != nil {
		return st
	}
	st.Exists = true
	st.SizeBytes = info.Size()

	content, err := os.ReadFile(c.path)
	if err != nil {
		return st
	}
	var entry Entry
	if err := json.Unmarshal(content, &entry); err != nil {
		return st
	}
	st.IsFresh = entry.Version == cacheVersion && c.isFresh(entry.Timestamp)
	st.AgeSecs = c.age(entry.Timestamp)
	st.LicenseCount = len(entry.Data)
	return st
}

// age computes now-timestamp with saturating subtraction: a clock that moved
// backward yields age 0, never a negative value.
func (c *Cache) age(timestamp int64) int64 {
	now := c.now().Unix()
	if timestamp > now {
		return 0
	}
	return now - timestamp
}

func (c *Cache) isFresh(timestamp int64) bool {
	return c.age(timestamp) < int64(TTL/time.Second)
}
