package cache

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Snapshots is a small in-memory cache for last-fetched, unfiltered
// collection snapshots. Entries are stored as gzip-compressed JSON and
// expire after the configured TTL. Every filter reapplication decodes a
// fresh copy, so callers always work on the untouched base collection and
// never on a previously narrowed result.
type Snapshots struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	compressed []byte
	storedAt   time.Time
}

func New(ttl time.Duration) *Snapshots {
	return &Snapshots{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Put stores the value under the key, replacing any previous snapshot.
func (s *Snapshots) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return fmt.Errorf("compress snapshot %s: %w", key, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress snapshot %s: %w", key, err)
	}

	s.mu.Lock()
	s.entries[key] = entry{compressed: buf.Bytes(), storedAt: time.Now()}
	s.mu.Unlock()
	return nil
}

// Get decodes the snapshot into value and reports whether a live entry was
// found. Expired or corrupt entries count as misses and are dropped.
func (s *Snapshots) Get(key string, value any) bool {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok && s.ttl > 0 && time.Since(e.storedAt) > s.ttl {
		delete(s.entries, key)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return false
	}

	zr, err := gzip.NewReader(bytes.NewReader(e.compressed))
	if err != nil {
		s.Invalidate(key)
		return false
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		s.Invalidate(key)
		return false
	}
	if err := json.Unmarshal(raw, value); err != nil {
		s.Invalidate(key)
		return false
	}
	return true
}

// Invalidate drops the snapshot for the key, if any.
func (s *Snapshots) Invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}
