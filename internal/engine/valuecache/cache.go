// Package valuecache implements the content-addressed value cache.
//
// Each cache-enabled activity owns one Partition. A literal value is stored
// under its SHA-1 digest and returned unchanged; presenting the digest later
// replays the stored value without the caller resending it. Entries expire
// after a TTL and are swept from their partition on every write.
package valuecache

import (
	"errors"
	"strings"
	"sync"
	"time"

	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/zerr"
)

// Entry is a single cached value.
type Entry struct {
	// Key is the hex digest of Value. Immutable once assigned.
	Key string
	// Value is the literal cached content.
	Value string
	// Touched is refreshed on every write or digest hit.
	Touched time.Time
}

// Partition is the cache of one activity.
type Partition struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]Entry
}

// NewPartition creates an empty partition whose entries live for ttl.
func NewPartition(ttl time.Duration) *Partition {
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	return &Partition{
		ttl:     ttl,
		entries: make(map[string]Entry),
	}
}

// Resolve returns the effective value for input and the digest it is cached under.
//
// A digest input is looked up and fails with domain.ErrCacheMiss if absent
// or expired. Any other input is hashed and stored. Both paths refresh the
// entry and sweep expired entries before returning.
func (p *Partition) Resolve(input string, now time.Time) (value, key string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if domain.IsDigest(input) {
		key = strings.ToLower(input)
		entry, ok := p.entries[key]
		if !ok || p.expired(entry, now) {
			return "", "", errors.Join(domain.ErrCacheMiss, zerr.With(zerr.New("no cached value for digest"), "key", key))
		}
		value = entry.Value
	} else {
		value = input
		key = domain.ComputeDigest(input)
	}

	p.entries[key] = Entry{Key: key, Value: value, Touched: now}
	p.sweep(now)

	return value, key, nil
}

// Lookup returns the live entry stored under key without refreshing it.
func (p *Partition) Lookup(key string, now time.Time) (Entry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.entries[strings.ToLower(key)]
	if !ok || p.expired(entry, now) {
		return Entry{}, false
	}
	return entry, true
}

// Len returns the number of entries currently held, expired or not.
func (p *Partition) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// sweep removes expired entries. Callers must hold p.mu.
func (p *Partition) sweep(now time.Time) int {
	removed := 0
	for key, entry := range p.entries {
		if p.expired(entry, now) {
			delete(p.entries, key)
			removed++
		}
	}
	return removed
}

func (p *Partition) expired(entry Entry, now time.Time) bool {
	return !now.Before(entry.Touched.Add(p.ttl))
}

// Set holds one Partition per cache-enabled activity.
// The set of activities is fixed at construction.
type Set struct {
	partitions map[string]*Partition
}

// NewSet creates a partition for every activity.
func NewSet(ttl time.Duration, activities ...string) *Set {
	s := &Set{partitions: make(map[string]*Partition, len(activities))}
	for _, a := range activities {
		s.partitions[a] = NewPartition(ttl)
	}
	return s
}

// Partition returns the partition owned by activity.
func (s *Set) Partition(activity string) (*Partition, bool) {
	p, ok := s.partitions[activity]
	return p, ok
}
