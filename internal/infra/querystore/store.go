package querystore

import (
	"net/url"
	"sync"
)

// Store is the persisted, URL-shaped representation of a search query and
// the single source of truth for it. Every replacement bumps a monotonic
// version; the version doubles as the generation stamp attached to search
// dispatches so stale responses can be recognized and discarded.
type Store struct {
	mu      sync.Mutex
	values  url.Values
	version uint64
}

func New() *Store {
	return &Store{values: url.Values{}}
}

func NewFromValues(values url.Values) *Store {
	s := New()
	s.Replace(values)
	return s
}

// Snapshot returns a copy of the current values and the version they belong
// to.
func (s *Store) Snapshot() (url.Values, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneValues(s.values), s.version
}

// Version returns the current version without copying the values.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Replace swaps the whole representation in one atomic write and returns
// the new version. A replacement that encodes identically to the current
// state is a no-op and keeps the version, which is what breaks redundant
// write/re-normalize loops.
func (s *Store) Replace(values url.Values) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if values.Encode() == s.values.Encode() {
		return s.version
	}

	s.values = cloneValues(values)
	s.version++
	return s.version
}

func cloneValues(values url.Values) url.Values {
	clone := make(url.Values, len(values))
	for k, vs := range values {
		copied := make([]string, len(vs))
		copy(copied, vs)
		clone[k] = copied
	}
	return clone
}
