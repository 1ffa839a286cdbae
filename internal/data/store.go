package data

import (
	"sort"
	"sync"
	"time"

	"price-optimizer/internal/model"

	"github.com/google/uuid"
)

// DefaultTTL is how long an uploaded dataset stays resident before the
// cleanup pass drops it.
const DefaultTTL = 24 * time.Hour

// StoredDataset is a dataset held by the API layer between requests.
// The dataset itself is read-only; derived models are recomputed per
// request rather than cached, so a swap can never serve stale numbers.
type StoredDataset struct {
	ID        string
	Dataset   *model.Dataset
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is an in-memory dataset holder with TTL eviction. It exists so the
// HTTP layer has somewhere to keep the "currently selected" datasets; the
// analytical core never touches it.
type Store struct {
	mu    sync.RWMutex
	items map[string]*StoredDataset
	ttl   time.Duration

	stop chan struct{}
	once sync.Once
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		items: make(map[string]*StoredDataset),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Put registers a dataset and returns its generated ID.
func (s *Store) Put(ds *model.Dataset) *StoredDataset {
	now := time.Now()
	item := &StoredDataset{
		ID:        uuid.NewString(),
		Dataset:   ds,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Lock()
	s.items[item.ID] = item
	s.mu.Unlock()
	return item
}

// Get returns the stored dataset, or false if unknown or expired.
func (s *Store) Get(id string) (*StoredDataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok || time.Now().After(item.ExpiresAt) {
		return nil, false
	}
	return item, true
}

// Delete removes a dataset. Returns false if it was not present.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[id]
	delete(s.items, id)
	return ok
}

// List returns live datasets sorted by creation time, newest first.
func (s *Store) List() []*StoredDataset {
	now := time.Now()
	s.mu.RLock()
	out := make([]*StoredDataset, 0, len(s.items))
	for _, item := range s.items {
		if now.After(item.ExpiresAt) {
			continue
		}
		out = append(out, item)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Close stops the cleanup goroutine.
func (s *Store) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, item := range s.items {
				if now.After(item.ExpiresAt) {
					delete(s.items, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
