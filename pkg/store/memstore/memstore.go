// Package memstore provides the in-memory store.Store implementation, used
// by unit tests and single-node deployments that do not need durability.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mocksmith/mocksmith/pkg/mock"
	"github.com/mocksmith/mocksmith/pkg/store"
)

// Store keeps all documents in maps guarded by a single RWMutex. Documents
// are cloned on the way in and out so callers never share memory with the
// store.
type Store struct {
	mu        sync.RWMutex
	mocks     map[string]*mock.Config
	endpoints map[string]*mock.Endpoint
	resources map[string]*mock.Data

	// seq preserves insertion order for resources so oldest/newest
	// ordering stays stable when CreatedAt timestamps collide.
	seq     map[string]int64
	nextSeq int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		mocks:     make(map[string]*mock.Config),
		endpoints: make(map[string]*mock.Endpoint),
		resources: make(map[string]*mock.Data),
		seq:       make(map[string]int64),
	}
}

var _ store.Store = (*Store)(nil)

func resourceKey(mockID, resourceID string) string {
	return mockID + "\x00" + resourceID
}

func cloneMock(c *mock.Config) *mock.Config {
	cp := *c
	return &cp
}

func cloneEndpoint(e *mock.Endpoint) *mock.Endpoint {
	cp := *e
	cp.Fields = append(cp.Fields[:0:0], e.Fields...)
	return &cp
}

func cloneData(d *mock.Data) *mock.Data {
	cp := *d
	cp.Payload = make(map[string]any, len(d.Payload))
	for k, v := range d.Payload {
		cp.Payload[k] = v
	}
	return &cp
}

// --- Mocks ---

func (s *Store) CreateMock(_ context.Context, cfg *mock.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.mocks[cfg.ID]; exists {
		return store.ErrDuplicate
	}
	for _, existing := range s.mocks {
		if existing.OrganizationID == cfg.OrganizationID && existing.BasePath == cfg.BasePath {
			return store.ErrDuplicate
		}
	}

	s.mocks[cfg.ID] = cloneMock(cfg)
	return nil
}

func (s *Store) GetMock(_ context.Context, mockID string) (*mock.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.mocks[mockID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneMock(c), nil
}

func (s *Store) GetMockByBasePath(_ context.Context, mockID, basePath string) (*mock.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.mocks[mockID]
	if !ok || c.BasePath != basePath {
		return nil, store.ErrNotFound
	}
	return cloneMock(c), nil
}

func (s *Store) ListMocks(_ context.Context, organizationID string) ([]*mock.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*mock.Config
	for _, c := range s.mocks {
		if c.OrganizationID == organizationID {
			out = append(out, cloneMock(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return strings.Compare(out[i].ID, out[j].ID) < 0
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateMock(_ context.Context, cfg *mock.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mocks[cfg.ID]; !ok {
		return store.ErrNotFound
	}
	s.mocks[cfg.ID] = cloneMock(cfg)
	return nil
}

func (s *Store) DeleteMock(_ context.Context, mockID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mocks[mockID]; !ok {
		return store.ErrNotFound
	}
	delete(s.mocks, mockID)
	return nil
}

func (s *Store) CountActiveMocks(_ context.Context, organizationID string, now time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, c := range s.mocks {
		if c.OrganizationID == organizationID && c.IsActiveAt(now) {
			count++
		}
	}
	return count, nil
}

func (s *Store) RecordMockAccess(_ context.Context, mockID string, resetDaily bool, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.mocks[mockID]
	if !ok {
		return store.ErrNotFound
	}

	if resetDaily {
		c.DailyRequestCount = 1
	} else {
		c.DailyRequestCount++
	}
	ts := now
	c.LastRequestDate = &ts
	c.AccessCount++
	c.LastAccessedAt = &ts
	return nil
}

// --- Endpoints ---

func (s *Store) CreateEndpoints(_ context.Context, endpoints []*mock.Endpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ep := range endpoints {
		for _, existing := range s.endpoints {
			if existing.MockConfigID == ep.MockConfigID && existing.Method == ep.Method {
				return store.ErrDuplicate
			}
		}
	}
	for _, ep := range endpoints {
		s.endpoints[ep.ID] = cloneEndpoint(ep)
	}
	return nil
}

func (s *Store) GetEndpoint(_ context.Context, mockID, method string) (*mock.Endpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ep := range s.endpoints {
		if ep.MockConfigID == mockID && ep.Method == method {
			return cloneEndpoint(ep), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UpdateEndpoint(_ context.Context, ep *mock.Endpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.endpoints[ep.ID]; !ok {
		return store.ErrNotFound
	}
	s.endpoints[ep.ID] = cloneEndpoint(ep)
	return nil
}

func (s *Store) IncrementEndpointAccess(_ context.Context, endpointID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ep, ok := s.endpoints[endpointID]
	if !ok {
		return store.ErrNotFound
	}
	ep.AccessCount++
	return nil
}

func (s *Store) DeleteEndpoints(_ context.Context, mockID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, ep := range s.endpoints {
		if ep.MockConfigID == mockID {
			delete(s.endpoints, id)
		}
	}
	return nil
}

// --- Resources ---

func (s *Store) CreateResource(_ context.Context, d *mock.Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := resourceKey(d.MockConfigID, d.ResourceID)
	if _, exists := s.resources[key]; exists {
		return store.ErrDuplicate
	}

	s.resources[key] = cloneData(d)
	s.nextSeq++
	s.seq[key] = s.nextSeq
	return nil
}

func (s *Store) GetResource(_ context.Context, mockID, resourceID string) (*mock.Data, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.resources[resourceKey(mockID, resourceID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneData(d), nil
}

// sortedResources returns a mock's resources ordered oldest first.
// Caller must hold at least a read lock.
func (s *Store) sortedResources(mockID string) []*mock.Data {
	var out []*mock.Data
	for _, d := range s.resources {
		if d.MockConfigID == mockID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ki := resourceKey(out[i].MockConfigID, out[i].ResourceID)
		kj := resourceKey(out[j].MockConfigID, out[j].ResourceID)
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return s.seq[ki] < s.seq[kj]
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *Store) ListResources(_ context.Context, mockID string, offset, limit int) ([]*mock.Data, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	oldest := s.sortedResources(mockID)
	total := len(oldest)

	// Newest first.
	newest := make([]*mock.Data, total)
	for i, d := range oldest {
		newest[total-1-i] = d
	}

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	page := make([]*mock.Data, 0, end-offset)
	for _, d := range newest[offset:end] {
		page = append(page, cloneData(d))
	}
	return page, total, nil
}

func (s *Store) UpdateResource(_ context.Context, d *mock.Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := resourceKey(d.MockConfigID, d.ResourceID)
	existing, ok := s.resources[key]
	if !ok {
		return store.ErrNotFound
	}

	updated := cloneData(d)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	s.resources[key] = updated
	return nil
}

func (s *Store) DeleteResource(_ context.Context, mockID, resourceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := resourceKey(mockID, resourceID)
	if _, ok := s.resources[key]; !ok {
		return store.ErrNotFound
	}
	delete(s.resources, key)
	delete(s.seq, key)
	return nil
}

func (s *Store) DeleteResources(_ context.Context, mockID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for key, d := range s.resources {
		if d.MockConfigID == mockID {
			delete(s.resources, key)
			delete(s.seq, key)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) DeleteOldestResources(_ context.Context, mockID string, n int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	oldest := s.sortedResources(mockID)
	if n > len(oldest) {
		n = len(oldest)
	}

	for _, d := range oldest[:n] {
		key := resourceKey(d.MockConfigID, d.ResourceID)
		delete(s.resources, key)
		delete(s.seq, key)
	}
	return int64(n), nil
}

func (s *Store) CountResources(_ context.Context, mockID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, d := range s.resources {
		if d.MockConfigID == mockID {
			count++
		}
	}
	return count, nil
}
