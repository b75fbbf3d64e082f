package policy

import (
	"context"
	"sync"

	"healthledger/pkg/domain"
	"healthledger/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	policies []Policy
	byHolder map[domain.Address][]domain.PolicyID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byHolder: make(map[domain.Address][]domain.PolicyID)}
}

func (s *InMemoryStore) Create(_ context.Context, p Policy) (domain.PolicyID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = domain.PolicyID(len(s.policies))
	s.policies = append(s.policies, p)
	s.byHolder[p.Holder] = append(s.byHolder[p.Holder], p.ID)
	return p.ID, nil
}

func (s *InMemoryStore) Get(_ context.Context, id domain.PolicyID) (Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id >= domain.PolicyID(len(s.policies)) {
		return Policy{}, sentinel.ErrNotFound
	}
	return s.policies[id], nil
}

func (s *InMemoryStore) ListByHolder(_ context.Context, holder domain.Address) ([]Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byHolder[holder]
	out := make([]Policy, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.policies[id])
	}
	return out, nil
}

func (s *InMemoryStore) Deactivate(_ context.Context, id domain.PolicyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id >= domain.PolicyID(len(s.policies)) {
		return sentinel.ErrNotFound
	}
	s.policies[id].IsActive = false
	return nil
}

func (s *InMemoryStore) Count(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.policies)), nil
}
