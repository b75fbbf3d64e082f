package claim

import (
	"context"
	"sync"

	"healthledger/pkg/domain"
	"healthledger/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu         sync.RWMutex
	claims     []Claim
	byClaimant map[domain.Address][]domain.ClaimID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byClaimant: make(map[domain.Address][]domain.ClaimID)}
}

func (s *InMemoryStore) Create(_ context.Context, c Claim) (domain.ClaimID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = domain.ClaimID(len(s.claims))
	s.claims = append(s.claims, c)
	s.byClaimant[c.Claimant] = append(s.byClaimant[c.Claimant], c.ID)
	return c.ID, nil
}

func (s *InMemoryStore) Get(_ context.Context, id domain.ClaimID) (Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id >= domain.ClaimID(len(s.claims)) {
		return Claim{}, sentinel.ErrNotFound
	}
	return s.claims[id], nil
}

func (s *InMemoryStore) ListByClaimant(_ context.Context, claimant domain.Address) ([]Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byClaimant[claimant]
	out := make([]Claim, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.claims[id])
	}
	return out, nil
}

func (s *InMemoryStore) SetStatus(_ context.Context, id domain.ClaimID, from, to Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id >= domain.ClaimID(len(s.claims)) {
		return sentinel.ErrNotFound
	}
	if s.claims[id].Status != from {
		return sentinel.ErrInvalidState
	}
	s.claims[id].Status = to
	return nil
}

func (s *InMemoryStore) Count(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.claims)), nil
}
