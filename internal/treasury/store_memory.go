package treasury

import (
	"context"
	"sync"

	"healthledger/pkg/domain"
	"healthledger/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu        sync.RWMutex
	custody   domain.Amount
	accounts  map[domain.Address]domain.Amount
	transfers []Transfer
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{accounts: make(map[domain.Address]domain.Amount)}
}

func (s *InMemoryStore) Balance(_ context.Context) (domain.Amount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.custody, nil
}

func (s *InMemoryStore) Apply(_ context.Context, t Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch t.Kind {
	case TransferDeposit:
		s.custody += t.Amount
	case TransferPayout, TransferWithdrawal:
		if t.Amount > s.custody {
			return sentinel.ErrInvalidState
		}
		s.custody -= t.Amount
		s.accounts[t.To] += t.Amount
	default:
		return sentinel.ErrInvalidState
	}
	s.transfers = append(s.transfers, t)
	return nil
}

func (s *InMemoryStore) AccountBalance(_ context.Context, addr domain.Address) (domain.Amount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts[addr], nil
}

func (s *InMemoryStore) Transfers(_ context.Context, limit int) ([]Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.transfers)
	if limit > 0 && limit < n {
		n = limit
	}
	// Newest first.
	out := make([]Transfer, 0, n)
	for i := len(s.transfers) - 1; i >= len(s.transfers)-n; i-- {
		out = append(out, s.transfers[i])
	}
	return out, nil
}
