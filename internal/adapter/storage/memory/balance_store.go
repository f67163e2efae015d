// Package memory holds process-local implementations of the storage ports.
// State is lost on restart.
package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
)

// BalanceStore implements ports.BalanceStore. Update holds a per-KOL lock
// for the duration of fn.
type BalanceStore struct {
	mu       sync.RWMutex
	balances map[string]domain.EncryptedBalance
	locks    sync.Map // kolID -> *sync.Mutex
	now      func() time.Time
}

// NewBalanceStore creates an empty store.
func NewBalanceStore() *BalanceStore {
	return &BalanceStore{
		balances: make(map[string]domain.EncryptedBalance),
		now:      time.Now,
	}
}

func (s *BalanceStore) Get(ctx context.Context, kolID string) (*domain.EncryptedBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bal, ok := s.balances[kolID]
	if !ok {
		return nil, nil
	}
	return cloneBalance(bal), nil
}

func (s *BalanceStore) Set(ctx context.Context, kolID string, blob json.RawMessage) (*domain.EncryptedBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(kolID, blob), nil
}

func (s *BalanceStore) Update(ctx context.Context, kolID string, fn ports.BalanceUpdateFunc) (*domain.EncryptedBalance, error) {
	lock := s.lockFor(kolID)
	lock.Lock()
	defer lock.Unlock()

	current, _ := s.Get(ctx, kolID)
	blob, err := fn(current)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(kolID, blob), nil
}

// put writes under s.mu.
func (s *BalanceStore) put(kolID string, blob json.RawMessage) *domain.EncryptedBalance {
	bal := domain.EncryptedBalance{
		KolID:       kolID,
		Blob:        append(json.RawMessage(nil), blob...),
		LastUpdated: s.now().UTC(),
		Version:     s.balances[kolID].Version + 1,
	}
	s.balances[kolID] = bal
	return cloneBalance(bal)
}

func (s *BalanceStore) lockFor(kolID string) *sync.Mutex {
	l, _ := s.locks.LoadOrStore(kolID, &sync.Mutex{})
	return l.(*sync.Mutex)
}

func cloneBalance(b domain.EncryptedBalance) *domain.EncryptedBalance {
	b.Blob = append(json.RawMessage(nil), b.Blob...)
	return &b
}
