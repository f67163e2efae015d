package memory

import (
	"context"
	"fmt"
	"sync"

	"private-tips/internal/core/domain"
	"private-tips/pkg/apperror"
)

// TipRepository implements ports.TipRepository. Records are copied on the
// way in and out so callers never share state.
type TipRepository struct {
	mu   sync.RWMutex
	tips map[string]*domain.TipRecord
}

// NewTipRepository creates an empty repository.
func NewTipRepository() *TipRepository {
	return &TipRepository{tips: make(map[string]*domain.TipRecord)}
}

func (r *TipRepository) Create(ctx context.Context, rec *domain.TipRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tips[rec.EncryptionID]; ok {
		return fmt.Errorf("tip %s already exists", rec.EncryptionID)
	}
	r.tips[rec.EncryptionID] = cloneTip(rec)
	return nil
}

func (r *TipRepository) Get(ctx context.Context, encryptionID string) (*domain.TipRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.tips[encryptionID]
	if !ok {
		return nil, apperror.ErrNotFound("Tip")
	}
	return cloneTip(rec), nil
}

func (r *TipRepository) Update(ctx context.Context, rec *domain.TipRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tips[rec.EncryptionID]; !ok {
		return apperror.ErrNotFound("Tip")
	}
	r.tips[rec.EncryptionID] = cloneTip(rec)
	return nil
}

func cloneTip(rec *domain.TipRecord) *domain.TipRecord {
	c := *rec
	c.Transitions = append([]domain.StateTransition(nil), rec.Transitions...)
	return &c
}
