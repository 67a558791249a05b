package repository

import (
	"context"
	"fmt"
	"sync"

	"payment-gateway/internal/domain/entities"
	"payment-gateway/internal/usecase/interfaces"
)

// PaymentMemoryRepository persists Payment entities in process memory.
//
// Storage model:
//   - key: payment id
//   - write-once: Create fails on an existing id, records are never updated
//     or deleted, and everything is lost on restart.
//
// An RWMutex guards the map so concurrent submissions and lookups are safe.

type PaymentMemoryRepository struct {
	mu   sync.RWMutex
	data map[string]entities.Payment
}

var _ interfaces.IPaymentRepository = (*PaymentMemoryRepository)(nil)

func NewPaymentMemoryRepository() *PaymentMemoryRepository {
	return &PaymentMemoryRepository{
		data: make(map[string]entities.Payment),
	}
}

func (r *PaymentMemoryRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[p.ID]; exists {
		return entities.Payment{}, fmt.Errorf("payment %s already exists", p.ID)
	}
	r.data[p.ID] = p
	return p, nil
}

func (r *PaymentMemoryRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.data[id], nil
}
