package interfaces

import (
	"context"

	"payment-gateway/internal/domain/entities"
)

// IPaymentRepository abstracts identifier-keyed persistence of completed
// payments. Create is write-once: inserting an id that already exists must
// fail, and records are never mutated afterwards. GetByID returns the zero
// Payment when no record matches.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
}
