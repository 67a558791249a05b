package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"payment-gateway/internal/domain/entities"
	"payment-gateway/internal/usecase/interfaces"
	"payment-gateway/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidExpiryDate = errors.New("invalid expiration date")
)

// IPaymentGatewayUseCase encapsulates the payment submission pipeline and
// the lookup of recorded payments.
//
// ProcessPayment runs validate -> check expiry -> generate id -> call bank
// -> derive status -> persist, strictly in that order. Rejections (failed
// validation, expired card, bank failure) never produce a record; both
// Authorized and Declined outcomes do.

type IPaymentGatewayUseCase interface {
	ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.Payment, error)
	GetPaymentByID(ctx context.Context, id string) (entities.Payment, error)
}

type PaymentGatewayUseCase struct {
	repo interfaces.IPaymentRepository
	bank interfaces.IAcquiringBank

	// now is swappable so expiry tests can pin the reference date.
	now func() time.Time
}

var _ IPaymentGatewayUseCase = (*PaymentGatewayUseCase)(nil)

func NewPaymentGatewayUseCase(repo interfaces.IPaymentRepository, bank interfaces.IAcquiringBank) *PaymentGatewayUseCase {
	return &PaymentGatewayUseCase{repo: repo, bank: bank, now: time.Now}
}

func (u *PaymentGatewayUseCase) ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.Payment, error) {
	if err := validation.ValidateRequest(req); err != nil {
		log.Printf("[payment][usecase] validation failed errors=%q", err.Error())
		return entities.Payment{}, err
	}

	if validation.IsExpired(req.ExpiryMonth, req.ExpiryYear, u.now()) {
		log.Printf("[payment][usecase] expiry check failed expiry=%s", req.ExpiryDate())
		return entities.Payment{}, ErrInvalidExpiryDate
	}

	paymentID := uuid.NewString()
	log.Printf("[payment][usecase] processing payment_id=%s amount=%d currency=%s", paymentID, req.Amount, req.Currency)

	bankReq := entities.BankPaymentRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate(),
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	}

	bankResp, err := u.bank.Authorize(ctx, bankReq, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] bank authorization failed payment_id=%s err=%v", paymentID, err)
		return entities.Payment{}, err
	}

	status := entities.StatusDeclined
	if bankResp.Authorized {
		status = entities.StatusAuthorized
		log.Printf("[payment][usecase] payment authorized payment_id=%s amount=%d currency=%s", paymentID, req.Amount, req.Currency)
	} else {
		log.Printf("[payment][usecase] payment declined payment_id=%s amount=%d currency=%s", paymentID, req.Amount, req.Currency)
	}

	p := entities.Payment{
		ID:                 paymentID,
		Status:             status,
		CardNumberLastFour: req.CardNumberLastFour(),
		ExpiryDate:         req.ExpiryDate(),
		Currency:           req.Currency,
		Amount:             req.Amount,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed payment_id=%s err=%v", paymentID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment saved payment_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *PaymentGatewayUseCase) GetPaymentByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}
