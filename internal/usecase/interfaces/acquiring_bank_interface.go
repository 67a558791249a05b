package interfaces

import (
	"context"
	"errors"

	"payment-gateway/internal/domain/entities"
)

// Classification of acquiring-bank failures. Implementations wrap these so
// callers can match with errors.Is without depending on transport detail.
var (
	// ErrBankUnreachable covers transport-level failures (connection
	// refused, timeout, DNS) before any HTTP status is received.
	ErrBankUnreachable = errors.New("acquiring bank unreachable")
	// ErrBankClientError is a 4xx from the bank: a problem with the
	// submitted payment details.
	ErrBankClientError = errors.New("acquiring bank rejected the request")
	// ErrBankServerError is a 5xx from the bank: a bank-side processing
	// problem.
	ErrBankServerError = errors.New("acquiring bank internal error")
)

// IAcquiringBank abstracts the external bank's synchronous authorization
// endpoint. Authorize blocks for the round-trip; no retries are performed.
// paymentID is passed for log correlation only and is not part of the wire
// body.

type IAcquiringBank interface {
	Authorize(ctx context.Context, req entities.BankPaymentRequest, paymentID string) (entities.BankPaymentResponse, error)
}
