package request

import "payment-gateway/internal/domain/entities"

// PostPaymentRequest is the JSON payload accepted by POST /payment/submit.
// The amount is expressed in the currency's minor units (e.g. cents).

type PostPaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int    `json:"amount"`
	CVV         string `json:"cvv"`
}

func (r PostPaymentRequest) ToEntity() entities.PaymentRequest {
	return entities.PaymentRequest{
		CardNumber:  r.CardNumber,
		ExpiryMonth: r.ExpiryMonth,
		ExpiryYear:  r.ExpiryYear,
		Currency:    r.Currency,
		Amount:      r.Amount,
		CVV:         r.CVV,
	}
}
