package response

import "payment-gateway/internal/domain/entities"

// PostPaymentResponse is the JSON body returned for both a processed
// submission and a GET by id. The full card number is never echoed back.

type PostPaymentResponse struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	CardNumberLastFour string `json:"cardNumberLastFour"`
	ExpiryDate         string `json:"expiryDate"`
	Currency           string `json:"currency"`
	Amount             int    `json:"amount"`
}

func FromPayment(p entities.Payment) PostPaymentResponse {
	return PostPaymentResponse{
		ID:                 p.ID,
		Status:             string(p.Status),
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryDate:         p.ExpiryDate,
		Currency:           p.Currency,
		Amount:             p.Amount,
	}
}
