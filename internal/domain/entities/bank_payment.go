package entities

// BankPaymentRequest is the wire shape the acquiring bank expects.
// Derived 1:1 from a PaymentRequest; the expiry travels pre-formatted
// as "MM/YYYY".

type BankPaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int    `json:"amount"`
	CVV        string `json:"cvv"`
}

// BankPaymentResponse is the bank's authorization decision. The
// authorization code is absent when the payment is declined.

type BankPaymentResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}
