package entities

import "fmt"

// PaymentRequest is the domain input for one payment submission. It exists
// only for the duration of the submission call and is never persisted.

type PaymentRequest struct {
	CardNumber  string
	ExpiryMonth string
	ExpiryYear  string
	Currency    string
	Amount      int
	CVV         string
}

// ExpiryDate formats the card expiry as "MM/YYYY", zero-padding a
// single-digit month.
func (r PaymentRequest) ExpiryDate() string {
	month := r.ExpiryMonth
	if len(month) == 1 {
		month = "0" + month
	}
	return fmt.Sprintf("%s/%s", month, r.ExpiryYear)
}

// CardNumberLastFour returns the last four characters of the PAN. The
// validator guarantees at least 14 digits before this is used.
func (r PaymentRequest) CardNumberLastFour() string {
	if len(r.CardNumber) < 4 {
		return r.CardNumber
	}
	return r.CardNumber[len(r.CardNumber)-4:]
}
