package entities

// PaymentStatus represents the gateway's processing outcome.
//
// Authorized and Declined come from the acquiring bank's decision;
// Rejected is assigned locally when the request never makes it past
// validation or the bank call fails.

type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
	StatusRejected   PaymentStatus = "Rejected"
)

// Payment is the record persisted after a bank round-trip.
//
// Storage model (in-memory repository):
//   - key: id (UUID, generated once per submission, never reused)
//
// Only the last four digits of the PAN are kept; the full card number and
// the CVV never leave the submission flow.

type Payment struct {
	ID                 string        `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour string        `json:"cardNumberLastFour"`
	ExpiryDate         string        `json:"expiryDate"`
	Currency           string        `json:"currency"`
	Amount             int           `json:"amount"`
}
