package validation

import (
	"regexp"
	"strings"

	"payment-gateway/internal/domain/entities"

	"golang.org/x/text/currency"
)

var (
	numericPattern     = regexp.MustCompile(`^[0-9]+$`)
	expiryMonthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	expiryYearPattern  = regexp.MustCompile(`^\d{4}$`)
)

// allowedCurrencyCodes is the fixed currency allow-list. Membership is
// checked in addition to the ISO-4217 registry lookup.
var allowedCurrencyCodes = []string{"USD", "EUR", "GBP"}

// RequestValidationError aggregates every violated field constraint of one
// submission. Fields holds the individual messages in field order; Error()
// renders them the way clients see them, each terminated with a period.

type RequestValidationError struct {
	Fields []string
}

func (e *RequestValidationError) Error() string {
	var sb strings.Builder
	for _, msg := range e.Fields {
		sb.WriteString(msg)
		sb.WriteString(".")
	}
	return sb.String()
}

// ValidateRequest runs every field rule and collects all failures instead of
// stopping at the first. A missing field yields only its "required" message;
// the remaining rules for a present field are evaluated independently.
// Returns nil when the request is valid.
func ValidateRequest(req entities.PaymentRequest) error {
	var fields []string

	if req.CardNumber == "" {
		fields = append(fields, "Card number is required")
	} else {
		if !numericPattern.MatchString(req.CardNumber) {
			fields = append(fields, "Card number must contain only numeric characters")
		}
		if len(req.CardNumber) < 14 || len(req.CardNumber) > 19 {
			fields = append(fields, "Card number must be between 14 and 19 characters")
		}
	}

	if req.ExpiryMonth == "" {
		fields = append(fields, "Expiry month is required")
	} else if !expiryMonthPattern.MatchString(req.ExpiryMonth) {
		fields = append(fields, "Expiry month must be a valid 2-digit month (01-12)")
	}

	if req.ExpiryYear == "" {
		fields = append(fields, "Expiry year is required")
	} else if !expiryYearPattern.MatchString(req.ExpiryYear) {
		fields = append(fields, "Expiry year must be a 4-digit number")
	}

	if req.Currency == "" {
		fields = append(fields, "Currency is required")
	} else {
		if len(req.Currency) != 3 {
			fields = append(fields, "Currency must be a 3-character ISO code")
		}
		if !isValidCurrency(req.Currency) {
			fields = append(fields, "Invalid ISO currency code")
		}
	}

	if req.Amount < 1 {
		fields = append(fields, "Amount should be more than 0")
	}

	if req.CVV == "" {
		fields = append(fields, "CVV is required")
	} else {
		if len(req.CVV) < 3 || len(req.CVV) > 4 {
			fields = append(fields, "CVV must be between 3 and 4 digits")
		}
		if !numericPattern.MatchString(req.CVV) {
			fields = append(fields, "CVV must only contain numeric characters")
		}
	}

	if len(fields) > 0 {
		return &RequestValidationError{Fields: fields}
	}
	return nil
}

// isValidCurrency requires membership in the allow-list AND a successful
// ISO-4217 registry lookup. The registry check is redundant for the current
// allow-list but guards against adding a non-ISO code to it.
func isValidCurrency(code string) bool {
	for _, allowed := range allowedCurrencyCodes {
		if code == allowed {
			_, err := currency.ParseISO(code)
			return err == nil
		}
	}
	return false
}
