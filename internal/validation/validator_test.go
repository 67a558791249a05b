package validation

import (
	"errors"
	"strings"
	"testing"

	"payment-gateway/internal/domain/entities"
)

func validRequest() entities.PaymentRequest {
	return entities.PaymentRequest{
		CardNumber:  "4111111111111234",
		ExpiryMonth: "12",
		ExpiryYear:  "2099",
		Currency:    "USD",
		Amount:      1000,
		CVV:         "123",
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	if err := ValidateRequest(validRequest()); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	for _, code := range []string{"USD", "EUR", "GBP"} {
		req := validRequest()
		req.Currency = code
		if err := ValidateRequest(req); err != nil {
			t.Fatalf("expected %s to be accepted, got %v", code, err)
		}
	}
}

func TestValidateRequest_FieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entities.PaymentRequest)
		want   string
	}{
		{
			name:   "missing card number",
			mutate: func(r *entities.PaymentRequest) { r.CardNumber = "" },
			want:   "Card number is required.",
		},
		{
			name:   "card number with letters",
			mutate: func(r *entities.PaymentRequest) { r.CardNumber = "41111111111112ab" },
			want:   "Card number must contain only numeric characters.",
		},
		{
			name:   "card number too short",
			mutate: func(r *entities.PaymentRequest) { r.CardNumber = "4111111111111" },
			want:   "Card number must be between 14 and 19 characters.",
		},
		{
			name:   "card number too long",
			mutate: func(r *entities.PaymentRequest) { r.CardNumber = "41111111111112345678" },
			want:   "Card number must be between 14 and 19 characters.",
		},
		{
			name:   "missing expiry month",
			mutate: func(r *entities.PaymentRequest) { r.ExpiryMonth = "" },
			want:   "Expiry month is required.",
		},
		{
			name:   "expiry month 13",
			mutate: func(r *entities.PaymentRequest) { r.ExpiryMonth = "13" },
			want:   "Expiry month must be a valid 2-digit month (01-12).",
		},
		{
			name:   "expiry month without leading zero",
			mutate: func(r *entities.PaymentRequest) { r.ExpiryMonth = "1" },
			want:   "Expiry month must be a valid 2-digit month (01-12).",
		},
		{
			name:   "missing expiry year",
			mutate: func(r *entities.PaymentRequest) { r.ExpiryYear = "" },
			want:   "Expiry year is required.",
		},
		{
			name:   "two digit expiry year",
			mutate: func(r *entities.PaymentRequest) { r.ExpiryYear = "99" },
			want:   "Expiry year must be a 4-digit number.",
		},
		{
			name:   "missing currency",
			mutate: func(r *entities.PaymentRequest) { r.Currency = "" },
			want:   "Currency is required.",
		},
		{
			name:   "currency not a real ISO code",
			mutate: func(r *entities.PaymentRequest) { r.Currency = "NOT" },
			want:   "Invalid ISO currency code.",
		},
		{
			name:   "ISO currency outside the allow-list",
			mutate: func(r *entities.PaymentRequest) { r.Currency = "JPY" },
			want:   "Invalid ISO currency code.",
		},
		{
			name:   "zero amount",
			mutate: func(r *entities.PaymentRequest) { r.Amount = 0 },
			want:   "Amount should be more than 0.",
		},
		{
			name:   "negative amount",
			mutate: func(r *entities.PaymentRequest) { r.Amount = -5 },
			want:   "Amount should be more than 0.",
		},
		{
			name:   "missing cvv",
			mutate: func(r *entities.PaymentRequest) { r.CVV = "" },
			want:   "CVV is required.",
		},
		{
			name:   "five digit cvv",
			mutate: func(r *entities.PaymentRequest) { r.CVV = "05576" },
			want:   "CVV must be between 3 and 4 digits.",
		},
		{
			name:   "non-numeric cvv",
			mutate: func(r *entities.PaymentRequest) { r.CVV = "12a" },
			want:   "CVV must only contain numeric characters.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := ValidateRequest(req)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if err.Error() != tc.want {
				t.Fatalf("expected message %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestValidateRequest_CollectsAllFailures(t *testing.T) {
	err := ValidateRequest(entities.PaymentRequest{})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var validationErr *RequestValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *RequestValidationError, got %T", err)
	}

	want := "Card number is required." +
		"Expiry month is required." +
		"Expiry year is required." +
		"Currency is required." +
		"Amount should be more than 0." +
		"CVV is required."
	if err.Error() != want {
		t.Fatalf("expected aggregated message %q, got %q", want, err.Error())
	}
	if len(validationErr.Fields) != 6 {
		t.Fatalf("expected 6 field errors, got %d", len(validationErr.Fields))
	}
}

func TestValidateRequest_IndependentRulesOnSameField(t *testing.T) {
	req := validRequest()
	req.Currency = "EU"

	err := ValidateRequest(req)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "Currency must be a 3-character ISO code.") {
		t.Fatalf("expected size message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Invalid ISO currency code.") {
		t.Fatalf("expected ISO message, got %q", err.Error())
	}
}

func TestValidateRequest_RequiredShortCircuitsPerField(t *testing.T) {
	// An empty field must yield only its "required" message, not the
	// pattern or size messages.
	req := validRequest()
	req.CardNumber = ""

	err := ValidateRequest(req)
	if err == nil || err.Error() != "Card number is required." {
		t.Fatalf("expected only the required message, got %v", err)
	}
}
