package pkg

import (
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/google/uuid"
)

func TestAppError_Error(t *testing.T) {
	simple := NewDomainErrorSimple("Rejected", "Invalid request", http.StatusBadRequest)
	if simple.Error() != "Invalid request" {
		t.Fatalf("unexpected message: %q", simple.Error())
	}

	cause := errors.New("boom")
	wrapped := NewDomainError("Internal Server Error", "An internal error occurred", cause, http.StatusInternalServerError)
	if wrapped.Error() != "An internal error occurred: boom" {
		t.Fatalf("unexpected message: %q", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped cause to unwrap")
	}
}

func TestAppError_ToHTTPError(t *testing.T) {
	appErr := NewDomainErrorSimple("Rejected", "Invalid Expiration Date", http.StatusBadRequest)

	body := appErr.ToHTTPError()
	if body.Status != "Rejected" || body.Message != "Invalid Expiration Date" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if err := uuid.Validate(body.TraceID); err != nil {
		t.Fatalf("traceId must be a UUID, got %q", body.TraceID)
	}
	if !regexp.MustCompile(`^\d{2}-\d{2}-\d{4} \d{2}:\d{2}:\d{2}$`).MatchString(body.Timestamp) {
		t.Fatalf("timestamp %q does not match dd-MM-yyyy hh:mm:ss", body.Timestamp)
	}

	// Each conversion gets its own trace.
	if again := appErr.ToHTTPError(); again.TraceID == body.TraceID {
		t.Fatalf("expected a fresh traceId per error")
	}
}
