package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFactories(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"validation", NewValidation("bad input"), CodeValidation, http.StatusBadRequest},
		{"not found", NewNotFound("customer", int64(7)), CodeNotFound, http.StatusNotFound},
		{"persistence", NewPersistence("invoice_lines", 0), CodePersistence, http.StatusInternalServerError},
		{"transaction", NewTransaction("commit", errors.New("broken pipe")), CodeTransaction, http.StatusInternalServerError},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
		{"unauthorized", NewUnauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbidden("nope"), CodeForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.wantCode)
			}
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewTransaction("commit", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	appErr := NewNotFound("product", int64(42))
	wrapped := fmt.Errorf("resolve price: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AppError in chain")
	}
	if got.Code != CodeNotFound {
		t.Errorf("code = %s, want %s", got.Code, CodeNotFound)
	}
}

func TestCodePredicates(t *testing.T) {
	if !IsValidation(NewValidation("x")) {
		t.Error("IsValidation should match")
	}
	if !IsNotFound(NewNotFound("customer", 1)) {
		t.Error("IsNotFound should match")
	}
	if !IsPersistence(NewPersistence("t", 2)) {
		t.Error("IsPersistence should match")
	}
	if !IsTransaction(NewTransaction("rollback", errors.New("x"))) {
		t.Error("IsTransaction should match")
	}
	if IsNotFound(NewValidation("x")) {
		t.Error("IsNotFound should not match validation error")
	}
	if IsValidation(errors.New("plain")) {
		t.Error("IsValidation should not match plain error")
	}
}

func TestWithDetail(t *testing.T) {
	err := NewValidation("quantity must be positive").
		WithDetail("lineNo", 3).
		WithDetail("quantity", int64(-1))

	if err.Details["lineNo"] != 3 {
		t.Errorf("lineNo detail = %v", err.Details["lineNo"])
	}
	if err.Details["quantity"] != int64(-1) {
		t.Errorf("quantity detail = %v", err.Details["quantity"])
	}
}

func TestGetHTTPStatus_UnknownError(t *testing.T) {
	if got := GetHTTPStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", got)
	}
}
