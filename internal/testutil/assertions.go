package testutil

import (
	"errors"
	"testing"

	apperrors "privfinos/internal/errors"
)

// AssertAppError fails the test unless err carries the given application
// error code.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()

	appErr := requireAppError(t, err, code)
	if appErr.Code != code {
		t.Errorf("error code = %q, want %q (message: %s)", appErr.Code, code, appErr.Message)
	}
}

// AssertAppErrorMessage fails the test unless err carries the given code and
// the exact client-facing message. Some lookups reword their message (parent
// category, transfer destination); this pins those down.
func AssertAppErrorMessage(t *testing.T, err error, code, message string) {
	t.Helper()

	appErr := requireAppError(t, err, code)
	if appErr.Code != code {
		t.Errorf("error code = %q, want %q", appErr.Code, code)
	}
	if appErr.Message != message {
		t.Errorf("error message = %q, want %q", appErr.Message, message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func requireAppError(t *testing.T, err error, code string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("want AppError with code %q, got nil", code)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("want *AppError, got %T: %v", err, err)
	}
	return appErr
}
