package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"Storage", ErrorTypeStorage, "storage"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Timeout", ErrorTypeTimeout, "timeout"},
		{"Network", ErrorTypeNetwork, "network"},
		{"Parse", ErrorTypeParse, "parse"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "invalid input",
			},
			expected: "validation: invalid input",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeStorage,
				Message: "connection failed",
				Cause:   errors.New("disk I/O error"),
			},
			expected: "storage: connection failed (caused by: disk I/O error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appError := &AppError{
		Type:    ErrorTypeStorage,
		Message: "wrapped error",
		Cause:   cause,
	}

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
	if !errors.Is(appError, cause) {
		t.Errorf("errors.Is should see the cause through Unwrap")
	}
}

func TestAppError_Is(t *testing.T) {
	err := NewNotFoundError("task", "abc")

	if !errors.Is(err, &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}) {
		t.Errorf("errors.Is should match on type and code")
	}
	if errors.Is(err, &AppError{Type: ErrorTypeNotFound, Code: "OTHER"}) {
		t.Errorf("errors.Is should not match a different code")
	}
	if errors.Is(err, &AppError{Type: ErrorTypeStorage, Code: "NOT_FOUND"}) {
		t.Errorf("errors.Is should not match a different type")
	}
}

func TestAppError_Context(t *testing.T) {
	err := &AppError{Type: ErrorTypeParse}

	if _, ok := err.GetContext("missing"); ok {
		t.Errorf("GetContext on nil context should report false")
	}

	err.WithContext("record", 3).WithContext("field", "todos")

	record, ok := err.GetContext("record")
	if !ok || record != 3 {
		t.Errorf("GetContext(record) = %v, %v", record, ok)
	}
	field, ok := err.GetContext("field")
	if !ok || field != "todos" {
		t.Errorf("GetContext(field) = %v, %v", field, ok)
	}
}
