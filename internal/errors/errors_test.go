package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("news article", "42")

	// Test error message
	expectedMsg := "news article '42' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test Is() method
	if !errors.Is(err, ErrNotFound) {
		t.Error("Expected error to match ErrNotFound sentinel")
	}

	// Test that it doesn't match other sentinels
	if errors.Is(err, ErrAlreadyExists) {
		t.Error("Error should not match ErrAlreadyExists")
	}

	// Without an ID
	if msg := NewNotFoundError("user", "").Error(); msg != "user not found" {
		t.Errorf("Expected 'user not found', got '%s'", msg)
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("user", "admin@upes.ac.in")

	expectedMsg := "user 'admin@upes.ac.in' already exists"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("Expected error to match ErrAlreadyExists sentinel")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title", "is required")

	expectedMsg := "validation error for field 'title': is required"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}

	noField := NewValidationError("", "no fields to update")
	if noField.Error() != "validation error: no fields to update" {
		t.Errorf("Unexpected message '%s'", noField.Error())
	}
}

func TestForbiddenError(t *testing.T) {
	err := NewForbiddenError("edit this article")

	if err.Error() != "not allowed to edit this article" {
		t.Errorf("Unexpected message '%s'", err.Error())
	}
	if !errors.Is(err, ErrForbidden) {
		t.Error("Expected error to match ErrForbidden sentinel")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Error("Error should not match ErrUnauthorized")
	}
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("category", "it still has 3 news articles")

	if err.Error() != "cannot modify category: it still has 3 news articles" {
		t.Errorf("Unexpected message '%s'", err.Error())
	}
	if !errors.Is(err, ErrConflict) {
		t.Error("Expected error to match ErrConflict sentinel")
	}
}

func TestWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("failed to load article: %w", NewNotFoundError("news article", "slug-1"))

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Expected wrapped error to match ErrNotFound sentinel")
	}

	var nf *NotFoundError
	if !errors.As(wrapped, &nf) {
		t.Fatal("Expected errors.As to find NotFoundError")
	}
	if nf.ID != "slug-1" {
		t.Errorf("Expected ID 'slug-1', got '%s'", nf.ID)
	}
}
