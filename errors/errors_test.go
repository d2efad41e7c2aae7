/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("project", ":app")

	// Test error message
	expected := `project with key ":app" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("build", "main")

	expected := `build with key "main" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "name",
			message:  "must not be empty",
			expected: `validation failed for field "name": must not be empty`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing root project",
			expected: "validation failed: missing root project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}

			if IsUnknownAncestor(err) {
				t.Error("plain ValidationError should not match ErrUnknownAncestor")
			}
		})
	}
}

func TestUnknownAncestorError(t *testing.T) {
	err := NewUnknownAncestorError(":a:b", ":a")

	if !IsValidationError(err) {
		t.Error("unknown ancestor error should be a validation error")
	}
	if !IsUnknownAncestor(err) {
		t.Error("unknown ancestor error should match ErrUnknownAncestor")
	}

	expected := `validation failed for field "parent": project ":a:b" has unregistered ancestor ":a"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestAmbiguousDirectoryError(t *testing.T) {
	err := NewAmbiguousDirectoryError("/work/shared", []string{":a", ":b"})

	expected := "found multiple projects with project directory '/work/shared': [:a, :b]"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	var amb *AmbiguousDirectoryError
	if !errors.As(err, &amb) {
		t.Fatal("errors.As should extract AmbiguousDirectoryError")
	}
	if len(amb.Matches) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(amb.Matches))
	}

	if !IsAmbiguousDirectory(err) {
		t.Error("IsAmbiguousDirectory should return true for AmbiguousDirectoryError")
	}
}

func TestHasChildrenError(t *testing.T) {
	err := NewHasChildrenError(":sub", []string{":sub:leaf"})

	expected := `cannot remove project ":sub" while sub-projects are registered: [:sub:leaf]`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsHasChildren(err) {
		t.Error("IsHasChildren should return true for HasChildrenError")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewNotFoundError("project", ":app")
	wrapped := fmt.Errorf("removing project: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrAmbiguousDirectory,
		ErrHasChildren,
		ErrUnknownAncestor,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
