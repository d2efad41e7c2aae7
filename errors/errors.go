/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a project or build is not registered
	ErrNotFound = errors.New("project not found")

	// ErrAlreadyExists is returned when registering a path or build name twice
	ErrAlreadyExists = errors.New("project already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrAmbiguousDirectory is returned when several projects share a project directory
	ErrAmbiguousDirectory = errors.New("ambiguous project directory")

	// ErrHasChildren is returned when removing a project that still has sub-projects
	ErrHasChildren = errors.New("project has sub-projects")

	// ErrUnknownAncestor is returned when a project's parent chain reaches an unregistered path
	ErrUnknownAncestor = errors.New("unregistered ancestor")
)

// NotFoundError represents an error when a project is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a project already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error.
// Err optionally carries a more specific sentinel such as ErrUnknownAncestor.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AmbiguousDirectoryError is returned by directory lookups matching more than one project.
// Matches holds the matching project paths in registry order.
type AmbiguousDirectoryError struct {
	Dir     string
	Matches []string
}

func (e *AmbiguousDirectoryError) Error() string {
	return fmt.Sprintf("found multiple projects with project directory '%s': [%s]", e.Dir, strings.Join(e.Matches, ", "))
}

func (e *AmbiguousDirectoryError) Is(target error) bool {
	return target == ErrAmbiguousDirectory
}

// HasChildrenError is returned when removing a project whose sub-projects are still registered
type HasChildrenError struct {
	Path     string
	Children []string
}

func (e *HasChildrenError) Error() string {
	return fmt.Sprintf("cannot remove project %q while sub-projects are registered: [%s]", e.Path, strings.Join(e.Children, ", "))
}

func (e *HasChildrenError) Is(target error) bool {
	return target == ErrHasChildren
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUnknownAncestorError creates a ValidationError for a project whose ancestor is not registered
func NewUnknownAncestorError(path, ancestor string) error {
	return &ValidationError{
		Field:   "parent",
		Message: fmt.Sprintf("project %q has unregistered ancestor %q", path, ancestor),
		Err:     ErrUnknownAncestor,
	}
}

// NewAmbiguousDirectoryError creates a new AmbiguousDirectoryError
func NewAmbiguousDirectoryError(dir string, matches []string) error {
	return &AmbiguousDirectoryError{Dir: dir, Matches: matches}
}

// NewHasChildrenError creates a new HasChildrenError
func NewHasChildrenError(path string, children []string) error {
	return &HasChildrenError{Path: path, Children: children}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsAmbiguousDirectory checks if an error is an ambiguous directory error
func IsAmbiguousDirectory(err error) bool {
	return errors.Is(err, ErrAmbiguousDirectory)
}

// IsHasChildren checks if an error is a has-children error
func IsHasChildren(err error) bool {
	return errors.Is(err, ErrHasChildren)
}

// IsUnknownAncestor checks if an error reports an unregistered ancestor
func IsUnknownAncestor(err error) bool {
	return errors.Is(err, ErrUnknownAncestor)
}
