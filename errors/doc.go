/*
Package errors provides semantic error types for the project registry.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound           = errors.New("project not found")
	    ErrAlreadyExists      = errors.New("project already exists")
	    ErrInvalidInput       = errors.New("invalid input")
	    ErrAmbiguousDirectory = errors.New("ambiguous project directory")
	    ErrHasChildren        = errors.New("project has sub-projects")
	    ErrUnknownAncestor    = errors.New("unregistered ancestor")
	)

Usage:

	p, ok, err := reg.ProjectForDir("/work/app")
	if err != nil {
	    var amb *errors.AmbiguousDirectoryError
	    if stderrors.As(err, &amb) {
	        // amb.Matches lists every candidate in path order
	    }
	    return err
	}

	if _, err := reg.Remove(":app"); errors.IsHasChildren(err) {
	    removed, err := reg.RemoveSubtree(":app")
	    ...
	}

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
