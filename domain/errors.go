package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before it is dispatched anywhere.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTitle indicates the post title is blank.
	ErrEmptyTitle = fmt.Errorf("%w: title is required", ErrValidation)

	// ErrEmptyBody indicates the post content is blank.
	ErrEmptyBody = fmt.Errorf("%w: content is required", ErrValidation)

	// ErrNoAuthor indicates no author was selected.
	ErrNoAuthor = fmt.Errorf("%w: author is required", ErrValidation)
)

// TransportError reports that the remote endpoint could not be reached or
// answered with a non-2xx status.
type TransportError struct {
	Op     string // e.g. "GET /posts"
	Status int    // 0 when no response was received
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is, or wraps, a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ValidateDraft checks the required fields of a draft.
func ValidateDraft(d Draft) error {
	switch {
	case d.Title == "":
		return ErrEmptyTitle
	case d.Body == "":
		return ErrEmptyBody
	case d.UserID == "":
		return ErrNoAuthor
	}
	return nil
}
