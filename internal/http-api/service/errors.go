package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a structurally invalid submission. It is raised
	// before any external call is made.
	ErrValidation = errors.New("validation failed")

	// ErrMovieNotFound means the referenced movie does not exist.
	ErrMovieNotFound = errors.New("movie not found")
)

// RejectedError is a moderation policy decision, not a fault. Reason names
// the dominant violation category; Message is user-facing.
type RejectedError struct {
	Reason  string
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("comment rejected (%s): %s", e.Reason, e.Message)
}
