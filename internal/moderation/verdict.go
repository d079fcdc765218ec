// Package moderation talks to the external toxicity classifier and turns its
// verdicts into accept/reject decisions for user-submitted text.
package moderation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidResponse means the classifier answered with a payload we
	// could not interpret. It is never treated as "safe".
	ErrInvalidResponse = errors.New("invalid moderation response")

	// ErrUnavailable means the classifier could not be reached at all.
	ErrUnavailable = errors.New("moderation service unavailable")
)

// Verdict is the classifier's structured toxicity result for one text span.
// SaferValue echoes the sensitivity threshold the caller supplied.
type Verdict struct {
	IsFlagged      bool    `json:"is_flagged"`
	IsSaferFlagged bool    `json:"is_safer_flagged"`
	MaxKey         string  `json:"max_key"`
	MaxValue       float64 `json:"max_value"`
	SaferValue     float64 `json:"safer_value"`
	Message        string  `json:"message"`
}

// Decision is the outcome of applying policy to a verdict.
type Decision struct {
	Safe    bool
	Reason  string
	Message string
}

// Evaluate applies the moderation policy to a verdict. Explicit flags take
// priority over the numeric comparison, and a score exactly equal to the
// threshold rejects.
func Evaluate(v *Verdict) (Decision, error) {
	if v == nil {
		return Decision{}, ErrInvalidResponse
	}

	if v.IsFlagged || v.IsSaferFlagged {
		reason := v.MaxKey
		if reason == "" {
			reason = "policy_violation"
		}
		return Decision{
			Safe:    false,
			Reason:  reason,
			Message: "Comment flagged by moderation system",
		}, nil
	}

	if v.MaxValue >= v.SaferValue {
		return Decision{
			Safe:    false,
			Reason:  v.MaxKey,
			Message: fmt.Sprintf("Content exceeds safety threshold (%g)", v.SaferValue),
		}, nil
	}

	msg := v.Message
	if msg == "" {
		msg = "Content is safe"
	}
	return Decision{Safe: true, Message: msg}, nil
}
