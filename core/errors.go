// Package core holds the mutation logic shared by posts, motorcycles and
// profiles: reaction toggling, comment add/remove, profile merge and the
// ownership check. The functions operate on loaded entities; persistence
// is the caller's job.
package core

import "errors"

var (
	// ErrAlreadyReacted is returned when a user loves/likes an entity twice.
	ErrAlreadyReacted = errors.New("user already reacted")
	// ErrNotReacted is returned when removing a reaction that was never added.
	ErrNotReacted = errors.New("user has not reacted yet")
	// ErrCommentNotFound is returned when no comment matches the given id.
	ErrCommentNotFound = errors.New("comment does not exist")
	// ErrUnauthorized is returned on an ownership or authorship mismatch.
	ErrUnauthorized = errors.New("user not authorized")
	// ErrProfileNotFound is returned when a user has no profile yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrEntryNotFound is returned when no experience/education entry matches.
	ErrEntryNotFound = errors.New("entry not found")
)
