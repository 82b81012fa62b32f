package service

import "errors"

// Sentinel errors mapped by the handlers onto user-facing outcomes.
// Messages shown to users live in the HTTP layer; these stay generic so
// nothing internal leaks into a rendered page.
var (
	// ErrConflict reports a username or email uniqueness violation without
	// disclosing which field collided
	ErrConflict = errors.New("identity already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound reports a missing article or author
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyPublished reports a publish request against an article
	// already in the published state; informational, not a failure
	ErrAlreadyPublished = errors.New("article already published")
)
