package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP statuses; anything else is surfaced as a storage failure.
// Ownership misses are reported as not-found, never forbidden, so callers
// cannot probe for other users' properties.
var (
	ErrPropertyNotFound   = errors.New("property not found")
	ErrRuleNotFound       = errors.New("rule not found")
	ErrRuleNameRequired   = errors.New("rule name is required")
	ErrRulesRequired      = errors.New("rules array is required")
	ErrCreationFailed     = errors.New("property creation failed")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
