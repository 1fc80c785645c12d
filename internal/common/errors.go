// Package common defines shared constants and sentinel errors used across
// client and server layers of the storefront. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Validation errors: user input rejected, reported verbatim.
	ErrDuplicateEmail = errors.New("existing user found with the same email address")
	ErrWrongEmail     = errors.New("wrong email")
	ErrWrongPassword  = errors.New("wrong password")
	ErrInvalidInput   = errors.New("invalid input")

	// Auth errors: the caller has to authenticate again.
	ErrMissingToken     = errors.New("missing token")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrTokenExpired     = errors.New("token expired")

	// State errors.
	ErrNotFound        = errors.New("not found")
	ErrNothingToRemove = errors.New("item not in cart or quantity is already zero")

	// Infrastructure errors, never shown to clients.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrCorruptHash      = errors.New("corrupt password hash")
	ErrInternal         = errors.New("internal error")
)
