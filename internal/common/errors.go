// Package common defines shared sentinel errors used across the
// time-capsule core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate id")

	// Codec errors (malformed bundle or artifact documents).
	ErrDecode             = errors.New("malformed capsule data")
	ErrUnsupportedVersion = errors.New("unsupported version")

	// Crypto errors. ErrAuthentication covers every integrity failure:
	// wrong key, tampered ciphertext, corrupted nonce.
	ErrKeyFormat      = errors.New("invalid key format")
	ErrAuthentication = errors.New("authentication failed")

	// Validation errors (non-positive delay, missing identity fields).
	ErrorValidation = errors.New("validation error")
)
