// Package shared provides utility functions for generating the short
// human-readable capsule codes and for secure memory wiping.
package shared

import (
	"crypto/rand"
)

// codeAlphabet excludes visually ambiguous characters (no I, L, O, 0, 1).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 6

// MakeShortCode generates the short companion code shown next to a revealed
// key, grouped as XXX-XXX for readability. The code is a presentation token
// for human verification and carries no cryptographic weight, but it still
// draws from crypto/rand so codes do not repeat in predictable patterns.
func MakeShortCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	out := make([]byte, 0, codeLength+1)
	for i, v := range b {
		if i == codeLength/2 {
			out = append(out, '-')
		}
		out = append(out, codeAlphabet[int(v)%len(codeAlphabet)])
	}
	return string(out), nil
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// This is useful for removing sensitive data such as passphrases or
// cryptographic keys from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
