package models

import (
	"strings"
	"time"
)

// Entry is one row of the schedule ledger: capsule metadata plus the key
// material kept locally for reveal-time convenience. The plaintext never
// enters the ledger.
type Entry struct {
	// Id is a globally unique identifier for the capsule.
	Id string

	// DeliverAt is the instant after which the capsule may be revealed.
	// Fixed at creation, never mutated.
	DeliverAt time.Time

	// Key is the exported base64 key token for the capsule's artifact.
	Key string

	// SecondaryCode is the short human-shareable companion code.
	SecondaryCode string

	// ArtifactName is the file name the ciphertext was exported under,
	// kept for the owner's own reference.
	ArtifactName string

	// OwnerName and OwnerBirthday gate lookups and reveals. They are
	// matching/display fields, not cryptographic material.
	OwnerName     string
	OwnerBirthday string

	// RevealedAt is set exactly once, the first time the due entry is
	// shown to its owner. Nil until then, immutable after.
	RevealedAt *time.Time

	// CreatedAt is the authoring time in UTC.
	CreatedAt time.Time
}

// NormalizeIdentity lowercases and trims an identity field. Lookup and the
// reveal gate both compare identities through this one function.
func NormalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IdentitySalt builds the argon2 salt for passphrase-derived capsule keys
// from the owner identity, so the key is recoverable from passphrase plus
// identity alone.
func IdentitySalt(name, birthday string) []byte {
	return []byte(NormalizeIdentity(name) + "|" + NormalizeIdentity(birthday))
}

// MatchesIdentity reports whether the claimed fields match the entry's
// stored owner fields under normalized comparison. Blank claimed fields
// never match: they would otherwise turn the lookup into a full browse.
func (e *Entry) MatchesIdentity(name, birthday string) bool {
	n, b := NormalizeIdentity(name), NormalizeIdentity(birthday)
	if n == "" || b == "" {
		return false
	}
	return NormalizeIdentity(e.OwnerName) == n && NormalizeIdentity(e.OwnerBirthday) == b
}

// Redacted returns a copy of the entry with key material removed, for
// presenting entries that are not yet visible.
func (e Entry) Redacted() Entry {
	e.Key = ""
	e.SecondaryCode = ""
	return e
}
