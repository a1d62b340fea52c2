// Package models defines the capsule data types shared across the core:
// the plaintext Bundle and its codec, the durable ledger Entry, and the
// delay specification.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/common"
)

// BundleVersion is the current bundle schema version.
const BundleVersion = 1

// Audio is an optional voice attachment carried inside the bundle. Data
// serializes as base64 text inside the same JSON envelope as the textual
// fields, so the whole bundle remains one document.
type Audio struct {
	Mime string `json:"mime"`
	Data []byte `json:"b64"`
}

// Bundle is the plaintext capsule contents. It exists only in memory
// during create and open; what leaves the system is always the encrypted
// artifact. Field names follow the frozen wire layout.
type Bundle struct {
	V         int       `json:"v"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Birthday  string    `json:"birthday"` // YYYY-MM-DD
	Message   string    `json:"message"`
	Audio     *Audio    `json:"audio"`
}

// EncodeBundle serializes the bundle to its JSON envelope.
func EncodeBundle(b *Bundle) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bundle: %w", err)
	}
	return data, nil
}

// DecodeBundle parses a serialized bundle. Malformed input is rejected
// with ErrDecode rather than producing a partial structure; a schema
// version this code does not know is ErrUnsupportedVersion.
func DecodeBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecode, err)
	}
	if b.V != BundleVersion {
		return nil, fmt.Errorf("%w: bundle v=%d", common.ErrUnsupportedVersion, b.V)
	}
	return &b, nil
}
