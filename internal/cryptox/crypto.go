// Package cryptox implements the capsule crypto engine: symmetric key
// generation, portable key tokens, and authenticated encryption of capsule
// payloads with AES-256-GCM.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/timecapsule/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12
)

// GenerateKey produces a fresh, uniformly random 32-byte symmetric key from
// the cryptographically secure random source.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKey derives a 32-byte AES key from a passphrase and salt using
// argon2id. The same passphrase and salt always produce the same key, so a
// capsule sealed this way can be re-opened from the passphrase alone.
func DeriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// ExportKey encodes the raw key as a base64 token. The token is the key,
// full stop: no envelope, no metadata.
func ExportKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// ImportKey decodes a base64 key token produced by ExportKey. Surrounding
// whitespace is tolerated (keys travel by copy/paste). Malformed encoding
// or a wrong key length yields ErrKeyFormat.
func ImportKey(token string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("%w: not valid base64", common.ErrKeyFormat)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", common.ErrKeyFormat, KeySize, len(key))
	}
	return key, nil
}

// Encrypt seals plaintext under key with AES-GCM. A new random 12-byte
// nonce is generated on every call, so two encryptions of identical input
// never produce the same artifact. The returned ciphertext includes the
// GCM integrity tag covering the whole plaintext.
func Encrypt(key, plaintext []byte) (*Artifact, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	ciphertext := aesgcm.Seal(nil, nonce, plaintext, nil)

	return &Artifact{
		Algorithm:  AlgorithmAESGCM,
		Version:    ArtifactVersion,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, nil
}

// Decrypt verifies and opens the artifact's ciphertext. The integrity tag
// is checked before anything is returned: a wrong key, tampered ciphertext
// or corrupted nonce all surface as the same ErrAuthentication, and no
// partial plaintext ever escapes.
func Decrypt(key []byte, a *Artifact) ([]byte, error) {
	if a.Algorithm != AlgorithmAESGCM || a.Version != ArtifactVersion {
		return nil, fmt.Errorf("%w: alg=%q v=%d", common.ErrUnsupportedVersion, a.Algorithm, a.Version)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	// GCM panics on a wrong-length nonce; treat it as a failed check instead.
	if len(a.Nonce) != aesgcm.NonceSize() {
		return nil, common.ErrAuthentication
	}

	plaintext, err := aesgcm.Open(nil, a.Nonce, a.Ciphertext, nil)
	if err != nil {
		return nil, common.ErrAuthentication
	}
	return plaintext, nil
}
