package cryptox

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/timecapsule/internal/common"
)

const (
	// AlgorithmAESGCM is the algorithm tag written into exported artifacts.
	AlgorithmAESGCM = "AES-GCM"
	// ArtifactVersion is the current artifact schema version. Any change to
	// the field layout requires a bump, and decoders reject versions they
	// do not know.
	ArtifactVersion = 1
)

// Artifact is the encrypted document that leaves the system on the create
// path: an algorithm tag, a schema version, the per-encryption nonce and
// the ciphertext with its integrity tag. It is the only exported form of a
// capsule's contents.
type Artifact struct {
	Algorithm  string
	Version    int
	Nonce      []byte
	Ciphertext []byte
}

// artifactJSON mirrors the exported wire layout: base64 text fields under
// the historical short names (iv, ciphertext, alg, v). The layout is
// frozen; artifacts written by any prior release must keep decoding.
type artifactJSON struct {
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
	Alg        string `json:"alg"`
	V          int    `json:"v"`
}

// EncodeArtifact serializes the artifact to its exported JSON document.
func EncodeArtifact(a *Artifact) ([]byte, error) {
	doc := artifactJSON{
		IV:         base64.StdEncoding.EncodeToString(a.Nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(a.Ciphertext),
		Alg:        a.Algorithm,
		V:          a.Version,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeArtifact parses an exported artifact document. An unrecognized
// algorithm or version is ErrUnsupportedVersion; anything else malformed
// (bad JSON, bad base64, wrong nonce length) is ErrDecode. No best-effort
// parsing: a document either decodes fully or not at all.
func DecodeArtifact(data []byte) (*Artifact, error) {
	var doc artifactJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecode, err)
	}

	if doc.Alg != AlgorithmAESGCM || doc.V != ArtifactVersion {
		return nil, fmt.Errorf("%w: alg=%q v=%d", common.ErrUnsupportedVersion, doc.Alg, doc.V)
	}

	nonce, err := base64.StdEncoding.DecodeString(doc.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: nonce is not valid base64", common.ErrDecode)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", common.ErrDecode, NonceSize, len(nonce))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(doc.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext is not valid base64", common.ErrDecode)
	}

	return &Artifact{
		Algorithm:  doc.Alg,
		Version:    doc.V,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, nil
}
