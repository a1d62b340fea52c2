// Package services orchestrates the capsule flows: sealing a bundle into
// an exported artifact plus a ledger entry, opening an artifact back into
// a bundle, and the time-gated reveal decision.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/common"
	"github.com/dmitrijs2005/timecapsule/internal/cryptox"
	"github.com/dmitrijs2005/timecapsule/internal/filex"
	"github.com/dmitrijs2005/timecapsule/internal/logging"
	"github.com/dmitrijs2005/timecapsule/internal/models"
	"github.com/dmitrijs2005/timecapsule/internal/repositories/capsules"
	"github.com/dmitrijs2005/timecapsule/internal/shared"
	"github.com/google/uuid"
)

// SealRequest carries everything needed to create a capsule.
type SealRequest struct {
	OwnerName     string
	OwnerBirthday string // YYYY-MM-DD
	Message       string
	Audio         *models.Audio
	Delay         models.DelaySpec

	// Passphrase, when non-empty, derives the capsule key with argon2id
	// from the passphrase and the owner identity instead of generating a
	// random one. The exported key token works either way; the passphrase
	// is simply a second road back in.
	Passphrase []byte
}

// SealResult reports a created capsule: the ledger entry as persisted, the
// exported key token the caller must hand to the user, and where the
// artifact was written.
type SealResult struct {
	Entry        models.Entry
	KeyToken     string
	ArtifactPath string
}

// CapsuleService implements the create and open paths.
type CapsuleService struct {
	ledger    capsules.Repository
	artifacts *filex.Store
	log       logging.Logger
	now       func() time.Time
}

func NewCapsuleService(ledger capsules.Repository, artifacts *filex.Store, log logging.Logger) *CapsuleService {
	return &CapsuleService{ledger: ledger, artifacts: artifacts, log: log, now: time.Now}
}

// Seal validates the request, encrypts the bundle, exports the artifact
// and appends the ledger entry — in that order. A crash mid-flow leaves
// at worst an orphaned artifact file, never a ledger entry pointing at a
// missing artifact.
func (s *CapsuleService) Seal(ctx context.Context, req *SealRequest) (*SealResult, error) {
	delay := req.Delay.Duration()
	if delay <= 0 {
		return nil, fmt.Errorf("%w: delay must be greater than zero", common.ErrorValidation)
	}
	if strings.TrimSpace(req.OwnerName) == "" || strings.TrimSpace(req.OwnerBirthday) == "" {
		return nil, fmt.Errorf("%w: name and birthday are required", common.ErrorValidation)
	}

	now := s.now()

	bundle := &models.Bundle{
		V:         models.BundleVersion,
		CreatedAt: now.UTC(),
		Name:      req.OwnerName,
		Birthday:  req.OwnerBirthday,
		Message:   req.Message,
		Audio:     req.Audio,
	}
	plaintext, err := models.EncodeBundle(bundle)
	if err != nil {
		return nil, err
	}

	var key []byte
	if len(req.Passphrase) > 0 {
		key = cryptox.DeriveKey(req.Passphrase, models.IdentitySalt(req.OwnerName, req.OwnerBirthday))
	} else {
		if key, err = cryptox.GenerateKey(); err != nil {
			return nil, fmt.Errorf("failed to generate key: %w", err)
		}
	}
	defer shared.WipeByteArray(key)

	artifact, err := cryptox.Encrypt(key, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt bundle: %w", err)
	}
	document, err := cryptox.EncodeArtifact(artifact)
	if err != nil {
		return nil, fmt.Errorf("failed to encode artifact: %w", err)
	}

	artifactName := filex.ArtifactName(req.OwnerName, req.OwnerBirthday, now)
	path, err := s.artifacts.Write(artifactName, document)
	if err != nil {
		return nil, fmt.Errorf("failed to export artifact: %w", err)
	}

	code, err := shared.MakeShortCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secondary code: %w", err)
	}

	entry := &models.Entry{
		Id:            uuid.NewString(),
		DeliverAt:     now.Add(delay).UTC(),
		Key:           cryptox.ExportKey(key),
		SecondaryCode: code,
		ArtifactName:  artifactName,
		OwnerName:     req.OwnerName,
		OwnerBirthday: req.OwnerBirthday,
		CreatedAt:     now.UTC(),
	}
	if err := s.ledger.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record schedule: %w", err)
	}

	s.log.Info(ctx, "capsule sealed",
		"id", entry.Id, "artifact", artifactName, "deliverAt", entry.DeliverAt)

	return &SealResult{Entry: *entry, KeyToken: entry.Key, ArtifactPath: path}, nil
}

// Open decrypts an exported artifact document with the supplied key token
// and returns the original bundle. It never consults the ledger: the
// artifact and the key are all a recipient needs.
func (s *CapsuleService) Open(ctx context.Context, document []byte, keyToken string) (*models.Bundle, error) {
	key, err := cryptox.ImportKey(keyToken)
	if err != nil {
		return nil, err
	}
	defer shared.WipeByteArray(key)

	return s.open(ctx, document, key)
}

// OpenWithPassphrase re-derives the capsule key from the passphrase and
// the owner identity, then opens the artifact with it.
func (s *CapsuleService) OpenWithPassphrase(ctx context.Context, document []byte, passphrase []byte, name, birthday string) (*models.Bundle, error) {
	key := cryptox.DeriveKey(passphrase, models.IdentitySalt(name, birthday))
	defer shared.WipeByteArray(key)

	return s.open(ctx, document, key)
}

func (s *CapsuleService) open(ctx context.Context, document, key []byte) (*models.Bundle, error) {
	artifact, err := cryptox.DecodeArtifact(document)
	if err != nil {
		return nil, err
	}

	plaintext, err := cryptox.Decrypt(key, artifact)
	if err != nil {
		return nil, err
	}

	bundle, err := models.DecodeBundle(plaintext)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "capsule opened", "createdAt", bundle.CreatedAt)
	return bundle, nil
}
