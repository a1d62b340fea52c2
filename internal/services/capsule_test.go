package services

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/common"
	"github.com/dmitrijs2005/timecapsule/internal/filex"
	"github.com/dmitrijs2005/timecapsule/internal/logging"
	"github.com/dmitrijs2005/timecapsule/internal/models"
	"github.com/dmitrijs2005/timecapsule/internal/repositories/capsules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupService(t *testing.T) (*CapsuleService, capsules.Repository) {
	t.Helper()
	ctx := context.Background()

	db, err := capsules.Open(ctx, filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := capsules.NewSQLiteRepository(db)
	store := filex.NewStore(filepath.Join(t.TempDir(), "artifacts"))
	svc := NewCapsuleService(repo, store, logging.NewDefault(io.Discard))
	return svc, repo
}

func TestSeal_RejectsNonPositiveDelay(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Seal(context.Background(), &SealRequest{
		OwnerName:     "Bob",
		OwnerBirthday: "1990-05-05",
		Message:       "hi",
		Delay:         models.DelaySpec{},
	})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestSeal_RejectsMissingIdentity(t *testing.T) {
	svc, _ := setupService(t)
	delay := models.DelaySpec{Minutes: 1}

	_, err := svc.Seal(context.Background(), &SealRequest{
		OwnerBirthday: "1990-05-05", Message: "hi", Delay: delay,
	})
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.Seal(context.Background(), &SealRequest{
		OwnerName: "Bob", OwnerBirthday: "   ", Message: "hi", Delay: delay,
	})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	res, err := svc.Seal(ctx, &SealRequest{
		OwnerName:     "Hana Tanaka",
		OwnerBirthday: "1990-05-05",
		Message:       "see you in an hour",
		Audio:         &models.Audio{Mime: "audio/webm", Data: []byte{0x1a, 0x45, 0xdf, 0xa3}},
		Delay:         models.DelaySpec{Hours: 1},
	})
	require.NoError(t, err)

	// the artifact file exists and the ledger entry references it
	document, err := os.ReadFile(res.ArtifactPath)
	require.NoError(t, err)
	assert.Equal(t, res.Entry.ArtifactName, filepath.Base(res.ArtifactPath))

	persisted, err := repo.GetByID(ctx, res.Entry.Id)
	require.NoError(t, err)
	assert.Equal(t, res.KeyToken, persisted.Key)
	assert.Nil(t, persisted.RevealedAt)
	assert.Regexp(t, `^[A-Z2-9]{3}-[A-Z2-9]{3}$`, persisted.SecondaryCode)

	// the open path needs only the artifact and the key token
	bundle, err := svc.Open(ctx, document, res.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "see you in an hour", bundle.Message)
	assert.Equal(t, "Hana Tanaka", bundle.Name)
	assert.Equal(t, "1990-05-05", bundle.Birthday)
	require.NotNil(t, bundle.Audio)
	assert.Equal(t, "audio/webm", bundle.Audio.Mime)
	assert.Equal(t, []byte{0x1a, 0x45, 0xdf, 0xa3}, bundle.Audio.Data)
}

func TestSealOpen_WithPassphrase(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	res, err := svc.Seal(ctx, &SealRequest{
		OwnerName:     "Bob",
		OwnerBirthday: "1990-05-05",
		Message:       "passphrase sealed",
		Delay:         models.DelaySpec{Minutes: 1},
		Passphrase:    []byte("correct horse battery staple"),
	})
	require.NoError(t, err)

	document, err := os.ReadFile(res.ArtifactPath)
	require.NoError(t, err)

	// both roads in: the exported token and the re-derived passphrase key
	bundle, err := svc.Open(ctx, document, res.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "passphrase sealed", bundle.Message)

	bundle, err = svc.OpenWithPassphrase(ctx, document, []byte("correct horse battery staple"), " BOB ", "1990-05-05")
	require.NoError(t, err)
	assert.Equal(t, "passphrase sealed", bundle.Message)

	// the wrong passphrase authenticates nothing
	_, err = svc.OpenWithPassphrase(ctx, document, []byte("wrong"), "Bob", "1990-05-05")
	require.ErrorIs(t, err, common.ErrAuthentication)
}

func TestOpen_TamperedCiphertext(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	res, err := svc.Seal(ctx, &SealRequest{
		OwnerName:     "Bob",
		OwnerBirthday: "1990-05-05",
		Message:       "authentic",
		Delay:         models.DelaySpec{Minutes: 1},
	})
	require.NoError(t, err)

	document, err := os.ReadFile(res.ArtifactPath)
	require.NoError(t, err)

	// flip one character inside the ciphertext field
	var doc map[string]any
	require.NoError(t, json.Unmarshal(document, &doc))
	ct := doc["ciphertext"].(string)
	flipped := []byte(ct)
	if flipped[0] == 'A' {
		flipped[0] = 'B'
	} else {
		flipped[0] = 'A'
	}
	doc["ciphertext"] = string(flipped)
	tampered, err := json.Marshal(doc)
	require.NoError(t, err)

	bundle, err := svc.Open(ctx, tampered, res.KeyToken)
	require.ErrorIs(t, err, common.ErrAuthentication)
	assert.Nil(t, bundle)
}

func TestOpen_WrongKey(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	res, err := svc.Seal(ctx, &SealRequest{
		OwnerName:     "Bob",
		OwnerBirthday: "1990-05-05",
		Message:       "secret",
		Delay:         models.DelaySpec{Minutes: 1},
	})
	require.NoError(t, err)

	other, err := svc.Seal(ctx, &SealRequest{
		OwnerName:     "Alice",
		OwnerBirthday: "2000-01-01",
		Message:       "other",
		Delay:         models.DelaySpec{Minutes: 1},
	})
	require.NoError(t, err)

	document, err := os.ReadFile(res.ArtifactPath)
	require.NoError(t, err)

	_, err = svc.Open(ctx, document, other.KeyToken)
	require.ErrorIs(t, err, common.ErrAuthentication)
}

func TestOpen_MalformedKeyToken(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Open(context.Background(), []byte(`{}`), "not-a-key")
	require.ErrorIs(t, err, common.ErrKeyFormat)
}

func TestSeal_DeliverAtArithmetic(t *testing.T) {
	svc, _ := setupService(t)

	fixed := time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	res, err := svc.Seal(context.Background(), &SealRequest{
		OwnerName:     "Bob",
		OwnerBirthday: "1990-05-05",
		Message:       "hi",
		Delay:         models.DelaySpec{Days: 1, Hours: 2},
	})
	require.NoError(t, err)

	assert.True(t, res.Entry.DeliverAt.Equal(fixed.Add(26*time.Hour)))
	assert.True(t, res.Entry.CreatedAt.Equal(fixed))
}
