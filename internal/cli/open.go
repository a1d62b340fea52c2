package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/common"
	"github.com/dmitrijs2005/timecapsule/internal/models"
	"github.com/dmitrijs2005/timecapsule/internal/shared"
	"github.com/fatih/color"
)

// open decrypts an exported artifact with a key token or a passphrase and
// prints the message. Audio, when present, is written next to the artifact.
func (a *App) open(ctx context.Context) {

	path, err := GetSimpleText(a.reader, "Path to the encrypted artifact", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	document, err := a.artifacts.Read(path)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	token, err := GetSimpleText(a.reader, "Decryption key (empty to use a passphrase)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	var bundle *models.Bundle
	if token != "" {
		bundle, err = a.capsules.Open(ctx, document, token)
	} else {
		name, nameErr := GetSimpleText(a.reader, "Enter your name", os.Stdout)
		if nameErr != nil {
			fmt.Println(nameErr.Error())
			return
		}
		birthday, bdErr := GetSimpleText(a.reader, "Enter your birthday (YYYY-MM-DD)", os.Stdout)
		if bdErr != nil {
			fmt.Println(bdErr.Error())
			return
		}
		passphrase, pwErr := GetSecret("Passphrase", os.Stdout)
		if pwErr != nil {
			fmt.Println(pwErr.Error())
			return
		}
		defer shared.WipeByteArray(passphrase)

		bundle, err = a.capsules.OpenWithPassphrase(ctx, document, passphrase, name, birthday)
	}

	if err != nil {
		switch {
		case errors.Is(err, common.ErrKeyFormat),
			errors.Is(err, common.ErrAuthentication),
			errors.Is(err, common.ErrDecode),
			errors.Is(err, common.ErrUnsupportedVersion):
			color.Red("Decryption failed. Check your key and file.")
		default:
			fmt.Println(err.Error())
		}
		return
	}

	color.Green("Capsule opened.")
	fmt.Printf("From:    %s (born %s)\n", bundle.Name, bundle.Birthday)
	fmt.Printf("Sealed:  %s\n", bundle.CreatedAt.Local().Format(time.RFC1123))
	fmt.Printf("Message:\n%s\n", bundle.Message)

	if bundle.Audio != nil {
		audioPath := audioFileName(path, bundle.Audio.Mime)
		if err := os.WriteFile(audioPath, bundle.Audio.Data, 0o660); err != nil {
			fmt.Println(err.Error())
			return
		}
		fmt.Printf("Audio saved to %s\n", audioPath)
	}
}

// audioFileName derives a sibling file name for the decrypted recording,
// picking an extension from the stored mime type.
func audioFileName(artifactPath, mimeType string) string {
	ext := ".bin"
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	base := strings.TrimSuffix(filepath.Base(artifactPath), ".enc.json")
	return filepath.Join(filepath.Dir(artifactPath), base+"_audio"+ext)
}
