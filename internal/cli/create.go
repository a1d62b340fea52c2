package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/models"
	"github.com/dmitrijs2005/timecapsule/internal/services"
	"github.com/dmitrijs2005/timecapsule/internal/shared"
	"github.com/fatih/color"
)

// create seals a new capsule from interactive input: identity, message,
// optional audio recording, delay and an optional passphrase.
func (a *App) create(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	birthday, err := GetSimpleText(a.reader, "Enter your birthday (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	message, err := GetMultiline(a.reader, "Enter your message", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	audioPath, err := GetSimpleText(a.reader, "Path to an audio recording (empty to skip)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	var audio *models.Audio
	if audioPath != "" {
		data, err := os.ReadFile(audioPath)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		mimeType := mime.TypeByExtension(filepath.Ext(audioPath))
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		audio = &models.Audio{Mime: mimeType, Data: data}
	}

	var delay models.DelaySpec
	if delay.Years, err = GetInt(a.reader, "Unlock delay: years (default 0)", 0, os.Stdout); err != nil {
		fmt.Println(err.Error())
		return
	}
	if delay.Days, err = GetInt(a.reader, "Unlock delay: days (default 0)", 0, os.Stdout); err != nil {
		fmt.Println(err.Error())
		return
	}
	if delay.Hours, err = GetInt(a.reader, "Unlock delay: hours (default 0)", 0, os.Stdout); err != nil {
		fmt.Println(err.Error())
		return
	}
	if delay.Minutes, err = GetInt(a.reader, "Unlock delay: minutes (default 0)", 0, os.Stdout); err != nil {
		fmt.Println(err.Error())
		return
	}

	passphrase, err := GetSecret("Passphrase (empty for a random key)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer shared.WipeByteArray(passphrase)

	result, err := a.capsules.Seal(ctx, &services.SealRequest{
		OwnerName:     name,
		OwnerBirthday: birthday,
		Message:       message,
		Audio:         audio,
		Delay:         delay,
		Passphrase:    passphrase,
	})
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	color.Green("Capsule sealed.")
	fmt.Printf("Artifact:       %s\n", result.ArtifactPath)
	fmt.Printf("Key:            %s\n", result.KeyToken)
	fmt.Printf("Secondary code: %s\n", result.Entry.SecondaryCode)
	fmt.Printf("Unlocks at:     %s\n", result.Entry.DeliverAt.Local().Format(time.RFC1123))
	fmt.Println("Store the key somewhere safe: without it the capsule cannot be opened.")

	if audioPath != "" && a.transcriber.Enabled() {
		a.transcriber.Background(filepath.Base(audioPath))
	}
}
