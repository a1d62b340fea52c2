// Package transcribe calls the optional transcription backend for recorded
// audio. The call is fire-and-forget: it has no bearing on sealing, opening
// or revealing capsules, and failures are only logged.
package transcribe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/logging"
)

const requestTimeout = 30 * time.Second

// Client talks to the transcription endpoint. An empty base URL disables it.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func NewClient(baseURL string, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// Enabled reports whether a backend endpoint is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

type response struct {
	Transcription string `json:"transcription"`
}

// Transcribe asks the backend to transcribe the recording stored under
// name and returns the text.
func (c *Client) Transcribe(ctx context.Context, name string) (string, error) {
	if !c.Enabled() {
		return "", errors.New("transcriber endpoint not configured")
	}

	u := fmt.Sprintf("%s/transcribe?filename=%s",
		strings.TrimRight(c.baseURL, "/"), url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("transcription failed: %s; body: %s", resp.Status, string(b))
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	return r.Transcription, nil
}

// Background fires the transcription without blocking the caller. The
// outcome is logged and dropped.
func (c *Client) Background(name string) {
	if !c.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		text, err := c.Transcribe(ctx, name)
		if err != nil {
			c.log.Warn(ctx, "transcription failed", "recording", name, "error", err)
			return
		}
		c.log.Info(ctx, "transcription ready", "recording", name, "text", text)
	}()
}
