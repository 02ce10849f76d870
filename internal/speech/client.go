// Package speech synthesizes spoken audio for questions and feedback
// through the ElevenLabs text-to-speech API. Speech is an optional layer:
// callers treat failures as non-fatal.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io/v1"

	// eleven_multilingual_v2 handles both supported languages.
	modelID = "eleven_multilingual_v2"

	voiceEnglish = "CwhRBWXzGAHq8TQ4Fs17" // Rachel
	voiceSpanish = "EXAVITQu4vr4xnSDxMaL" // Nicole

	defaultTimeout = 30 * time.Second
)

// ErrSynthesis reports a failed text-to-speech request.
type ErrSynthesis struct {
	Status int
	Body   string
}

func (e *ErrSynthesis) Error() string {
	return fmt.Sprintf("speech synthesis failed (status %d): %s", e.Status, e.Body)
}

// Client calls the ElevenLabs text-to-speech endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a speech client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// VoiceFor returns the voice ID used for the given language tag.
func VoiceFor(language string) string {
	if language == "es" {
		return voiceSpanish
	}
	return voiceEnglish
}

// Synthesize converts text to speech and returns the audio bytes (MP3).
func (c *Client) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	body, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.5,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal synthesis request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.baseURL, VoiceFor(language))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &ErrSynthesis{Status: resp.StatusCode, Body: string(msg)}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read synthesis response: %w", err)
	}
	return audio, nil
}
