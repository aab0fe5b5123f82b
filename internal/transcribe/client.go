package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrMalformedResponse is returned when the transcription API responds
// with a success status but the body lacks the expected output envelope.
var ErrMalformedResponse = errors.New("transcription response is missing output")

// Transcriber submits an audio URL to a speech-to-text service and
// blocks until the transcription result is available.
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (*Result, error)
}

// Result represents the result of a transcription call
type Result struct {
	Transcription string
}

// Client calls a RunPod-style synchronous transcription endpoint
type Client struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewClient creates a new transcription client
func NewClient(url, token string) *Client {
	return &Client{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

type transcribeRequest struct {
	Input struct {
		Audio string `json:"audio"`
	} `json:"input"`
}

type transcribeResponse struct {
	Output *struct {
		Transcription string `json:"transcription"`
	} `json:"output"`
}

// Transcribe sends the audio URL to the transcription API and returns
// the parsed result. The remote call blocks until the job completes.
func (c *Client) Transcribe(ctx context.Context, audioURL string) (*Result, error) {
	var payload transcribeRequest
	payload.Input.Audio = audioURL

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to transcription API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcription API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var out transcribeResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("failed to parse transcription response: %w", err)
	}

	if out.Output == nil {
		return nil, ErrMalformedResponse
	}

	return &Result{Transcription: out.Output.Transcription}, nil
}
