package transcribe

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranscribeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected Content-Type header: %q", got)
		}

		var req struct {
			Input struct {
				Audio string `json:"audio"`
			} `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if req.Input.Audio != "https://drive.google.com/uc?id=abc" {
			t.Errorf("unexpected audio url: %q", req.Input.Audio)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":{"transcription":"hello"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	result, err := client.Transcribe(context.Background(), "https://drive.google.com/uc?id=abc")
	if err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}
	if result.Transcription != "hello" {
		t.Errorf("expected transcription %q, got %q", "hello", result.Transcription)
	}
}

func TestTranscribeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.Transcribe(context.Background(), "https://example.com/audio")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if errors.Is(err, ErrMalformedResponse) {
		t.Error("upstream failure must not be reported as a malformed response")
	}
}

func TestTranscribeMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"COMPLETED"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.Transcribe(context.Background(), "https://example.com/audio")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestTranscribeInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.Transcribe(context.Background(), "https://example.com/audio")
	if err == nil {
		t.Fatal("expected error for invalid JSON body")
	}
}
