package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGemini_Chat(t *testing.T) {
	var got geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		resp := geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{{Text: "gemini says"}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	g := &Gemini{
		apiKey:  "test-key",
		model:   "gemini-2.5-flash",
		baseURL: server.URL,
		client:  server.Client(),
	}

	reply, err := g.Chat(context.Background(), []Message{
		{Role: "user", Content: "q1"},
		{Role: "assistant", Content: "a1"},
		{Role: "user", Content: "q2"},
	})
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if reply != "gemini says" {
		t.Errorf("reply = %q", reply)
	}

	if len(got.Contents) != 3 {
		t.Fatalf("sent %d contents, want 3", len(got.Contents))
	}
	// Assistant turns are relabeled "model" for Gemini
	if got.Contents[1].Role != "model" {
		t.Errorf("assistant role = %q, want %q", got.Contents[1].Role, "model")
	}
	if got.Contents[0].Role != "user" || got.Contents[2].Role != "user" {
		t.Error("user roles must pass through unchanged")
	}
}

func TestGemini_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer server.Close()

	g := &Gemini{
		apiKey:  "test-key",
		model:   "gemini-2.5-flash",
		baseURL: server.URL,
		client:  server.Client(),
	}

	if _, err := g.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatal("Expected error for empty candidates")
	}
}

func TestNewGemini_MissingKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	if _, err := NewGemini("gemini-2.5-flash"); err == nil {
		t.Fatal("Expected error when no Gemini key is set")
	}
}
