package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropic_Chat(t *testing.T) {
	var got anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Error("Missing or wrong x-api-key header")
		}
		if r.Header.Get("anthropic-version") != anthropicAPIVersion {
			t.Error("Missing anthropic-version header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		resp := anthropicResponse{
			Content: []anthropicBlock{
				{Type: "text", Text: "part one "},
				{Type: "text", Text: "part two"},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	a := &Anthropic{
		apiKey:  "test-key",
		model:   "claude-haiku-4-5",
		baseURL: server.URL,
		client:  server.Client(),
	}

	reply, err := a.Chat(context.Background(), []Message{
		{Role: "user", Content: "a"},
		{Role: "assistant", Content: "b"},
		{Role: "user", Content: "c"},
	})
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	// Text blocks are concatenated
	if reply != "part one part two" {
		t.Errorf("reply = %q", reply)
	}
	if got.MaxTokens == 0 {
		t.Error("max_tokens must be set")
	}
	if len(got.Messages) != 3 {
		t.Errorf("sent %d messages, want 3", len(got.Messages))
	}
}

func TestNewAnthropic_MissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewAnthropic("claude-haiku-4-5"); err == nil {
		t.Fatal("Expected error when ANTHROPIC_API_KEY is unset")
	}
}
