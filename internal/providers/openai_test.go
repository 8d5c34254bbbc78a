package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAI_Chat(t *testing.T) {
	var got openaiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Missing or wrong Authorization header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		resp := openaiResponse{
			Choices: []openaiChoice{
				{Message: Message{Role: "assistant", Content: "reviewed"}},
			},
			Usage: openaiUsage{TotalTokens: 42},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := &OpenAI{
		apiKey:  "test-key",
		model:   "gpt-4.1-mini",
		baseURL: server.URL,
		client:  server.Client(),
	}

	msgs := []Message{
		{Role: "user", Content: "intake"},
		{Role: "assistant", Content: "noted"},
		{Role: "user", Content: "review this"},
	}
	reply, err := o.Chat(context.Background(), msgs)
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if reply != "reviewed" {
		t.Errorf("reply = %q, want %q", reply, "reviewed")
	}
	if len(got.Messages) != 3 {
		t.Errorf("sent %d messages, want full transcript of 3", len(got.Messages))
	}
}

func TestOpenAI_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(openaiResponse{})
	}))
	defer server.Close()

	o := &OpenAI{
		apiKey:  "test-key",
		model:   "gpt-4.1-mini",
		baseURL: server.URL,
		client:  server.Client(),
	}

	if _, err := o.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatal("Expected error for empty choices")
	}
}

func TestNewOpenAI_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewOpenAI("gpt-4.1-mini"); err == nil {
		t.Fatal("Expected error when OPENAI_API_KEY is unset")
	}
}

func TestOpenAI_Name(t *testing.T) {
	o := &OpenAI{}
	if o.Name() != "openai" {
		t.Errorf("Name() = %q", o.Name())
	}
}
