package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateTextSendsChatCompletion(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  Leverage funds growth.  "}},
			},
		})
	}))
	defer srv.Close()

	client := NewChatClient(srv.URL, "sk-test", "gpt-4o-mini")
	text, err := client.GenerateText(context.Background(), "You are the advisor.", "How does escrow work?")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "Leverage funds growth." {
		t.Fatalf("unexpected text: %q", text)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestGenerateTextSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited", "type": "rate_limit"},
		})
	}))
	defer srv.Close()

	client := NewChatClient(srv.URL, "sk-test", "gpt-4o-mini")
	if _, err := client.GenerateText(context.Background(), "", "hi"); err == nil {
		t.Fatal("expected error from 429 response")
	}
}

func TestGenerateTextRejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewChatClient(srv.URL, "", "gpt-4o-mini")
	if _, err := client.GenerateText(context.Background(), "", "hi"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestGenerateTextRequiresModel(t *testing.T) {
	client := NewChatClient("https://api.example.com/v1", "sk-test", "")
	if _, err := client.GenerateText(context.Background(), "", "hi"); err == nil {
		t.Fatal("expected error when model is unset")
	}
}
