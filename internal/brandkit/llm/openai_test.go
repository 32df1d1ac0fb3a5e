package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Generate(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("unexpected authorization header: %s", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"taglines\":[]}"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL + "/v1/"})

	out, err := client.Generate(context.Background(), Request{
		System:      "sys",
		User:        "usr",
		Model:       "gpt-4o",
		Temperature: 0.7,
		MaxTokens:   1200,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"taglines":[]}`, out)

	assert.Equal(t, "gpt-4o", got.Model)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, 1200, got.MaxTokens)
	assert.Nil(t, got.ResponseFormat)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: "sys"}, got.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "usr"}, got.Messages[1])
}

func TestOpenAIClient_JSONMode(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "k", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), Request{Model: "m", JSONMode: true})
	require.NoError(t, err)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestOpenAIClient_Errors(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		client := NewOpenAIClient(OpenAIConfig{})
		_, err := client.Generate(context.Background(), Request{})
		assert.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("non-200 status", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"quota"}}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIConfig{APIKey: "k", BaseURL: server.URL})
		_, err := client.Generate(context.Background(), Request{Model: "m"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
		assert.Equal(t, 1, calls, "generation must not be retried")
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIConfig{APIKey: "k", BaseURL: server.URL})
		_, err := client.Generate(context.Background(), Request{Model: "m"})
		assert.ErrorIs(t, err, ErrEmptyOutput)
	})

	t.Run("unreachable", func(t *testing.T) {
		client := NewOpenAIClient(OpenAIConfig{APIKey: "k", BaseURL: "http://127.0.0.1:1"})
		_, err := client.Generate(context.Background(), Request{Model: "m"})
		assert.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	g, err := New(context.Background(), Config{Provider: ProviderOpenAI, APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, g)

	_, err = New(context.Background(), Config{Provider: ProviderOpenAI})
	assert.ErrorIs(t, err, ErrNoAPIKey)

	_, err = New(context.Background(), Config{Provider: "bedrock", APIKey: "k"})
	assert.ErrorIs(t, err, ErrBadProvider)

	_, err = New(context.Background(), Config{Provider: ProviderGemini})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

type recordingGenerator struct{ got Request }

func (r *recordingGenerator) Generate(_ context.Context, req Request) (string, error) {
	r.got = req
	return "{}", nil
}

func TestModelOverride(t *testing.T) {
	rec := &recordingGenerator{}
	g := withModel(rec, "gpt-4.1")
	_, err := g.Generate(context.Background(), Request{Model: "gpt-4o", User: "u"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", rec.got.Model)
	assert.Equal(t, "u", rec.got.User)

	assert.Same(t, rec, withModel(rec, "").(*recordingGenerator))
}
