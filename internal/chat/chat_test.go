package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youthopia/engine/internal/domain"
)

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the model reply", func(t *testing.T) {
		var captured generateRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			resp := generateResponse{}
			resp.Candidates = append(resp.Candidates, struct {
				Content generateContent `json:"content"`
			}{Content: generateContent{
				Role:  "model",
				Parts: []generatePart{{Text: "The Main Stage is buzzing! 🎉"}},
			}})
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		}))
		defer server.Close()

		c := NewClient("test-key", "gemini-2.5-flash", server.URL)

		history := []domain.ChatMessage{
			{Role: domain.ChatRoleUser, Text: "Hi!"},
			{Role: domain.ChatRoleModel, Text: "Hey there! Welcome to Youthopia!"},
		}
		reply, err := c.SendMessage(ctx, "Where is the main stage?", history)

		require.NoError(t, err)
		assert.Equal(t, "The Main Stage is buzzing! 🎉", reply)

		require.NotNil(t, captured.SystemInstruction)
		assert.Contains(t, captured.SystemInstruction.Parts[0].Text, "Youthey")
		require.Len(t, captured.Contents, 3)
		assert.Equal(t, "user", captured.Contents[0].Role)
		assert.Equal(t, "model", captured.Contents[1].Role)
		assert.Equal(t, "Where is the main stage?", captured.Contents[2].Parts[0].Text)
	})

	t.Run("missing api key returns the fallback without calling out", func(t *testing.T) {
		c := NewClient("", "gemini-2.5-flash", "http://unreachable.invalid")

		reply, err := c.SendMessage(ctx, "Hello?", nil)

		assert.ErrorIs(t, err, domain.ErrChatUnavailable)
		assert.Equal(t, FallbackReply, reply)
	})

	t.Run("upstream error returns the fallback alongside the error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		c := NewClient("test-key", "gemini-2.5-flash", server.URL)

		reply, err := c.SendMessage(ctx, "Hello?", nil)

		require.Error(t, err)
		assert.Equal(t, FallbackReply, reply)
	})

	t.Run("empty candidate list is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewEncoder(w).Encode(generateResponse{}))
		}))
		defer server.Close()

		c := NewClient("test-key", "gemini-2.5-flash", server.URL)

		reply, err := c.SendMessage(ctx, "Hello?", nil)

		require.Error(t, err)
		assert.Equal(t, FallbackReply, reply)
	})
}
