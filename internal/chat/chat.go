// Package chat is a thin pass-through to the generative-language REST API for
// the festival guide assistant.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/youthopia/engine/internal/domain"
	"github.com/youthopia/engine/internal/logger"
	"github.com/youthopia/engine/internal/metrics"
)

// FallbackReply is shown to the user whenever the upstream call fails.
const FallbackReply = "Whoops! The festival vibes are too strong, and I got disconnected. Try again!"

// festivalContext is the assistant persona sent as the system instruction.
const festivalContext = `You are "Youthey", the energetic and helpful AI guide for the Youthopia Festival.
The festival is a 3-day event celebrating youth, creativity, and energy.
Tone: Energetic, using emojis, short and punchy sentences. "Buzzing with excitement!"

Key Info:
- "Earn & Redeem": Participants get points for attending events which can be swapped for merch.
- "Events": Dance Duels, Business Pitches, Hackathons, Live Concerts.
- "Map": We have 4 zones: Tech Zone, Art Arena, Food Court, and Main Stage.

If asked about something unrelated to the festival, politely steer the conversation back to Youthopia with excitement.`

const defaultRequestTimeout = 30 * time.Second

// Client sends chat turns to the generative-language API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

// NewClient creates a chat client. An empty apiKey disables the upstream and
// every SendMessage returns the fallback reply.
func NewClient(apiKey, model, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// SendMessage sends the user's text with the prior conversation and returns
// the assistant reply. On any failure the returned string is FallbackReply and
// the error describes what went wrong; callers show the string either way.
func (c *Client) SendMessage(ctx context.Context, text string, history []domain.ChatMessage) (string, error) {
	log := logger.FromContext(ctx)

	if c.apiKey == "" {
		metrics.ChatRequests.WithLabelValues(metrics.ChatStatusDisabled).Inc()
		return FallbackReply, fmt.Errorf("send message: %w", domain.ErrChatUnavailable)
	}

	reply, err := c.generate(ctx, text, history)
	if err != nil {
		metrics.ChatRequests.WithLabelValues(metrics.ChatStatusError).Inc()
		log.Warn("Chat request failed", "error", err)
		return FallbackReply, fmt.Errorf("send message: %w", err)
	}

	metrics.ChatRequests.WithLabelValues(metrics.ChatStatusOK).Inc()
	return reply, nil
}

func (c *Client) generate(ctx context.Context, text string, history []domain.ChatMessage) (string, error) {
	contents := make([]generateContent, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, generateContent{
			Role:  string(msg.Role),
			Parts: []generatePart{{Text: msg.Text}},
		})
	}
	contents = append(contents, generateContent{
		Role:  string(domain.ChatRoleUser),
		Parts: []generatePart{{Text: text}},
	})

	body, err := json.Marshal(generateRequest{
		SystemInstruction: &generateContent{Parts: []generatePart{{Text: festivalContext}}},
		Contents:          contents,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, payload)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
