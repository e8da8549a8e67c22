package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/phrazzld/factqa/internal/generation"
)

const (
	roleUser  = "user"
	roleModel = "model"
)

// Completer implements generation.Completer using a genai client.
type Completer struct {
	client *genai.Client
}

// NewCompleter creates a Gemini API client for apiKey. An empty baseURL uses
// the SDK default endpoint; a nil httpClient uses the SDK default client.
func NewCompleter(ctx context.Context, apiKey, baseURL string, httpClient *http.Client) (*Completer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Completer{client: client}, nil
}

// Complete implements generation.Completer.
func (c *Completer) Complete(ctx context.Context, req generation.Request) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, req.Model, toContents(req.Messages), toConfig(req))
	if err != nil {
		return "", err
	}
	return replyText(resp)
}

func toContents(messages []generation.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := roleUser
		if m.Role == generation.RoleAssistant {
			role = roleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return contents
}

func toConfig(req generation.Request) *genai.GenerateContentConfig {
	temperature := float32(req.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}
	return config
}

// replyText joins the text parts of the first candidate.
func replyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", generation.ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", generation.ErrContentBlocked
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrEmptyResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: no text parts", generation.ErrEmptyResponse)
	}
	return text.String(), nil
}
