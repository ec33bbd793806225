package services

import (
	"context"
	"errors"
	"net"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionClient is the boundary to the language model. The survey flow
// only ever needs one free-text answer per call, so the surface stays small;
// tests substitute a fake.
type CompletionClient interface {
	Complete(ctx context.Context, messages []ChatMessage, maxTokens int) (string, error)
}

// OpenAIClient talks to the OpenAI chat-completions API.
type OpenAIClient struct {
	http  *resty.Client
	model string
}

func NewOpenAIClient() *OpenAIClient {
	return &OpenAIClient{
		http: resty.New().
			SetBaseURL("https://api.openai.com/v1").
			SetAuthToken(os.Getenv("OPENAI_API_KEY")).
			SetTimeout(15 * time.Second),
		model: "gpt-4o-mini",
	}
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []ChatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []ChatMessage, maxTokens int) (string, error) {
	var out chatCompletionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(chatCompletionRequest{Model: c.model, Messages: messages, MaxTokens: maxTokens}).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		return "", &CompletionError{Timeout: isTimeout(err), Err: err}
	}
	if resp.IsError() {
		msg := resp.Status()
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", &CompletionError{Err: errors.New(msg)}
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", &CompletionError{Err: errors.New("empty completion")}
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
