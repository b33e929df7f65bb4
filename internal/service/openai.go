package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/anusha761/shopassist/internal/config"
	"github.com/anusha761/shopassist/internal/model"
)

// OpenAIClient handles OpenAI-compatible API interactions: chat completions
// (free text and function calling), moderations and embeddings.
type OpenAIClient struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI-compatible client
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *OpenAIClient) IsEnabled() bool {
	return c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model          string               `json:"model"`
	Messages       []model.ChatMessage  `json:"messages"`
	Temperature    float64              `json:"temperature,omitempty"`
	MaxTokens      int                  `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat      `json:"response_format,omitempty"`
	Functions      []FunctionDefinition `json:"functions,omitempty"`
	FunctionCall   string               `json:"function_call,omitempty"` // "auto" when Functions is set
}

// ResponseFormat specifies the format of the response
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" or "text"
}

// FunctionCall is the model-selected function invocation in a response
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role         string        `json:"role"`
			Content      string        `json:"content"`
			FunctionCall *FunctionCall `json:"function_call,omitempty"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// ModerationResponse represents the moderation API response
type ModerationResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Results []struct {
		Flagged    bool               `json:"flagged"`
		Categories map[string]bool    `json:"categories"`
		Scores     map[string]float64 `json:"category_scores"`
	} `json:"results"`
}

// EmbeddingRequest represents an embedding request
type EmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// EmbeddingResponse represents the embedding API response
type EmbeddingResponse struct {
	Object string `json:"object"`
	Data   []struct {
		Object    string    `json:"object"`
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// ChatCompletion performs a chat completion request
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}

	// Use configured model if not specified
	if req.Model == "" {
		req.Model = c.config.ChatModel
	}
	if req.Temperature == 0 && c.config.ChatTemperature > 0 {
		req.Temperature = c.config.ChatTemperature
	}
	if req.MaxTokens == 0 && c.config.ChatMaxTokens > 0 {
		req.MaxTokens = c.config.ChatMaxTokens
	}

	var result ChatCompletionResponse
	if err := c.postJSON(ctx, "/chat/completions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Complete performs a free-text completion and returns the assistant content
func (c *OpenAIClient) Complete(ctx context.Context, messages []model.ChatMessage) (string, error) {
	resp, err := c.ChatCompletion(ctx, ChatCompletionRequest{Messages: messages})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return resp.Choices[0].Message.Content, nil
}

// CompleteFunctionCall performs a function-calling completion and returns the
// raw arguments of the selected function
func (c *OpenAIClient) CompleteFunctionCall(ctx context.Context, messages []model.ChatMessage, fns []FunctionDefinition) (json.RawMessage, error) {
	resp, err := c.ChatCompletion(ctx, ChatCompletionRequest{
		Messages:     messages,
		Functions:    fns,
		FunctionCall: "auto",
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}
	fc := resp.Choices[0].Message.FunctionCall
	if fc == nil || fc.Arguments == "" {
		return nil, fmt.Errorf("model did not return a function call")
	}
	return json.RawMessage(fc.Arguments), nil
}

// Moderate checks text against the moderation endpoint and returns whether it
// was flagged. Transport failures propagate so callers can fail closed.
func (c *OpenAIClient) Moderate(ctx context.Context, text string) (bool, error) {
	if !c.config.Enabled {
		return false, fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}

	req := map[string]string{"input": text}
	var result ModerationResponse
	if err := c.postJSON(ctx, "/moderations", req, &result); err != nil {
		return false, err
	}
	if len(result.Results) == 0 {
		return false, fmt.Errorf("empty moderation response")
	}
	return result.Results[0].Flagged, nil
}

// CreateEmbeddings creates embeddings for the given texts in batches
func (c *OpenAIClient) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}

	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	allEmbeddings := make([][]float32, 0, len(texts))
	batchSize := c.config.BatchSize

	for i := 0; i < len(texts); i += batchSize {
		end := i + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		embeddings, err := c.createEmbeddingBatch(ctx, texts[i:end])
		if err != nil {
			return nil, fmt.Errorf("failed to create embeddings for batch %d: %w", i/batchSize, err)
		}
		allEmbeddings = append(allEmbeddings, embeddings...)

		// Rate limiting: small delay between batches
		if end < len(texts) {
			time.Sleep(100 * time.Millisecond)
		}
	}

	return allEmbeddings, nil
}

func (c *OpenAIClient) createEmbeddingBatch(ctx context.Context, texts []string) ([][]float32, error) {
	req := EmbeddingRequest{
		Model: c.config.EmbeddingModel,
		Input: texts,
	}

	var result EmbeddingResponse
	if err := c.postJSON(ctx, "/embeddings", req, &result); err != nil {
		return nil, err
	}

	// Extract embeddings in order
	embeddings := make([][]float32, len(texts))
	for _, item := range result.Data {
		if item.Index < len(embeddings) {
			embeddings[item.Index] = item.Embedding
		}
	}

	return embeddings, nil
}

// postJSON sends a JSON request and decodes the JSON response, retrying
// transport errors and 5xx/429 responses with backoff up to MaxRetries.
func (c *OpenAIClient) postJSON(ctx context.Context, path string, payload, target interface{}) error {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.config.APIBase + path
	backoff := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("Retrying %s (attempt %d/%d) after error: %v", path, attempt, c.config.MaxRetries, lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff *= 2
		}

		body, status, err := c.doRequest(ctx, url, reqBody)
		if err != nil {
			lastErr = err
			continue
		}

		if status == http.StatusOK {
			if err := json.Unmarshal(body, target); err != nil {
				return fmt.Errorf("failed to unmarshal response: %w", err)
			}
			return nil
		}

		lastErr = fmt.Errorf("API request failed with status %d: %s", status, string(body))
		if status < 500 && status != http.StatusTooManyRequests {
			// Client errors are not retryable
			return lastErr
		}
	}

	return fmt.Errorf("service unavailable after %d attempts: %w", c.config.MaxRetries+1, lastErr)
}

func (c *OpenAIClient) doRequest(ctx context.Context, url string, reqBody []byte) ([]byte, int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}
