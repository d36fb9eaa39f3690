package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// image editing and pure-text generation go to different models
	defaultImageModel = "gemini-2.5-flash-image-preview"
	defaultTextModel  = "gemini-2.5-flash"
)

// shared HTTP client for Gemini API calls
var geminiHTTPClient = &http.Client{
	Timeout: 120 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Gemini API calls (10 requests/second with burst capacity of 5)
var geminiRateLimiter = rate.NewLimiter(10, 5)

// APIError is a non-2xx reply from the API, preserved for classification.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API request failed with status %d: %s", e.StatusCode, e.Body)
}

// reports whether the error is worth retrying: network failures, rate
// limiting, and server-side errors are transient; every other API status is a
// permanent rejection of the request as sent
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}

	// anything that never produced an HTTP status is a transport failure
	return true
}

type Config struct {
	APIKey     string
	ImageModel string
	TextModel  string
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	if config.ImageModel == "" {
		config.ImageModel = defaultImageModel
	}

	if config.TextModel == "" {
		config.TextModel = defaultTextModel
	}

	return &Client{
		config:     config,
		httpClient: geminiHTTPClient,
	}
}

// submits an image plus styling instruction and returns the raw response for
// the caller to scan; the model interleaves text and image parts freely
func (c *Client) GenerateImage(ctx context.Context, instruction string, image []byte, mimeType string) (*GenerateContentResponse, error) {
	reqBody := generateContentRequest{
		Contents: []Content{
			{
				Role: "user",
				Parts: []Part{
					{InlineData: &Blob{
						MIMEType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(image),
					}},
					{Text: instruction},
				},
			},
		},
		GenerationConfig: &generationConfig{
			ResponseModality: []string{"TEXT", "IMAGE"},
		},
	}

	return c.generate(ctx, c.config.ImageModel, reqBody)
}

// submits a text prompt in JSON mode and returns the raw response text
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return c.generateJSON(ctx, []Part{{Text: prompt}})
}

// submits an image plus prompt in JSON mode, for structured analysis of a
// photo such as style recommendations
func (c *Client) GenerateJSONWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	parts := []Part{
		{InlineData: &Blob{
			MIMEType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
		{Text: prompt},
	}

	return c.generateJSON(ctx, parts)
}

func (c *Client) generateJSON(ctx context.Context, parts []Part) (string, error) {
	reqBody := generateContentRequest{
		Contents: []Content{
			{
				Role:  "user",
				Parts: parts,
			},
		},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.7,
		},
	}

	resp, err := c.generate(ctx, c.config.TextModel, reqBody)
	if err != nil {
		return "", err
	}

	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return strings.TrimSpace(part.Text), nil
			}
		}
	}

	return "", fmt.Errorf("no text in response")
}

func (c *Client) generate(ctx context.Context, model string, reqBody generateContentRequest) (*GenerateContentResponse, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", geminiBaseURL, model)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	// rate limiting
	if err := geminiRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
