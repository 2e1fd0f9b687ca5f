// Package imagehost uploads image files to an external image hosting API
// and returns the hosted URL. The wire format matches the common
// key-plus-base64-form style of hosts like imgbb.
package imagehost

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the image host HTTP API.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// Config holds image host connection details.
type Config struct {
	Endpoint string
	APIKey   string
}

// NewClient creates a new image host client.
func NewClient(cfg Config) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// uploadResponse is the host's reply envelope.
type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the image bytes to the host and returns the hosted URL. The
// image travels base64-encoded in a form field, the API key as a query
// parameter.
func (c *Client) Upload(filename string, data []byte) (string, error) {
	form := url.Values{}
	form.Set("image", base64.StdEncoding.EncodeToString(data))
	if filename != "" {
		form.Set("name", filename)
	}

	endpoint := c.endpoint
	if c.apiKey != "" {
		endpoint = fmt.Sprintf("%s?key=%s", c.endpoint, url.QueryEscape(c.apiKey))
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode image host response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !parsed.Success || parsed.Data.URL == "" {
		if parsed.Error.Message != "" {
			return "", fmt.Errorf("image host rejected upload: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("image host rejected upload: status %d", resp.StatusCode)
	}
	return parsed.Data.URL, nil
}
