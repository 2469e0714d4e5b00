// Package importer fetches question batches from a remote source to seed
// the question bank. The source must serve JSON; the old HTML-scraping
// pipeline this replaces is intentionally not reproduced.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RawQuestion mirrors one entry of a remote question batch.
type RawQuestion struct {
	Text       string `json:"text"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type batch struct {
	Questions []RawQuestion `json:"questions"`
}

// Client fetches question batches over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates an importer client with a bounded request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchQuestions downloads a batch from url. Accepts either a bare JSON
// array or an object with a "questions" field. Entries with empty text are
// dropped, and duplicate texts within the batch are collapsed.
func (c *Client) FetchQuestions(ctx context.Context, url string) ([]RawQuestion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("question source returned status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid question payload: %w", err)
	}

	var questions []RawQuestion
	if err := json.Unmarshal(raw, &questions); err != nil {
		var b batch
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("invalid question payload: %w", err)
		}
		questions = b.Questions
	}

	seen := make(map[string]bool, len(questions))
	cleaned := make([]RawQuestion, 0, len(questions))
	for _, q := range questions {
		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" || seen[q.Text] {
			continue
		}
		seen[q.Text] = true
		cleaned = append(cleaned, q)
	}
	return cleaned, nil
}
