package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const classifyEndpoint = "/run/fetch_toxicity_level"

// Client is a thin HTTP client for the toxicity classifier. One request per
// classification, no retries; transport failures map to ErrUnavailable and
// unparseable payloads to ErrInvalidResponse.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(baseURL string, timeout time.Duration, rps int) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		// smooth outbound calls so a comment burst cannot hammer the classifier
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type classifyRequest struct {
	Data []interface{} `json:"data"`
}

type classifyResponse struct {
	Data []json.RawMessage `json:"data"`
}

// Classify submits text with the caller's sensitivity value and returns the
// parsed verdict. The classifier answers with a data array whose second
// element is a JSON-encoded string holding the verdict itself.
func (c *Client) Classify(ctx context.Context, text string, safer float64) (*Verdict, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	payload, err := json.Marshal(classifyRequest{Data: []interface{}{text, safer}})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+classifyEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var out classifyResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(out.Data) < 2 {
		return nil, fmt.Errorf("%w: expected 2 data elements, got %d", ErrInvalidResponse, len(out.Data))
	}

	// data[1] is a string containing the verdict JSON, not the verdict itself
	var raw string
	if err := json.Unmarshal(out.Data[1], &raw); err != nil {
		return nil, fmt.Errorf("%w: verdict element is not a string: %v", ErrInvalidResponse, err)
	}

	var verdict Verdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &verdict, nil
}
