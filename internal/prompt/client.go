package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const maxRetries = 3

// Client talks to a local inference service that accepts a prompt and
// model name and returns generated text.
type Client struct {
	Endpoint   string
	Model      string
	HTTPClient *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends prompt to the inference service and returns its text.
// The request is a single atomic call: the caller owns cancellation
// through ctx, and any failure aborts the operation with no partial
// result.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.Endpoint == "" {
		return "", fmt.Errorf("no inference endpoint configured")
	}

	body, err := json.Marshal(generateRequest{
		Model:  c.Model,
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	resp, err := doWithRetry(ctx, client, req)
	if err != nil {
		return "", fmt.Errorf("calling inference service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("inference service returned %d: %s", resp.StatusCode, string(msg))
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return gen.Response, nil
}

// doWithRetry executes req and retries on HTTP 429 with exponential
// backoff. On each 429 the response body is drained and closed before
// sleeping; a context cancelled during the wait aborts with ctx.Err().
// After exhausting retries the last 429 response is returned so the
// caller can report it.
func doWithRetry(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		r := req.Clone(ctx)
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			r.Body = body
		}

		resp, err := client.Do(r)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
