package kingoftime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const rateLimitExhausted = "Rate limit exceeded after retries"

// do performs one logical API call. A 429 is retried after 1s, 2s, 4s, ...
// until the attempt budget is spent; every other failure returns at once.
// A nil result with a nil error means the upstream answered 204.
func (c *Client) do(ctx context.Context, method, p string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + p
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("kingoftime: encode body: %w", err)
		}
		payload = b
	}

	schedule := newSchedule()
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := c.gate.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.send(ctx, method, u, payload)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			discard(resp)
			wait := schedule.NextBackOff()
			c.logger.Warn("rate limited (429), retrying",
				"method", method,
				"path", p,
				"attempt", attempt+1,
				"wait", wait.String(),
			)
			c.gate.Extend(wait)
			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}
			continue
		}

		return decode(resp)
	}

	return nil, &APIError{StatusCode: http.StatusTooManyRequests, Message: rateLimitExhausted}
}

func (c *Client) send(ctx context.Context, method, u string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("kingoftime: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kingoftime: request failed: %w", err)
	}
	return resp, nil
}

func decode(resp *http.Response) (json.RawMessage, error) {
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("kingoftime: decode response: %w", err)
	}
	return payload, nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// newSchedule yields 1s, 2s, 4s, ... with no jitter and no ceiling.
func newSchedule() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxInterval = time.Duration(math.MaxInt64)
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// params builds a query from key/value pairs, skipping empty values.
func params(kv ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		values.Set(kv[i], kv[i+1])
	}
	return values
}
