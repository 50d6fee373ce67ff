package shopsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// do sends a request with an optional JSON body.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), rdr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.BearerToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON reads the response and decodes it into target when the status
// matches, otherwise returns an *APIError.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		if err := parseErrorResponse(resp, bodyBytes); err != nil {
			return err
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// call is do + decodeJSON.
func call[T any](ctx context.Context, c *Client, method, path string, body any, expected int) (T, error) {
	var out T
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	err = decodeJSON(resp, &out, expected)
	return out, err
}

// callData unwraps the {"status","data"} envelope.
func callData[T any](ctx context.Context, c *Client, method, path string, body any, expected int) (T, error) {
	env, err := call[DataResponse[T]](ctx, c, method, path, body, expected)
	return env.Data, err
}

// callMessage returns the message of a {"status","message"} response.
func callMessage(ctx context.Context, c *Client, method, path string, body any, expected int) (string, error) {
	env, err := call[MessageResponse](ctx, c, method, path, body, expected)
	return env.Message, err
}
