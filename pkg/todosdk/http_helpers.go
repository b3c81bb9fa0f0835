package todosdk

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

// doRequest performs an unauthenticated request.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// doJSON sends payload as a JSON body.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	body, headers, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return c.doRequest(ctx, method, path, body, headers)
}

// doAuthRequest performs a request with the session's bearer token.
func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	if headers == nil {
		headers = make(map[string]string, 1)
	}
	headers["Authorization"] = "Bearer " + s.Token()
	return s.client.doRequest(ctx, method, path, body, headers)
}

func (s *Session) doAuthJSON(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	body, headers, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return s.doAuthRequest(ctx, method, path, body, headers)
}

func jsonBody(payload any) (io.Reader, map[string]string, error) {
	if payload == nil {
		return nil, nil, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return bytes.NewReader(b), map[string]string{"Content-Type": "application/json"}, nil
}

// decodeJSON reads the response and decodes it into target when the status
// matches, otherwise it returns an *APIError.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
