package crm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/jw6ventures/leaddesk/internal/metrics"
)

// errAuthRequired is returned by every gateway call made without a token.
// The remote API is never contacted in that case.
const errAuthRequired = "Authentication required"

// apiError is a non-2xx response from the remote API, carrying the message
// from its JSON error body when one was decodable.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// restClient issues single authenticated round trips against the remote
// REST API. No retries, no caching; timeouts are the transport's.
type restClient struct {
	baseURL string
	httpc   *http.Client
}

func newRESTClient(baseURL string, timeout time.Duration) *restClient {
	return &restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// do performs one request and decodes the response body into out (when out
// is non-nil). Non-2xx responses become *apiError with the remote message.
func (c *restClient) do(ctx context.Context, op, method, path, token string, query url.Values, body, out any) error {
	defer metrics.ObserveUpstreamLatency(ctx, op, time.Now())

	u := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apiError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// errorMessage extracts the remote error body's message when present.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return "API request failed"
}

// unwrapRecord decodes a single-record response body. Some endpoints nest
// the record one level deeper as {success, data}; the envelope is
// unwrapped transparently so callers always receive the flat record.
func unwrapRecord(raw json.RawMessage, out any) error {
	var env struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Success != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(raw, out)
}

// RemoteMessage maps a round-trip failure to the user-visible string: the
// remote error body's message for rejections, the fallback otherwise.
func RemoteMessage(err error, fallback string) string {
	var ae *apiError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}

// IsRejection reports whether err is a non-2xx response from the remote
// API, as opposed to a transport or decode failure.
func IsRejection(err error) bool {
	var ae *apiError
	return errors.As(err, &ae)
}
