package client

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

	"github.com/dmitrijs2005/quizboard/internal/buildinfo"
	"github.com/dmitrijs2005/quizboard/internal/common"
	"github.com/dmitrijs2005/quizboard/internal/logging"
	"github.com/google/uuid"
)

// maxErrorBody caps how much of an error response is turned into a message.
const maxErrorBody = 4 << 10

// Requester sends requests against the base address with one fixed
// authorization scheme. Obtain one from NoAuth, BasicAuth or TokenAuth.
type Requester struct {
	baseURL       string
	http          *http.Client
	log           logging.Logger
	authorization string
}

// NoAuth returns a requester that sends no Authorization header.
func (c *HTTPClient) NoAuth() *Requester {
	return &Requester{baseURL: c.baseURL, http: c.http, log: c.log}
}

// BasicAuth returns a requester authenticating with email and password.
func (c *HTTPClient) BasicAuth(email, password string) *Requester {
	r := c.NoAuth()
	r.authorization = "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
	return r
}

// TokenAuth returns a requester authenticating with a bearer token.
func (c *HTTPClient) TokenAuth(token string) *Requester {
	r := c.NoAuth()
	r.authorization = "Bearer " + token
	return r
}

// Do sends one request and decodes a successful JSON response into out
// (which may be nil). Any failure comes back as *APIError; fallback is the
// message used when the server gave no reason (empty means generic).
func (r *Requester) Do(ctx context.Context, method, path string, in, out any, fallback string) error {
	if fallback == "" {
		fallback = common.GenericErrorMessage
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &APIError{Message: fallback, Err: fmt.Errorf("%w: encode request: %w", ErrRequestFailed, err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return &APIError{Message: fallback, Err: fmt.Errorf("%w: build request: %w", ErrRequestFailed, err)}
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.authorization != "" {
		req.Header.Set("Authorization", r.authorization)
	}

	start := time.Now()
	resp, err := r.http.Do(req)
	if err != nil {
		r.log.Warn(ctx, "api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &APIError{Message: fallback, Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	r.log.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := errorPayload(raw)
		if msg == "" {
			msg = fallback
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg, Err: statusSentinel(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: fallback, Err: fmt.Errorf("%w: decode response: %w", ErrRequestFailed, err)}
	}
	return nil
}

// errorPayload extracts the server's reason from an error body: a JSON
// string, the error/message field of a JSON object, or the raw text.
func errorPayload(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return ""
	}

	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}

	switch p := v.(type) {
	case string:
		return strings.TrimSpace(p)
	case map[string]any:
		for _, key := range []string{"error", "message", "msg", "detail"} {
			if s, ok := p[key].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	case nil:
		return ""
	}
	return text
}
