// Package shopapi is a typed client for the remote shop API. It maps per-resource
// method calls (customers, products, orders, proof-of-payment uploads) onto
// JSON/multipart HTTP requests and decodes responses back into models.
//
// Failure contract: every method returns an *Error carrying an ErrorKind, so
// callers can tell not-found apart from transport or validation failures. The
// handler layer degrades read failures to empty views and surfaces write
// failures inline; that policy lives in the caller, not here.
package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// MaxUploadSize caps file uploads (product images, proof of payment).
	// Larger files are rejected before any network I/O.
	MaxUploadSize = 50 << 20

	defaultTimeout = 30 * time.Second
)

// Config configures the shop API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Client is the shop API client. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
}

// New creates a shop API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		log:        cfg.Logger,
	}, nil
}

// =============================================================================
// Internal HTTP Methods
// =============================================================================

// doJSON issues a request with an optional JSON body and returns the response
// body and status code. Transport-level failures come back as Transport errors.
func (c *Client) doJSON(ctx context.Context, method, path string, payload interface{}) ([]byte, int, error) {
	var bodyReader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, &Error{Kind: KindUnknown, Message: fmt.Sprintf("marshal request: %v", err)}
		}
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, 0, &Error{Kind: KindUnknown, Message: fmt.Sprintf("create request: %v", err)}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req)
}

// doMultipart issues a request whose body was assembled by a formBuilder.
func (c *Client) doMultipart(ctx context.Context, method, path string, body *bytes.Buffer, contentType string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, &Error{Kind: KindUnknown, Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &Error{Kind: KindTransport, Message: fmt.Sprintf("%s %s: %v", req.Method, req.URL.Path, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, resp.StatusCode, &Error{Kind: KindTransport, Message: fmt.Sprintf("read response body: %v", err)}
	}

	return body, resp.StatusCode, nil
}

// decode unmarshals a response body, tolerating an empty body.
func decode(body []byte, target interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return &Error{Kind: KindUnknown, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

func (c *Client) logErr(op string, err error) {
	c.log.Error().Err(err).Str("op", op).Msg("shop API call failed")
}
