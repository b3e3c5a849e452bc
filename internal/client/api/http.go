package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/medfinder/internal/common"
	"github.com/dmitrijs2005/medfinder/internal/logging"
	"github.com/google/uuid"
)

// maxBodySize bounds how much of a response is read.
const maxBodySize = 4 << 20

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient validates baseURL and builds a client whose requests time
// out after timeout. tokens may be nil for a client that never
// authenticates.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q: scheme must be http or https", baseURL)
	}
	if tokens == nil {
		tokens = TokenFunc(func() string { return "" })
	}
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}, nil
}

// request describes one backend call.
type request struct {
	op     operation
	method string
	path   []string
	query  url.Values
	body   any
}

type errorBody struct {
	Message string `json:"message"`
}

// do sends r and returns the raw 2xx body. Non-2xx answers and transport
// failures come back as *Error.
func (c *HTTPClient) do(ctx context.Context, r request) ([]byte, error) {
	u := c.baseURL.JoinPath(r.path...)
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, &Error{Kind: ErrValidation, Op: r.op.name, Message: r.op.failure, Err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, &Error{Kind: ErrValidation, Op: r.op.name, Message: r.op.failure, Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	log := c.log.With("op", r.op.name, "request_id", requestID)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "method", r.method, "path", u.Path, "error", err)
		return nil, &Error{Kind: ErrUnavailable, Op: r.op.name, Message: r.op.networkMessage(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &Error{Kind: ErrUnavailable, Op: r.op.name, Status: resp.StatusCode, Message: r.op.networkMessage(), Err: err}
	}

	log.Debug(ctx, "request done", "method", r.method, "path", u.Path,
		"status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	msg := r.op.failure
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil && eb.Message != "" {
		msg = eb.Message
	}
	return nil, &Error{Kind: kindForStatus(resp.StatusCode), Op: r.op.name, Status: resp.StatusCode, Message: msg}
}

// doJSON sends r and decodes the 2xx body into out.
func (c *HTTPClient) doJSON(ctx context.Context, r request, out any) error {
	raw, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	return decode(r.op, raw, out)
}

func decode(op operation, raw []byte, out any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return invalidResponse(op, errors.New("no data returned from server"))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return invalidResponse(op, err)
	}
	return nil
}

func invalidResponse(op operation, cause error) error {
	return &Error{Kind: ErrInvalidResponse, Op: op.name, Message: "Invalid response from server", Err: cause}
}

func validationFailed(op operation, err error) error {
	return &Error{Kind: ErrValidation, Op: op.name, Message: err.Error(), Err: err}
}
