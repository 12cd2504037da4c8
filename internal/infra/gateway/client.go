// Package gateway holds the per-resource remote clients. Each read issues a
// single upstream call and substitutes a fixed fallback dataset on failure or
// on an empty success, so the presentation tier always has something to
// render. Mutations never fall back: fabricating a successful write would
// corrupt caller expectations.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/pkg/config"
	"gourmet-gateway/internal/pkg/errs"
)

// Client is the shared low-level transport for all resource gateways.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: cfg.NewHTTPClient(),
		logger:     logger,
	}
}

type response struct {
	StatusCode int
	Body       []byte
}

// do issues one request and classifies the outcome per the error taxonomy:
// transport failure → ErrUnreachable, non-2xx → ErrRemoteRejected carrying
// the body as diagnostic text. There is no retry anywhere in this layer.
func (c *Client) do(ctx context.Context, sess *session.Session, method, path string, payload any) (*response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errs.Wrap(err, "marshal request payload")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errs.Wrap(err, "build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	// The demo sentinel never goes upstream: a real backend would reject a
	// known-invalid token even on otherwise-public endpoints.
	if sess != nil && sess.Token != "" && !sess.IsDemo() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "upstream call failed"), errs.ErrUnreachable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read upstream response"), errs.ErrUnreachable)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		diagnostic := strings.TrimSpace(string(raw))
		if diagnostic == "" {
			diagnostic = http.StatusText(resp.StatusCode)
		}
		return nil, errs.Mark(errs.New("upstream "+resp.Status+": "+diagnostic), errs.ErrRemoteRejected)
	}

	return &response{StatusCode: resp.StatusCode, Body: raw}, nil
}

// decode parses a successful response body into v. An empty body is a
// successful null result, not an error; anything else that fails to parse
// surfaces as ErrMalformedResponse.
func (r *response) decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errs.Mark(errs.Wrap(err, "decode upstream response"), errs.ErrMalformedResponse)
	}
	return nil
}

// logFallback records why a read path substituted fallback data. The cause
// never reaches the caller as a blocking error.
func (c *Client) logFallback(resource string, err error) {
	if err == nil {
		c.logger.Info("upstream returned empty collection; serving fallback data", "resource", resource)
		return
	}
	c.logger.Warn("upstream read failed; serving fallback data", "resource", resource, "error", err.Error())
}
