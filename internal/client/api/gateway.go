package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// authPathPrefix marks the unauthenticated endpoints: login and register
// never carry a bearer header even when a stale token is still stored.
const authPathPrefix = "/api/auth/"

// Gateway is the HTTP implementation of Client.
type Gateway struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	logger  logging.Logger
}

var _ Client = (*Gateway)(nil)

// NewGateway constructs a Gateway. httpc may be nil, in which case
// http.DefaultClient is used; any timeout policy belongs to the injected
// client, the gateway adds none of its own.
func NewGateway(baseURL string, httpc *http.Client, tokens TokenSource, logger logging.Logger) *Gateway {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		tokens:  tokens,
		logger:  logger,
	}
}

// request performs one JSON round-trip. body is marshalled as JSON when
// non-nil; the response body is decoded into out when out is non-nil and
// the response is non-empty. Non-2xx statuses come back as *Error.
func (g *Gateway) request(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	g.setAuthHeaders(req, path)

	return g.do(req, out)
}

// setAuthHeaders attaches the bearer token and client id. Auth endpoints
// are exempt from the bearer header.
func (g *Gateway) setAuthHeaders(req *http.Request, path string) {
	if g.tokens == nil {
		return
	}
	if token := g.tokens.Token(); token != "" && !strings.HasPrefix(path, authPathPrefix) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := g.tokens.ClientID(); id != "" {
		req.Header.Set("X-Client-Id", id)
	}
}

// do executes the prepared request and decodes the response. It is shared
// by the JSON and multipart paths.
func (g *Gateway) do(req *http.Request, out any) error {
	resp, err := g.httpc.Do(req)
	if err != nil {
		g.logger.Error(req.Context(), "request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return g.errorFromResponse(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fmt.Sprintf("unexpected response shape: %v", err)}
	}
	return nil
}

// errorFromResponse maps a non-2xx response to the single error shape.
// The backend sends {"message": "..."} on errors; anything else falls back
// to a generic status message.
func (g *Gateway) errorFromResponse(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &Error{StatusCode: status, Message: payload.Message}
	}
	return &Error{StatusCode: status, Message: fmt.Sprintf("HTTP error: %d", status)}
}

// upload performs a multipart POST with a single file field. Content-Type
// is set by the multipart writer so the boundary survives; the JSON header
// must not be applied here.
func (g *Gateway) upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("copy upload body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	g.setAuthHeaders(req, path)

	return g.do(req, out)
}
