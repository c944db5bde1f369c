// Package gateway is the single chokepoint for outbound calls to the
// Smart Condominium REST backend. Every request advertises the current
// bearer credential and every credential failure is handled in one place:
// a 401 clears the session through the manager and surfaces
// ErrAuthenticationExpired to the caller. Nothing here retries, backs off,
// or deduplicates in-flight requests.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	apperrors "github.com/smart-condominium/condo-console/internal/errors"
)

// Credentials is the slice of the session manager the gateway needs: the
// current bearer string and the forced-invalidation entry point. The gateway
// never touches the persisted store directly.
type Credentials interface {
	AccessToken() string
	Invalidate()
}

type Gateway struct {
	baseURL string
	creds   Credentials
	client  *http.Client
	log     zerolog.Logger
}

type Option func(*Gateway)

func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) { g.client = client }
}

func WithTimeout(timeout time.Duration) Option {
	return func(g *Gateway) { g.client.Timeout = timeout }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Gateway) { g.log = logger.With().Str("component", "gateway").Logger() }
}

func New(baseURL string, creds Credentials, options ...Option) *Gateway {
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     zerolog.Nop(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodGet, path, nil, nil, out)
}

func (g *Gateway) GetQuery(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, query, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, nil, body, out)
}

func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, nil, body, out)
}

func (g *Gateway) Patch(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrapf(err, "gateway %s %s encode", method, path)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := g.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return g.send(req, out)
}

// PostMultipart sends a multipart/form-data request, used by screens that
// attach an image (maintenance requests). Field values go in as plain parts;
// the file goes in under fileField.
func (g *Gateway) PostMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file []byte, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return apperrors.Wrapf(err, "gateway multipart %s", path)
		}
	}
	if len(file) > 0 {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return apperrors.Wrapf(err, "gateway multipart %s", path)
		}
		if _, err := part.Write(file); err != nil {
			return apperrors.Wrapf(err, "gateway multipart %s", path)
		}
	}
	if err := writer.Close(); err != nil {
		return apperrors.Wrapf(err, "gateway multipart %s", path)
	}

	req, err := g.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return g.send(req, out)
}

// GetBinary fetches a binary payload (the financial PDF report) and returns
// the raw bytes plus the response content type.
func (g *Gateway) GetBinary(ctx context.Context, path string, query url.Values) ([]byte, string, error) {
	req, err := g.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, "", apperrors.Wrapf(apperrors.ErrConnectivity, "gateway GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	if err := g.checkStatus(resp, path); err != nil {
		return nil, "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", apperrors.Wrapf(apperrors.ErrConnectivity, "gateway GET %s read: %v", path, err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (g *Gateway) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, apperrors.Wrapf(err, "gateway %s %s", method, path)
	}

	if token := g.creds.AccessToken(); token != "" {
		(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (g *Gateway) send(req *http.Request, out any) error {
	path := req.URL.Path

	resp, err := g.client.Do(req)
	if err != nil {
		// Network-level failure: no response reached us, so the session is
		// left untouched.
		return apperrors.Wrapf(apperrors.ErrConnectivity, "gateway %s %s: %v", req.Method, path, err)
	}
	defer resp.Body.Close()

	if err := g.checkStatus(resp, path); err != nil {
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, "gateway %s %s decode", req.Method, path)
	}
	return nil
}

// checkStatus maps response statuses onto the console's error taxonomy.
// 401 is the only status interpreted as "session invalid", and this is the
// only place that interprets it.
func (g *Gateway) checkStatus(resp *http.Response, path string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		io.Copy(io.Discard, resp.Body)
		g.log.Warn().Str("path", path).Msg("authentication rejected, clearing session")
		g.creds.Invalidate()
		return apperrors.Wrapf(apperrors.ErrAuthenticationExpired, "%s", path)

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return parseValidationError(resp)

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return apperrors.Wrapf(apperrors.ErrBackend, "%s returned %d: %s", path, resp.StatusCode, string(body))
	}
}

func parseValidationError(resp *http.Response) error {
	verr := &ValidationError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		verr.Detail = fmt.Sprintf("request rejected with status %d", resp.StatusCode)
		return verr
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		verr.Detail = strings.TrimSpace(string(body))
		return verr
	}

	for field, msg := range raw {
		if field == "detail" || field == "error" {
			var detail string
			if json.Unmarshal(msg, &detail) == nil {
				verr.Detail = detail
				continue
			}
		}
		var messages []string
		if json.Unmarshal(msg, &messages) == nil {
			verr.addField(field, messages...)
			continue
		}
		var single string
		if json.Unmarshal(msg, &single) == nil {
			verr.addField(field, single)
		}
	}
	return verr
}
