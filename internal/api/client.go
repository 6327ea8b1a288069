// Package api is the single configured client for the backend REST API.
// Every request carries the visitor's bearer credential when one is stored,
// bodies are JSON unless they are file uploads, and failures are returned to
// the calling handler untouched; nothing here retries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/iliyamo/car-rental-web/internal/metrics"
)

// maxBodyBytes caps how much of a backend response is read.
const maxBodyBytes = 4 << 20

// Client talks to the backend.  It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	group   singleflight.Group
	tracer  trace.Tracer
}

// New returns a Client for baseURL (e.g. http://localhost:8000/api).  A zero
// timeout leaves requests bounded only by the caller's context.
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient is New with a caller supplied transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		tracer:  otel.Tracer("github.com/iliyamo/car-rental-web/internal/api"),
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Get fetches path and decodes the JSON response into out.  Identical
// concurrent GETs made with the same credential share one backend call.
// The shared call is not bound to any one caller's cancellation; each
// caller stops waiting when its own ctx is done.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	key := "GET " + path + "\x00" + credentialFrom(ctx)
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		return c.send(shared, http.MethodGet, path, nil)
	})
	select {
	case <-ctx.Done():
		return fmt.Errorf("GET %s: %w", path, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return decode(path, res.Val.([]byte), out)
	}
}

// Post sends body to path and decodes the response into out (may be nil).
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Patch sends a partial update to path.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

// Do performs a request without de-duplication.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	return decode(path, raw, out)
}

func (c *Client) send(ctx context.Context, method, path string, body any) ([]byte, error) {
	endpoint := path
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		endpoint = endpoint[:i]
	}
	ctx, span := c.tracer.Start(ctx, method+" "+endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", endpoint),
	)

	reader, contentType, err := encodeBody(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode body")
		return nil, fmt.Errorf("encode %s %s: %w", method, endpoint, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cred := credentialFrom(ctx); cred != "" {
		req.Header.Set("Authorization", "Bearer "+cred)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveBackend(method, endpoint, 0, time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, &NetworkError{Method: method, Path: endpoint, Err: err}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	metrics.ObserveBackend(method, endpoint, resp.StatusCode, time.Since(start))
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, &NetworkError{Method: method, Path: endpoint, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newError(resp.StatusCode, raw)
		span.SetStatus(codes.Error, apiErr.Error())
		return nil, apiErr
	}
	return raw, nil
}

// encodeBody returns the reader and content type for body.  Multipart bodies
// get the writer's boundary-bearing content type; everything else is JSON.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *Multipart:
		buf, ct, err := b.encode()
		if err != nil {
			return nil, "", err
		}
		return buf, ct, nil
	default:
		bs, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(bs), "application/json", nil
	}
}

func decode(path string, raw []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
