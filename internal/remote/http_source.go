package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	v1 "github.com/aevon-lab/favourite-service/internal/api/v1"
)

const (
	defaultTimeout = 5 * time.Second

	// maxResponseBytes bounds how much of a sibling response is read.
	maxResponseBytes = 1 << 20
)

// Config describes one sibling service endpoint. BaseURL is the collection
// URL; a lookup for id 7 issues GET {BaseURL}/7.
type Config struct {
	Name    string
	BaseURL string
	Timeout time.Duration
}

// HTTPSource fetches JSON detail records over HTTP.
type HTTPSource[T any] struct {
	name       string
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource validates cfg and builds a source with its own bounded-time client.
func NewHTTPSource[T any](cfg Config) (*HTTPSource[T], error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("remote source %q: base url is required", cfg.Name)
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("remote source %q: invalid base url: %w", cfg.Name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("remote source %q: unsupported scheme %q", cfg.Name, u.Scheme)
	}

	name := cfg.Name
	if name == "" {
		name = u.Host
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPSource[T]{
		name:       name,
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// NewUserSource builds the user-service lookup.
func NewUserSource(cfg Config) (*HTTPSource[v1.UserDetail], error) {
	if cfg.Name == "" {
		cfg.Name = "user-service"
	}
	return NewHTTPSource[v1.UserDetail](cfg)
}

// NewProductSource builds the product-service lookup.
func NewProductSource(cfg Config) (*HTTPSource[v1.ProductDetail], error) {
	if cfg.Name == "" {
		cfg.Name = "product-service"
	}
	return NewHTTPSource[v1.ProductDetail](cfg)
}

// Name identifies the source in logs.
func (s *HTTPSource[T]) Name() string {
	return s.name
}

// FetchByID issues GET {BaseURL}/{id}. Any failure is logged and reported as Absent.
func (s *HTTPSource[T]) FetchByID(ctx context.Context, id int) Result[T] {
	endpoint := s.baseURL + "/" + strconv.Itoa(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return s.absent(ctx, id, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.absent(ctx, id, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return s.absent(ctx, id, "read body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return s.absent(ctx, id, "unexpected status", fmt.Errorf("status %d", resp.StatusCode))
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return s.absent(ctx, id, "empty body", nil)
	}

	var value T
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return s.absent(ctx, id, "decode body", err)
	}

	return Found(value)
}

// absent records why a lookup degraded. Caller cancellation is expected
// traffic and logs at debug; everything else is a warning so outages stay visible.
func (s *HTTPSource[T]) absent(ctx context.Context, id int, reason string, err error) Result[T] {
	attrs := []any{"source", s.name, "id", id, "reason", reason}
	if err != nil {
		attrs = append(attrs, "error", err)
	}

	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		slog.Debug("[RemoteSource] Lookup abandoned", attrs...)
	} else {
		slog.Warn("[RemoteSource] Lookup degraded to absent", attrs...)
	}
	return Absent[T]()
}
