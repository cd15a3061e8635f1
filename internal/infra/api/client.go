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

	"support-widget/internal/domain/dto"
	"support-widget/internal/domain/interfaces/repository"
	"support-widget/internal/infra/logger"
	"support-widget/internal/metrics"

	"github.com/sirupsen/logrus"
)

// Logical resources understood by the façade.
const (
	ResourceProducts      = "products"
	ResourceChatResponses = "chat-responses"
	ResourceChat          = "chat"

	// ResourceUsers lives only in the local store; the backend has no users route.
	ResourceUsers = "users"
)

const DefaultChatTimeout = 5 * time.Second

// Availability reports whether the live backend should be used.
type Availability interface {
	IsAvailable(ctx context.Context) bool
}

type Options struct {
	// BaseURL is the API root, e.g. http://localhost:3002/api.
	BaseURL string
	// ChatURL is the dedicated answer endpoint tried by the offline chat path.
	// Defaults to BaseURL + "/chat".
	ChatURL     string
	ChatTimeout time.Duration
	HttpClient  *http.Client
	Now         func() time.Time
}

// Client is the single data-access entry point for the widget. It forwards to
// the live backend while the probe reports it available and otherwise serves
// the same contract from the local collection store.
type Client struct {
	Logger      *logger.Logger
	HttpClient  *http.Client
	BaseURL     string
	ChatURL     string
	ChatTimeout time.Duration
	Probe       Availability
	Store       repository.CollectionStore

	ids *IDGenerator
}

func NewClient(logger *logger.Logger, probe Availability, store repository.CollectionStore, opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	chatURL := opts.ChatURL
	if chatURL == "" && baseURL != "" {
		chatURL = baseURL + "/" + ResourceChat
	}
	chatTimeout := opts.ChatTimeout
	if chatTimeout <= 0 {
		chatTimeout = DefaultChatTimeout
	}
	httpClient := opts.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		Logger:      logger,
		HttpClient:  httpClient,
		BaseURL:     baseURL,
		ChatURL:     chatURL,
		ChatTimeout: chatTimeout,
		Probe:       probe,
		Store:       store,
		ids:         NewIDGenerator(opts.Now),
	}
}

func Get[T any](ctx context.Context, c *Client, path string) (dto.Response[T], error) {
	return call[T](ctx, c, http.MethodGet, path, nil)
}

func Post[T any](ctx context.Context, c *Client, path string, body any) (dto.Response[T], error) {
	return call[T](ctx, c, http.MethodPost, path, body)
}

func Put[T any](ctx context.Context, c *Client, path string, body any) (dto.Response[T], error) {
	return call[T](ctx, c, http.MethodPut, path, body)
}

func Delete[T any](ctx context.Context, c *Client, path string) (dto.Response[T], error) {
	return call[T](ctx, c, http.MethodDelete, path, nil)
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (dto.Response[T], error) {
	var out dto.Response[T]

	raw, online, err := c.Do(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out.Data); err != nil {
		if online {
			return out, fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
		// Offline results never surface as errors; a shape mismatch yields the zero value.
		c.Logger.Warn(fmt.Sprintf("Simulated %s %s result does not fit %T: %v", method, path, out.Data, err))
		var zero T
		out.Data = zero
	}
	return out, nil
}

// Do routes one call and returns the raw JSON result and whether the live backend served it.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, bool, error) {
	resource, id := splitPath(path)

	if resource != ResourceUsers && c.Probe.IsAvailable(ctx) {
		metrics.FacadeCalls.WithLabelValues(resource, "online").Inc()
		raw, err := c.live(ctx, method, path, body)
		return raw, true, err
	}

	metrics.FacadeCalls.WithLabelValues(resource, "offline").Inc()
	result := c.simulate(ctx, strings.ToUpper(method), resource, id, body)

	raw, err := json.Marshal(result)
	if err != nil {
		c.Logger.Error(fmt.Sprintf("Failed to encode simulated %s result: %v", resource, err))
		return json.RawMessage("null"), false, nil
	}
	return raw, false, nil
}

func (c *Client) live(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil && method != http.MethodGet && method != http.MethodDelete {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/"+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.HttpClient.Do(req)
	if err != nil {
		c.Logger.Error(fmt.Sprintf("Live %s %s failed: %v", method, path, err))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		c.Logger.Warn("Live backend returned an error status", logrus.Fields{
			"method": method,
			"path":   path,
			"status": res.StatusCode,
		})
		return nil, &StatusError{Method: method, Path: path, StatusCode: res.StatusCode, Body: string(data)}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage("null"), nil
	}
	return data, nil
}

// splitPath turns "/products/42" into ("products", "42").
func splitPath(path string) (resource, id string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	resource = parts[0]
	if len(parts) > 1 {
		id = parts[1]
	}
	return resource, id
}
