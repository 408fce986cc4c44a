package remote

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"todolist/internal/errors"
	"todolist/internal/logging"
)

const (
	// NoTitle replaces a missing or non-string "todo" field.
	NoTitle = "No Title"
	// NoDescription replaces a missing or non-string "description" field.
	NoDescription = "No Description"

	userAgent = "todolist-seeder/1.0"
)

// Todo is one sample record, with placeholders already applied.
type Todo struct {
	Title       string
	Description string
	Completed   bool
}

// Client fetches sample todos from a JSON endpoint
type Client struct {
	url          string
	timeout      time.Duration
	maxBodyBytes int64
	httpClient   *http.Client
}

// NewClient creates a client for url. Non-positive limits fall back to 10s and 1 MiB.
func NewClient(url string, timeout time.Duration, maxBodyBytes int64) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	return &Client{
		url:          url,
		timeout:      timeout,
		maxBodyBytes: maxBodyBytes,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// URL returns the endpoint the client reads from
func (c *Client) URL() string {
	return c.url
}

// FetchTodos performs one GET and decodes the whole response before returning any record.
// A response that is not an object with a "todos" array of objects yields a Parse error.
func (c *Client) FetchTodos(ctx context.Context) ([]Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.NewNetworkError("build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	logging.Debugf("fetching sample todos from %s", c.url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewNetworkError("fetch sample todos", fmt.Errorf("http %d", resp.StatusCode)).
			WithContext("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, errors.NewParseError("sample todos", fmt.Errorf("response body exceeds %d bytes", c.maxBodyBytes))
	}

	return DecodeTodos(body)
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.NewTimeoutError("fetch sample todos", err.Error())
	}
	return errors.NewNetworkError("fetch sample todos", err)
}

// DecodeTodos parses a response body. Records are only returned when every element is usable.
func DecodeTodos(body []byte) ([]Todo, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.NewParseError("sample todos", err)
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.NewParseError("sample todos", fmt.Errorf("expected a JSON object, got %s", jsonKind(doc)))
	}

	items, ok := root["todos"].([]any)
	if !ok {
		return nil, errors.NewParseError("sample todos", fmt.Errorf(`expected a "todos" array, got %s`, jsonKind(root["todos"])))
	}

	todos := make([]Todo, 0, len(items))
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, errors.NewParseError("sample todos", fmt.Errorf("todos[%d] is %s, not an object", i, jsonKind(item))).
				WithContext("index", i)
		}
		todos = append(todos, Todo{
			Title:       getString(record, "todo", NoTitle),
			Description: getString(record, "description", NoDescription),
			Completed:   getBool(record, "completed"),
		})
	}
	return todos, nil
}

func getString(m map[string]any, k, fallback string) string {
	if v, ok := m[k].(string); ok {
		return v
	}
	return fallback
}

func getBool(m map[string]any, k string) bool {
	if v, ok := m[k].(bool); ok {
		return v
	}
	return false
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
