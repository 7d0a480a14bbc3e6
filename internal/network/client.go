package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/radarr"
)

const (
	DefaultTimeout = 15 * time.Second
	apiPrefix      = "/api/v3"
	userAgent      = "servarr-tui"
)

// Client talks to one Radarr server.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient returns a client for the server at baseURL. A non-positive
// timeout falls back to DefaultTimeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the server address requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute performs req and decodes its response. Requests with a Fetch path
// first read the current resource, merge the patch into it and send the
// merged document as the body.
func (c *Client) Execute(ctx context.Context, req Request) Result {
	start := time.Now()
	res := Result{Event: req.Event}

	body := req.Body
	if req.Fetch != "" {
		var current map[string]interface{}
		raw, _, err := c.do(ctx, req.Event, http.MethodGet, req.Fetch, nil, nil, false)
		if err != nil {
			res.Err = err
			return res
		}
		if err := json.Unmarshal(raw, &current); err != nil {
			res.Err = fmt.Errorf("parse response: %w", err)
			return res
		}
		mergePatch(current, req.Patch, req.FieldPatch)
		body = current
	}

	raw, status, err := c.do(ctx, req.Event, req.Method, req.Path, req.Query, body, req.AllowBadRequest)
	events.Network.Response(req.Event.String(), status, time.Since(start))
	if err != nil {
		events.Network.Error(req.Event.String(), err)
		res.Err = err
		return res
	}
	res.Value, res.Err = decode(req.Event, raw)
	return res
}

// HealthCheck verifies the server is reachable and the key is accepted.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, _, err := c.do(ctx, radarr.HealthCheck, http.MethodGet, "/health", nil, nil, false)
	return err
}

func (c *Client) do(ctx context.Context, evt radarr.Event, method, path string, query url.Values, body interface{}, allowBadRequest bool) ([]byte, int, error) {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Api-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	events.Network.Request(evt.String(), method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, resp.StatusCode, nil
	}
	if allowBadRequest && resp.StatusCode == http.StatusBadRequest {
		return raw, resp.StatusCode, nil
	}
	return nil, resp.StatusCode, newStatusError(resp.StatusCode, raw)
}

// mergePatch overlays patch onto doc. fields patches the entries of doc's
// "fields" array by name.
func mergePatch(doc, patch map[string]interface{}, fields map[string]interface{}) {
	for k, v := range patch {
		doc[k] = v
	}
	if len(fields) == 0 {
		return
	}
	list, _ := doc["fields"].([]interface{})
	for _, entry := range list {
		field, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := field["name"].(string)
		if v, ok := fields[name]; ok {
			field["value"] = v
		}
	}
}
