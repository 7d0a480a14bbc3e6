package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakeAPIKey is the key the fake server accepts.
const FakeAPIKey = "test-api-key"

// RecordedRequest is one call received by the fake server.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// Decode unmarshals the request body into v.
func (r RecordedRequest) Decode(t *testing.T, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(r.Body, v); err != nil {
		t.Fatalf("decode %s %s body: %v", r.Method, r.Path, err)
	}
}

type cannedResponse struct {
	status int
	body   []byte
}

// RadarrServer is an in-process stand-in for the Radarr v3 API. Routes are
// keyed by method and path below /api/v3.
type RadarrServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]cannedResponse
	requests []RecordedRequest
}

// NewRadarrServer starts a fake server that is closed when t finishes.
func NewRadarrServer(t *testing.T) *RadarrServer {
	t.Helper()
	s := &RadarrServer{routes: make(map[string]cannedResponse)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers the answer for method and path. body is sent verbatim
// when it is a string or []byte and JSON-encoded otherwise.
func (s *RadarrServer) Handle(t *testing.T, method, path string, status int, body interface{}) {
	t.Helper()
	var raw []byte
	switch v := body.(type) {
	case nil:
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		var err error
		if raw, err = json.Marshal(v); err != nil {
			t.Fatalf("encode canned response: %v", err)
		}
	}
	s.mu.Lock()
	s.routes[method+" "+path] = cannedResponse{status: status, body: raw}
	s.mu.Unlock()
}

// Requests returns every request received so far, in arrival order.
func (s *RadarrServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// Last returns the most recent request for method and path.
func (s *RadarrServer) Last(method, path string) (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		r := s.requests[i]
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return RecordedRequest{}, false
}

func (s *RadarrServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api/v3")

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.RawQuery,
		Body:   body,
	})
	resp, ok := s.routes[r.Method+" "+path]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if r.Header.Get("X-Api-Key") != FakeAPIKey {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Unauthorized"}`))
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "NotFound"}`))
		return
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}
