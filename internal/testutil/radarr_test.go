package testutil

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadarrServerRequiresKey(t *testing.T) {
	srv := NewRadarrServer(t)
	srv.Handle(t, http.MethodGet, "/tag", http.StatusOK, []map[string]interface{}{{"id": 1, "label": "alex"}})

	resp, err := http.Get(srv.URL + "/api/v3/tag")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v3/tag", nil)
	require.NoError(t, err)
	req.Header.Set("X-Api-Key", FakeAPIKey)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":1,"label":"alex"}]`, string(body))

	last, ok := srv.Last(http.MethodGet, "/tag")
	require.True(t, ok)
	assert.Equal(t, "/tag", last.Path)
	assert.Len(t, srv.Requests(), 2)
}
