package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Preset(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		assert.Equal(t, "/sync", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/sync")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, ClientName, got.Get("Bitwarden-Client-Name"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	a := NewHTTPClient("http://a.example", time.Second)
	b := NewHTTPClient("http://b.example", time.Second)

	assert.NotSame(t, a.Client, b.Client)
	assert.Equal(t, "http://a.example", a.BaseURL)
}
