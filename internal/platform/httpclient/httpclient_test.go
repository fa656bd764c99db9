package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_DecodesAndReportsHTTPErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"name_gru":"Bovinos"}`))
		case "/message":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"No se encontró el animal para actualizar."}`))
		case "/error":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"duplicate key"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`upstream down`))
		}
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", time.Second)
	require.NoError(t, err)

	var out struct {
		Name string `json:"name_gru"`
	}
	require.NoError(t, c.Get(context.Background(), "ok", &out))
	assert.Equal(t, "Bovinos", out.Name)

	for path, want := range map[string]string{
		"/message": "No se encontró el animal para actualizar.",
		"/error":   "duplicate key",
		"/other":   "",
	} {
		err := c.Get(context.Background(), path, nil)
		var he *HTTPError
		require.True(t, errors.As(err, &he), path)
		assert.Equal(t, want, he.ServerMessage(), path)
	}
}

func TestDoJSON_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	err := New(time.Second).DoJSON(context.Background(), http.MethodGet, url+"/api/animal/1", nil, nil, nil)
	var ne *NetworkError
	assert.True(t, errors.As(err, &ne))
}

func TestResolveURL_RequiresBaseForRelative(t *testing.T) {
	_, err := New(0).resolveURL("/api/grupoAnimales")
	assert.Error(t, err)

	_, err = NewWithBaseURL("::not a url", 0)
	assert.Error(t, err)
}
