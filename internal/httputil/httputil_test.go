// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tabfetch/internal/errdefs"
)

func TestGetSetsUserAgent(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		io.WriteString(w, "ok")
	}))
	defer ts.Close()

	resp, err := Get(context.Background(), ts.Client(), ts.URL, "tabfetch-test/1.0")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "tabfetch-test/1.0", gotUA)
}

func TestGetNon2xxIsFetchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, "ua")
	require.Error(t, err)

	var fetchErr *errdefs.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	assert.Equal(t, ts.URL, fetchErr.URL)
}

func TestGetConnectionFailureIsFetchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	ts.Close()

	_, err := Get(context.Background(), http.DefaultClient, ts.URL, "ua")
	require.Error(t, err)

	var fetchErr *errdefs.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Zero(t, fetchErr.Status)
	assert.Error(t, fetchErr.Err)
}

func TestGetJSONDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"name": "value"}`)
	}))
	defer ts.Close()

	var payload struct {
		Name string `json:"name"`
	}
	require.NoError(t, GetJSON(context.Background(), ts.Client(), ts.URL, "ua", &payload))
	assert.Equal(t, "value", payload.Name)
}

func TestGetJSONMalformedBodyIsResolutionError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	}))
	defer ts.Close()

	var payload map[string]any
	err := GetJSON(context.Background(), ts.Client(), ts.URL, "ua", &payload)
	require.Error(t, err)

	var resErr *errdefs.ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, ts.URL, resErr.Target)
	assert.Contains(t, resErr.Reason, "not valid JSON")
}
