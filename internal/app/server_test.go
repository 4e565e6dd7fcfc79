package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/weave/component"
	"github.com/vk/weave/internal/render"
)

func TestRouter(t *testing.T) {
	// --- Arrange ---
	a, _ := newTestApp(t, Config{Demo: true})
	root, err := a.Build(context.Background(), "")
	require.NoError(t, err)
	demo := a.Controller().(*DemoController)
	srv := httptest.NewServer(a.Router(context.Background()))
	t.Cleanup(srv.Close)

	do := func(method, path string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(method, srv.URL+path, nil)
		require.NoError(t, err)
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	t.Run("health", func(t *testing.T) {
		resp := do(http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("tree", func(t *testing.T) {
		resp := do(http.MethodGet, "/tree")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var snap render.Node
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
		assert.Equal(t, "VerticalLayout", snap.Type)
		assert.Equal(t, "root", snap.ID)
		assert.Len(t, snap.Children, 6)
	})

	t.Run("component", func(t *testing.T) {
		resp := do(http.MethodGet, "/components/person-list")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var snap render.Node
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
		assert.Equal(t, "Table", snap.Type)
		assert.Equal(t, 2, snap.Rows)
	})

	t.Run("missing component", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "/components/nope").StatusCode)
		assert.Equal(t, http.StatusNotFound, do(http.MethodPost, "/components/nope/click").StatusCode)
	})

	t.Run("fire click", func(t *testing.T) {
		resp := do(http.MethodPost, "/components/another-button/click")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Contains(t, demo.Notifications(), `Button "another-button" clicked`)
	})

	t.Run("fire value", func(t *testing.T) {
		resp := do(http.MethodPost, "/components/value-field/value?value=7")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		field, ok := component.FindByID(root, "value-field")
		require.True(t, ok)
		assert.Equal(t, "7", field.(*component.TextField).Value())
	})

	t.Run("fire rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/components/title/click").StatusCode)
		assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/components/button/explode").StatusCode)
	})
}

func TestRouter_NoTree(t *testing.T) {
	a, _ := newTestApp(t, Config{Demo: true})
	rec := httptest.NewRecorder()

	a.Router(context.Background()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tree", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
