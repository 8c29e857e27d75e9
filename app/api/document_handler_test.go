package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalmind/store"
	"legalmind/types"
)

func newDocumentApp(t *testing.T) (*fiber.App, *store.ContextStore) {
	t.Helper()
	contextStore := store.NewContextStore(store.NewMemoryStore())
	handler := NewDocumentHandler(contextStore)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/api/v1/documents/:id", handler.HandleGetDocument)
	app.Delete("/api/v1/documents/:id", handler.HandleDeleteDocument)
	app.Get("/api/v1/sessions", handler.HandleListSessions)
	app.Get("/api/v1/sessions/:id", handler.HandleGetSession)
	return app, contextStore
}

func doRequest(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestHandleGetDocument(t *testing.T) {
	app, contextStore := newDocumentApp(t)
	seedDocument(t, contextStore, "doc-1")

	resp := doRequest(t, app, http.MethodGet, "/api/v1/documents/doc-1")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	dc := decodeBody[types.DocumentContext](t, resp)
	assert.Equal(t, "msa.pdf", dc.DocumentName)
	assert.Len(t, dc.Chunks, 2)
}

func TestHandleGetDocumentMissing(t *testing.T) {
	app, _ := newDocumentApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/documents/nope")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleDeleteDocument(t *testing.T) {
	app, contextStore := newDocumentApp(t)
	seedDocument(t, contextStore, "doc-1")

	resp := doRequest(t, app, http.MethodDelete, "/api/v1/documents/doc-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/documents/doc-1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = doRequest(t, app, http.MethodGet, "/api/v1/sessions/doc-1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleDeleteDocumentMissing(t *testing.T) {
	app, _ := newDocumentApp(t)

	resp := doRequest(t, app, http.MethodDelete, "/api/v1/documents/nope")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleListSessions(t *testing.T) {
	app, contextStore := newDocumentApp(t)
	seedDocument(t, contextStore, "doc-1")
	seedDocument(t, contextStore, "doc-2")

	resp := doRequest(t, app, http.MethodGet, "/api/v1/sessions")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	sessions := decodeBody[[]types.ChatSession](t, resp)
	assert.Len(t, sessions, 2)
}

func TestHandleGetSession(t *testing.T) {
	app, contextStore := newDocumentApp(t)
	seedDocument(t, contextStore, "doc-1")

	resp := doRequest(t, app, http.MethodGet, "/api/v1/sessions/doc-1")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	session := decodeBody[types.ChatSession](t, resp)
	assert.Equal(t, "doc-1", session.DocumentID)
	assert.Empty(t, session.Messages)
}
