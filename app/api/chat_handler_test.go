package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalmind/model"
	"legalmind/store"
	"legalmind/types"
)

type stubModel struct {
	reply string
	err   error
	calls int
}

func (s *stubModel) Call(context.Context, string) (*model.GenerateResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &model.GenerateResult{Text: s.reply, TokensUsed: 5}, nil
}

func newChatApp(t *testing.T, caller ModelCaller) (*fiber.App, *store.ContextStore) {
	t.Helper()
	contextStore := store.NewContextStore(store.NewMemoryStore())
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/api/v1/chat", NewChatHandler(contextStore, caller, 5).HandleChat)
	return app, contextStore
}

func seedDocument(t *testing.T, contextStore *store.ContextStore, documentID string) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	err := contextStore.StoreContext(ctx, &types.DocumentContext{
		DocumentID:   documentID,
		DocumentName: "msa.pdf",
		FullText:     "Payment is due within 30 days. This agreement may be terminated with notice.",
		Chunks: []types.Chunk{
			{ID: documentID + "_chunk_0", Text: "Payment is due within 30 days.", SectionType: types.SectionPayment},
			{ID: documentID + "_chunk_1", Text: "This agreement may be terminated with notice.", SectionType: types.SectionTermination},
		},
		Summary:     "A services agreement.",
		CreatedAt:   now,
		LastUpdated: now,
	})
	require.NoError(t, err)
	_, err = contextStore.CreateSession(ctx, documentID, "msa.pdf", types.SessionContext{
		DocumentSummary: "A services agreement.",
	})
	require.NoError(t, err)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandleChat(t *testing.T) {
	caller := &stubModel{reply: "Payment is due within 30 days of invoice."}
	app, contextStore := newChatApp(t, caller)
	seedDocument(t, contextStore, "doc-1")

	resp := postJSON(t, app, "/api/v1/chat", types.ChatParams{
		Query:      "when is payment due?",
		DocumentID: "doc-1",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	reply := decodeBody[types.ChatResponse](t, resp)
	assert.Equal(t, "Payment is due within 30 days of invoice.", reply.ReplyText)
	assert.Equal(t, 5, reply.TokensUsed)
	assert.NotEmpty(t, reply.ContextChunkIDs)
	assert.Contains(t, reply.ContextChunkIDs, "doc-1_chunk_0")

	// Both sides of the turn are on the transcript.
	session, err := contextStore.GetSession(context.Background(), "doc-1")
	require.NoError(t, err)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, types.RoleUser, session.Messages[0].Role)
	assert.Equal(t, "when is payment due?", session.Messages[0].Content)
	assert.Equal(t, types.RoleAssistant, session.Messages[1].Role)
	require.NotNil(t, session.Messages[1].Metadata)
	assert.Equal(t, 5, session.Messages[1].Metadata.TokensUsed)
}

func TestHandleChatUnknownDocument(t *testing.T) {
	app, _ := newChatApp(t, &stubModel{reply: "ok"})

	resp := postJSON(t, app, "/api/v1/chat", types.ChatParams{
		Query:      "anything",
		DocumentID: "missing",
	})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleChatValidation(t *testing.T) {
	caller := &stubModel{reply: "ok"}
	app, _ := newChatApp(t, caller)

	resp := postJSON(t, app, "/api/v1/chat", types.ChatParams{Query: "no document id"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, caller.calls)
}

func TestHandleChatModelFailureApologizes(t *testing.T) {
	caller := &stubModel{err: errors.New("upstream down")}
	app, contextStore := newChatApp(t, caller)
	seedDocument(t, contextStore, "doc-1")

	resp := postJSON(t, app, "/api/v1/chat", types.ChatParams{
		Query:      "when is payment due?",
		DocumentID: "doc-1",
	})

	// A failed model call is still a completed chat turn.
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reply := decodeBody[types.ChatResponse](t, resp)
	assert.Equal(t, apologyMessage, reply.ReplyText)
	assert.Zero(t, reply.TokensUsed)

	session, err := contextStore.GetSession(context.Background(), "doc-1")
	require.NoError(t, err)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, apologyMessage, session.Messages[1].Content)
}
