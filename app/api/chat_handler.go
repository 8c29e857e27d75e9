package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"legalmind/app/agent"
	"legalmind/model"
	"legalmind/search"
	"legalmind/store"
	"legalmind/types"
)

// apologyMessage is appended to the transcript as an assistant message
// when the model call fails, so the failure stays part of the durable
// conversation history.
const apologyMessage = "I apologize, but I ran into a problem answering that. Please try again in a moment."

// ModelCaller is the model-client surface the chat handler needs.
type ModelCaller interface {
	Call(ctx context.Context, prompt string) (*model.GenerateResult, error)
}

type ChatHandler struct {
	contextStore *store.ContextStore
	client       ModelCaller
	maxChunks    int
	logger       *slog.Logger
}

func NewChatHandler(contextStore *store.ContextStore, client ModelCaller, maxChunks int) *ChatHandler {
	if maxChunks <= 0 {
		maxChunks = search.DefaultMaxChunks
	}
	return &ChatHandler{
		contextStore: contextStore,
		client:       client,
		maxChunks:    maxChunks,
		logger:       slog.Default(),
	}
}

// HandleChat runs one grounded chat turn: retrieve relevant chunks, build
// the bounded prompt, call the model, and append both sides of the
// exchange to the session transcript.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var params types.ChatParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	if errors := types.Validate(&params); len(errors) > 0 {
		return types.NewValidationError(errors)
	}

	ctx := c.Context()
	start := time.Now()

	documentContext, err := h.contextStore.GetContext(ctx, params.DocumentID)
	if err != nil {
		return err
	}
	session, err := h.contextStore.GetSession(ctx, params.DocumentID)
	if err != nil {
		return err
	}

	relevantChunks := search.FindRelevant(params.Query, documentContext.Chunks, h.maxChunks)
	chunkIDs := make([]string, len(relevantChunks))
	for i, chunk := range relevantChunks {
		chunkIDs[i] = chunk.ID
	}

	prompt := agent.BuildPrompt(params.Query, documentContext, session.Messages, relevantChunks)

	userMsg := types.ChatMessage{
		ID:              uuid.NewString(),
		Role:            types.RoleUser,
		Content:         params.Query,
		Timestamp:       time.Now(),
		ContextChunkIDs: chunkIDs,
	}
	if _, err := h.contextStore.AppendMessage(ctx, params.DocumentID, userMsg); err != nil {
		return err
	}

	result, callErr := h.client.Call(ctx, prompt)
	responseTime := time.Since(start).Milliseconds()

	replyText := apologyMessage
	tokensUsed := 0
	if callErr != nil {
		h.logger.Error("chat model call failed", "documentId", params.DocumentID, "error", callErr)
	} else {
		replyText = result.Text
		tokensUsed = result.TokensUsed
		if tokensUsed == 0 {
			if estimated, err := agent.EstimateTokens(prompt + replyText); err == nil {
				tokensUsed = estimated
			}
		}
	}

	assistantMsg := types.ChatMessage{
		ID:              uuid.NewString(),
		Role:            types.RoleAssistant,
		Content:         replyText,
		Timestamp:       time.Now(),
		ContextChunkIDs: chunkIDs,
		Metadata: &types.MessageMetadata{
			ResponseTimeMs: responseTime,
			TokensUsed:     tokensUsed,
		},
	}
	if _, err := h.contextStore.AppendMessage(ctx, params.DocumentID, assistantMsg); err != nil {
		return err
	}

	return c.JSON(&types.ChatResponse{
		ReplyText:       replyText,
		ResponseTimeMs:  responseTime,
		TokensUsed:      tokensUsed,
		ContextChunkIDs: chunkIDs,
		Timestamp:       time.Now(),
	})
}
