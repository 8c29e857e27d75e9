package api

import (
	"github.com/gofiber/fiber/v2"

	"legalmind/store"
)

type DocumentHandler struct {
	contextStore *store.ContextStore
}

func NewDocumentHandler(contextStore *store.ContextStore) *DocumentHandler {
	return &DocumentHandler{contextStore: contextStore}
}

func (h *DocumentHandler) HandleGetDocument(c *fiber.Ctx) error {
	documentContext, err := h.contextStore.GetContext(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(documentContext)
}

// HandleDeleteDocument removes a document context and its chat session.
// This is the only deletion path; nothing is evicted automatically.
func (h *DocumentHandler) HandleDeleteDocument(c *fiber.Ctx) error {
	documentID := c.Params("id")
	if _, err := h.contextStore.GetContext(c.Context(), documentID); err != nil {
		return err
	}
	if err := h.contextStore.DeleteDocument(c.Context(), documentID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": "deleted"})
}

func (h *DocumentHandler) HandleListSessions(c *fiber.Ctx) error {
	sessions, err := h.contextStore.ListSessions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}

func (h *DocumentHandler) HandleGetSession(c *fiber.Ctx) error {
	session, err := h.contextStore.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(session)
}
