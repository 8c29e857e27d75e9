package api

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"legalmind/ingest"
	"legalmind/types"
)

type AnalyzeHandler struct {
	ingestor *ingest.Ingestor
}

func NewAnalyzeHandler(ingestor *ingest.Ingestor) *AnalyzeHandler {
	return &AnalyzeHandler{ingestor: ingestor}
}

// HandleAnalyze runs the upload-time analysis on already-extracted text:
// full multi-facet report, chunked knowledge context, and a fresh chat
// session. Nothing is stored when the analysis fails.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var params types.AnalyzeParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	if errors := types.Validate(&params); len(errors) > 0 {
		return types.NewValidationError(errors)
	}

	result, err := h.ingestor.Ingest(c.Context(), params.ExtractedText, params.DocumentName)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// HandleAnalyzeFile accepts a plain-text document as a multipart upload
// and runs the same pipeline.
func (h *AnalyzeHandler) HandleAnalyzeFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return ErrBadRequest()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	result, err := h.ingestor.Ingest(c.Context(), string(data), fileHeader.Filename)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
