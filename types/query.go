package types

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

type Validater interface {
	Validate() map[string]string
}

type ChatParams struct {
	Query      string `json:"query" validate:"required"`
	DocumentID string `json:"documentId" validate:"required"`
}

type AnalyzeParams struct {
	ExtractedText string `json:"extractedText" validate:"required"`
	DocumentName  string `json:"documentName" validate:"required"`
}

func Validate(v Validater) map[string]string {
	return v.Validate()
}

func (params *ChatParams) Validate() map[string]string {
	return validateStruct(params)
}

func (params *AnalyzeParams) Validate() map[string]string {
	return validateStruct(params)
}

func validateStruct(v any) map[string]string {
	validate := validator.New()
	if err := validate.Struct(v); err != nil {
		errs := err.(validator.ValidationErrors)
		errors := make(map[string]string)
		for _, e := range errs {
			errors[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return errors
	}
	return nil
}

func NewValidationError(errors map[string]string) ValidationError {
	return ValidationError{
		Status: http.StatusUnprocessableEntity,
		Errors: errors,
	}
}

type ValidationError struct {
	Status int               `json:"status"`
	Errors map[string]string `json:"errors"`
}

func (e ValidationError) Error() string {
	return "validation failed"
}

// ChatResponse is the chat turn reply consumed by the UI layer.
type ChatResponse struct {
	ReplyText       string    `json:"replyText"`
	ResponseTimeMs  int64     `json:"responseTimeMs"`
	TokensUsed      int       `json:"tokensUsed"`
	ContextChunkIDs []string  `json:"contextChunkIds"`
	Timestamp       time.Time `json:"timestamp"`
}
