package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"legalmind/model"
	"legalmind/store"
	"legalmind/types"
)

// ErrorHandler is the central fiber error handler: it maps domain errors
// to JSON error responses so handlers can just return them.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if apiErr, ok := err.(Error); ok {
		return c.Status(apiErr.Code).JSON(apiErr)
	}
	if valErr, ok := err.(types.ValidationError); ok {
		return c.Status(valErr.Status).JSON(valErr)
	}

	var malformed *model.MalformedOutputError
	switch {
	case errors.Is(err, store.ErrContextNotFound):
		return c.Status(fiber.StatusNotFound).JSON(NewError(fiber.StatusNotFound, "document not found"))
	case errors.Is(err, model.ErrKeyPoolExhausted):
		return c.Status(fiber.StatusServiceUnavailable).JSON(NewError(fiber.StatusServiceUnavailable, err.Error()))
	case errors.As(err, &malformed):
		return c.Status(fiber.StatusBadGateway).JSON(NewError(fiber.StatusBadGateway, err.Error()))
	}

	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	slog.Error("request failed", "code", code, "error", err.Error())
	return c.Status(code).JSON(NewError(code, err.Error()))
}

// Error implements the error interface for API-level failures.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

func (e Error) Error() string {
	return e.Message
}

func NewError(code int, err string) Error {
	return Error{
		Code:    code,
		Message: err,
	}
}

func ErrBadRequest() Error {
	return Error{
		Code:    fiber.StatusBadRequest,
		Message: "invalid JSON request",
	}
}

func ErrNotFound(resource string) Error {
	return Error{
		Code:    fiber.StatusNotFound,
		Message: resource + " not found",
	}
}
