package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"talentlens/resume-analyzer/internal/models"
	"talentlens/resume-analyzer/internal/services"
)

// requestError is a client-side failure detected during validation, carrying
// the status and code it should be rendered with.
type requestError struct {
	status  int
	code    string
	message string
}

func (e *requestError) Error() string { return e.message }

func validationErr(message string) *requestError {
	return &requestError{
		status:  fiber.StatusBadRequest,
		code:    models.CodeValidationError,
		message: message,
	}
}

// respondError maps internal errors to the uniform error envelope. Client
// faults come back as 4xx, upstream provider faults as 502 with the provider
// message attached.
func respondError(c *fiber.Ctx, err error) error {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		return respondAPIError(c, reqErr.status, reqErr.code, reqErr.message)
	case errors.Is(err, services.ErrUnsupportedFormat):
		return respondAPIError(c, fiber.StatusBadRequest, models.CodeValidationError, err.Error())
	case errors.Is(err, services.ErrUnreadableDocument):
		return respondAPIError(c, fiber.StatusUnprocessableEntity, models.CodeUnreadableDocument, err.Error())
	case errors.Is(err, services.ErrAuthentication),
		errors.Is(err, services.ErrRateLimited),
		errors.Is(err, services.ErrProviderUnavailable):
		return respondAPIError(c, fiber.StatusBadGateway, models.CodeProviderError, err.Error())
	default:
		return respondAPIError(c, fiber.StatusInternalServerError, models.CodeInternalError, err.Error())
	}
}

func respondAPIError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: models.APIError{
			Code:    code,
			Message: message,
		},
	})
}
