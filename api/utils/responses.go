package utils

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/anatomypro/backend/api/models"
	dbmodels "github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/services"
)

// SendJSON sends a JSON response using Fiber
func SendJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// SendSuccess sends a successful JSON response
func SendSuccess(c *fiber.Ctx, data interface{}, message string) error {
	return SendJSON(c, http.StatusOK, models.NewSuccessResponse(data, message))
}

// SendCreated sends a created resource JSON response
func SendCreated(c *fiber.Ctx, data interface{}, message string) error {
	return SendJSON(c, http.StatusCreated, models.NewSuccessResponse(data, message))
}

// SendError sends an error JSON response
func SendError(c *fiber.Ctx, statusCode int, code, message string, details map[string]string) error {
	return SendJSON(c, statusCode, models.NewErrorResponse(code, message, details))
}

// SendBadRequest sends a bad request error response
func SendBadRequest(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

// SendUnauthorized sends an unauthorized error response
func SendUnauthorized(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

// SendForbidden sends a forbidden error response
func SendForbidden(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

// SendNotFound sends a not found error response
func SendNotFound(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

// SendConflict sends a conflict error response
func SendConflict(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusConflict, "CONFLICT", message, nil)
}

// SendInternalServerError sends an internal server error response
func SendInternalServerError(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}

// SendNoContent sends a no content response
func SendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}

// SendServiceError maps the service error taxonomy onto HTTP statuses.
// Unrecognized errors become opaque 500s so internals never leak.
func SendServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return SendBadRequest(c, err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		return SendNotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		return SendConflict(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return SendUnauthorized(c, "invalid credentials")
	case errors.Is(err, services.ErrForbidden):
		return SendForbidden(c, err.Error())
	default:
		return SendInternalServerError(c, "something went wrong")
	}
}

// CurrentUser extracts the authenticated user from Fiber context
func CurrentUser(c *fiber.Ctx) (*dbmodels.User, bool) {
	user, ok := c.Locals("user").(*dbmodels.User)
	return user, ok
}

// IsStaff checks if the current user may manage content
func IsStaff(c *fiber.Ctx) bool {
	user, ok := CurrentUser(c)
	return ok && user.IsStaff()
}

// GetIPAddress extracts the client IP address
func GetIPAddress(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.IP()
}

// GetUserAgent extracts the client user agent
func GetUserAgent(c *fiber.Ctx) string {
	return c.Get("User-Agent")
}
