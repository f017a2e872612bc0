// Package httperr maps service errors onto the JSON error bodies every
// controller returns.
package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbot/entities"
)

// Respond writes err as 400, 404 or 500. thing names the missing resource in
// the 404 message, e.g. "Farmer".
func Respond(c echo.Context, err error, thing string) error {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request", "errors": verr.Errors})
	case errors.Is(err, entities.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": thing + " not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
}

// BadJSON answers a body that could not be bound.
func BadJSON(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
}
