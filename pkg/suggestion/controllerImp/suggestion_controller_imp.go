package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbot/entities"
	"farmbot/pkg/httperr"
	"farmbot/pkg/suggestion/controller"
	"farmbot/pkg/suggestion/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SuggestionCtrl struct{ s service.SuggestionService }

func New(s service.SuggestionService) controller.SuggestionController { return &SuggestionCtrl{s} }

func (h *SuggestionCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.Request().Context(), c.Param("farmerId"))
	if err != nil {
		return httperr.Respond(c, err, "Farmer")
	}
	return c.JSON(http.StatusOK, list)
}

func (h *SuggestionCtrl) Patch(c echo.Context) error {
	var in entities.SuggestionPatch
	if err := c.Bind(&in); err != nil {
		return httperr.BadJSON(c)
	}
	out, err := h.s.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return httperr.Respond(c, err, "Suggestion")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SuggestionCtrl) Generate(c echo.Context) error {
	list, err := h.s.Generate(c.Request().Context(), c.Param("farmerId"), c.QueryParam("focus"))
	if err != nil {
		return httperr.Respond(c, err, "Farmer")
	}
	return c.JSON(http.StatusOK, list)
}

func (h *SuggestionCtrl) Export(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.s.Export(c.Request().Context(), c.Param("farmerId"), &buf); err != nil {
		return httperr.Respond(c, err, "Farmer")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="suggestions-%s.xlsx"`, c.Param("farmerId")))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
