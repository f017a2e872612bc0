package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbot/pkg/chat/controller"
	"farmbot/pkg/chat/service"
	"farmbot/pkg/httperr"
)

type ChatCtrl struct{ s service.ChatService }

func New(s service.ChatService) controller.ChatController { return &ChatCtrl{s} }

func (h *ChatCtrl) Send(c echo.Context) error {
	var req service.SendRequest
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	m, err := h.s.Send(c.Request().Context(), req)
	if err != nil {
		return httperr.Respond(c, err, "Message")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *ChatCtrl) History(c echo.Context) error {
	list, err := h.s.History(c.Request().Context(), c.Param("farmerId"))
	if err != nil {
		return httperr.Respond(c, err, "Farmer")
	}
	return c.JSON(http.StatusOK, list)
}
