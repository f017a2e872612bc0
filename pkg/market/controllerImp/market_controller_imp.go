package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbot/pkg/httperr"
	"farmbot/pkg/market/controller"
	"farmbot/pkg/market/service"
)

type MarketCtrl struct{ s service.MarketService }

func New(s service.MarketService) controller.MarketController { return &MarketCtrl{s} }

func (h *MarketCtrl) List(c echo.Context) error {
	prices, err := h.s.Prices(c.Request().Context(), c.QueryParam("district"))
	if err != nil {
		return httperr.Respond(c, err, "Market price")
	}
	return c.JSON(http.StatusOK, prices)
}
