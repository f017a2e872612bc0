package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbot/pkg/httperr"
	"farmbot/pkg/weather/controller"
	"farmbot/pkg/weather/service"
)

type WeatherCtrl struct{ s service.WeatherService }

func New(s service.WeatherService) controller.WeatherController { return &WeatherCtrl{s} }

func (h *WeatherCtrl) Get(c echo.Context) error {
	w, err := h.s.Get(c.Request().Context(), c.Param("district"))
	if err != nil {
		return httperr.Respond(c, err, "Weather")
	}
	return c.JSON(http.StatusOK, w)
}
