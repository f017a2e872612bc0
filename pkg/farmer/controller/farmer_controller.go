package controller

import "github.com/labstack/echo/v4"

type FarmerController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	Patch(c echo.Context) error
	Tasks(c echo.Context) error
}
