package controller

import "github.com/labstack/echo/v4"

type SuggestionController interface {
	List(c echo.Context) error
	Patch(c echo.Context) error
	Generate(c echo.Context) error
	Export(c echo.Context) error
}
