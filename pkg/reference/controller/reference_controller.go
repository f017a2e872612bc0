package controller

import "github.com/labstack/echo/v4"

// ReferenceController serves the static lookup tables the onboarding form and
// dashboard read.
type ReferenceController interface {
	Districts(c echo.Context) error
	LandTypes(c echo.Context) error
	Crops(c echo.Context) error
	ExperienceLevels(c echo.Context) error
	Season(c echo.Context) error
	Recommendations(c echo.Context) error
	Calendar(c echo.Context) error
	CropPrices(c echo.Context) error
	Tips(c echo.Context) error
}
