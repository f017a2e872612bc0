package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmbot/pkg/climate"
	"farmbot/pkg/reference/controller"
)

type ReferenceCtrl struct {
	rules climate.RulesEngine
	now   func() time.Time
}

func New(rules climate.RulesEngine, now func() time.Time) controller.ReferenceController {
	if now == nil {
		now = time.Now
	}
	return &ReferenceCtrl{rules: rules, now: now}
}

// month reads ?month=, defaulting to the current month.
func (h *ReferenceCtrl) month(c echo.Context) (int, bool) {
	v := c.QueryParam("month")
	if v == "" {
		return int(h.now().Month()), true
	}
	m, err := strconv.Atoi(v)
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}

func badMonth(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request", "errors": []string{"Month must be between 1 and 12"}})
}

func (h *ReferenceCtrl) Districts(c echo.Context) error {
	return c.JSON(http.StatusOK, climate.Districts)
}

func (h *ReferenceCtrl) LandTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, climate.LandTypes)
}

func (h *ReferenceCtrl) Crops(c echo.Context) error {
	return c.JSON(http.StatusOK, climate.FilterCrops(c.QueryParam("landType"), c.QueryParam("season")))
}

func (h *ReferenceCtrl) ExperienceLevels(c echo.Context) error {
	return c.JSON(http.StatusOK, climate.ExperienceLevels)
}

func (h *ReferenceCtrl) Season(c echo.Context) error {
	m, ok := h.month(c)
	if !ok {
		return badMonth(c)
	}
	season := climate.KeralaSeason(m)
	return c.JSON(http.StatusOK, echo.Map{
		"month":   m,
		"season":  season,
		"details": climate.CurrentSeason(m),
		"crops":   climate.SeasonalCrops(season, c.QueryParam("landType")),
	})
}

func (h *ReferenceCtrl) Recommendations(c echo.Context) error {
	return c.JSON(http.StatusOK, climate.CropRecommendations(c.QueryParam("landType"), c.QueryParam("experience")))
}

func (h *ReferenceCtrl) Calendar(c echo.Context) error {
	return c.JSON(http.StatusOK, h.rules.Calendar())
}

type cropPriceOut struct {
	climate.CropPrice
	HarvestSeason bool `json:"harvestSeason"`
}

func (h *ReferenceCtrl) CropPrices(c echo.Context) error {
	m, ok := h.month(c)
	if !ok {
		return badMonth(c)
	}
	out := make([]cropPriceOut, 0, len(climate.CropPrices))
	for _, p := range climate.CropPrices {
		out = append(out, cropPriceOut{CropPrice: p, HarvestSeason: climate.IsHarvestSeason(p.Crop, m)})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReferenceCtrl) Tips(c echo.Context) error {
	return c.JSON(http.StatusOK, climate.Tips)
}
