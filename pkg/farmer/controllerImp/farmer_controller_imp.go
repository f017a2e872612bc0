package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmbot/entities"
	"farmbot/pkg/farmer/controller"
	"farmbot/pkg/farmer/service"
	"farmbot/pkg/httperr"
)

type FarmerCtrl struct{ s service.FarmerService }

func New(s service.FarmerService) controller.FarmerController { return &FarmerCtrl{s} }

type createReq struct {
	Name       string   `json:"name"`
	District   string   `json:"district"`
	LandSize   string   `json:"landSize"`
	LandType   string   `json:"landType"`
	Crops      []string `json:"crops"`
	Experience string   `json:"experience"`
	Language   string   `json:"language"`
}

func (h *FarmerCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	f := &entities.Farmer{
		Name: req.Name, District: req.District, LandSize: req.LandSize, LandType: req.LandType,
		Crops: req.Crops, Experience: req.Experience, Language: req.Language,
	}
	out, err := h.s.Onboard(c.Request().Context(), f)
	if err != nil {
		return httperr.Respond(c, err, "Farmer")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmerCtrl) Get(c echo.Context) error {
	f, err := h.s.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httperr.Respond(c, err, "Farmer")
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmerCtrl) Patch(c echo.Context) error {
	var in entities.FarmerPatch
	if err := c.Bind(&in); err != nil {
		return httperr.BadJSON(c)
	}
	f, err := h.s.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return httperr.Respond(c, err, "Farmer")
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmerCtrl) Tasks(c echo.Context) error {
	// 0 asks the service for the current month; an explicit month must be 1-12
	month := 0
	if v := c.QueryParam("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return httperr.Respond(c, &entities.ValidationError{Errors: []string{"month must be between 1 and 12"}}, "Farmer")
		}
		month = m
	}
	tasks, err := h.s.Tasks(c.Request().Context(), c.Param("id"), month)
	if err != nil {
		return httperr.Respond(c, err, "Farmer")
	}
	return c.JSON(http.StatusOK, tasks)
}
