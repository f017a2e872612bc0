package router

import (
	"github.com/labstack/echo/v4"
)

// New registers every route on e. limit guards the endpoints that reach the
// language model.
func New(
	e *echo.Echo,
	limit echo.MiddlewareFunc,
	farmerCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		Patch(echo.Context) error
		Tasks(echo.Context) error
	},
	chatCtrl interface {
		Send(echo.Context) error
		History(echo.Context) error
	},
	suggCtrl interface {
		List(echo.Context) error
		Patch(echo.Context) error
		Generate(echo.Context) error
		Export(echo.Context) error
	},
	weatherCtrl interface{ Get(echo.Context) error },
	marketCtrl interface{ List(echo.Context) error },
	refCtrl interface {
		Districts(echo.Context) error
		LandTypes(echo.Context) error
		Crops(echo.Context) error
		ExperienceLevels(echo.Context) error
		Season(echo.Context) error
		Recommendations(echo.Context) error
		Calendar(echo.Context) error
		CropPrices(echo.Context) error
		Tips(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	if limit == nil {
		limit = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	e.GET("/health", healthCtrl.Health)
	api := e.Group("/api")

	api.POST("/farmers", farmerCtrl.Create)
	api.GET("/farmers/:id", farmerCtrl.Get)
	api.PATCH("/farmers/:id", farmerCtrl.Patch)
	api.GET("/farmers/:id/tasks", farmerCtrl.Tasks)

	api.POST("/chat", chatCtrl.Send, limit)
	api.GET("/chat/:farmerId", chatCtrl.History)

	api.GET("/suggestions/:farmerId", suggCtrl.List)
	api.GET("/suggestions/:farmerId/export", suggCtrl.Export)
	api.PATCH("/suggestions/:id", suggCtrl.Patch)
	api.POST("/generate-suggestions/:farmerId", suggCtrl.Generate, limit)

	api.GET("/weather/:district", weatherCtrl.Get)
	api.GET("/market-prices", marketCtrl.List)

	ref := api.Group("/reference")
	ref.GET("/districts", refCtrl.Districts)
	ref.GET("/land-types", refCtrl.LandTypes)
	ref.GET("/crops", refCtrl.Crops)
	ref.GET("/experience-levels", refCtrl.ExperienceLevels)
	ref.GET("/season", refCtrl.Season)
	ref.GET("/recommendations", refCtrl.Recommendations)
	ref.GET("/calendar", refCtrl.Calendar)
	ref.GET("/crop-prices", refCtrl.CropPrices)
	ref.GET("/tips", refCtrl.Tips)
	return e
}
