package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var appStart = time.Now()

// Pinger is implemented by database.GormPinger, database.PoolPinger and
// database.NopPinger.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCtrl struct {
	db      Pinger
	storage string
	llm     string
}

func NewHealthCtrl(db Pinger, storage, llm string) *HealthCtrl {
	return &HealthCtrl{db: db, storage: storage, llm: llm}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db == nil {
		dbOK = false
		dbErr = "no storage configured"
	} else if err := h.db.Ping(ctx); err != nil {
		dbOK = false
		dbErr = "ping: " + err.Error()
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK      bool   `json:"ok"`
		Backend string `json:"backend,omitempty"`
		Err     string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Backend: h.storage, Err: dbErr},
			"llm":      sub{OK: true, Backend: h.llm},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
