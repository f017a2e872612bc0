package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"farmbot/entities"
	"farmbot/pkg/climate"
	"farmbot/pkg/farmer/repositoryImp"
	"farmbot/pkg/farmer/serviceImp"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	now := func() time.Time { return time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC) }
	svc := serviceImp.NewFarmerService(repositoryImp.NewMemory(), nil, climate.New(nil), zap.NewNop(), now)
	h := New(svc)

	e := echo.New()
	e.POST("/api/farmers", h.Create)
	e.GET("/api/farmers/:id", h.Get)
	e.PATCH("/api/farmers/:id", h.Patch)
	e.GET("/api/farmers/:id/tasks", h.Tasks)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFarmerLifecycle(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/farmers",
		`{"name":"Meera","district":"Alappuzha","landSize":"1 acre","landType":"paddy","crops":["Rice"],"experience":"new"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created entities.Farmer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "en", created.Language)

	rec = do(e, http.MethodGet, "/api/farmers/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"landType":"paddy"`)

	rec = do(e, http.MethodPatch, "/api/farmers/"+created.ID, `{"landSize":"2 acres"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"landSize":"2 acres"`)

	rec = do(e, http.MethodGet, "/api/farmers/"+created.ID+"/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []climate.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.NotEmpty(t, tasks)
	assert.Equal(t, "Harvest Rice", tasks[0].Title)
}

func TestFarmerErrors(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/farmers", `{"name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "District is required")

	rec = do(e, http.MethodPost, "/api/farmers", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/farmers/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Farmer not found"}`, rec.Body.String())

	rec = do(e, http.MethodPatch, "/api/farmers/unknown", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for _, month := range []string{"abc", "0", "13", "-1"} {
		rec = do(e, http.MethodGet, "/api/farmers/unknown/tasks?month="+month, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, month)
		assert.JSONEq(t, `{"message":"Invalid request","errors":["month must be between 1 and 12"]}`, rec.Body.String(), month)
	}
}
