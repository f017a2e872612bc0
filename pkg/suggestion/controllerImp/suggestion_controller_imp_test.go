package controllerImp

import (
	"context"
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
	"farmbot/pkg/ai"
	"farmbot/pkg/climate"
	farmerRepo "farmbot/pkg/farmer/repositoryImp"
	"farmbot/pkg/suggestion/repositoryImp"
	"farmbot/pkg/suggestion/serviceImp"
)

func TestSuggestionEndpoints(t *testing.T) {
	farmers := farmerRepo.NewMemory()
	f := &entities.Farmer{Name: "Gita", District: "Kannur", LandType: "paddy", Crops: []string{"Rice"}}
	require.NoError(t, farmers.Create(context.Background(), f))

	rules := climate.New(nil)
	now := func() time.Time { return time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC) }
	svc := serviceImp.NewSuggestionService(repositoryImp.NewMemory(), farmers, ai.NewMock(rules), rules, zap.NewNop(), now)
	h := New(svc)

	e := echo.New()
	e.GET("/api/suggestions/:farmerId", h.List)
	e.GET("/api/suggestions/:farmerId/export", h.Export)
	e.PATCH("/api/suggestions/:id", h.Patch)
	e.POST("/api/generate-suggestions/:farmerId", h.Generate)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate-suggestions/"+f.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var list []entities.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.NotEmpty(t, list)
	for _, s := range list {
		assert.Equal(t, entities.CategorySeasonal, s.Category)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate-suggestions/"+f.ID+"?focus=emergency", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var after []entities.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	require.Greater(t, len(after), len(list))
	for _, s := range after[len(list):] {
		assert.Equal(t, entities.PriorityHigh, s.Priority, s.Title)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate-suggestions/"+f.ID+"?focus=someday", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "focus must be one of")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate-suggestions/ghost", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Farmer not found"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPatch, "/api/suggestions/"+list[0].ID, strings.NewReader(`{"isCompleted":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isCompleted":true`)

	req = httptest.NewRequest(http.MethodPatch, "/api/suggestions/"+list[0].ID, strings.NewReader(`{"priority":"asap"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPatch, "/api/suggestions/missing", strings.NewReader(`{"isCompleted":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.JSONEq(t, `{"message":"Suggestion not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suggestions/"+f.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suggestions/"+f.ID+"/export", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMIME, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), ".xlsx")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
}
