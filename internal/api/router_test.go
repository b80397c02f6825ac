package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpinepulse/internal/api"
	"alpinepulse/internal/api/controllers"
	"alpinepulse/internal/models/db_models"
	"alpinepulse/internal/models/response_models"
	"alpinepulse/internal/planner/interests"
	"alpinepulse/internal/planner/triprequest"
	"alpinepulse/internal/repositories"
	"alpinepulse/internal/services"
	"alpinepulse/pkg/clock"
	mem "alpinepulse/pkg/memcache"
	"alpinepulse/pkg/middleware"
)

type stubCityRepo struct{}

func (stubCityRepo) ListCities(ctx context.Context) ([]db_models.City, error) {
	return []db_models.City{{Key: "zurich", DisplayName: "Zürich"}, {Key: "lugano", DisplayName: "Lugano"}}, nil
}

func (stubCityRepo) GetCityByKey(ctx context.Context, key string) (*db_models.City, error) {
	return nil, nil
}

type stubAttractionRepo struct{}

func (stubAttractionRepo) ListAttractions(ctx context.Context) ([]db_models.Attraction, error) {
	return []db_models.Attraction{
		{Identifier: "castelgrande", Name: "Castelgrande", City: db_models.City{DisplayName: "Bellinzona"}},
		{Identifier: "monte-bre", Name: "Monte Brè", City: db_models.City{DisplayName: "Lugano"}},
		{Identifier: "hallwyl", Name: "Hallwyl Castle", City: db_models.City{DisplayName: "Aargau"}},
	}, nil
}

func (stubAttractionRepo) GetByIdentifier(ctx context.Context, identifier string) (*db_models.Attraction, error) {
	return nil, nil
}

type stubPlanClient struct{}

func (stubPlanClient) GeneratePlan(ctx context.Context, req triprequest.PlanRequest) (*response_models.PlanResponse, error) {
	return &response_models.PlanResponse{FromCity: req.FromCity, ToCity: req.ToCity, NumDays: req.Days, Season: req.Season}, nil
}

var (
	_ repositories.CityRepository       = stubCityRepo{}
	_ repositories.AttractionRepository = stubAttractionRepo{}
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := interests.DefaultRankedConfig()
	cache := services.NewPlanSessionCache(mem.NewSessionBlobs())
	plannerService := services.NewPlannerService(stubAttractionRepo{}, stubPlanClient{}, cache, cfg, clock.NewSystemClock())
	plannerService.SetShuffleSeedForTest(7)
	catalogService := services.NewCatalogService(stubCityRepo{}, stubAttractionRepo{}, cfg)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	api.RegisterRoutes(r,
		controllers.NewPlannerController(plannerService),
		controllers.NewCatalogController(catalogService))

	dist := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dist, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte("<!doctype html><title>planner</title>"), 0o644))
	api.RegisterSPA(r, dist)

	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "success", envelope.Status)
	return envelope.Data
}

func TestPlannerEndpointsEndToEnd(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/planner/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := dataField(t, w)
	id, _ := state["session_id"].(string)
	require.NotEmpty(t, id)

	w = do(t, r, http.MethodPut, "/api/planner/session/"+id+"/trip", map[string]any{
		"origin_city":      "zurich",
		"destination_city": "lugano",
		"trip_days":        7,
		"season":           "summer",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataField(t, w)["ready"])

	w = do(t, r, http.MethodPost, "/api/planner/session/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	plan := dataField(t, w)
	assert.Equal(t, "lugano", plan["to_city"])

	w = do(t, r, http.MethodGet, "/api/planner/session/"+id+"/plan", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodDelete, "/api/planner/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/api/planner/session/"+id+"/plan", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownSessionIs404(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/planner/session/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lugano")

	w = do(t, r, http.MethodGet, "/api/attractions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "castelgrande")

	w = do(t, r, http.MethodGet, "/api/themes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nature")
}

func TestSPAFallback(t *testing.T) {
	r := newTestRouter(t)

	// deep links land on the SPA entry point
	for _, path := range []string{"/", "/planner", "/planner/results"} {
		w := do(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "planner", path)
	}

	// API and asset misses stay 404s
	w := do(t, r, http.MethodGet, "/api/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodGet, "/assets/missing.js", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
