package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"

	"github.com/greenops/ecocycle/internal/carbonapi"
	"github.com/greenops/ecocycle/internal/config"
	"github.com/greenops/ecocycle/pkg/metrics"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := config.Default()
	client := carbonapi.New("", "", zerolog.Nop())
	return NewRouter(cfg, zerolog.Nop(), client, metrics.NewManager())
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Trace-Id"))
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	// Generate one request so counters exist.
	doJSON(t, router, http.MethodGet, "/health", "")

	w := doJSON(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ecocycle_http_requests_total")
}

func TestCORS(t *testing.T) {
	get := func(router *gin.Engine, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("no configured origins allows any", func(t *testing.T) {
		w := get(newTestRouter(t), "https://anywhere.example")
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("configured origins are enforced", func(t *testing.T) {
		cfg := config.Default()
		cfg.Server.AllowedOrigins = []string{"https://dashboard.example.com"}
		client := carbonapi.New("", "", zerolog.Nop())
		router := NewRouter(cfg, zerolog.Nop(), client, metrics.NewManager())

		allowed := get(router, "https://dashboard.example.com")
		assert.Equal(t, "https://dashboard.example.com",
			allowed.Header().Get("Access-Control-Allow-Origin"))

		denied := get(router, "https://evil.example.com")
		assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestReferenceEndpoints(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path     string
		contains string
	}{
		{"/api/v1/reference/devices", "Laptop (Standard)"},
		{"/api/v1/reference/personas", "Admin Normal (HR/Finance)"},
		{"/api/v1/reference/countries", `"FR"`},
		{"/api/v1/reference/strategies", "circular_procurement"},
		{"/api/v1/reference/storage-classes", "Glacier"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestAuditEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid request", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/audit",
			`{"device":"Laptop (Standard)","age_years":4,"persona":"Admin Normal (HR/Finance)","country":"FR"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Analysis struct {
				Recommendation string `json:"recommendation"`
			} `json:"analysis"`
			GridSource string `json:"grid_source"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Analysis.Recommendation)
		assert.Equal(t, "fallback", resp.GridSource)
	})

	t.Run("missing device is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/audit", `{"age_years":4}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	})
}

func TestROIEndpoint(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodPost, "/api/v1/roi",
		`{"equipment":"Laptop","manufacturing_co2_kg":250,"annual_salary_eur":50000}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CO2SavedKg float64 `json:"co2_saved_kg"`
		NetROIEUR  float64 `json:"net_roi_eur"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 200.0, resp.CO2SavedKg, 1e-9)
	assert.InDelta(t, -1484.0, resp.NetROIEUR, 1e-9)
}

func TestFleetAnalyzeEndpoint_JSON(t *testing.T) {
	body := `{"rows":[
		{"device_model":"Laptop (Standard)","age_years":5,"persona":"Admin Normal (HR/Finance)","country":"FR","maison":"Sephora"},
		{"device_model":"Tablet","age_years":2,"persona":"Vendor (Phone/Tablet)","country":"IT"}
	]}`

	w := doJSON(t, newTestRouter(t), http.MethodPost, "/api/v1/fleet/analyze", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Devices []struct {
			Device string `json:"device"`
		} `json:"devices"`
		Summary struct {
			TotalDevices int `json:"total_devices"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Summary.TotalDevices)
	require.Len(t, resp.Devices, 2)
}

func TestFleetAnalyzeEndpoint_CSVUpload(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "fleet.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Device_Model,Age_Years,Persona,Country\nLaptop (Standard),4,Admin Normal (HR/Finance),FR\n"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("goal", "eco_first"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fleet/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_devices":1`)
}

func TestFleetAnalyzeEndpoint_EmptyRows(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodPost, "/api/v1/fleet/analyze", `{"rows":[]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFleetDemoEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/fleet/demo?n=25&seed=7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_devices":25`)

	t.Run("same seed same fleet", func(t *testing.T) {
		again := doJSON(t, router, http.MethodGet, "/api/v1/fleet/demo?n=25&seed=7", "")
		assert.Equal(t, w.Body.String(), again.Body.String())
	})

	t.Run("bad n rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/fleet/demo?n=banana", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStrategyCompareEndpoint(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodPost, "/api/v1/strategy/compare",
		`{"fleet_size":5000,"current_refresh_years":4,"target_reduction":0.2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projections []struct {
			StrategyKey    string  `json:"strategy_key"`
			MonthsToTarget float64 `json:"months_to_target"`
		} `json:"projections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Projections, 6)
}

func TestCloudPlanEndpoint(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodPost, "/api/v1/cloud/plan",
		`{"provider":"Azure","current_gb":50000,"annual_growth_rate":0.25,"target_reduction":0.3,"years":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"showers_equivalent"`)

	t.Run("zero volume rejected", func(t *testing.T) {
		w := doJSON(t, newTestRouter(t), http.MethodPost, "/api/v1/cloud/plan", `{"current_gb":0}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUnknownRoute(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/api/v1/unicorns", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
