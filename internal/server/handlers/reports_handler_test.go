package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
	"github.com/sarvasvaa/dairyops/pkg/clients/dairyapi"
)

func reportsRouter(backend http.Handler) (*gin.Engine, *httptest.Server) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(backend)
	h := NewReportsHandler(dairyapi.NewClient(srv.URL, nil), nil)
	r := gin.New()
	r.GET("/reports/summary", h.Summary)
	r.POST("/reports/generate", h.Generate)
	return r, srv
}

func TestGenerateReturnsPDFAttachment(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reports/pdfreport", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.ReportData{
			Milk: []models.MilkCollection{{Date: "2024-05-01", QuantityLtr: "10"}},
		})
	})
	r, srv := reportsRouter(backend)
	defer srv.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reports/generate",
		strings.NewReader(`{"period":"week","date":"2024-05-01"}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "report_week_2024-05-01.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestGenerateRejectsIncompletePeriod(t *testing.T) {
	r, srv := reportsRouter(http.NotFoundHandler())
	defer srv.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reports/generate", strings.NewReader(`{"period":"week"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateRejectsUnknownMonthKey(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.ReportData{})
	})
	r, srv := reportsRouter(backend)
	defer srv.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reports/generate",
		strings.NewReader(`{"period":"month","date":"smarch"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown month key")
}

func TestGenerateBackendFailure(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r, srv := reportsRouter(backend)
	defer srv.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reports/generate",
		strings.NewReader(`{"period":"day","date":"2024-05-01"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSummaryProxiesBackendPayload(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reports/summary", r.URL.Path)
		assert.Equal(t, "jan", r.URL.Query().Get("month"))
		_, _ = w.Write([]byte(`{"total_milk":451.5}`))
	})
	r, srv := reportsRouter(backend)
	defer srv.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/summary?month=jan", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_milk":451.5}`, w.Body.String())
}
