package dairyapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

type staticTokens string

func (t staticTokens) Token() (string, error) { return string(t), nil }

func TestListAttachesBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode([]models.MilkCollection{
			{ID: "m1", Date: "2024-05-01", QuantityLtr: "10"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens("tok-123"))
	records, err := client.MilkCollections(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "m1", records[0].ID)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/milk-collections", gotPath)
}

func TestEmptyTokenOmitsAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens(""))
	_, err := client.Sales(context.Background())

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestCreateAndUpdatePaths(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	ctx := context.Background()

	require.NoError(t, client.CreateSale(ctx, models.Sale{Customer: "Ravi"}))
	require.NoError(t, client.UpdateSale(ctx, "s1", models.Sale{Customer: "Ravi"}))
	require.NoError(t, client.AddStock(ctx, models.Stock{ProductID: "p1", Quantity: "5"}))
	require.NoError(t, client.Delete(ctx, "productions", "pr9"))

	assert.Equal(t, []call{
		{http.MethodPost, "/sales"},
		{http.MethodPut, "/sales/s1"},
		{http.MethodPost, "/stocks/addstock"},
		{http.MethodDelete, "/productions/pr9"},
	}, calls)
}

func TestErrorStatusSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Products(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
	assert.Contains(t, err.Error(), "token expired")
}

func TestRawReportPassesQueryAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/summary", r.URL.Path)
		assert.Equal(t, "jan", r.URL.Query().Get("month"))
		_, _ = w.Write([]byte(`{"total":42}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	body, err := client.SummaryReport(context.Background(), "jan")

	require.NoError(t, err)
	assert.JSONEq(t, `{"total":42}`, string(body))
}

func TestReportDataPostsPeriod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reports/pdfreport", r.URL.Path)

		var period models.Period
		require.NoError(t, json.NewDecoder(r.Body).Decode(&period))
		assert.Equal(t, models.PeriodWeek, period.Kind)
		assert.Equal(t, "2024-05-01", period.Date)

		_ = json.NewEncoder(w).Encode(models.ReportData{
			Milk: []models.MilkCollection{{ID: "m1"}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	data, err := client.ReportData(context.Background(), models.Period{Kind: models.PeriodWeek, Date: "2024-05-01"})

	require.NoError(t, err)
	require.Len(t, data.Milk, 1)
}

func TestSQLAgentRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sqlagent", r.URL.Path)

		var req agentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "User: how much milk today?", req.Messages)

		_ = json.NewEncoder(w).Encode(agentResponse{Reply: "15 litres"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	reply, err := client.SQLAgent(context.Background(), "User: how much milk today?")

	require.NoError(t, err)
	assert.Equal(t, "15 litres", reply)
}
