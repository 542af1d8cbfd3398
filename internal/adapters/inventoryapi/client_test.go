package inventoryapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	apperrors "github.com/sustainastock/sustainastock-ui/internal/errors"
)

type countingSink struct {
	mu     sync.Mutex
	counts map[string]int
}

func (s *countingSink) Count(name string, _ int64, _ map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counts == nil {
		s.counts = map[string]int{}
	}
	s.counts[name]++
}
func (s *countingSink) Gauge(string, float64, map[string]string)        {}
func (s *countingSink) Timing(string, time.Duration, map[string]string) {}

func newTestClient(t *testing.T, h http.Handler) (*Client, *countingSink) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	sink := &countingSink{}
	c, err := New(Config{BaseURL: srv.URL + "/", Metrics: sink})
	require.NoError(t, err)
	return c, sink
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	_, err = New(Config{BaseURL: "ftp://example.com"})
	require.Error(t, err)

	c, err := New(Config{BaseURL: " http://api.local:8000/ "})
	require.NoError(t, err)
	assert.Equal(t, "http://api.local:8000", c.BaseURL())
}

func TestListSupplies_SendsBearerAndQuery(t *testing.T) {
	c, sink := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/inventory/supplies", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "Paper", r.URL.Query().Get("category"))
		assert.Equal(t, "10", r.URL.Query().Get("skip"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": 1, "name": "A4 Paper", "category": "Paper", "quantity": 40, "expiration_date": "2027-01-01T00:00:00", "cost_per_unit": 3.5},
		})
	}))

	got, err := c.ListSupplies(context.Background(), "tok-123", model.SupplyListOptions{Category: "Paper", Skip: 10, Limit: 5})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A4 Paper", got[0].Name)
	assert.InDelta(t, 3.5, got[0].UnitCost(), 1e-9)
	assert.Equal(t, "2027-01-01", got[0].ExpirationDate.Date())
	assert.Equal(t, 1, sink.counts["api.request"])
}

func TestNoTokenSendsNoAuthorization(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []any{})
	}))

	_, err := c.ListAlerts(context.Background(), "")
	require.NoError(t, err)
}

func TestAPIErrorDetail(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		wantCode   apperrors.ErrorCode
	}{
		{name: "string detail", status: 400, body: `{"detail":"Username already exists"}`, wantDetail: "Username already exists", wantCode: apperrors.ErrCodeValidation},
		{name: "validation list", status: 422, body: `{"detail":[{"msg":"field required"},{"msg":"too short"}]}`, wantDetail: "field required; too short", wantCode: apperrors.ErrCodeValidation},
		{name: "error envelope", status: 403, body: `{"error":"Invalid token"}`, wantDetail: "Invalid token", wantCode: apperrors.ErrCodeForbidden},
		{name: "not json", status: 502, body: `bad gateway`, wantDetail: "", wantCode: apperrors.ErrCodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))

			err := c.Register(context.Background(), domainauth.Registration{Username: "x", Password: "password1"})
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Equal(t, "/auth/register", apiErr.Path)
			assert.Equal(t, tt.wantCode, apperrors.GetCode(apperrors.MapUpstreamError(err)))
		})
	}
}

func TestLogin_CapturesCookie(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds domainauth.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "jdoe", creds.Username)
		assert.Equal(t, "secret", creds.Password)

		http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "Bearer aaa.bbb.ccc", Path: "/"})
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Login successful"})
	}))

	tok, err := c.Login(context.Background(), domainauth.Credentials{Username: "jdoe", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "aaa.bbb.ccc", tok)
}

func TestLogin_BodyFallback(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"access_token": "xxx.yyy.zzz"})
	}))

	tok, err := c.Login(context.Background(), domainauth.Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)
	assert.Equal(t, "xxx.yyy.zzz", tok)
}

func TestLogin_NoToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Login successful"})
	}))

	_, err := c.Login(context.Background(), domainauth.Credentials{Username: "a", Password: "b"})
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestLogin_Unauthorized(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Invalid username or password"})
	}))

	_, err := c.Login(context.Background(), domainauth.Credentials{Username: "a", Password: "b"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatus())
}

func TestWrites(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()

		switch r.URL.Path {
		case "/inventory/usage":
			var rec model.UsageRecord
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
			assert.Equal(t, model.UsageRecord{SupplyID: 3, QuantityUsed: 2}, rec)
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "ok"})
		case "/inventory/alerts/7/resolve":
			w.WriteHeader(http.StatusNoContent)
		default:
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "2027-02-01T00:00:00", req["expiration_date"])
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 3, "name": req["name"], "quantity": req["quantity"]})
		}
	}))

	ctx := context.Background()
	req := model.SupplyRequest{
		Name:           "Toner",
		Category:       "Ink",
		Quantity:       4,
		ExpirationDate: model.NewTimestamp(time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	created, err := c.CreateSupply(ctx, "t", req)
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)

	_, err = c.UpdateSupply(ctx, "t", 3, req)
	require.NoError(t, err)

	require.NoError(t, c.RecordUsage(ctx, "t", model.UsageRecord{SupplyID: 3, QuantityUsed: 2}))
	require.NoError(t, c.ResolveAlert(ctx, "t", "7"))

	assert.Equal(t, []string{
		"POST /inventory/supplies",
		"PUT /inventory/supplies/3",
		"POST /inventory/usage",
		"POST /inventory/alerts/7/resolve",
	}, calls)
}

func TestReadEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /inventory/alerts", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{{"supply_id": 1, "name": "Pens", "alert": "Overstocking", "quantity": 300}})
	})
	mux.HandleFunc("GET /inventory/recommendations", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{{"supply_id": 1, "current_stock": 5, "average_weekly_usage": 2.5, "recommended_order_quantity": 10, "supplier": "Acme"}})
	})
	mux.HandleFunc("GET /inventory/savings", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{{"supply_id": 1, "name": "Pens", "overstock_quantity": 100, "estimated_savings": 50.5}})
	})
	mux.HandleFunc("GET /inventory/usage/history", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"dates": []string{"2026-10-01"}, "values": []float64{4}})
	})
	mux.HandleFunc("GET /inventory/savings/history", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"months": []string{"2026-09"}, "values": []float64{120}})
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	alerts, err := c.ListAlerts(ctx, "t")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, model.AlertUrgencyMedium, alerts[0].Urgency)

	recs, err := c.ListRecommendations(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, "Acme", recs[0].Supplier)

	savings, err := c.ListSavings(ctx, "t")
	require.NoError(t, err)
	assert.InDelta(t, 50.5, savings[0].EstimatedSavings, 1e-9)

	uh, err := c.UsageHistory(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-01"}, uh.Dates)

	sh, err := c.SavingsHistory(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, []float64{120}, sh.Values)
}

func TestExportReport(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/reports/usage/export", r.URL.Path)
		if r.URL.Query().Get("format") != "pdf" {
			writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Invalid format"})
			return
		}
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, "%PDF-1.4 fake")
	}))

	file, err := c.ExportReport(context.Background(), "t", model.ReportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "%PDF-1.4 fake", string(file.Body))

	_, err = c.ExportReport(context.Background(), "t", model.ReportFormatExcel)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid format", apiErr.Detail)
}

func TestContextCancellation(t *testing.T) {
	release := make(chan struct{})
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListSupplies(ctx, "t", model.SupplyListOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPing(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "not found still reachable", status: http.StatusNotFound},
		{name: "server error", status: http.StatusBadGateway, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/", r.URL.Path)
				assert.Empty(t, r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			err := c.Ping(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
