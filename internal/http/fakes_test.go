package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sustainastock/sustainastock-ui/internal/adapters/memory"
	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	"github.com/sustainastock/sustainastock-ui/internal/service"
	"github.com/sustainastock/sustainastock-ui/internal/testutil"
)

const testCSRFToken = "test-csrf-token"

// fakeInventory is a scripted InventoryService that counts calls.
type fakeInventory struct {
	mu    sync.Mutex
	calls map[string]int

	dashboard       *service.DashboardData
	inventory       *service.InventoryData
	recommendations *service.RecommendationsData
	alerts          []model.Alert
	reports         *service.ReportsData
	report          model.ReportFile
	err             error
	writeErr        error

	lastSupply   model.SupplyRequest
	lastSupplyID int
	lastUsage    model.UsageRecord
	lastAlertID  string
	lastQuery    service.InventoryQuery
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{
		calls:           map[string]int{},
		dashboard:       &service.DashboardData{},
		inventory:       &service.InventoryData{},
		recommendations: &service.RecommendationsData{},
		reports:         &service.ReportsData{},
	}
}

func (f *fakeInventory) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeInventory) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeInventory) Dashboard(context.Context, string) (*service.DashboardData, error) {
	f.record("Dashboard")
	if f.err != nil {
		return nil, f.err
	}
	return f.dashboard, nil
}

func (f *fakeInventory) Inventory(_ context.Context, _ string, q service.InventoryQuery) (*service.InventoryData, error) {
	f.record("Inventory")
	f.lastQuery = q
	if f.err != nil {
		return nil, f.err
	}
	return f.inventory, nil
}

func (f *fakeInventory) Recommendations(context.Context, string) (*service.RecommendationsData, error) {
	f.record("Recommendations")
	if f.err != nil {
		return nil, f.err
	}
	return f.recommendations, nil
}

func (f *fakeInventory) Alerts(context.Context, string) ([]model.Alert, error) {
	f.record("Alerts")
	if f.err != nil {
		return nil, f.err
	}
	return f.alerts, nil
}

func (f *fakeInventory) Reports(context.Context, string) (*service.ReportsData, error) {
	f.record("Reports")
	if f.err != nil {
		return nil, f.err
	}
	return f.reports, nil
}

func (f *fakeInventory) SaveSupply(
	_ context.Context,
	_ domainauth.Session,
	_ string,
	id int,
	req model.SupplyRequest,
) (model.Supply, error) {
	f.record("SaveSupply")
	f.lastSupplyID = id
	f.lastSupply = req
	if f.writeErr != nil {
		return model.Supply{}, f.writeErr
	}
	return model.Supply{ID: max(id, 1), Name: req.Name}, nil
}

func (f *fakeInventory) RecordUsage(_ context.Context, _ string, rec model.UsageRecord) error {
	f.record("RecordUsage")
	f.lastUsage = rec
	return f.writeErr
}

func (f *fakeInventory) ResolveAlert(_ context.Context, _ string, id string) error {
	f.record("ResolveAlert")
	f.lastAlertID = id
	return f.writeErr
}

func (f *fakeInventory) ExportReport(context.Context, string, model.ReportFormat) (model.ReportFile, error) {
	f.record("ExportReport")
	if f.writeErr != nil {
		return model.ReportFile{}, f.writeErr
	}
	return f.report, nil
}

// fakeAuthService scripts login and registration outcomes.
type fakeAuthService struct {
	token       string
	loginErr    error
	registerErr error
	lastCreds   domainauth.Credentials
	lastReg     domainauth.Registration
}

func (f *fakeAuthService) Login(_ context.Context, creds domainauth.Credentials) (*service.LoginResult, error) {
	f.lastCreds = creds
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &service.LoginResult{Token: f.token, Session: domainauth.Session{Username: creds.Username}}, nil
}

func (f *fakeAuthService) Register(_ context.Context, reg domainauth.Registration) error {
	f.lastReg = reg
	return f.registerErr
}

// testApp is a fully wired router over fakes.
type testApp struct {
	handler   http.Handler
	inventory *fakeInventory
	auth      *fakeAuthService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return nil
	}

	inv := newFakeInventory()
	authSvc := &fakeAuthService{}
	handler := NewRouter(RouterServices{
		Auth:      newTestAuthContext(t),
		AuthSvc:   authSvc,
		Inventory: inv,
		Flash:     memory.NewFlashStore(time.Minute),
		Templates: tr,
		PageSize:  10,
		Now:       testutil.FixedTimeFunc(testutil.TestTime()),
		Logger:    discardLogger(),
	})
	require.NotNil(t, handler)
	return &testApp{handler: handler, inventory: inv, auth: authSvc}
}

// get issues a GET carrying the token cookie (if any) and returns the recorder.
func (a *testApp) get(target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// post submits a form with a valid CSRF pair.
func (a *testApp) post(target, token string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	form.Set(DefaultCSRFFieldName, testCSRFToken)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// follow replays the flash cookie from a redirect onto a GET of its Location.
func (a *testApp) follow(t *testing.T, rec *httptest.ResponseRecorder, token string) *httptest.ResponseRecorder {
	t.Helper()
	loc := rec.Header().Get("Location")
	require.NotEmpty(t, loc, "expected a redirect")
	req := httptest.NewRequest(http.MethodGet, loc, nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == FlashCookieName {
			req.AddCookie(c)
		}
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	next := httptest.NewRecorder()
	a.handler.ServeHTTP(next, req)
	return next
}
