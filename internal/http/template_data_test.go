package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	"github.com/sustainastock/sustainastock-ui/internal/http/ui/viewmodel"
)

func TestNewTemplateData_Anonymous(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	data := NewTemplateData(r, PageMeta{Title: "Sign in", PageTitle: "Sign in", CurrentPage: PageLogin}).Build()

	assert.Equal(t, "Sign in", data["Title"])
	assert.Equal(t, PageLogin, data["CurrentPage"])
	assert.Equal(t, false, data["IsAuthenticated"])
	assert.Equal(t, false, data["IsAdmin"])
	assert.NotContains(t, data, "User")
}

func TestNewTemplateData_WithSession(t *testing.T) {
	sess := &domainauth.Session{Username: "ann", FirstName: "Ann", LastName: "Lee", Role: domainauth.RoleAdmin}
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r = r.WithContext(withAuthState(r.Context(), &authState{Token: "t", Session: sess}))

	data := NewTemplateData(r, PageMeta{CurrentPage: PageDashboard}).Build()

	assert.Equal(t, true, data["IsAuthenticated"])
	assert.Equal(t, true, data["IsAdmin"])
	user, ok := data["User"].(*viewmodel.User)
	require.True(t, ok)
	assert.Equal(t, "ann", user.Username)
	assert.Equal(t, "Ann Lee", user.DisplayName)
	assert.Equal(t, "admin", user.Role)
}

func TestTemplateDataBuilder_WithPagination(t *testing.T) {
	tests := []struct {
		name     string
		opts     PaginationData
		wantPrev string
		wantNext string
		start    int
		end      int
	}{
		{
			name:     "middle page",
			opts:     PaginationData{Page: 2, PageSize: 10, HasNext: true, ItemCount: 10, BasePath: "/inventory"},
			wantPrev: "/inventory?category=Office&page=1&page_size=10",
			wantNext: "/inventory?category=Office&page=3&page_size=10",
			start:    11,
			end:      20,
		},
		{
			name:  "first and last page",
			opts:  PaginationData{Page: 1, PageSize: 10, ItemCount: 3, BasePath: "/inventory"},
			start: 1,
			end:   3,
		},
		{
			name: "empty page",
			opts: PaginationData{Page: 1, PageSize: 10, BasePath: "/inventory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/inventory?category=Office&page=2", nil)
			data := NewTemplateData(r, PageMeta{}).WithPagination(tt.opts).Build()

			p, ok := data["Pagination"].(viewmodel.Pagination)
			require.True(t, ok)
			assert.Equal(t, tt.wantPrev, p.PrevURL)
			assert.Equal(t, tt.wantNext, p.NextURL)
			assert.Equal(t, tt.start, p.StartIndex)
			assert.Equal(t, tt.end, p.EndIndex)
		})
	}
}

func TestTemplateDataBuilder_ErrorsFlashAndCustom(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	flash := &viewmodel.Flash{Kind: "success", Message: "Saved"}

	data := NewTemplateData(r, PageMeta{}).
		WithError("boom").
		WithFieldErrors(map[string]string{"name": "required"}).
		WithFieldErrors(nil).
		WithFlash(flash).
		WithFlash(nil).
		With("Extra", 42).
		Build()

	assert.Equal(t, true, data["Error"])
	assert.Equal(t, "boom", data["ErrorMessage"])
	assert.Equal(t, map[string]string{"name": "required"}, data["Errors"])
	assert.Same(t, flash, data["Flash"])
	assert.Equal(t, 42, data["Extra"])
}

func TestBuildPageURL_DropsHTMXAndBlankParams(t *testing.T) {
	q := url.Values{"hx-request": {"true"}, "category": {" "}, "sort": {"name"}}
	got := buildPageURL("/inventory", q, pageOpts{Page: 3, PageSize: 25})
	assert.Equal(t, "/inventory?page=3&page_size=25&sort=name", got)
}

func TestGetPageParams(t *testing.T) {
	tests := []struct {
		query    string
		def      int
		page     int
		pageSize int
	}{
		{"", 0, 1, defaultPageSize},
		{"", 20, 1, 20},
		{"page=3&page_size=50", 10, 3, 50},
		{"page=-1&page_size=1000", 10, 1, 10},
		{"page=abc&page_size=x", 10, 1, 10},
	}
	for _, tt := range tests {
		q, err := url.ParseQuery(tt.query)
		require.NoError(t, err)
		page, size := getPageParams(q, tt.def)
		assert.Equal(t, tt.page, page, tt.query)
		assert.Equal(t, tt.pageSize, size, tt.query)
	}
}
