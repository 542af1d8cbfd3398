package httpx

import (
	"context"
	"net/http"

	alertsvm "github.com/sustainastock/sustainastock-ui/internal/http/ui/alerts"
)

// Dashboard serves the summary cards and the most recent alerts.
// GET /dashboard.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	token := GetTokenFromContext(r.Context())
	h.Page(w, r, PageSpec{
		Meta:       PageMeta{Title: "SustainaStock - Dashboard", PageTitle: "Dashboard", CurrentPage: PageDashboard},
		LoadFailed: MsgDashboardLoadFailed,
		Fetch: func(ctx context.Context, data map[string]any) error {
			d, err := h.Inventory.Dashboard(ctx, token)
			if err != nil {
				return err
			}
			data["Loaded"] = true
			data["TotalSupplies"] = d.TotalSupplies
			data["AlertCount"] = d.AlertCount
			data["EstimatedSavings"] = d.EstimatedSavings
			data["RecentAlerts"] = alertsvm.NewCards(d.RecentAlerts)
			data["EmptyAlertsMessage"] = MsgNoAlertsAtThisTime
			return nil
		},
	})
}
