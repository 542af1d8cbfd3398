package httpx

import (
	"net/http"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	apperrors "github.com/sustainastock/sustainastock-ui/internal/errors"
	alertsvm "github.com/sustainastock/sustainastock-ui/internal/http/ui/alerts"
)

const alertsPath = "/alerts"

// Alerts serves the alert cards, most urgent first.
// GET /alerts.
func (h *UIHandlers) Alerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := &alertsvm.Page{
		Layout:       buildLayout(r, PageMeta{Title: "SustainaStock - Alerts", PageTitle: "Alerts", CurrentPage: PageAlerts}),
		EmptyMessage: MsgNoAlertsToDisplay,
	}
	page.Flash = h.popFlash(w, r)

	alerts, err := h.Inventory.Alerts(ctx, GetTokenFromContext(ctx))
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		h.logger().WarnContext(ctx, "page data load failed",
			"page", PageAlerts,
			"code", string(apperrors.GetCode(err)),
			"error", err,
		)
		page.Error = true
		page.ErrorMessage = MsgAlertsLoadFailed
		h.renderPage(w, r, page)
		return
	}

	page.Alerts = alertsvm.NewCards(alerts)
	h.renderPage(w, r, page)
}

// ResolveAlert dismisses an alert and returns to the alert list.
// POST /alerts/{id}/resolve.
func (h *UIHandlers) ResolveAlert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.Inventory.ResolveAlert(ctx, GetTokenFromContext(ctx), id); err != nil {
		if ctx.Err() != nil {
			return
		}
		h.logger().WarnContext(ctx, "alert dismiss failed",
			"alert_id", id,
			"code", string(apperrors.GetCode(err)),
			"error", err,
		)
		h.redirectWithFlash(w, r, alertsPath, model.NotificationError, MsgAlertDismissFailed)
		return
	}
	h.redirectWithFlash(w, r, alertsPath, model.NotificationSuccess, MsgAlertDismissed)
}
