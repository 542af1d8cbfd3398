package httpx

import (
	"context"
	"net/http"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	alertsvm "github.com/sustainastock/sustainastock-ui/internal/http/ui/alerts"
	"github.com/sustainastock/sustainastock-ui/internal/http/uiutil"
	"github.com/sustainastock/sustainastock-ui/internal/service"
)

// recommendationRow is one line of the recommendation table.
type recommendationRow struct {
	SupplyID      int
	Name          string
	CurrentStock  string
	WeeklyUsage   string
	OrderQuantity string
	Supplier      string
}

func newRecommendationRows(recs []model.Recommendation) []recommendationRow {
	rows := make([]recommendationRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, recommendationRow{
			SupplyID:      rec.SupplyID,
			Name:          rec.Name,
			CurrentStock:  uiutil.FormatQuantity(rec.CurrentStock),
			WeeklyUsage:   uiutil.FormatQuantity(rec.AverageWeeklyUsage),
			OrderQuantity: uiutil.FormatQuantity(rec.RecommendedOrderQuantity),
			Supplier:      rec.Supplier,
		})
	}
	return rows
}

// Recommendations serves reorder suggestions, current alerts and projected savings.
// GET /recommendations.
func (h *UIHandlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	token := GetTokenFromContext(r.Context())
	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:       "SustainaStock - Recommendations",
			PageTitle:   "Recommendations",
			CurrentPage: PageRecommendations,
		},
		LoadFailed: MsgRecommendationsLoadFailed,
		Fetch: func(ctx context.Context, data map[string]any) error {
			d, err := h.Inventory.Recommendations(ctx, token)
			if err != nil {
				return err
			}
			data["Loaded"] = true
			data["Recommendations"] = newRecommendationRows(d.Recommendations)
			data["Alerts"] = alertsvm.NewCards(d.Alerts)
			data["SavingsPercent"] = d.SavingsPercent
			data["EmptyRecommendationsMessage"] = service.MsgNoRecommendations
			data["EmptyAlertsMessage"] = MsgNoAlertsAtThisTime
			return nil
		},
	})
}
