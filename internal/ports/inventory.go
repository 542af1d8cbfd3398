package ports

import (
	"context"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
)

// InventoryAPI is the consumed surface of the inventory REST API.
// Every call is made on behalf of the bearer token passed in.
type InventoryAPI interface {
	ListSupplies(ctx context.Context, token string, opts model.SupplyListOptions) ([]model.Supply, error)
	CreateSupply(ctx context.Context, token string, req model.SupplyRequest) (model.Supply, error)
	UpdateSupply(ctx context.Context, token string, id int, req model.SupplyRequest) (model.Supply, error)
	RecordUsage(ctx context.Context, token string, rec model.UsageRecord) error

	ListAlerts(ctx context.Context, token string) ([]model.Alert, error)
	ResolveAlert(ctx context.Context, token, id string) error

	ListRecommendations(ctx context.Context, token string) ([]model.Recommendation, error)
	ListSavings(ctx context.Context, token string) ([]model.SavingsItem, error)

	UsageHistory(ctx context.Context, token string) (model.UsageHistory, error)
	SavingsHistory(ctx context.Context, token string) (model.SavingsHistory, error)
	ExportReport(ctx context.Context, token string, format model.ReportFormat) (model.ReportFile, error)
}
