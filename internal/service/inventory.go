package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	"github.com/sustainastock/sustainastock-ui/internal/domain/analytics"
	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	apperrors "github.com/sustainastock/sustainastock-ui/internal/errors"
	"github.com/sustainastock/sustainastock-ui/internal/observability/metrics"
	"github.com/sustainastock/sustainastock-ui/internal/observability/statsd"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
)

// User-facing inventory messages.
const (
	MsgAdminsOnly        = "Access denied. Admins only."
	MsgNoRecommendations = "No recommendations at this time."
)

// recentAlertLimit is how many alerts the dashboard lists.
const recentAlertLimit = 5

// InventoryServiceOptions groups dependencies for InventoryService.
type InventoryServiceOptions struct {
	API     ports.InventoryAPI
	Metrics statsd.Sink
	Logger  *slog.Logger
}

// InventoryService loads and aggregates the data behind each page and forwards writes.
// Reads for one page run concurrently and succeed or fail together.
type InventoryService struct {
	api     ports.InventoryAPI
	metrics statsd.Sink
	logger  *slog.Logger
}

// NewInventoryService constructs a new InventoryService.
func NewInventoryService(opts InventoryServiceOptions) *InventoryService {
	if opts.API == nil {
		panic("service: InventoryAPI is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryService{api: opts.API, metrics: opts.Metrics, logger: logger}
}

// track records the page load metric and maps the error for callers.
func (s *InventoryService) track(page string, start time.Time, err error) error {
	metrics.EmitPageLoad(s.metrics, metrics.PageMetric{Page: page, Duration: time.Since(start), Err: err})
	return apperrors.MapUpstreamError(err)
}

// DashboardData backs the dashboard page.
type DashboardData struct {
	TotalSupplies    int
	AlertCount       int
	EstimatedSavings float64
	RecentAlerts     []model.Alert
}

// Dashboard reads supplies, alerts and savings.
func (s *InventoryService) Dashboard(ctx context.Context, token string) (*DashboardData, error) {
	start := time.Now()
	var (
		supplies []model.Supply
		alerts   []model.Alert
		savings  []model.SavingsItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		supplies, err = s.api.ListSupplies(gctx, token, model.SupplyListOptions{})
		return err
	})
	g.Go(func() (err error) {
		alerts, err = s.api.ListAlerts(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		savings, err = s.api.ListSavings(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.track("dashboard", start, err)
	}

	recent := alerts
	if len(recent) > recentAlertLimit {
		recent = recent[:recentAlertLimit]
	}

	_ = s.track("dashboard", start, nil)
	return &DashboardData{
		TotalSupplies:    len(supplies),
		AlertCount:       len(alerts),
		EstimatedSavings: analytics.TotalEstimatedSavings(savings),
		RecentAlerts:     recent,
	}, nil
}

// InventoryQuery selects the supply table page.
type InventoryQuery struct {
	Category string
	Page     int
	PageSize int
}

// InventoryData backs the inventory page.
type InventoryData struct {
	// Supplies is the current table page; HasNext reports whether another page exists.
	Supplies []model.Supply
	HasNext  bool
	// AllSupplies is the unfiltered list behind the stats and the usage form.
	AllSupplies []model.Supply
	Categories  []string

	TotalSupplies         int
	AlertCount            int
	EstimatedSavings      float64
	WasteReductionPercent float64
	RecommendationSummary string
}

// Inventory reads the full supply list (for stats), one table page, savings,
// alerts and recommendations.
func (s *InventoryService) Inventory(ctx context.Context, token string, q InventoryQuery) (*InventoryData, error) {
	start := time.Now()
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}

	var (
		all     []model.Supply
		page    []model.Supply
		savings []model.SavingsItem
		recs    []model.Recommendation
		alerts  []model.Alert
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		all, err = s.api.ListSupplies(gctx, token, model.SupplyListOptions{})
		return err
	})
	g.Go(func() (err error) {
		// One extra row tells us whether a next page exists.
		page, err = s.api.ListSupplies(gctx, token, model.SupplyListOptions{
			Category: q.Category,
			Skip:     (q.Page - 1) * q.PageSize,
			Limit:    q.PageSize + 1,
		})
		return err
	})
	g.Go(func() (err error) {
		savings, err = s.api.ListSavings(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		alerts, err = s.api.ListAlerts(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		recs, err = s.api.ListRecommendations(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.track("inventory", start, err)
	}

	hasNext := len(page) > q.PageSize
	if hasNext {
		page = page[:q.PageSize]
	}

	_ = s.track("inventory", start, nil)
	return &InventoryData{
		Supplies:              page,
		HasNext:               hasNext,
		AllSupplies:           all,
		Categories:            categories(all),
		TotalSupplies:         len(all),
		AlertCount:            len(alerts),
		EstimatedSavings:      analytics.TotalEstimatedSavings(savings),
		WasteReductionPercent: analytics.WasteReductionPercent(all, savings),
		RecommendationSummary: RecommendationSummary(recs, all),
	}, nil
}

// RecommendationsData backs the recommendations page.
type RecommendationsData struct {
	Recommendations []model.Recommendation
	Alerts          []model.Alert
	SavingsPercent  float64
}

// Recommendations reads recommendations, alerts and supplies (for unit costs).
func (s *InventoryService) Recommendations(ctx context.Context, token string) (*RecommendationsData, error) {
	start := time.Now()
	var (
		recs     []model.Recommendation
		alerts   []model.Alert
		supplies []model.Supply
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		recs, err = s.api.ListRecommendations(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		alerts, err = s.api.ListAlerts(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		supplies, err = s.api.ListSupplies(gctx, token, model.SupplyListOptions{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.track("recommendations", start, err)
	}

	names := supplyNames(supplies)
	for i := range recs {
		if recs[i].Name == "" {
			recs[i].Name = names[recs[i].SupplyID]
		}
	}

	_ = s.track("recommendations", start, nil)
	return &RecommendationsData{
		Recommendations: recs,
		Alerts:          alerts,
		SavingsPercent:  analytics.SavingsPercent(recs, analytics.UnitCosts(supplies)),
	}, nil
}

// Alerts returns alerts ordered by urgency, high first, keeping API order within a level.
func (s *InventoryService) Alerts(ctx context.Context, token string) ([]model.Alert, error) {
	start := time.Now()
	alerts, err := s.api.ListAlerts(ctx, token)
	if err != nil {
		return nil, s.track("alerts", start, err)
	}
	SortAlertsByUrgency(alerts)
	_ = s.track("alerts", start, nil)
	return alerts, nil
}

// ReportsData backs the reports page charts.
type ReportsData struct {
	Usage   model.UsageHistory
	Savings model.SavingsHistory
}

// Reports reads usage and savings history.
func (s *InventoryService) Reports(ctx context.Context, token string) (*ReportsData, error) {
	start := time.Now()
	var out ReportsData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Usage, err = s.api.UsageHistory(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		out.Savings, err = s.api.SavingsHistory(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.track("reports", start, err)
	}

	_ = s.track("reports", start, nil)
	return &out, nil
}

// SaveSupply creates (id == 0) or updates a supply. Only admins may write.
func (s *InventoryService) SaveSupply(
	ctx context.Context,
	sess domainauth.Session,
	token string,
	id int,
	req model.SupplyRequest,
) (model.Supply, error) {
	if !sess.IsAdmin() {
		return model.Supply{}, apperrors.Forbidden(MsgAdminsOnly)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" || req.Quantity < 0 || req.ExpirationDate.IsZero() {
		return model.Supply{}, apperrors.Validation("supply is missing required fields")
	}

	var (
		out model.Supply
		err error
	)
	if id > 0 {
		out, err = s.api.UpdateSupply(ctx, token, id, req)
	} else {
		out, err = s.api.CreateSupply(ctx, token, req)
	}
	if err != nil {
		return model.Supply{}, apperrors.MapUpstreamError(fmt.Errorf("save supply: %w", err))
	}
	s.logger.InfoContext(ctx, "supply saved", "supply_id", out.ID, "user", sess.Username, "update", id > 0)
	return out, nil
}

// RecordUsage records consumption of a supply.
func (s *InventoryService) RecordUsage(ctx context.Context, token string, rec model.UsageRecord) error {
	if rec.SupplyID <= 0 {
		return apperrors.ValidationField("supply_id", "supply is required")
	}
	if rec.QuantityUsed < 1 {
		return apperrors.ValidationField("quantity_used", "quantity used must be at least 1")
	}
	if err := s.api.RecordUsage(ctx, token, rec); err != nil {
		return apperrors.MapUpstreamError(fmt.Errorf("record usage: %w", err))
	}
	return nil
}

// ResolveAlert dismisses an alert.
func (s *InventoryService) ResolveAlert(ctx context.Context, token, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Validation("alert id is required")
	}
	if err := s.api.ResolveAlert(ctx, token, id); err != nil {
		return apperrors.MapUpstreamError(fmt.Errorf("resolve alert %s: %w", id, err))
	}
	return nil
}

// ExportReport downloads the usage report.
func (s *InventoryService) ExportReport(ctx context.Context, token string, format model.ReportFormat) (model.ReportFile, error) {
	file, err := s.api.ExportReport(ctx, token, format)
	if err != nil {
		return model.ReportFile{}, apperrors.MapUpstreamError(fmt.Errorf("export report: %w", err))
	}
	if len(file.Body) == 0 {
		return model.ReportFile{}, apperrors.Unavailable("export returned an empty report")
	}
	return file, nil
}

// RecommendationSummary describes the recommendation with the largest order quantity.
func RecommendationSummary(recs []model.Recommendation, supplies []model.Supply) string {
	if len(recs) == 0 {
		return MsgNoRecommendations
	}

	top := slices.MaxFunc(recs, func(a, b model.Recommendation) int {
		return cmp.Compare(a.RecommendedOrderQuantity, b.RecommendedOrderQuantity)
	})
	if top.RecommendedOrderQuantity <= 0 {
		return MsgNoRecommendations
	}

	name := top.Name
	if name == "" {
		name = supplyNames(supplies)[top.SupplyID]
	}
	if name == "" {
		name = "supply #" + strconv.Itoa(top.SupplyID)
	}

	msg := fmt.Sprintf("Order %s units of %s", formatQty(top.RecommendedOrderQuantity), name)
	if top.Supplier != "" {
		msg += " from " + top.Supplier
	}
	if top.AverageWeeklyUsage > 0 {
		msg += fmt.Sprintf(" (average weekly usage %s)", formatQty(top.AverageWeeklyUsage))
	}
	return msg + "."
}

// SortAlertsByUrgency orders alerts high, medium, low; stable within a level.
func SortAlertsByUrgency(alerts []model.Alert) {
	rank := map[model.AlertUrgency]int{
		model.AlertUrgencyHigh:   0,
		model.AlertUrgencyMedium: 1,
		model.AlertUrgencyLow:    2,
	}
	rankOf := func(u model.AlertUrgency) int {
		if r, ok := rank[u]; ok {
			return r
		}
		return len(rank)
	}
	slices.SortStableFunc(alerts, func(a, b model.Alert) int {
		return cmp.Compare(rankOf(a.Urgency), rankOf(b.Urgency))
	})
}

func supplyNames(supplies []model.Supply) map[int]string {
	names := make(map[int]string, len(supplies))
	for _, s := range supplies {
		names[s.ID] = s.Name
	}
	return names
}

func categories(supplies []model.Supply) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range supplies {
		c := strings.TrimSpace(s.Category)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
