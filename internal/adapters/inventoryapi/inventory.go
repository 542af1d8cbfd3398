package inventoryapi

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
)

// ListSupplies fetches supplies, optionally filtered by category and paged with skip/limit.
func (c *Client) ListSupplies(ctx context.Context, token string, opts model.SupplyListOptions) ([]model.Supply, error) {
	q := url.Values{}
	if cat := strings.TrimSpace(opts.Category); cat != "" {
		q.Set("category", cat)
	}
	if opts.Skip > 0 {
		q.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	var out []model.Supply
	err := c.doJSON(ctx, call{name: "supplies.list", method: http.MethodGet, path: "/inventory/supplies", query: q, token: token}, &out)
	return out, err
}

func (c *Client) CreateSupply(ctx context.Context, token string, req model.SupplyRequest) (model.Supply, error) {
	var out model.Supply
	err := c.doJSON(ctx, call{name: "supplies.create", method: http.MethodPost, path: "/inventory/supplies", token: token, body: req}, &out)
	return out, err
}

func (c *Client) UpdateSupply(ctx context.Context, token string, id int, req model.SupplyRequest) (model.Supply, error) {
	var out model.Supply
	err := c.doJSON(ctx, call{
		name:   "supplies.update",
		method: http.MethodPut,
		path:   "/inventory/supplies/" + strconv.Itoa(id),
		token:  token,
		body:   req,
	}, &out)
	return out, err
}

func (c *Client) RecordUsage(ctx context.Context, token string, rec model.UsageRecord) error {
	return c.doJSON(ctx, call{name: "usage.record", method: http.MethodPost, path: "/inventory/usage", token: token, body: rec}, nil)
}

func (c *Client) ListAlerts(ctx context.Context, token string) ([]model.Alert, error) {
	var out []model.Alert
	err := c.doJSON(ctx, call{name: "alerts.list", method: http.MethodGet, path: "/inventory/alerts", token: token}, &out)
	return out, err
}

func (c *Client) ResolveAlert(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, call{
		name:   "alerts.resolve",
		method: http.MethodPost,
		path:   "/inventory/alerts/" + url.PathEscape(id) + "/resolve",
		token:  token,
	}, nil)
}

func (c *Client) ListRecommendations(ctx context.Context, token string) ([]model.Recommendation, error) {
	var out []model.Recommendation
	err := c.doJSON(ctx, call{name: "recommendations.list", method: http.MethodGet, path: "/inventory/recommendations", token: token}, &out)
	return out, err
}

func (c *Client) ListSavings(ctx context.Context, token string) ([]model.SavingsItem, error) {
	var out []model.SavingsItem
	err := c.doJSON(ctx, call{name: "savings.list", method: http.MethodGet, path: "/inventory/savings", token: token}, &out)
	return out, err
}

func (c *Client) UsageHistory(ctx context.Context, token string) (model.UsageHistory, error) {
	var out model.UsageHistory
	err := c.doJSON(ctx, call{name: "usage.history", method: http.MethodGet, path: "/inventory/usage/history", token: token}, &out)
	return out, err
}

func (c *Client) SavingsHistory(ctx context.Context, token string) (model.SavingsHistory, error) {
	var out model.SavingsHistory
	err := c.doJSON(ctx, call{name: "savings.history", method: http.MethodGet, path: "/inventory/savings/history", token: token}, &out)
	return out, err
}

// ExportReport downloads the usage report as a pdf or excel blob.
func (c *Client) ExportReport(ctx context.Context, token string, format model.ReportFormat) (model.ReportFile, error) {
	const name = "reports.export"

	req, err := c.newRequest(ctx, call{
		name:   name,
		method: http.MethodGet,
		path:   "/inventory/reports/usage/export",
		query:  url.Values{"format": {string(format)}},
	})
	if err != nil {
		return model.ReportFile{}, err
	}
	req.Header.Set("Accept", format.ContentType())

	resp, err := c.do(c.httpClient(token), req, name)
	if err != nil {
		return model.ReportFile{}, fmt.Errorf("%s: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.ReportFile{}, fmt.Errorf("%s: read body: %w", name, err)
	}

	contentType := format.ContentType()
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, perr := mime.ParseMediaType(ct); perr == nil && mt != "application/json" {
			contentType = ct
		}
	}

	return model.ReportFile{
		Filename:    format.Filename(),
		ContentType: contentType,
		Body:        body,
	}, nil
}
