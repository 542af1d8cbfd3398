package httpx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	apperrors "github.com/sustainastock/sustainastock-ui/internal/errors"
	"github.com/sustainastock/sustainastock-ui/internal/http/ui/viewmodel"
	"github.com/sustainastock/sustainastock-ui/internal/http/uiutil"
)

const reportsPath = "/reports"

// Reports serves the usage and savings charts.
// GET /reports.
func (h *UIHandlers) Reports(w http.ResponseWriter, r *http.Request) {
	token := GetTokenFromContext(r.Context())
	h.Page(w, r, PageSpec{
		Meta:       PageMeta{Title: "SustainaStock - Reports", PageTitle: "Reports", CurrentPage: PageReports},
		LoadFailed: MsgReportsLoadFailed,
		Fetch: func(ctx context.Context, data map[string]any) error {
			d, err := h.Inventory.Reports(ctx, token)
			if err != nil {
				return err
			}
			data["Loaded"] = true
			data["UsageChart"] = viewmodel.NewLineChart(d.Usage.Dates, d.Usage.Values, viewmodel.ChartOptions{
				Title:  "Supply usage",
				Format: uiutil.FormatQuantity,
			})
			data["SavingsChart"] = viewmodel.NewBarChart(d.Savings.Months, d.Savings.Values, viewmodel.ChartOptions{
				Title:  "Estimated savings",
				Format: uiutil.FormatMoney,
			})
			data["ExportFormats"] = []model.ReportFormat{model.ReportFormatPDF, model.ReportFormatExcel}
			return nil
		},
	})
}

// ExportReport streams the usage report as a download. Any failure, including
// an unknown format, sends the user back to the reports page with a message.
// GET /reports/export?format=pdf|excel.
func (h *UIHandlers) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format, ok := model.ParseReportFormat(r.URL.Query().Get("format"))
	if !ok {
		h.redirectWithFlash(w, r, reportsPath, model.NotificationError, MsgReportDownloadFailed)
		return
	}

	file, err := h.Inventory.ExportReport(ctx, GetTokenFromContext(ctx), format)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		h.logger().WarnContext(ctx, "report export failed",
			"format", string(format),
			"code", string(apperrors.GetCode(err)),
			"error", err,
		)
		h.redirectWithFlash(w, r, reportsPath, model.NotificationError, MsgReportDownloadFailed)
		return
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = format.ContentType()
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename()))
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(file.Body); err != nil {
		h.logger().DebugContext(ctx, "report download interrupted", "error", err)
	}
}
