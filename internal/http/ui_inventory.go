package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	apperrors "github.com/sustainastock/sustainastock-ui/internal/errors"
	inventoryvm "github.com/sustainastock/sustainastock-ui/internal/http/ui/inventory"
	"github.com/sustainastock/sustainastock-ui/internal/http/validation"
	"github.com/sustainastock/sustainastock-ui/internal/service"
)

const inventoryPath = "/inventory"

// inventoryForms carries rejected form input back into a re-render.
type inventoryForms struct {
	Supply *inventoryvm.SupplyForm
	Usage  *inventoryvm.UsageForm
}

// InventoryPage serves the stats, supply table and the supply and usage forms.
// GET /inventory?category=&page=&page_size=&edit=.
func (h *UIHandlers) InventoryPage(w http.ResponseWriter, r *http.Request) {
	h.renderInventory(w, r, inventoryForms{})
}

func (h *UIHandlers) renderInventory(w http.ResponseWriter, r *http.Request, forms inventoryForms) {
	ctx := r.Context()
	token := GetTokenFromContext(ctx)
	isAdmin := IsAdmin(ctx)
	csrf := GetCSRFToken(r)

	q := r.URL.Query()
	page, pageSize := getPageParams(q, h.PageSize)
	category := strings.TrimSpace(q.Get("category"))
	editID, _ := strconv.Atoi(q.Get("edit"))

	supplyForm := inventoryvm.SupplyForm{}
	if forms.Supply != nil {
		supplyForm = *forms.Supply
	}
	usageForm := inventoryvm.UsageForm{}
	if forms.Usage != nil {
		usageForm = *forms.Usage
	}

	h.Page(w, r, PageSpec{
		Meta:       PageMeta{Title: "SustainaStock - Inventory", PageTitle: "Inventory", CurrentPage: PageInventory},
		LoadFailed: MsgInventoryLoadFailed,
		Fetch: func(ctx context.Context, data map[string]any) error {
			d, err := h.Inventory.Inventory(ctx, token, service.InventoryQuery{
				Category: category,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}

			data["Loaded"] = true
			data["TotalSupplies"] = d.TotalSupplies
			data["AlertCount"] = d.AlertCount
			data["EstimatedSavings"] = d.EstimatedSavings
			data["WasteReductionPercent"] = d.WasteReductionPercent
			data["RecommendationSummary"] = d.RecommendationSummary
			data["Supplies"] = inventoryvm.NewRows(d.Supplies)
			data["Categories"] = d.Categories
			data["Pagination"] = newPagination(r, PaginationData{
				Page:       page,
				PageSize:   pageSize,
				HasNext:    d.HasNext,
				ItemCount:  len(d.Supplies),
				BasePath:   inventoryPath,
				TotalCount: d.TotalSupplies,
			})

			supplyForm.Categories = d.Categories
			usageForm.Options = inventoryvm.NewOptions(d.AllSupplies)
			if forms.Supply == nil && editID > 0 && isAdmin {
				if s, ok := findSupply(d.AllSupplies, editID); ok {
					prefilled := inventoryvm.SupplyFormFor(s)
					prefilled.Categories = d.Categories
					supplyForm = prefilled
				}
			}
			return nil
		},
		Decorate: func(data map[string]any) {
			supplyForm.CSRFToken = csrf
			usageForm.CSRFToken = csrf
			data["Category"] = category
			data["CanEditSupplies"] = isAdmin
			data["AdminOnlyMessage"] = service.MsgAdminsOnly
			data["SupplyForm"] = supplyForm
			data["UsageForm"] = usageForm
		},
	})
}

func findSupply(supplies []model.Supply, id int) (model.Supply, bool) {
	for _, s := range supplies {
		if s.ID == id {
			return s, true
		}
	}
	return model.Supply{}, false
}

// SaveSupply creates or updates a supply. Admins only.
// POST /inventory/supplies and POST /inventory/supplies/{id}.
func (h *UIHandlers) SaveSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := GetSessionFromContext(ctx)
	if sess == nil || !sess.IsAdmin() {
		h.redirectWithFlash(w, r, inventoryPath, model.NotificationError, service.MsgAdminsOnly)
		return
	}

	id := 0
	if raw := r.PathValue("id"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.NotFound(w, r)
			return
		}
		id = n
	}

	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, inventoryPath, model.NotificationError, MsgSupplySaveFailed)
		return
	}
	in := validation.SupplyInput{
		Name:            r.PostFormValue("name"),
		Category:        r.PostFormValue("category"),
		Quantity:        r.PostFormValue("quantity"),
		ExpirationDate:  r.PostFormValue("expiration_date"),
		CostPerUnit:     r.PostFormValue("cost_per_unit"),
		PrimarySupplier: r.PostFormValue("primary_supplier"),
	}

	// Rejected input re-renders the page with the form intact; nothing is written.
	req, res := validation.Supply(in, h.now())
	if !res.OK() {
		form := inventoryvm.SupplyForm{SupplyID: id, Values: in, Message: res.Message, Errors: res.FieldErrors}
		h.renderInventory(w, r, inventoryForms{Supply: &form})
		return
	}

	saved, err := h.Inventory.SaveSupply(ctx, *sess, GetTokenFromContext(ctx), id, req)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		msg := MsgSupplySaveFailed
		if apperrors.IsForbidden(err) {
			msg = service.MsgAdminsOnly
		}
		h.logger().WarnContext(ctx, "supply save failed",
			"supply_id", id,
			"code", string(apperrors.GetCode(err)),
			"error", err,
		)
		h.redirectWithFlash(w, r, inventoryPath, model.NotificationError, msg)
		return
	}

	h.logger().InfoContext(ctx, "supply saved via ui", "supply_id", saved.ID, "user", sess.Username)
	h.redirectWithFlash(w, r, inventoryPath, model.NotificationSuccess, MsgSupplySaved)
}

// RecordUsage records consumption of a supply.
// POST /inventory/usage.
func (h *UIHandlers) RecordUsage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, inventoryPath, model.NotificationError, MsgUsageRecordFailed)
		return
	}
	in := validation.UsageInput{
		SupplyID:     r.PostFormValue("supply_id"),
		QuantityUsed: r.PostFormValue("quantity_used"),
	}

	rec, res := validation.Usage(in)
	if !res.OK() {
		form := inventoryvm.UsageForm{Values: in, Message: res.Message, Errors: res.FieldErrors}
		h.renderInventory(w, r, inventoryForms{Usage: &form})
		return
	}

	if err := h.Inventory.RecordUsage(ctx, GetTokenFromContext(ctx), rec); err != nil {
		if ctx.Err() != nil {
			return
		}
		h.logger().WarnContext(ctx, "usage record failed",
			"supply_id", rec.SupplyID,
			"code", string(apperrors.GetCode(err)),
			"error", err,
		)
		h.redirectWithFlash(w, r, inventoryPath, model.NotificationError, MsgUsageRecordFailed)
		return
	}
	h.redirectWithFlash(w, r, inventoryPath, model.NotificationSuccess, MsgUsageRecorded)
}
