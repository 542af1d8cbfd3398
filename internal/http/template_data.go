package httpx

import (
	"net/http"

	"github.com/sustainastock/sustainastock-ui/internal/http/ui/viewmodel"
)

// PaginationData contains pagination information for list views.
type PaginationData struct {
	Page       int
	PageSize   int
	HasNext    bool
	ItemCount  int
	BasePath   string
	TotalCount int // Optional: total count of items (0 if not available)
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: basePageData(r, meta),
		r:    r,
	}
}

// WithPagination adds a viewmodel.Pagination under "Pagination" with prev/next URLs.
func (b *TemplateDataBuilder) WithPagination(opts PaginationData) *TemplateDataBuilder {
	b.data["Pagination"] = newPagination(b.r, opts)
	return b
}

func newPagination(r *http.Request, opts PaginationData) viewmodel.Pagination {
	p := viewmodel.Pagination{
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		HasPrev:    opts.Page > 1,
		HasNext:    opts.HasNext,
		TotalCount: opts.TotalCount,
	}
	if opts.ItemCount > 0 {
		p.StartIndex = (opts.Page-1)*opts.PageSize + 1
		p.EndIndex = p.StartIndex + opts.ItemCount - 1
	}
	if p.HasPrev {
		p.PrevURL = buildPageURL(opts.BasePath, r.URL.Query(), pageOpts{Page: opts.Page - 1, PageSize: opts.PageSize})
	}
	if p.HasNext {
		p.NextURL = buildPageURL(opts.BasePath, r.URL.Query(), pageOpts{Page: opts.Page + 1, PageSize: opts.PageSize})
	}
	return p
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// WithFlash adds the pending toast, if any.
func (b *TemplateDataBuilder) WithFlash(f *viewmodel.Flash) *TemplateDataBuilder {
	if f != nil {
		b.data["Flash"] = f
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
