package httpx

import "net/http"

// Landing serves the public marketing page.
// GET /.
func (h *UIHandlers) Landing(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "SustainaStock", PageTitle: "SustainaStock", CurrentPage: PageLanding},
	})
}
