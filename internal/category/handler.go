package category

import (
	"net/http"

	"fintrack/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
}

func NewHandler(baseHandler *transport.BaseHandler) *Handler {
	return &Handler{BaseHandler: baseHandler}
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// GetCategories returns the category vocabulary so clients can populate
// pickers without hardcoding the list.
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.WriteData(w, http.StatusOK, CategoriesResponse{Categories: All()})
}
