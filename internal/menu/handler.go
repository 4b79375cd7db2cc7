package menu

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/menuorder/backend/internal/response"
)

// Handler holds HTTP handlers for menu endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new menu Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetCombineInfo godoc
//
//	@Summary		Get combined menu info
//	@Description	Returns the menu, its categories and its dishes. The body is not wrapped in the response envelope.
//	@Tags			menus
//	@Produce		json
//	@Param			id	path		int	true	"Menu ID"
//	@Success		200	{object}	CombineInfo
//	@Failure		400	{object}	response.Envelope
//	@Router			/combine-info/{id} [get]
func (h *Handler) GetCombineInfo(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("menu: invalid id %q: %v", raw, err)
		response.BadRequest(w, "invalid menu id")
		return
	}

	response.JSON(w, http.StatusOK, h.svc.CombineInfo(id))
}
