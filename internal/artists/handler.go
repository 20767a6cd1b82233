package artists

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/melodex/melodex/internal/platform/httpx"
	"github.com/melodex/melodex/internal/shared"
)

// Handler wires artist HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	maxLimit int
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, maxLimit int) *Handler {
	return &Handler{logger: logger, service: service, maxLimit: maxLimit}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	params := shared.ParseListParams(r, h.maxLimit)
	page, err := h.service.Search(r.Context(), params)
	if err != nil {
		h.logger.Error("search artists", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid artist id")
		return
	}
	artist, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, artist)
}
