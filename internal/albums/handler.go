package albums

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/melodex/melodex/internal/platform/httpx"
	"github.com/melodex/melodex/internal/shared"
)

// Handler wires album HTTP endpoints.
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
		h.logger.Error("search albums", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) listByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid artist id")
		return
	}
	albums, err := h.service.ByArtist(r.Context(), artistID)
	if err != nil {
		h.logger.Error("list albums by artist", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if albums == nil {
		albums = []Album{}
	}
	httpx.JSON(w, http.StatusOK, albums)
}
