package songs

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/melodex/melodex/internal/platform/httpx"
	"github.com/melodex/melodex/internal/shared"
)

// Handler wires song HTTP endpoints.
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
		h.logger.Error("search songs", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) listByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistID", "invalid artist id")
	if !ok {
		return
	}
	h.respondList(w, r, func() ([]Song, error) {
		return h.service.ByArtist(r.Context(), artistID)
	})
}

func (h *Handler) listByAlbum(w http.ResponseWriter, r *http.Request) {
	albumID, ok := pathID(w, r, "albumID", "invalid album id")
	if !ok {
		return
	}
	h.respondList(w, r, func() ([]Song, error) {
		return h.service.ByAlbum(r.Context(), albumID)
	})
}

func (h *Handler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID", "invalid user id")
	if !ok {
		return
	}
	h.respondList(w, r, func() ([]Song, error) {
		return h.service.ByUser(r.Context(), userID)
	})
}

func (h *Handler) audio(w http.ResponseWriter, r *http.Request) {
	songID, ok := pathID(w, r, "songID", "invalid song id")
	if !ok {
		return
	}
	data, err := h.service.Audio(r.Context(), songID)
	if err != nil {
		h.logger.Error("load song audio", slog.Int64("song_id", songID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) respondList(w http.ResponseWriter, r *http.Request, load func() ([]Song, error)) {
	songs, err := load()
	if err != nil {
		h.logger.Error("list songs", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if songs == nil {
		songs = []Song{}
	}
	httpx.JSON(w, http.StatusOK, songs)
}

func pathID(w http.ResponseWriter, r *http.Request, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}
