package playlists

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/melodex/melodex/internal/platform/httpx"
	"github.com/melodex/melodex/internal/shared"
)

// Handler wires playlist HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	maxLimit int
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, maxLimit int) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		maxLimit: maxLimit,
		validate: validator.New(),
	}
}

type creationRequest struct {
	Name string `json:"playlist_name" validate:"required,max=100"`
}

type creationResponse struct {
	PlaylistID int64 `json:"playlist_id"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	params := shared.ParseListParams(r, h.maxLimit)
	page, err := h.service.Search(r.Context(), params)
	if err != nil {
		h.logger.Error("search playlists", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) listByCreator(w http.ResponseWriter, r *http.Request) {
	creatorID, err := strconv.ParseInt(chi.URLParam(r, "creatorID"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid creator id")
		return
	}
	playlists, err := h.service.ByCreator(r.Context(), creatorID)
	if err != nil {
		h.logger.Error("list playlists by creator", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if playlists == nil {
		playlists = []Playlist{}
	}
	httpx.JSON(w, http.StatusOK, playlists)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req creationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "playlist_name is required")
		return
	}

	identity := shared.IdentityFromContext(r.Context())
	id, err := h.service.Create(r.Context(), identity, req.Name)
	if err != nil {
		h.logger.Error("create playlist", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, creationResponse{PlaylistID: id})
}

func (h *Handler) addSong(w http.ResponseWriter, r *http.Request) {
	playlistID, songID, ok := h.entryIDs(w, r)
	if !ok {
		return
	}
	identity := shared.IdentityFromContext(r.Context())
	if err := h.service.AddSong(r.Context(), identity, playlistID, songID); err != nil {
		h.logger.Warn("add song to playlist",
			slog.Int64("playlist_id", playlistID),
			slog.Int64("song_id", songID),
			slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) removeSong(w http.ResponseWriter, r *http.Request) {
	playlistID, songID, ok := h.entryIDs(w, r)
	if !ok {
		return
	}
	identity := shared.IdentityFromContext(r.Context())
	if err := h.service.RemoveSong(r.Context(), identity, playlistID, songID); err != nil {
		h.logger.Warn("remove song from playlist",
			slog.Int64("playlist_id", playlistID),
			slog.Int64("song_id", songID),
			slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) entryIDs(w http.ResponseWriter, r *http.Request) (playlistID, songID int64, ok bool) {
	playlistID, err := strconv.ParseInt(chi.URLParam(r, "playlistID"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid playlist id")
		return 0, 0, false
	}
	songID, err = strconv.ParseInt(chi.URLParam(r, "songID"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid song id")
		return 0, 0, false
	}
	return playlistID, songID, true
}
