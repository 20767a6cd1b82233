package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/melodex/melodex/internal/platform/httpx"
	"github.com/melodex/melodex/internal/shared"
)

// Handler wires the registration and authentication endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	codec    *Codec
	limiter  *LoginLimiter
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, codec *Codec, limiter *LoginLimiter) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		codec:    codec,
		limiter:  limiter,
		validate: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/registration", h.handleRegister)
	r.Post("/authentication", h.handleAuthenticate)
}

type registrationRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Nickname string `json:"nickname" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=16"`
}

type authenticationRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authenticationResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: malformed body", shared.ErrValidation))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", shared.ErrValidation, validationDetail(err)))
		return
	}

	if err := h.service.Register(r.Context(), req.Email, req.Nickname, req.Password); err != nil {
		h.logger.Warn("registration failed", slog.String("email", req.Email), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("user registered", slog.String("email", req.Email))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var req authenticationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: malformed body", shared.ErrValidation))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", shared.ErrValidation, validationDetail(err)))
		return
	}

	ip := clientIP(r)
	if h.limiter != nil && !h.limiter.Allow(r.Context(), req.Email, ip) {
		httpx.RespondError(w, shared.ErrRateLimited)
		return
	}

	principal, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if h.limiter != nil && errors.Is(err, shared.ErrInvalidCredentials) {
			if ferr := h.limiter.Failure(r.Context(), req.Email, ip); ferr != nil {
				h.logger.Warn("record login failure", slog.Any("error", ferr))
			}
		}
		httpx.RespondError(w, err)
		return
	}
	if h.limiter != nil {
		if err := h.limiter.Success(r.Context(), req.Email, ip); err != nil {
			h.logger.Warn("reset login counters", slog.Any("error", err))
		}
	}

	token, err := h.codec.Encode(principal.Email, nil, time.Now())
	if err != nil {
		h.logger.Error("issue token", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("user authenticated", slog.String("email", principal.Email))
	httpx.JSON(w, http.StatusOK, authenticationResponse{Token: token, Email: principal.Email})
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field() + " is invalid"
	}
	return "invalid input"
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
