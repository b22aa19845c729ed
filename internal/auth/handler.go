package auth

import (
	"encoding/json"
	"net/http"

	coreuser "github.com/frahmantamala/tracko/internal/core/user"
	"github.com/frahmantamala/tracko/internal/transport"
	"github.com/frahmantamala/tracko/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	Signup(dto SignupDTO) (AuthTokens, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetActor(userID int64) (*coreuser.Actor, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err, "email", dto.Email)
		h.writeAuthError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "login successful", tokens)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var dto SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.Service.Signup(dto)
	if err != nil {
		h.Logger.Error("signup failed", "error", err, "email", dto.Email)
		switch err {
		case ErrEmailTaken:
			h.WriteError(w, http.StatusBadRequest, "email already registered")
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.WriteError(w, http.StatusInternalServerError, "something went wrong")
			}
		}
		return
	}

	h.Logger.Info("user signed up", "email", dto.Email)
	h.WriteSuccess(w, http.StatusCreated, "signup successful", tokens)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var dto RefreshTokenDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.Service.RefreshTokens(dto.RefreshToken)
	if err != nil {
		h.Logger.Error("token refresh failed", "error", err)
		h.writeAuthError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "token refreshed", tokens)
}

func (h *Handler) writeAuthError(w http.ResponseWriter, err error) {
	switch err {
	case ErrInvalidCredentials:
		h.WriteError(w, http.StatusUnauthorized, "invalid email or password")
	case ErrUserInactive:
		h.WriteError(w, http.StatusUnauthorized, "user account is inactive")
	case ErrInvalidToken, ErrTokenExpired:
		h.WriteError(w, http.StatusUnauthorized, "invalid token")
	default:
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
		} else {
			h.WriteError(w, http.StatusInternalServerError, "something went wrong")
		}
	}
}

// AuthMiddleware validates the bearer token and loads the caller into the
// request context as a coreuser.Actor.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		// reload the user so a deactivated or deleted account is cut off
		// even while its token is still fresh
		actor, err := h.Service.GetActor(claims.UserID)
		if err != nil {
			h.Logger.Warn("auth middleware: actor lookup failed", "user_id", claims.UserID, "error", err)
			h.WriteError(w, http.StatusUnauthorized, "user not found")
			return
		}

		ctx := ContextWithActor(r.Context(), actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
