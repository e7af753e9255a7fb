package http

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
