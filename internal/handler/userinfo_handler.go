package handler

import (
	"net/http"

	"go-cms-auth/internal/middleware"
	"go-cms-auth/internal/model"
	"go-cms-auth/internal/service"
)

type UserinfoHandler struct {
	service *service.AuthService
}

func NewUserinfoHandler(service *service.AuthService) *UserinfoHandler {
	return &UserinfoHandler{service: service}
}

// Me returns the profile of the identity the auth gate attached to the
// request. The password hash and avatar never appear in the payload.
func (h *UserinfoHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeFail(w, model.ErrUnauthorized)
		return
	}

	profile, err := h.service.Profile(r.Context(), claims.UserID)
	if err != nil {
		writeFail(w, err)
		return
	}

	writeOK(w, "userinfo fetched", profile)
}
