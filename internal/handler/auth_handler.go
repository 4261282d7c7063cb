package handler

import (
	"encoding/json"
	"net/http"

	"go-cms-auth/internal/model"
	"go-cms-auth/internal/service"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeFail(w, model.ErrInvalidBody)
		return
	}

	if err := payload.Validate(); err != nil {
		writeFail(w, err)
		return
	}

	if err := h.service.Register(r.Context(), payload.Username, payload.Password); err != nil {
		writeFail(w, err)
		return
	}

	writeOK(w, "registration succeeded", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeFail(w, model.ErrInvalidBody)
		return
	}

	if err := payload.Validate(); err != nil {
		writeFail(w, err)
		return
	}

	bearer, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeFail(w, err)
		return
	}

	writeOK(w, "login succeeded", model.TokenPayload{Token: bearer})
}
