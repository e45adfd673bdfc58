package handlers

import (
	"net/http"

	"github.com/rwidjaja/contactbook/internal/models"
	"github.com/rwidjaja/contactbook/internal/service"
)

type AuthHandler struct {
	Users *service.UserService
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.Users.Login(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Success", Data: token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if err := h.Users.Logout(user); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Success"})
}
