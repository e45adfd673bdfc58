package handlers

import (
	"net/http"

	"github.com/rwidjaja/contactbook/internal/models"
	"github.com/rwidjaja/contactbook/internal/service"
)

type UserHandler struct {
	Users *service.UserService
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Users.Register(&req); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Success"})
}

func (h *UserHandler) Info(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Success", Data: h.Users.Get(user)})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user := UserFromContext(r.Context())
	resp, err := h.Users.Update(user, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Success", Data: resp})
}
