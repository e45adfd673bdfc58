package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rwidjaja/contactbook/internal/models"
	"github.com/rwidjaja/contactbook/internal/service"
)

type AddressHandler struct {
	Addresses *service.AddressService
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.AddressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	address, err := h.Addresses.Create(UserFromContext(r.Context()), mux.Vars(r)["contact_id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Create Success", Data: address})
}

func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	address, err := h.Addresses.Get(UserFromContext(r.Context()), vars["contact_id"], vars["address_id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Get Success", Data: address})
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.AddressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	vars := mux.Vars(r)
	address, err := h.Addresses.Update(UserFromContext(r.Context()), vars["contact_id"], vars["address_id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Update Success", Data: address})
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Addresses.Delete(UserFromContext(r.Context()), vars["contact_id"], vars["address_id"]); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Delete Success"})
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.Addresses.List(UserFromContext(r.Context()), mux.Vars(r)["contact_id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Get List Success", Data: addresses})
}
