package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rwidjaja/contactbook/internal/models"
	"github.com/rwidjaja/contactbook/internal/service"
	"github.com/rwidjaja/contactbook/internal/store"
)

type ContactHandler struct {
	Contacts *service.ContactService
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	contact, err := h.Contacts.Create(UserFromContext(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Success", Data: contact})
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.Contacts.Get(UserFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Success", Data: contact})
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	contact, err := h.Contacts.Update(UserFromContext(r.Context()), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Success", Data: contact})
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Contacts.Delete(UserFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Success Delete"})
}

func (h *ContactHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ContactFilter{
		Name:  q.Get("name"),
		Email: q.Get("email"),
		Phone: q.Get("phone"),
	}

	var err error
	if filter.Page, err = queryInt(q.Get("page"), 0); err != nil {
		writeJSON(w, http.StatusBadRequest, models.WebResponse{Errors: "page: must be an integer"})
		return
	}
	if filter.Size, err = queryInt(q.Get("size"), 10); err != nil {
		writeJSON(w, http.StatusBadRequest, models.WebResponse{Errors: "size: must be an integer"})
		return
	}

	contacts, page, err := h.Contacts.Search(UserFromContext(r.Context()), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.WebResponse{Message: "Success", Data: contacts, Pagination: page})
}

func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
