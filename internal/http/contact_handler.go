package http

import (
	"encoding/json"
	"net/http"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/service"
)

type ContactHandler struct {
	contacts *service.ContactService
}

func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	msg, err := h.contacts.Submit(r.Context(), in)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contacts.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messages)
}
