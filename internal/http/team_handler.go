package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/service"
)

type TeamHandler struct {
	team *service.TeamService
}

func NewTeamHandler(team *service.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.team.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, members)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.TeamMemberInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	member, err := h.team.Create(r.Context(), in)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, member)
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.TeamMemberInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	member, err := h.team.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.team.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
