package rest

import (
	"net/http"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// SaveVersion handles POST /versions
func (h *Handler) SaveVersion(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.SaveVersion(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Location", "/versions/"+v.ID)
	writeJSON(w, http.StatusCreated, v)
}

// ListVersions handles GET /versions
func (h *Handler) ListVersions(w http.ResponseWriter, r *http.Request) {
	vs, err := h.svc.ListVersions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if vs == nil {
		vs = []domain.StoryVersion{}
	}
	writeJSON(w, http.StatusOK, vs)
}

// GetVersion handles GET /versions/{id}
func (h *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetVersion(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// RestoreVersion handles POST /versions/{id}/restore
func (h *Handler) RestoreVersion(w http.ResponseWriter, r *http.Request) {
	gen, err := h.svc.RestoreVersion(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen)
}

type addCollaboratorRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AddCollaborator handles POST /collaborators
func (h *Handler) AddCollaborator(w http.ResponseWriter, r *http.Request) {
	var req addCollaboratorRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Role == "" {
		req.Role = string(domain.RoleViewer)
	}

	c, err := h.svc.AddCollaborator(r.Context(), req.Email, req.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// ListCollaborators handles GET /collaborators
func (h *Handler) ListCollaborators(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.ListCollaborators(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if cs == nil {
		cs = []domain.Collaborator{}
	}
	writeJSON(w, http.StatusOK, cs)
}

// RemoveCollaborator handles DELETE /collaborators/{email}
func (h *Handler) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveCollaborator(r.Context(), r.PathValue("email")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
