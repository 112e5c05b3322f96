package rest

import (
	"fmt"
	"net/http"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

type analyzeMoodRequest struct {
	Text      string `json:"text"`
	Intensity int    `json:"intensity"`
}

type analyzeMoodResponse struct {
	domain.MoodAnalysis
	Notices []string `json:"notices,omitempty"`
}

// AnalyzeMood handles POST /mood
func (h *Handler) AnalyzeMood(w http.ResponseWriter, r *http.Request) {
	var req analyzeMoodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	analysis, notices, err := h.svc.AnalyzeMood(r.Context(), req.Text, req.Intensity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analyzeMoodResponse{MoodAnalysis: analysis, Notices: notices})
}

// Generate handles POST /generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	gen, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Location", "/stories/current")
	writeJSON(w, http.StatusCreated, gen)
}

// CurrentStory handles GET /stories/current
func (h *Handler) CurrentStory(w http.ResponseWriter, r *http.Request) {
	gen, err := h.svc.Current()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen)
}

// PosterImage handles GET /stories/current/poster.png
func (h *Handler) PosterImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.svc.PosterImage()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", fmt.Sprint(len(img)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}

// Export handles GET /stories/current/export/{format}
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Export(r.PathValue("format"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Body)
}

type endingsRequest struct {
	Count int `json:"count"`
}

type endingsResponse struct {
	Endings []domain.Ending `json:"endings"`
	Notices []string        `json:"notices,omitempty"`
}

// AlternativeEndings handles POST /stories/current/endings. An empty body
// asks for the default number of endings.
func (h *Handler) AlternativeEndings(w http.ResponseWriter, r *http.Request) {
	var req endingsRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	endings, notices, err := h.svc.AlternativeEndings(r.Context(), req.Count)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, endingsResponse{Endings: endings, Notices: notices})
}
