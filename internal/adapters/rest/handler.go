package rest

import (
	"net/http"

	"github.com/ewilliams-labs/moodreel/internal/core/services"
)

// Options configure the HTTP adapter.
type Options struct {
	// AllowedOrigin is sent in Access-Control-Allow-Origin. Empty means "*".
	AllowedOrigin string
	// Backends describes the configured capabilities for /health.
	Backends map[string]string
}

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc    *services.Orchestrator // Dependency on the Core Service
	router *http.ServeMux         // Standard library router
	opts   Options
	next   http.Handler
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator, opts Options) *Handler {
	h := &Handler{
		svc:    svc,
		router: http.NewServeMux(),
		opts:   opts,
	}

	// Register Routes
	h.routes()
	h.next = cors(opts.AllowedOrigin, h.router)

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.next.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)

	// Generation
	h.router.HandleFunc("POST /mood", h.AnalyzeMood)
	h.router.HandleFunc("POST /generate", h.Generate)
	h.router.HandleFunc("GET /stories/current", h.CurrentStory)
	h.router.HandleFunc("GET /stories/current/poster.png", h.PosterImage)
	h.router.HandleFunc("GET /stories/current/export/{format}", h.Export)
	h.router.HandleFunc("POST /stories/current/endings", h.AlternativeEndings)

	// Session history
	h.router.HandleFunc("POST /versions", h.SaveVersion)
	h.router.HandleFunc("GET /versions", h.ListVersions)
	h.router.HandleFunc("GET /versions/{id}", h.GetVersion)
	h.router.HandleFunc("POST /versions/{id}/restore", h.RestoreVersion)

	// Collaborators
	h.router.HandleFunc("GET /collaborators", h.ListCollaborators)
	h.router.HandleFunc("POST /collaborators", h.AddCollaborator)
	h.router.HandleFunc("DELETE /collaborators/{email}", h.RemoveCollaborator)
}

type healthResponse struct {
	Status   string            `json:"status"`
	Message  string            `json:"message"`
	Backends map[string]string `json:"backends,omitempty"`
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Message:  "moodreel is rolling 🎬",
		Backends: h.opts.Backends,
	})
}
