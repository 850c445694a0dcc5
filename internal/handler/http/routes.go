package http

import (
	"net/http"

	"github.com/MKhiriev/agent-chat/internal/app"
	"github.com/MKhiriev/agent-chat/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Post("/chat", h.chat)
	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
