package handler

import (
	"net/http"

	"orderdesk/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	router   *chi.Mux
	svc      *service.DashboardService
	products []string
}

func NewHandler(svc *service.DashboardService, products []string) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	h := &Handler{
		router:   router,
		svc:      svc,
		products: products,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Get("/", h.Dashboard)
	h.router.Post("/login", h.Login)
	h.router.Post("/logout", h.Logout)
	h.router.Post("/orders", h.PlaceOrder)

	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
