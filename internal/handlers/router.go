package handlers

import (
	"github.com/MarkMiraclee/vvclient/internal/middlewares"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *UI) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlewares.Logger(h.log))

	r.Get("/", h.Index)
	r.Get("/style.css", h.Stylesheet)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/open", h.OpenAuth)
		r.Post("/switch", h.SwitchAuth)
		r.Post("/close", h.CloseAuth)
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/logout", h.Logout)
	})
	r.Route("/menu", func(r chi.Router) {
		r.Post("/toggle", h.ToggleMenu)
		r.Post("/close", h.CloseMenu)
	})

	r.Route("/recharge", func(r chi.Router) {
		r.Post("/amount/{amount}", h.SelectAmount)
		r.Post("/submit", h.SubmitRecharge)
	})
	r.Post("/sections/{section}", h.Activate)

	r.Route("/messages", func(r chi.Router) {
		r.Post("/open", h.OpenMessages)
		r.Post("/close", h.CloseMessages)
	})
	return r
}
