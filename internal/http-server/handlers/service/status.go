package service

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type healthResponse struct {
	Status string `json:"status"`
}

func Status(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, handler.Status())
	}
}

// Health is polled by the hosting platform; it never touches QuickBase.
func Health(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, healthResponse{Status: "healthy"})
	}
}
