package debug

import (
	"CallRelay/internal/lib/api/payload"
	"CallRelay/internal/lib/api/response"
	"CallRelay/internal/lib/sl"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type echoResponse struct {
	Received bool            `json:"received"`
	Body     json.RawMessage `json:"body"`
}

// Echo logs and returns whatever was posted; used to discover the field
// names a CallTools account sends.
func Echo(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.debug"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		body, err := payload.Read(r)
		if err != nil {
			logger.Warn("read request body", sl.Err(err))
		}

		echoed := response.Opaque(body)
		if echoed == nil {
			echoed = json.RawMessage(`{}`)
		}

		logger.With(
			slog.Any("headers", r.Header),
			slog.String("body", string(echoed)),
		).Info("debug webhook")

		render.JSON(w, r, echoResponse{Received: true, Body: echoed})
	}
}
