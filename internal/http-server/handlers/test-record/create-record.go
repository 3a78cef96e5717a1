package test_record

import (
	"CallRelay/entity"
	"CallRelay/internal/lib/api/payload"
	"CallRelay/internal/lib/api/response"
	"CallRelay/internal/lib/sl"
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// CreateRecord pushes a record to QuickBase regardless of disposition.
func CreateRecord(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.test-record")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		body, err := payload.Read(r)
		if err != nil {
			logger.Error("read request body", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Failure(err))
			return
		}

		result, err := handler.CreateTestRecord(context.WithoutCancel(r.Context()), entity.NewCallEvent(body))
		if err != nil {
			logger.Error("create test record", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Failure(err))
			return
		}
		logger.Info("test record created")

		render.JSON(w, r, response.Ok(result))
	}
}
