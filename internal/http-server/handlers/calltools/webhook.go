package calltools

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

func Webhook(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.calltools")

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
		logger.Debug("calltools webhook", slog.String("body", string(body)))

		// a client hang-up must not abort a record creation already under way
		ctx := context.WithoutCancel(r.Context())

		outcome, err := handler.HandleCallEvent(ctx, entity.NewCallEvent(body))
		if err != nil {
			logger.Error("process webhook", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Failure(err))
			return
		}

		logger = logger.With(
			slog.String("action", outcome.Action),
			slog.String("disposition", outcome.Disposition),
		)

		if outcome.Action == entity.ActionSkipped {
			logger.Debug("webhook skipped")
			render.JSON(w, r, response.Skipped(outcome.Reason))
			return
		}

		logger.Info("webhook processed")
		render.JSON(w, r, response.Created(outcome.Response))
	}
}
