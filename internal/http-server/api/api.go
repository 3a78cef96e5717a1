package api

import (
	"CallRelay/internal/config"
	"CallRelay/internal/http-server/handlers/calltools"
	"CallRelay/internal/http-server/handlers/debug"
	"CallRelay/internal/http-server/handlers/errors"
	"CallRelay/internal/http-server/handlers/service"
	test_record "CallRelay/internal/http-server/handlers/test-record"
	"CallRelay/internal/http-server/middleware/logger"
	"CallRelay/internal/http-server/middleware/received"
	"CallRelay/internal/lib/sl"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	service.Core
	calltools.Core
	test_record.Core
}

type Metrics interface {
	received.Counter
	Handler() http.Handler
}

func NewRouter(log *slog.Logger, handler Handler, metrics Metrics) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(logger.New(log))
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Get("/", service.Status(log, handler))
	router.Get("/health", service.Health(log))
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(received.New(metrics))
		r.Post("/webhook/calltools", calltools.Webhook(log, handler))
		r.Post("/webhook/debug", debug.Echo(log))
		r.Post("/test/create-record", test_record.CreateRecord(log, handler))
	})

	return router
}

func New(conf *config.Config, log *slog.Logger, handler Handler, metrics Metrics) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  NewRouter(log, handler, metrics),
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
