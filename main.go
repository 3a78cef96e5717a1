package main

import (
	"CallRelay/bot"
	"CallRelay/impl/core"
	"CallRelay/internal/config"
	"CallRelay/internal/http-server/api"
	"CallRelay/internal/lib/logger"
	"CallRelay/internal/lib/metrics"
	"CallRelay/internal/lib/sl"
	"CallRelay/internal/service/quickbase"
	"flag"
	"log/slog"
)

func main() {

	configPath := flag.String("conf", "", "path to config file (yaml or .env); environment when empty")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env)

	if conf.Telegram.Enabled {
		tgBot, err := bot.NewTgBot(conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
		} else {
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelError)
			lg.With(
				slog.Int64("admin_id", conf.Telegram.AdminId),
			).Info("telegram alerts enabled")
		}
	}

	lg.Info("starting callrelay", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	m := metrics.New()

	handler := core.New(lg)
	handler.SetTrigger(conf.CallTools.Disposition)
	handler.SetMetrics(m)

	qb := quickbase.NewQuickBaseService(conf, lg)
	handler.SetQuickBaseService(qb)
	lg.With(
		slog.String("realm", conf.QuickBase.Realm),
		slog.String("table", conf.QuickBase.TableID),
		sl.Secret("user_token", conf.QuickBase.UserToken),
		slog.String("trigger", conf.CallTools.Disposition),
	).Info("quickbase service initialized")

	// *** blocking start with http server ***
	err := api.New(conf, lg, handler, m)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
