package main

import (
	"flag"
	"log/slog"
	"time"

	"saleportal/bot"
	"saleportal/impl/core"
	"saleportal/internal/config"
	"saleportal/internal/database"
	repository "saleportal/internal/database/mongo"
	"saleportal/internal/erp"
	"saleportal/internal/http-server/api"
	"saleportal/internal/lib/logger"
	"saleportal/internal/lib/sl"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	if conf.Telegram.Enabled {
		tgBot, err := bot.NewTgBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
		} else {
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelWarn)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram bot initialized")

			go func() {
				if err := tgBot.Start(); err != nil {
					lg.Error("telegram bot error", sl.Err(err))
				}
			}()
		}
	}

	lg.Info("starting saleportal", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg, conf)

	gateway, err := erp.NewClient(conf, lg)
	if err != nil {
		lg.Error("erp client", sl.Err(err))
	} else {
		handler.SetGateway(gateway)
		lg.With(
			slog.String("url", conf.ERP.Url),
			slog.String("database", conf.ERP.Database),
		).Info("erp client initialized")
	}

	db, err := database.NewSQLClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mysql client")
	}
	if db != nil {
		handler.SetRepository(db)
		lg.With(
			slog.String("host", conf.SQL.HostName),
			slog.String("port", conf.SQL.Port),
			slog.String("database", conf.SQL.Database),
		).Info("session store initialized")
		defer db.Close()

		go func() {
			ticker := time.NewTicker(30 * time.Minute)
			defer ticker.Stop()

			for range ticker.C {
				lg.Info("mysql", slog.String("stats", db.Stats()))
			}
		}()
	}

	audit, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.Error("mongo client", sl.Err(err))
	}
	if audit != nil {
		handler.SetAuditRepository(audit)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("database", conf.Mongo.Database),
		).Info("audit store initialized")
	}

	handler.Start()
	defer handler.Stop()

	if err := api.New(conf, lg, handler); err != nil {
		lg.Error("api server", sl.Err(err))
	}

	lg.Error("service stopped")
}
