package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// SetupLogger builds the root logger for the given environment. Local
// runs get readable text on stdout; dev and prod get JSON, prod also
// mirrored to a log file under logPath.
func SetupLogger(env string, logPath string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		out := io.Writer(os.Stdout)
		file, err := os.OpenFile(
			filepath.Join(logPath, "saleportal.log"),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644,
		)
		if err != nil {
			log.Printf("failed to open log file: %v", err)
		} else {
			out = io.MultiWriter(os.Stdout, file)
		}
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// Notifier receives formatted log lines for out-of-band alerting.
type Notifier interface {
	Notify(level slog.Level, message string)
}

// SetupTelegramHandler fans records at or above minLevel out to the
// notifier while keeping the original handler untouched.
func SetupTelegramHandler(lg *slog.Logger, notifier Notifier, minLevel slog.Level) *slog.Logger {
	return slog.New(&notifyHandler{
		next:     lg.Handler(),
		notifier: notifier,
		minLevel: minLevel,
	})
}
