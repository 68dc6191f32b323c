package sale

import (
	"fmt"
	"log/slog"
	"net/http"

	"saleportal/internal/lib/api/cont"
)

// Print streams the rendered sale report as a file download.
func Print(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sale.Print"

		log := logger.With(
			slog.String("op", op),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
		)

		id, ok := orderID(w, r, log)
		if !ok {
			return
		}
		log = log.With(slog.Int64("order_id", id))

		scope := cont.GetScope(r.Context())

		report, err := core.PrintOrder(r.Context(), scope, id)
		if err != nil {
			renderError(w, r, log, err)
			return
		}

		w.Header().Set("Content-Type", report.MimeType)
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", report.Filename))
		w.Header().Set("Content-Length", fmt.Sprint(len(report.Data)))
		if _, err := w.Write(report.Data); err != nil {
			log.Error("failed to stream report", slog.String("error", err.Error()))
		}
	}
}
