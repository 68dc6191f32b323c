package sale

import (
	"log/slog"
	"net/http"

	"saleportal/internal/lib/api/response"

	"github.com/go-chi/render"
)

// Cancel asks the workflow to cancel an order. All domain failures come
// back as warnings in the outcome body, not HTTP errors.
func Cancel(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sale.Cancel"

		log := logger.With(
			slog.String("op", op),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
		)

		scope, ok := requireLogin(w, r, log)
		if !ok {
			return
		}

		id, ok := orderID(w, r, log)
		if !ok {
			return
		}
		log = log.With(slog.Int64("order_id", id))

		outcome := core.CancelOrder(r.Context(), scope, id)
		if !outcome.Result {
			log.Warn("order not cancelled", slog.Any("warnings", outcome.Messages.Warning))
		}

		render.JSON(w, r, response.Ok(outcome))
	}
}
