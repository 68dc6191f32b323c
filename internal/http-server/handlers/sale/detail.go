package sale

import (
	"log/slog"
	"net/http"

	"saleportal/entity"
	"saleportal/internal/lib/api/cont"
	"saleportal/internal/lib/api/response"

	"github.com/go-chi/render"
)

// Detail serves a single order. Anonymous callers are allowed: a sale
// created before login carries no party, and the scoped filter pins the
// lookup to such orders for them.
func Detail(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sale.Detail"

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

		scope := cont.GetScope(r.Context())

		order, err := core.GetOrder(r.Context(), scope, id)
		if err != nil {
			renderError(w, r, log, err)
			return
		}

		reference := order.Name()
		render.JSON(w, r, response.Ok(map[string]any{
			"breadcrumbs": breadcrumbs(entity.Breadcrumb{
				Link:  r.URL.Path,
				Label: reference,
			}),
			"sale": order,
		}))
	}
}
