package sale

import (
	"log/slog"
	"net/http"

	"saleportal/entity"
	"saleportal/internal/lib/api/response"

	"github.com/go-chi/render"
)

// List serves one page of the caller's orders, newest first. The q/party/
// address filters are passed through only for manager scopes.
func List(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sale.List"

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

		search := entity.SaleSearch{}
		if scope.Manager {
			search = entity.SaleSearch{
				Query:   r.URL.Query().Get("q"),
				Party:   r.URL.Query().Get("party"),
				Address: r.URL.Query().Get("address"),
			}
		}

		orders, page, err := core.ListOrders(r.Context(), scope, r.URL.Query().Get("page"), search)
		if err != nil {
			renderError(w, r, log, err)
			return
		}

		render.JSON(w, r, response.OkWithPage(map[string]any{
			"breadcrumbs": breadcrumbs(),
			"sales":       orders,
		}, page))
	}
}
