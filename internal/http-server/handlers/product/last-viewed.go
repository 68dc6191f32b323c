package product

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"saleportal/internal/lib/api/cont"
	"saleportal/internal/lib/api/response"
	apierrors "saleportal/internal/lib/errors"

	"github.com/go-chi/render"
)

// LastViewed serves the caller's recently ordered products, most recent
// line first, optionally narrowed to one delivery address.
func LastViewed(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.product.LastViewed"

		log := logger.With(
			slog.String("op", op),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
		)

		scope := cont.GetScope(r.Context())
		if !scope.Authenticated {
			apiErr := apierrors.NewUnauthorizedError("Please log in to view your products").
				WithDetail("location", "/login?next="+url.QueryEscape(r.URL.RequestURI()))
			log.Warn("anonymous request to login-required endpoint",
				slog.String("error_code", string(apiErr.Code)))
			render.Status(r, apiErr.HTTPStatus)
			render.JSON(w, r, response.ErrorFromAPIError(apiErr))
			return
		}

		var addressID int64
		if raw := r.URL.Query().Get("address"); raw != "" {
			addressID, _ = strconv.ParseInt(raw, 10, 64)
		}

		products, page, err := core.LastViewedProducts(r.Context(), scope, r.URL.Query().Get("page"), addressID)
		if err != nil {
			apiErr := apierrors.WrapError(err, "Request failed")
			log.Error("failed to load last viewed products",
				slog.String("error", err.Error()),
				slog.String("error_code", string(apiErr.Code)),
			)
			render.Status(r, apiErr.HTTPStatus)
			render.JSON(w, r, response.ErrorFromAPIError(apiErr))
			return
		}

		render.JSON(w, r, response.OkWithPage(map[string]any{
			"products": products,
		}, page))
	}
}
