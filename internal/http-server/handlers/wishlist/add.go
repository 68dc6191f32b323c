package wishlist

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"saleportal/entity"
	"saleportal/internal/lib/api/cont"
	"saleportal/internal/lib/api/request"
	"saleportal/internal/lib/api/response"
	apierrors "saleportal/internal/lib/errors"

	"github.com/go-chi/render"
)

// Add saves a batch of products to the caller's wishlist.
func Add(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wishlist.Add"

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

		var form entity.WishlistAddForm
		if err := request.Decode(r, &form); err != nil && !errors.Is(err, request.ErrEmptyBody) {
			apiErr := apierrors.NewValidationError("Invalid wishlist request")
			log.Warn("failed to decode wishlist add",
				slog.String("error", err.Error()),
				slog.String("error_code", string(apiErr.Code)),
			)
			render.Status(r, apiErr.HTTPStatus)
			render.JSON(w, r, response.ErrorFromAPIError(apiErr))
			return
		}

		outcome := core.WishlistAdd(r.Context(), scope, form.Products)
		render.JSON(w, r, response.Ok(outcome))
	}
}

// requireLogin rejects anonymous callers with a 401 carrying the login
// location.
func requireLogin(w http.ResponseWriter, r *http.Request, log *slog.Logger) (entity.Scope, bool) {
	scope := cont.GetScope(r.Context())
	if scope.Authenticated {
		return scope, true
	}

	apiErr := apierrors.NewUnauthorizedError("Please log in to use your wishlist").
		WithDetail("location", "/login?next="+url.QueryEscape(r.URL.RequestURI()))
	log.Warn("anonymous request to login-required endpoint",
		slog.String("error_code", string(apiErr.Code)))
	render.Status(r, apiErr.HTTPStatus)
	render.JSON(w, r, response.ErrorFromAPIError(apiErr))
	return entity.Scope{}, false
}
