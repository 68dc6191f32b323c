package wishlist

import (
	"errors"
	"log/slog"
	"net/http"

	"saleportal/entity"
	"saleportal/internal/lib/api/request"
	"saleportal/internal/lib/api/response"
	apierrors "saleportal/internal/lib/errors"

	"github.com/go-chi/render"
)

// Remove deletes a batch of the caller's wishlist entries.
func Remove(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wishlist.Remove"

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

		var form entity.WishlistRemoveForm
		if err := request.Decode(r, &form); err != nil && !errors.Is(err, request.ErrEmptyBody) {
			apiErr := apierrors.NewValidationError("Invalid wishlist request")
			log.Warn("failed to decode wishlist remove",
				slog.String("error", err.Error()),
				slog.String("error_code", string(apiErr.Code)),
			)
			render.Status(r, apiErr.HTTPStatus)
			render.JSON(w, r, response.ErrorFromAPIError(apiErr))
			return
		}

		outcome := core.WishlistRemove(r.Context(), scope, form.Entries)
		render.JSON(w, r, response.Ok(outcome))
	}
}
