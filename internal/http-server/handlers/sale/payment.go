package sale

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

// ChangePayment applies a new payment type to an order.
func ChangePayment(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sale.ChangePayment"

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

		var form entity.PaymentChangeForm
		if err := request.Decode(r, &form); err != nil {
			apiErr := apierrors.NewValidationError("Invalid payment change request")
			if errors.Is(err, request.ErrEmptyBody) {
				apiErr = apierrors.NewBadRequestError("Empty request body")
			}
			log.Warn("failed to decode payment change",
				slog.String("error", err.Error()),
				slog.String("error_code", string(apiErr.Code)),
			)
			render.Status(r, apiErr.HTTPStatus)
			render.JSON(w, r, response.ErrorFromAPIError(apiErr))
			return
		}

		outcome := core.ChangePayment(r.Context(), scope, id, form.PaymentType)
		if !outcome.Result {
			log.Warn("payment not changed", slog.Any("warnings", outcome.Messages.Warning))
		}

		render.JSON(w, r, response.Ok(outcome))
	}
}
