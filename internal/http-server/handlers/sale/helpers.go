package sale

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"saleportal/entity"
	"saleportal/internal/lib/api/cont"
	"saleportal/internal/lib/api/response"
	apierrors "saleportal/internal/lib/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// requireLogin rejects anonymous callers with a 401 carrying the login
// location, so the client can resume the original request after login.
func requireLogin(w http.ResponseWriter, r *http.Request, log *slog.Logger) (entity.Scope, bool) {
	scope := cont.GetScope(r.Context())
	if scope.Authenticated {
		return scope, true
	}

	apiErr := apierrors.NewUnauthorizedError("Please log in to view your orders").
		WithDetail("location", "/login?next="+url.QueryEscape(r.URL.RequestURI()))
	log.Warn("anonymous request to login-required endpoint",
		slog.String("error_code", string(apiErr.Code)))
	render.Status(r, apiErr.HTTPStatus)
	render.JSON(w, r, response.ErrorFromAPIError(apiErr))
	return entity.Scope{}, false
}

// orderID parses the {id} path parameter.
func orderID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int64, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		apiErr := apierrors.NewBadRequestError("Invalid order ID")
		log.Warn("invalid order id", slog.String("id", idParam),
			slog.String("error_code", string(apiErr.Code)))
		render.Status(r, apiErr.HTTPStatus)
		render.JSON(w, r, response.ErrorFromAPIError(apiErr))
		return 0, false
	}
	return id, true
}

// renderError maps a workflow error onto the response envelope.
func renderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	apiErr := apierrors.WrapError(err, "Request failed")
	log.Error("request failed",
		slog.String("error", err.Error()),
		slog.String("error_code", string(apiErr.Code)),
	)
	render.Status(r, apiErr.HTTPStatus)
	render.JSON(w, r, response.ErrorFromAPIError(apiErr))
}

func breadcrumbs(extra ...entity.Breadcrumb) []entity.Breadcrumb {
	trail := []entity.Breadcrumb{
		{Link: "/my-account", Label: "My Account"},
		{Link: "/v1/sales", Label: "Sales"},
	}
	return append(trail, extra...)
}
