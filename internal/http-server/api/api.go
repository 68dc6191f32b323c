package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"saleportal/internal/config"
	"saleportal/internal/http-server/handlers/errors"
	"saleportal/internal/http-server/handlers/product"
	"saleportal/internal/http-server/handlers/sale"
	"saleportal/internal/http-server/handlers/wishlist"
	"saleportal/internal/http-server/middleware/session"
	"saleportal/internal/http-server/middleware/timeout"
	"saleportal/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	session.Authenticate
	sale.Core
	wishlist.Core
	product.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(15))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(session.New(log, handler))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/v1", func(v1 chi.Router) {
		v1.Route("/sales", func(r chi.Router) {
			r.Get("/", sale.List(log, handler))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", sale.Detail(log, handler))
				r.Get("/print", sale.Print(log, handler))
				r.Post("/cancel", sale.Cancel(log, handler))
				r.Post("/payment", sale.ChangePayment(log, handler))
			})
		})
		v1.Route("/wishlist", func(r chi.Router) {
			r.Post("/", wishlist.Add(log, handler))
			r.Delete("/", wishlist.Remove(log, handler))
		})
		v1.Get("/products/last-viewed", product.LastViewed(log, handler))
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
