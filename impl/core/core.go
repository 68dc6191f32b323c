package core

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"saleportal/entity"
	"saleportal/internal/config"
	"saleportal/internal/erp"
	"saleportal/internal/lib/sl"
)

// Record store models and workflow methods consumed by the controller.
const (
	modelSale     = "sale.sale"
	modelSaleLine = "sale.line"
	modelShop     = "sale.shop"
	modelProduct  = "product.product"
	modelWishlist = "sale.wishlist"

	reportSale = "sale.report"

	methodCancel = "cancel"
	methodDraft  = "draft"
	methodQuote  = "quote"
)

// Gateway is the record store contract the workflow needs. The store owns
// every entity and executes mutations transactionally on its side.
type Gateway interface {
	Search(ctx context.Context, model string, filter erp.Filter, offset, limit int, order []erp.OrderBy) ([]int64, error)
	SearchCount(ctx context.Context, model string, filter erp.Filter) (int, error)
	Read(ctx context.Context, model string, ids []int64, fields []string, out any) error
	Create(ctx context.Context, model string, records any) ([]int64, error)
	Delete(ctx context.Context, model string, ids []int64) error
	Write(ctx context.Context, model string, ids []int64, values map[string]any) error
	Execute(ctx context.Context, model, method string, ids []int64) error
	Report(ctx context.Context, report string, ids []int64) ([]byte, string, error)
}

// Repository resolves storefront session tokens to caller identity.
type Repository interface {
	SessionByToken(token string) (*entity.UserAuth, error)
}

// AuditRepository records mutation outcomes for support follow-up.
type AuditRepository interface {
	SaveOutcome(orderID int64, action string, result bool, message string) error
	DeleteExpired() (int64, error)
}

type Core struct {
	gateway Gateway
	repo    Repository
	audit   AuditRepository

	shops           []int64
	pageLimit       int
	stateExclude    []string
	printable       map[string]bool
	lastViewedLimit int
	lastViewedCap   int

	keys   map[string]*entity.UserAuth
	keysMu sync.RWMutex

	log    *slog.Logger
	stopCh chan struct{}
}

func New(log *slog.Logger, conf *config.Config) *Core {
	printable := make(map[string]bool)
	states := conf.Sale.PrintableStates
	if len(states) == 0 {
		states = []string{entity.StateConfirmed, entity.StateProcessing, entity.StateDone}
	}
	for _, state := range states {
		printable[state] = true
	}

	pageLimit := conf.Sale.PageLimit
	if pageLimit <= 0 {
		pageLimit = 20
	}

	return &Core{
		shops:           conf.Sale.Shops,
		pageLimit:       pageLimit,
		stateExclude:    conf.Sale.StateExclude,
		printable:       printable,
		lastViewedLimit: conf.Sale.LastViewedLimit,
		lastViewedCap:   conf.Sale.LastViewedCap,
		keys:            make(map[string]*entity.UserAuth),
		log:             log.With(sl.Module("core")),
		stopCh:          make(chan struct{}),
	}
}

func (c *Core) SetGateway(gateway Gateway) {
	c.gateway = gateway
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetAuditRepository(audit AuditRepository) {
	c.audit = audit
}

// Start launches the audit cleanup loop. The workflow itself is purely
// request-driven and needs no background work.
func (c *Core) Start() {
	if c.gateway == nil {
		c.log.Error("record store gateway not set")
		return
	}

	if c.audit == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()

		c.cleanupExpiredAudit()

		for {
			select {
			case <-c.stopCh:
				return
			case <-ticker.C:
				c.cleanupExpiredAudit()
			}
		}
	}()
}

func (c *Core) Stop() {
	close(c.stopCh)
}

func (c *Core) cleanupExpiredAudit() {
	deleted, err := c.audit.DeleteExpired()
	if err != nil {
		c.log.With(sl.Err(err)).Warn("failed to cleanup expired audit records")
		return
	}
	if deleted > 0 {
		c.log.Debug("expired audit records removed", slog.Int64("count", deleted))
	}
}

// saveOutcome records a mutation attempt; audit is best effort.
func (c *Core) saveOutcome(orderID int64, action string, result bool, message string) {
	if c.audit == nil {
		return
	}
	if err := c.audit.SaveOutcome(orderID, action, result, message); err != nil {
		c.log.With(sl.Err(err)).Warn("failed to save audit record",
			slog.Int64("order_id", orderID), slog.String("action", action))
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
