package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"saleportal/internal/config"
	"saleportal/internal/erp"
)

// fakeGateway implements Gateway with pluggable behavior per call. Every
// call is appended to calls as "<verb> <model>[ <method>]" so tests can
// assert the protocol order of multi-step operations.
type fakeGateway struct {
	searchFn      func(model string, filter erp.Filter, offset, limit int) ([]int64, error)
	searchCountFn func(model string, filter erp.Filter) (int, error)
	readFn        func(model string, ids []int64, fields []string, out any) error
	createFn      func(model string, records any) ([]int64, error)
	deleteFn      func(model string, ids []int64) error
	writeFn       func(model string, ids []int64, values map[string]any) error
	executeFn     func(model, method string, ids []int64) error
	reportFn      func(report string, ids []int64) ([]byte, string, error)

	calls []string
}

func (g *fakeGateway) Search(_ context.Context, model string, filter erp.Filter, offset, limit int, _ []erp.OrderBy) ([]int64, error) {
	g.calls = append(g.calls, "search "+model)
	if g.searchFn == nil {
		return nil, nil
	}
	return g.searchFn(model, filter, offset, limit)
}

func (g *fakeGateway) SearchCount(_ context.Context, model string, filter erp.Filter) (int, error) {
	g.calls = append(g.calls, "search_count "+model)
	if g.searchCountFn == nil {
		return 0, nil
	}
	return g.searchCountFn(model, filter)
}

func (g *fakeGateway) Read(_ context.Context, model string, ids []int64, fields []string, out any) error {
	g.calls = append(g.calls, "read "+model)
	if g.readFn == nil {
		return nil
	}
	return g.readFn(model, ids, fields, out)
}

func (g *fakeGateway) Create(_ context.Context, model string, records any) ([]int64, error) {
	g.calls = append(g.calls, "create "+model)
	if g.createFn == nil {
		return nil, nil
	}
	return g.createFn(model, records)
}

func (g *fakeGateway) Delete(_ context.Context, model string, ids []int64) error {
	g.calls = append(g.calls, "delete "+model)
	if g.deleteFn == nil {
		return nil
	}
	return g.deleteFn(model, ids)
}

func (g *fakeGateway) Write(_ context.Context, model string, ids []int64, values map[string]any) error {
	g.calls = append(g.calls, "write "+model)
	if g.writeFn == nil {
		return nil
	}
	return g.writeFn(model, ids, values)
}

func (g *fakeGateway) Execute(_ context.Context, model, method string, ids []int64) error {
	g.calls = append(g.calls, fmt.Sprintf("execute %s %s", model, method))
	if g.executeFn == nil {
		return nil
	}
	return g.executeFn(model, method, ids)
}

func (g *fakeGateway) Report(_ context.Context, report string, ids []int64) ([]byte, string, error) {
	g.calls = append(g.calls, "report "+report)
	if g.reportFn == nil {
		return nil, "", nil
	}
	return g.reportFn(report, ids)
}

type auditCall struct {
	orderID int64
	action  string
	result  bool
	message string
}

type fakeAudit struct {
	records []auditCall
}

func (a *fakeAudit) SaveOutcome(orderID int64, action string, result bool, message string) error {
	a.records = append(a.records, auditCall{orderID, action, result, message})
	return nil
}

func (a *fakeAudit) DeleteExpired() (int64, error) {
	return 0, nil
}

func newTestCore(gw Gateway) *Core {
	conf := &config.Config{}
	conf.Sale.Shops = []int64{1, 2}
	conf.Sale.PageLimit = 2
	conf.Sale.StateExclude = []string{"cancelled"}
	conf.Sale.LastViewedLimit = 2
	conf.Sale.LastViewedCap = 3

	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)), conf)
	c.SetGateway(gw)
	return c
}
