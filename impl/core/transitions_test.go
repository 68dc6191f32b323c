package core

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"saleportal/entity"
	"saleportal/internal/erp"
	apierrors "saleportal/internal/lib/errors"
)

// transitionGateway serves one order and records the workflow calls made
// against it.
func transitionGateway(order entity.Order) *fakeGateway {
	return &fakeGateway{
		searchFn: func(model string, filter erp.Filter, offset, limit int) ([]int64, error) {
			return []int64{order.ID}, nil
		},
		readFn: func(model string, ids []int64, fields []string, out any) error {
			switch target := out.(type) {
			case *[]entity.Order:
				*target = []entity.Order{order}
			case *[]entity.Shop:
				*target = []entity.Shop{{ID: order.ShopID, PaymentTypeIDs: []int64{3, 4}}}
			}
			return nil
		},
	}
}

var customerScope = entity.Scope{Authenticated: true, PartyID: 5}

func TestCancelOrder_NoSelection(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestCore(gw)

	out := c.CancelOrder(context.Background(), customerScope, 0)
	if out.Result {
		t.Error("CancelOrder(0) Result = true, want false")
	}
	if len(out.Messages.Warning) != 1 {
		t.Fatalf("CancelOrder(0) warnings = %v, want one", out.Messages.Warning)
	}
	if len(gw.calls) != 0 {
		t.Errorf("gateway was called %v, want no calls", gw.calls)
	}
}

func TestCancelOrder_NotVisible(t *testing.T) {
	gw := &fakeGateway{
		searchFn: func(model string, filter erp.Filter, offset, limit int) ([]int64, error) {
			return nil, nil
		},
	}
	c := newTestCore(gw)

	out := c.CancelOrder(context.Background(), customerScope, 10)
	if out.Result {
		t.Error("Result = true, want false")
	}
	if len(out.Messages.Warning) != 1 || !strings.Contains(out.Messages.Warning[0], "not allowed") {
		t.Errorf("warnings = %v, want a not-allowed warning", out.Messages.Warning)
	}
}

func TestCancelOrder_StateGuard(t *testing.T) {
	tests := []struct {
		state      string
		wantResult bool
	}{
		{entity.StateDraft, true},
		{entity.StateQuotation, true},
		{entity.StateConfirmed, false},
		{entity.StateProcessing, false},
		{entity.StateDone, false},
		{entity.StateCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			gw := transitionGateway(entity.Order{ID: 10, Reference: "S-010", State: tt.state})
			c := newTestCore(gw)

			out := c.CancelOrder(context.Background(), customerScope, 10)
			if out.Result != tt.wantResult {
				t.Errorf("Result = %v, want %v", out.Result, tt.wantResult)
			}

			executed := false
			for _, call := range gw.calls {
				if call == "execute sale.sale cancel" {
					executed = true
				}
			}
			if executed != tt.wantResult {
				t.Errorf("cancel executed = %v, want %v (calls %v)", executed, tt.wantResult, gw.calls)
			}
		})
	}
}

func TestCancelOrder_AuditTrail(t *testing.T) {
	gw := transitionGateway(entity.Order{ID: 10, Reference: "S-010", State: entity.StateQuotation})
	c := newTestCore(gw)
	audit := &fakeAudit{}
	c.SetAuditRepository(audit)

	out := c.CancelOrder(context.Background(), customerScope, 10)
	if !out.Result {
		t.Fatalf("Result = false, warnings %v", out.Messages.Warning)
	}
	if len(out.Messages.Success) != 1 || !strings.Contains(out.Messages.Success[0], "S-010") {
		t.Errorf("success messages = %v, want one naming S-010", out.Messages.Success)
	}
	if len(audit.records) != 1 {
		t.Fatalf("audit records = %v, want one", audit.records)
	}
	rec := audit.records[0]
	if rec.orderID != 10 || rec.action != actionCancel || !rec.result {
		t.Errorf("audit record = %+v, want successful cancel of 10", rec)
	}
}

func TestCancelOrder_StoreRefusal(t *testing.T) {
	gw := transitionGateway(entity.Order{ID: 10, Reference: "S-010", State: entity.StateQuotation})
	gw.executeFn = func(model, method string, ids []int64) error {
		return apierrors.NewExternalRejectedError("shipment already planned")
	}
	c := newTestCore(gw)
	audit := &fakeAudit{}
	c.SetAuditRepository(audit)

	out := c.CancelOrder(context.Background(), customerScope, 10)
	if out.Result {
		t.Error("Result = true, want false on store refusal")
	}
	if len(out.Messages.Warning) != 1 {
		t.Errorf("warnings = %v, want one", out.Messages.Warning)
	}
	if len(audit.records) != 1 || audit.records[0].result {
		t.Errorf("audit records = %+v, want one failed record", audit.records)
	}
}

func TestChangePayment_RevertsNonDraft(t *testing.T) {
	gw := transitionGateway(entity.Order{ID: 10, Reference: "S-010", State: entity.StateQuotation, ShopID: 1})
	c := newTestCore(gw)

	out := c.ChangePayment(context.Background(), customerScope, 10, 3)
	if !out.Result {
		t.Fatalf("Result = false, warnings %v", out.Messages.Warning)
	}

	var protocol []string
	for _, call := range gw.calls {
		if strings.HasPrefix(call, "execute") || strings.HasPrefix(call, "write") {
			protocol = append(protocol, call)
		}
	}
	want := []string{"execute sale.sale draft", "write sale.sale", "execute sale.sale quote"}
	if fmt.Sprint(protocol) != fmt.Sprint(want) {
		t.Errorf("protocol = %v, want %v", protocol, want)
	}
}

func TestChangePayment_DraftSkipsRevert(t *testing.T) {
	gw := transitionGateway(entity.Order{ID: 10, Reference: "S-010", State: entity.StateDraft, ShopID: 1})
	c := newTestCore(gw)

	out := c.ChangePayment(context.Background(), customerScope, 10, 3)
	if !out.Result {
		t.Fatalf("Result = false, warnings %v", out.Messages.Warning)
	}
	for _, call := range gw.calls {
		if call == "execute sale.sale draft" {
			t.Errorf("draft order was reverted: %v", gw.calls)
		}
	}
}

func TestChangePayment_QuoteRefusalKeepsPayment(t *testing.T) {
	gw := transitionGateway(entity.Order{ID: 10, Reference: "S-010", State: entity.StateDraft, ShopID: 1})
	wrote := false
	gw.writeFn = func(model string, ids []int64, values map[string]any) error {
		wrote = true
		if values["payment_type"] != int64(3) {
			t.Errorf("write values = %v, want payment_type 3", values)
		}
		return nil
	}
	gw.executeFn = func(model, method string, ids []int64) error {
		if method == methodQuote {
			return apierrors.NewExternalRejectedError("credit limit exceeded")
		}
		return nil
	}
	c := newTestCore(gw)
	audit := &fakeAudit{}
	c.SetAuditRepository(audit)

	out := c.ChangePayment(context.Background(), customerScope, 10, 3)
	if out.Result {
		t.Error("Result = true, want false when the re-quote is refused")
	}
	if !wrote {
		t.Error("payment write never happened")
	}
	if len(out.Messages.Warning) != 1 || !strings.Contains(out.Messages.Warning[0], "draft") {
		t.Errorf("warnings = %v, want a stays-in-draft warning", out.Messages.Warning)
	}
	if len(audit.records) != 1 || audit.records[0].result {
		t.Errorf("audit records = %+v, want one failed record", audit.records)
	}
}

func TestChangePayment_PaymentNotOffered(t *testing.T) {
	gw := transitionGateway(entity.Order{ID: 10, Reference: "S-010", State: entity.StateDraft, ShopID: 1})
	c := newTestCore(gw)

	out := c.ChangePayment(context.Background(), customerScope, 10, 99)
	if out.Result {
		t.Error("Result = true, want false for a payment the shop does not offer")
	}
	for _, call := range gw.calls {
		if strings.HasPrefix(call, "write") || strings.HasPrefix(call, "execute") {
			t.Errorf("mutation attempted for a disallowed payment: %v", gw.calls)
		}
	}
}

func TestChangePayment_MissingInput(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestCore(gw)

	if out := c.ChangePayment(context.Background(), customerScope, 0, 3); out.Result || len(out.Messages.Warning) != 1 {
		t.Errorf("missing order: outcome = %+v", out)
	}
	if out := c.ChangePayment(context.Background(), customerScope, 10, 0); out.Result || len(out.Messages.Warning) != 1 {
		t.Errorf("missing payment: outcome = %+v", out)
	}
	if len(gw.calls) != 0 {
		t.Errorf("gateway was called %v, want no calls", gw.calls)
	}
}

func TestPrintOrder(t *testing.T) {
	tests := []struct {
		name      string
		order     entity.Order
		wantErr   func(error) bool
		wantsFile string
	}{
		{
			name:      "printable state renders the report",
			order:     entity.Order{ID: 10, Reference: "S 010/B", State: entity.StateDone},
			wantsFile: "s-010-b.pdf",
		},
		{
			name:      "reference with nothing usable falls back",
			order:     entity.Order{ID: 10, Reference: "***", State: entity.StateConfirmed},
			wantsFile: "sale.pdf",
		},
		{
			name:    "draft order is refused",
			order:   entity.Order{ID: 10, Reference: "S-010", State: entity.StateDraft},
			wantErr: apierrors.IsConflictError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := transitionGateway(tt.order)
			gw.reportFn = func(report string, ids []int64) ([]byte, string, error) {
				return []byte("%PDF-"), "", nil
			}
			c := newTestCore(gw)

			report, err := c.PrintOrder(context.Background(), customerScope, 10)
			if tt.wantErr != nil {
				if err == nil || !tt.wantErr(err) {
					t.Fatalf("PrintOrder() error = %v, want guard error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("PrintOrder() error = %v", err)
			}
			if report.Filename != tt.wantsFile {
				t.Errorf("filename = %s, want %s", report.Filename, tt.wantsFile)
			}
			if report.MimeType != "application/pdf" {
				t.Errorf("mime type = %s, want application/pdf", report.MimeType)
			}
			if len(report.Data) == 0 {
				t.Error("report data is empty")
			}
		})
	}
}

func TestPrintOrder_NotVisible(t *testing.T) {
	gw := &fakeGateway{
		searchFn: func(model string, filter erp.Filter, offset, limit int) ([]int64, error) {
			return nil, nil
		},
	}
	c := newTestCore(gw)

	_, err := c.PrintOrder(context.Background(), customerScope, 10)
	if !apierrors.IsNotFoundError(err) {
		t.Errorf("PrintOrder() error = %v, want NOT_FOUND", err)
	}
}
