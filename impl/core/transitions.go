package core

import (
	"context"

	"saleportal/entity"
	apierrors "saleportal/internal/lib/errors"
	"saleportal/internal/lib/util"
)

const (
	actionCancel        = "cancel"
	actionChangePayment = "change_payment"
)

// CancelOrder asks the store to cancel an order. The local state guard is
// advisory: it avoids pointless round trips, but the store remains the
// authority and its refusal is a normal warning outcome, not an error.
func (c *Core) CancelOrder(ctx context.Context, scope entity.Scope, id int64) *entity.Outcome {
	out := &entity.Outcome{}

	if id == 0 {
		out.Warnf("Select an order to cancel.")
		return out
	}

	order, err := c.findOrder(ctx, scope, id, false)
	if err != nil {
		c.logGatewayFailure("core.CancelOrder", id, err)
		out.Warnf("The order could not be loaded. Please try again.")
		return out
	}
	if order == nil {
		out.Warnf("You are not allowed to cancel this order.")
		return out
	}

	if !order.Mutable() {
		out.Warnf("Order %s can no longer be cancelled.", order.Name())
		return out
	}

	if err := c.gateway.Execute(ctx, modelSale, methodCancel, []int64{id}); err != nil {
		c.logGatewayFailure("core.CancelOrder", id, err)
		c.saveOutcome(id, actionCancel, false, err.Error())
		out.Warnf("Order %s could not be cancelled.", order.Name())
		return out
	}

	c.saveOutcome(id, actionCancel, true, "cancelled")
	out.Result = true
	out.Successf("Order %s was cancelled.", order.Name())
	return out
}

// ChangePayment applies a new payment type to a draft or quotation order.
// Non-draft orders are reverted to draft first, then re-submitted to
// quotation after the write. The protocol is deliberately non-atomic: when
// the re-quote is refused by the store, the order stays in draft with the
// new payment type applied and the caller gets a warning.
func (c *Core) ChangePayment(ctx context.Context, scope entity.Scope, id, paymentType int64) *entity.Outcome {
	out := &entity.Outcome{}

	if id == 0 {
		out.Warnf("Select an order to update.")
		return out
	}
	if paymentType == 0 {
		out.Warnf("Select a payment method.")
		return out
	}

	order, err := c.findOrder(ctx, scope, id, false)
	if err != nil {
		c.logGatewayFailure("core.ChangePayment", id, err)
		out.Warnf("The order could not be loaded. Please try again.")
		return out
	}
	if order == nil {
		out.Warnf("You are not allowed to change this order.")
		return out
	}

	if !order.Mutable() {
		out.Warnf("The payment of order %s can no longer be changed.", order.Name())
		return out
	}

	allowed, err := c.shopAllowsPayment(ctx, order.ShopID, paymentType)
	if err != nil {
		c.logGatewayFailure("core.ChangePayment", id, err)
		out.Warnf("The payment methods could not be checked. Please try again.")
		return out
	}
	if !allowed {
		out.Warnf("This payment method is not available for order %s.", order.Name())
		return out
	}

	if order.State != entity.StateDraft {
		if err := c.gateway.Execute(ctx, modelSale, methodDraft, []int64{id}); err != nil {
			c.logGatewayFailure("core.ChangePayment", id, err)
			c.saveOutcome(id, actionChangePayment, false, err.Error())
			out.Warnf("Order %s could not be reopened for changes.", order.Name())
			return out
		}
	}

	if err := c.gateway.Write(ctx, modelSale, []int64{id}, map[string]any{"payment_type": paymentType}); err != nil {
		c.logGatewayFailure("core.ChangePayment", id, err)
		c.saveOutcome(id, actionChangePayment, false, err.Error())
		out.Warnf("The payment method of order %s could not be changed.", order.Name())
		return out
	}

	// Always try to bring the order back to quotation. A refusal leaves
	// the payment write in place; there is no compensating rollback.
	if err := c.gateway.Execute(ctx, modelSale, methodQuote, []int64{id}); err != nil {
		c.logGatewayFailure("core.ChangePayment", id, err)
		c.saveOutcome(id, actionChangePayment, false, err.Error())
		out.Warnf("The payment method of order %s was changed, but the order could not be confirmed and stays in draft.", order.Name())
		return out
	}

	c.saveOutcome(id, actionChangePayment, true, "payment changed")
	out.Result = true
	out.Successf("The payment method of order %s was changed.", order.Name())
	return out
}

func (c *Core) shopAllowsPayment(ctx context.Context, shopID, paymentType int64) (bool, error) {
	var shops []entity.Shop
	if err := c.gateway.Read(ctx, modelShop, []int64{shopID}, []string{"payment_types"}, &shops); err != nil {
		return false, err
	}
	if len(shops) == 0 {
		return false, nil
	}
	return shops[0].AllowsPayment(paymentType), nil
}

// PrintOrder renders the sale report for an order in a printable state.
func (c *Core) PrintOrder(ctx context.Context, scope entity.Scope, id int64) (*entity.Report, error) {
	order, err := c.findOrder(ctx, scope, id, true)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apierrors.NewNotFoundError("sale")
	}

	if !c.printable[order.State] {
		return nil, apierrors.NewConflictError("This order cannot be printed.")
	}

	data, mimeType, err := c.gateway.Report(ctx, reportSale, []int64{id})
	if err != nil {
		return nil, err
	}
	if mimeType == "" {
		mimeType = "application/pdf"
	}

	return &entity.Report{
		Filename: util.Slugify(order.Reference, "sale") + ".pdf",
		MimeType: mimeType,
		Data:     data,
	}, nil
}
