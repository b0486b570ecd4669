package app

import (
	"context"
	"net/http"
	"strings"

	"github.com/MarkMiraclee/vvclient/internal/apiclient"
	"github.com/MarkMiraclee/vvclient/internal/metrics"
	"github.com/MarkMiraclee/vvclient/internal/models"
	"github.com/MarkMiraclee/vvclient/internal/notify"
	"github.com/MarkMiraclee/vvclient/internal/ui"
)

// RechargeInput is what the form carries on submit; the amount is held by the document.
type RechargeInput struct {
	Phone    string
	Operator string
	IsCredit bool
}

// SelectAmount marks amount as the chosen preset and keeps what the form held when it was picked.
func (a *App) SelectAmount(amount int, in RechargeInput) bool {
	var ok bool
	a.doc.Update(func(s *ui.State) {
		keepForm(s, in)
		ok = s.SelectAmount(amount)
	})
	return ok
}

func keepForm(s *ui.State, in RechargeInput) {
	s.Recharge.Phone = in.Phone
	s.Recharge.Operator = in.Operator
	s.Recharge.IsCredit = in.IsCredit
	s.Recharge.OperatorHint = ui.OperatorHint(in.Phone)
}

// SubmitRecharge validates the form and places the order. Checks run in order and the
// first failure wins; an unauthenticated user gets the login modal instead.
func (a *App) SubmitRecharge(ctx context.Context, in RechargeInput) {
	var order models.CreateOrderRequest
	a.doc.Update(func(s *ui.State) {
		keepForm(s, in)
		order.Amount = s.Recharge.SelectedAmount()
	})

	if !a.session.LoggedIn() {
		a.OpenAuth(string(ui.AuthLogin))
		return
	}

	order.Phone = strings.TrimSpace(in.Phone)
	order.Operator = in.Operator
	order.IsCredit = in.IsCredit

	switch {
	case order.Phone == "":
		a.notify("请输入手机号", notify.Error)
		return
	case order.Operator == "":
		a.notify("请选择运营商", notify.Error)
		return
	case order.Amount == 0:
		a.notify("请选择充值金额", notify.Error)
		return
	}

	if a.placeOrder(ctx, order) {
		a.Restore(ctx)
	}
}

// placeOrder holds the submit control for the duration of the call.
func (a *App) placeOrder(ctx context.Context, order models.CreateOrderRequest) bool {
	release, ok := a.acquireSubmit()
	if !ok {
		a.log.Debug("recharge already in progress")
		return false
	}
	defer release()

	var resp models.CreateOrderResponse
	if err := a.api.Call(ctx, http.MethodPost, "/api/orders", order, &resp); err != nil {
		metrics.RechargeSubmissionsTotal.WithLabelValues("failed").Inc()
		a.notify(apiclient.Message(err, "提交失败"), notify.Error)
		return false
	}

	metrics.RechargeSubmissionsTotal.WithLabelValues("submitted").Inc()
	a.log.WithField("order_id", resp.OrderID).Info("recharge order submitted")
	a.notify("订单已提交！编号: "+ui.ShortID(resp.OrderID), notify.Success)
	a.doc.Update(func(s *ui.State) {
		s.ResetRecharge()
	})
	return true
}

// acquireSubmit disables the submit control. It fails while another submission holds it.
func (a *App) acquireSubmit() (func(), bool) {
	acquired := false
	a.doc.Update(func(s *ui.State) {
		if s.Recharge.Submitting {
			return
		}
		s.Recharge.Submitting = true
		s.Recharge.SubmitLabel = ui.BusyLabel
		acquired = true
	})
	if !acquired {
		return nil, false
	}

	return func() {
		a.doc.Update(func(s *ui.State) {
			s.Recharge.Submitting = false
			s.Recharge.SubmitLabel = ui.SubmitLabel
		})
	}, true
}

func (a *App) loadPromotions(ctx context.Context) {
	var promo models.Promotions
	if err := a.api.Call(ctx, http.MethodGet, "/api/promotions", nil, &promo); err != nil {
		a.log.WithError(err).Debug("promotions unavailable")
		return
	}

	a.doc.Update(func(s *ui.State) {
		ui.ApplyBonuses(s.Recharge.Amounts, promo)
	})
}

func (a *App) loadOperators(ctx context.Context) {
	var resp models.OperatorsResponse
	if err := a.api.Call(ctx, http.MethodGet, "/api/operators", nil, &resp); err != nil {
		a.log.WithError(err).Debug("operators unavailable, keeping built-in list")
		return
	}
	if len(resp.Operators) == 0 {
		return
	}

	a.doc.Update(func(s *ui.State) {
		s.Recharge.Operators = resp.Operators
	})
}
