package app

import (
	"context"
	"net/http"

	"github.com/MarkMiraclee/vvclient/internal/models"
	"github.com/MarkMiraclee/vvclient/internal/ui"
)

// Activate shows exactly one section, closes the user menu and re-fetches the section
// content. Fetch failures stay inside the section as a placeholder.
func (a *App) Activate(ctx context.Context, name string) error {
	sec, err := ui.ParseSection(name)
	if err != nil {
		return err
	}

	a.doc.Update(func(s *ui.State) {
		s.ActivateSection(sec)
		s.MenuOpen = false
		if sec == ui.SectionOrders {
			s.Orders = ui.OrderList{Placeholder: ui.Loading()}
		}
	})

	switch sec {
	case ui.SectionOrders:
		a.loadOrders(ctx)
	case ui.SectionCredit:
		a.loadCreditInfo(ctx)
	}
	return nil
}

func (a *App) loadOrders(ctx context.Context) {
	var resp models.OrdersResponse
	err := a.api.Call(ctx, http.MethodGet, "/api/orders", nil, &resp)
	if err != nil {
		a.log.WithError(err).Warn("failed to load orders")
	}

	a.doc.Update(func(s *ui.State) {
		switch {
		case err != nil:
			s.Orders = ui.OrderList{Placeholder: ui.Failed()}
		case len(resp.Orders) == 0:
			s.Orders = ui.OrderList{Placeholder: ui.Empty("暂无订单")}
		default:
			s.Orders = ui.OrderList{Items: ui.OrderItems(resp.Orders)}
		}
	})
}

func (a *App) loadCreditInfo(ctx context.Context) {
	var info models.CreditInfo
	if err := a.api.Call(ctx, http.MethodGet, "/api/credit-info", nil, &info); err != nil {
		a.log.WithError(err).Warn("failed to load credit info")
		a.doc.Update(func(s *ui.State) {
			s.Credit = ui.CreditPanel{Placeholder: ui.Failed()}
		})
		return
	}

	a.doc.Update(func(s *ui.State) {
		s.Credit = ui.CreditPanelFor(info)
	})
}
