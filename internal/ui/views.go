package ui

import (
	"fmt"
	"strconv"

	"github.com/MarkMiraclee/vvclient/internal/models"
	"github.com/MarkMiraclee/vvclient/internal/phone"
	"github.com/shopspring/decimal"
)

const (
	colorSuccess = "#4caf50"
	colorError   = "#e05252"
	colorAccent  = "#c9a84c"

	maxBadgeCount = 99
)

func LoggedOutHeader() Header {
	return Header{}
}

func HeaderFor(p models.Profile) Header {
	h := Header{
		LoggedIn:   true,
		CreditCard: Euro2(p.CreditAmount),
	}
	if p.UnreadMessages > 0 {
		h.BadgeVisible = true
		h.Badge = strconv.Itoa(p.UnreadMessages)
		if p.UnreadMessages > maxBadgeCount {
			h.Badge = "99+"
		}
	}
	return h
}

// Euro2 formats a balance with two decimals, e.g. €10.00.
func Euro2(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

// Euro formats an amount without padding, e.g. €10 or €7.5.
func Euro(d decimal.Decimal) string {
	return "€" + d.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ShortID is the order identifier shown to the user: its first 8 characters.
func ShortID(id string) string {
	return truncate(id, 8)
}

func OrderItems(orders []models.Order) []OrderItem {
	items := make([]OrderItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, OrderItem{
			Title:       o.Phone + " · " + o.Operator,
			CreatedAt:   truncate(o.CreatedAt, 16),
			Message:     o.Message,
			Amount:      Euro(o.Amount),
			Status:      o.Status,
			StatusLabel: models.StatusLabel(o.Status),
		})
	}
	return items
}

func CreditPanelFor(info models.CreditInfo) CreditPanel {
	var icon, name string
	if info.CreditLevel != nil {
		icon, name = info.CreditLevel.Icon, info.CreditLevel.Name
	}

	p := CreditPanel{
		Amount: Euro2(info.CreditAmount),
		Level:  fmt.Sprintf("信用等级: %s %s · 积分: %d", icon, name, info.CreditScore),
	}
	if info.NextLevel != nil {
		p.NextLevel = fmt.Sprintf("距下一等级「%s」还需 %d 积分", info.NextLevel.Name, info.NextLevel.MinScore-info.CreditScore)
	}
	return p
}

func messageColor(t models.MessageType) string {
	switch t {
	case models.MessageSuccess:
		return colorSuccess
	case models.MessageError:
		return colorError
	default:
		return colorAccent
	}
}

// MessageItems keeps the server order.
func MessageItems(msgs []models.Message) []MessageItem {
	items := make([]MessageItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, MessageItem{
			Title:     m.Title,
			Color:     messageColor(m.Type),
			Content:   m.Content,
			CreatedAt: truncate(m.CreatedAt, 16),
		})
	}
	return items
}

// ApplyBonuses annotates buttons that have a non-zero bonus in an active promotion.
// It never removes an annotation or changes the amount set.
func ApplyBonuses(buttons []AmountButton, promo models.Promotions) {
	if !promo.CNYActive {
		return
	}
	for i := range buttons {
		bonus, ok := promo.Bonuses[strconv.Itoa(buttons[i].Amount)]
		if ok && !bonus.IsZero() {
			buttons[i].Bonus = "+" + Euro(bonus)
		}
	}
}

func OperatorHint(number string) string {
	if op, ok := phone.SuggestOperator(number); ok {
		return "建议运营商: " + op
	}
	return ""
}
