package models

import (
	"github.com/shopspring/decimal"
)

type CreditLevel struct {
	Name        string          `json:"name"`
	Icon        string          `json:"icon"`
	MinScore    int             `json:"min_score"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// Profile is the /api/me snapshot held by the session while logged in.
type Profile struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Nickname       string          `json:"nickname"`
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	CreditUsed     decimal.Decimal `json:"credit_used"`
	CreditScore    int             `json:"credit_score"`
	CreditLevel    *CreditLevel    `json:"credit_level,omitempty"`
	NextLevel      *CreditLevel    `json:"next_level,omitempty"`
	UnreadMessages int             `json:"unread_messages"`
}

type LoginRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id,omitempty"`
}

type Promotions struct {
	CNYActive bool                       `json:"cny_active"`
	Bonuses   map[string]decimal.Decimal `json:"bonuses"`
}

type OperatorsResponse struct {
	Operators []string `json:"operators"`
}

type CreateOrderRequest struct {
	Phone    string `json:"phone"`
	Operator string `json:"operator"`
	Amount   int    `json:"amount"`
	IsCredit bool   `json:"is_credit"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status,omitempty"`
}

type Order struct {
	ID        string          `json:"id"`
	Phone     string          `json:"phone"`
	Operator  string          `json:"operator"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
	Message   string          `json:"message,omitempty"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

type CreditInfo struct {
	CreditAmount decimal.Decimal `json:"credit_amount"`
	CreditUsed   decimal.Decimal `json:"credit_used"`
	CreditScore  int             `json:"credit_score"`
	CreditLevel  *CreditLevel    `json:"credit_level,omitempty"`
	NextLevel    *CreditLevel    `json:"next_level,omitempty"`
}

type MessageType string

const (
	MessageInfo    MessageType = "info"
	MessageSuccess MessageType = "success"
	MessageError   MessageType = "error"
)

type Message struct {
	Title     string      `json:"title"`
	Content   string      `json:"content,omitempty"`
	Type      MessageType `json:"type"`
	CreatedAt string      `json:"created_at"`
}

type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

var statusLabels = map[string]string{
	"pending":          "待处理",
	"charged":          "已收单",
	"processing":       "充值中",
	"paying":           "支付中",
	"completed":        "已完成",
	"failed":           "失败",
	"cancelled":        "已取消",
	"awaiting_payment": "待付款",
	"holding":          "排队中",
}

// StatusLabel returns the display label of an order status, or the status itself when unknown.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
