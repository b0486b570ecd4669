// Package ui holds the document view model: one typed model per panel, mutated by the
// flows and rendered as a whole.
package ui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MarkMiraclee/vvclient/internal/notify"
	"github.com/MarkMiraclee/vvclient/internal/phone"
)

type Section string

const (
	SectionRecharge Section = "recharge"
	SectionOrders   Section = "orders"
	SectionCredit   Section = "credit"
)

var ErrUnknownSection = errors.New("unknown section")

func ParseSection(name string) (Section, error) {
	switch s := Section(name); s {
	case SectionRecharge, SectionOrders, SectionCredit:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
}

type AuthMode string

const (
	AuthLogin    AuthMode = "login"
	AuthRegister AuthMode = "register"
)

const (
	SubmitLabel = "确认充值"
	BusyLabel   = "提交中..."
)

// PresetAmounts is the fixed set of selectable top-up amounts in euro.
var PresetAmounts = []int{5, 10, 15, 20, 25, 30, 50}

type Placeholder struct {
	Text  string
	Class string
}

func Loading() *Placeholder {
	return &Placeholder{Text: "加载中...", Class: "text-muted"}
}

func Empty(text string) *Placeholder {
	return &Placeholder{Text: text, Class: "text-muted"}
}

func Failed() *Placeholder {
	return &Placeholder{Text: "加载失败", Class: "text-danger"}
}

type Header struct {
	LoggedIn     bool
	CreditCard   string
	Badge        string
	BadgeVisible bool
}

type AuthModal struct {
	Open  bool
	Mode  AuthMode
	Title string
}

type AmountButton struct {
	Amount   int
	Selected bool
	Bonus    string
}

type RechargeForm struct {
	Phone        string
	Operator     string
	Operators    []string
	Amounts      []AmountButton
	IsCredit     bool
	Submitting   bool
	SubmitLabel  string
	OperatorHint string
}

// SelectedAmount returns the chosen amount or 0.
func (f RechargeForm) SelectedAmount() int {
	for _, b := range f.Amounts {
		if b.Selected {
			return b.Amount
		}
	}
	return 0
}

type OrderItem struct {
	Title       string
	CreatedAt   string
	Message     string
	Amount      string
	Status      string
	StatusLabel string
}

type OrderList struct {
	Placeholder *Placeholder
	Items       []OrderItem
}

type CreditPanel struct {
	Amount      string
	Level       string
	NextLevel   string
	Placeholder *Placeholder
}

type MessageItem struct {
	Title     string
	Color     string
	Content   string
	CreatedAt string
}

type MessagesModal struct {
	Open        bool
	Placeholder *Placeholder
	Items       []MessageItem
}

type State struct {
	Header   Header
	MenuOpen bool
	Auth     AuthModal
	Section  Section
	Recharge RechargeForm
	Orders   OrderList
	Credit   CreditPanel
	Messages MessagesModal
	Toasts   []notify.Toast
}

func NewState() State {
	s := State{
		Header:  LoggedOutHeader(),
		Section: SectionRecharge,
		Recharge: RechargeForm{
			Operators:   append([]string(nil), phone.Operators...),
			SubmitLabel: SubmitLabel,
		},
	}
	s.SetAuthMode(AuthLogin)
	for _, a := range PresetAmounts {
		s.Recharge.Amounts = append(s.Recharge.Amounts, AmountButton{Amount: a})
	}
	return s
}

func (s *State) SetAuthMode(mode AuthMode) {
	if mode == AuthRegister {
		s.Auth.Mode = AuthRegister
		s.Auth.Title = "注册"
		return
	}
	s.Auth.Mode = AuthLogin
	s.Auth.Title = "登录"
}

// ActivateSection makes sec the only visible section.
func (s *State) ActivateSection(sec Section) {
	s.Section = sec
}

// SelectAmount marks the button for amount as the only selected one. Amounts outside the
// preset set select nothing and report false.
func (s *State) SelectAmount(amount int) bool {
	found := false
	for i := range s.Recharge.Amounts {
		s.Recharge.Amounts[i].Selected = s.Recharge.Amounts[i].Amount == amount
		found = found || s.Recharge.Amounts[i].Selected
	}
	return found
}

// ResetRecharge restores the form fields to their defaults; bonus decorations stay.
func (s *State) ResetRecharge() {
	s.Recharge.Phone = ""
	s.Recharge.Operator = ""
	s.Recharge.IsCredit = false
	s.Recharge.OperatorHint = ""
	s.SelectAmount(0)
}

func (s State) clone() State {
	c := s
	c.Recharge.Operators = append([]string(nil), s.Recharge.Operators...)
	c.Recharge.Amounts = append([]AmountButton(nil), s.Recharge.Amounts...)
	c.Orders.Items = append([]OrderItem(nil), s.Orders.Items...)
	c.Messages.Items = append([]MessageItem(nil), s.Messages.Items...)
	c.Toasts = append([]notify.Toast(nil), s.Toasts...)
	if s.Orders.Placeholder != nil {
		p := *s.Orders.Placeholder
		c.Orders.Placeholder = &p
	}
	if s.Credit.Placeholder != nil {
		p := *s.Credit.Placeholder
		c.Credit.Placeholder = &p
	}
	if s.Messages.Placeholder != nil {
		p := *s.Messages.Placeholder
		c.Messages.Placeholder = &p
	}
	return c
}

// Document guards the single State shared by all flows.
type Document struct {
	mu    sync.Mutex
	state State
}

func NewDocument() *Document {
	return &Document{state: NewState()}
}

func (d *Document) Update(fn func(*State)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(&d.state)
}

func (d *Document) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.clone()
}
