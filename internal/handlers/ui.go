package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/MarkMiraclee/vvclient/internal/app"
	"github.com/MarkMiraclee/vvclient/internal/ui"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Flows is the part of the client the page drives.
type Flows interface {
	Snapshot() ui.State
	OpenAuth(mode string)
	SwitchAuth(mode string)
	CloseAuth()
	ToggleUserMenu()
	CloseUserMenu()
	Login(ctx context.Context, account, password string)
	Register(ctx context.Context, email, password, name string)
	Logout(ctx context.Context)
	SelectAmount(amount int, in app.RechargeInput) bool
	SubmitRecharge(ctx context.Context, in app.RechargeInput)
	Activate(ctx context.Context, name string) error
	OpenMessages(ctx context.Context)
	CloseMessages()
}

type UI struct {
	flows Flows
	log   *logrus.Logger
}

func NewUI(flows Flows, log *logrus.Logger) *UI {
	return &UI{
		flows: flows,
		log:   log,
	}
}

func (h *UI) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := ui.Render(&buf, h.flows.Snapshot()); err != nil {
		h.log.Errorf("failed to render page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Errorf("failed to write page: %v", err)
	}
}

func (h *UI) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if err := ui.WriteStylesheet(w); err != nil {
		h.log.Errorf("failed to write stylesheet: %v", err)
	}
}

// back sends the browser to the freshly updated page.
func back(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *UI) OpenAuth(w http.ResponseWriter, r *http.Request) {
	h.flows.OpenAuth(r.URL.Query().Get("mode"))
	back(w, r)
}

func (h *UI) SwitchAuth(w http.ResponseWriter, r *http.Request) {
	h.flows.SwitchAuth(r.URL.Query().Get("mode"))
	back(w, r)
}

func (h *UI) CloseAuth(w http.ResponseWriter, r *http.Request) {
	h.flows.CloseAuth()
	back(w, r)
}

func (h *UI) ToggleMenu(w http.ResponseWriter, r *http.Request) {
	h.flows.ToggleUserMenu()
	back(w, r)
}

func (h *UI) CloseMenu(w http.ResponseWriter, r *http.Request) {
	h.flows.CloseUserMenu()
	back(w, r)
}

func (h *UI) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	h.flows.Login(r.Context(), r.PostForm.Get("account"), r.PostForm.Get("password"))
	back(w, r)
}

func (h *UI) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	h.flows.Register(r.Context(), r.PostForm.Get("email"), r.PostForm.Get("password"), r.PostForm.Get("name"))
	back(w, r)
}

func (h *UI) Logout(w http.ResponseWriter, r *http.Request) {
	h.flows.Logout(r.Context())
	back(w, r)
}

func (h *UI) SelectAmount(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.Atoi(chi.URLParam(r, "amount"))
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if !h.flows.SelectAmount(amount, rechargeInput(r)) {
		http.Error(w, "unsupported amount", http.StatusBadRequest)
		return
	}
	back(w, r)
}

func (h *UI) SubmitRecharge(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	h.flows.SubmitRecharge(r.Context(), rechargeInput(r))
	back(w, r)
}

// rechargeInput reads the recharge form fields from a parsed request.
func rechargeInput(r *http.Request) app.RechargeInput {
	credit := r.PostForm.Get("is_credit")
	return app.RechargeInput{
		Phone:    r.PostForm.Get("phone"),
		Operator: r.PostForm.Get("operator"),
		IsCredit: credit == "1" || credit == "on",
	}
}

func (h *UI) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.flows.Activate(r.Context(), chi.URLParam(r, "section")); err != nil {
		if errors.Is(err, ui.ErrUnknownSection) {
			http.Error(w, "unknown section", http.StatusNotFound)
			return
		}
		h.log.Errorf("failed to activate section: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	back(w, r)
}

func (h *UI) OpenMessages(w http.ResponseWriter, r *http.Request) {
	h.flows.OpenMessages(r.Context())
	back(w, r)
}

func (h *UI) CloseMessages(w http.ResponseWriter, r *http.Request) {
	h.flows.CloseMessages()
	back(w, r)
}
