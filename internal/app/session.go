package app

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MarkMiraclee/vvclient/internal/apiclient"
	"github.com/MarkMiraclee/vvclient/internal/auth"
	"github.com/MarkMiraclee/vvclient/internal/models"
	"github.com/MarkMiraclee/vvclient/internal/notify"
	"github.com/MarkMiraclee/vvclient/internal/ui"
	"github.com/sirupsen/logrus"
)

const minPasswordLength = 6

// Restore loads the profile for the held token. Any failure ends the session without a
// notification.
func (a *App) Restore(ctx context.Context) {
	token := a.session.Token()
	if token == "" {
		a.showLoggedOut()
		return
	}

	if auth.Expired(token, a.now()) {
		a.log.Info("stored token has expired")
		a.invalidate(ctx, token)
		return
	}

	var p models.Profile
	if err := a.api.Call(ctx, http.MethodGet, "/api/me", nil, &p); err != nil {
		a.log.WithError(err).Info("stored session rejected")
		a.invalidate(ctx, token)
		return
	}

	if !a.session.SetCurrentUser(token, p) {
		a.log.Debug("session changed while loading profile")
		return
	}
	a.doc.Update(func(s *ui.State) {
		s.Header = ui.HeaderFor(p)
	})
}

func (a *App) invalidate(ctx context.Context, token string) {
	cleared, err := a.session.Invalidate(ctx, token)
	if err != nil {
		a.log.Errorf("failed to remove stored token: %v", err)
	}
	if cleared {
		a.showLoggedOut()
	}
}

func (a *App) showLoggedOut() {
	a.doc.Update(func(s *ui.State) {
		s.Header = ui.LoggedOutHeader()
	})
}

func (a *App) Login(ctx context.Context, account, password string) {
	account = strings.TrimSpace(account)
	if account == "" || password == "" {
		a.notify("请填写账号和密码", notify.Error)
		return
	}

	var resp models.TokenResponse
	req := models.LoginRequest{Account: account, Password: password}
	if err := a.api.Call(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		a.notify(apiclient.Message(err, "登录失败"), notify.Error)
		return
	}

	a.establish(ctx, resp.Token, "登录成功", "登录失败")
}

func (a *App) Register(ctx context.Context, email, password, name string) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" {
		a.notify("请填写邮箱和密码", notify.Error)
		return
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		a.notify("密码至少6位", notify.Error)
		return
	}

	var resp models.TokenResponse
	req := models.RegisterRequest{Email: email, Password: password, Name: name}
	if err := a.api.Call(ctx, http.MethodPost, "/api/register", req, &resp); err != nil {
		a.notify(apiclient.Message(err, "注册失败"), notify.Error)
		return
	}

	a.establish(ctx, resp.Token, "注册成功！获得 €10 信用额度", "注册失败")
}

// establish adopts a freshly issued token and reloads the profile with it.
func (a *App) establish(ctx context.Context, token, success, failure string) {
	if token == "" {
		a.log.Warn("auth response carried no token")
		a.notify(failure, notify.Error)
		return
	}
	if err := a.session.SetToken(ctx, token); err != nil {
		a.log.Errorf("failed to store token: %v", err)
		a.notify(failure, notify.Error)
		return
	}

	a.CloseAuth()
	a.notify(success, notify.Success)
	a.Restore(ctx)
}

// Logout always succeeds locally; the server call is best effort.
func (a *App) Logout(ctx context.Context) {
	if err := a.api.Call(ctx, http.MethodPost, "/api/logout", nil, nil); err != nil {
		a.log.WithFields(logrus.Fields{"error": err}).Debug("logout call failed")
	}
	if err := a.session.Clear(ctx); err != nil {
		a.log.Errorf("failed to remove stored token: %v", err)
	}

	a.doc.Update(func(s *ui.State) {
		s.Header = ui.LoggedOutHeader()
		s.MenuOpen = false
		s.SelectAmount(0)
	})
	if err := a.Activate(ctx, string(ui.SectionRecharge)); err != nil {
		a.log.Errorf("failed to switch section: %v", err)
	}
	a.notify("已退出登录", notify.Info)
}
