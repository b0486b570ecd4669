package app

import "github.com/MarkMiraclee/vvclient/internal/ui"

// OpenAuth shows the auth modal on the given tab; anything but "register" means login.
func (a *App) OpenAuth(mode string) {
	a.doc.Update(func(s *ui.State) {
		s.SetAuthMode(ui.AuthMode(mode))
		s.Auth.Open = true
	})
}

func (a *App) SwitchAuth(mode string) {
	a.doc.Update(func(s *ui.State) {
		s.SetAuthMode(ui.AuthMode(mode))
	})
}

func (a *App) CloseAuth() {
	a.doc.Update(func(s *ui.State) {
		s.Auth.Open = false
	})
}

func (a *App) ToggleUserMenu() {
	a.doc.Update(func(s *ui.State) {
		s.MenuOpen = !s.MenuOpen
	})
}

func (a *App) CloseUserMenu() {
	a.doc.Update(func(s *ui.State) {
		s.MenuOpen = false
	})
}
