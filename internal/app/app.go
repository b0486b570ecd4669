// Package app runs the client flows. Every flow reads and writes the shared session and
// document through their accessors and reports its outcome on the notification surface.
package app

import (
	"context"
	"time"

	"github.com/MarkMiraclee/vvclient/internal/models"
	"github.com/MarkMiraclee/vvclient/internal/notify"
	"github.com/MarkMiraclee/vvclient/internal/session"
	"github.com/MarkMiraclee/vvclient/internal/ui"
	"github.com/sirupsen/logrus"
)

// Gateway is the recharge API as seen by the flows.
type Gateway interface {
	Call(ctx context.Context, method, path string, body, out any) error
}

type App struct {
	api     Gateway
	session *session.Store
	notes   *notify.Surface
	doc     *ui.Document
	log     *logrus.Logger
	now     func() time.Time
}

func New(api Gateway, sess *session.Store, notes *notify.Surface, log *logrus.Logger) *App {
	return &App{
		api:     api,
		session: sess,
		notes:   notes,
		doc:     ui.NewDocument(),
		log:     log,
		now:     time.Now,
	}
}

// Start performs the page-load work: restoring a stored session and decorating the form.
func (a *App) Start(ctx context.Context) {
	if a.session.Token() != "" {
		a.Restore(ctx)
	}
	a.loadPromotions(ctx)
	a.loadOperators(ctx)
}

// Snapshot returns the document as it should be rendered now.
func (a *App) Snapshot() ui.State {
	s := a.doc.Snapshot()
	s.Toasts = a.notes.Toasts()
	return s
}

// CurrentUser exposes the session profile snapshot.
func (a *App) CurrentUser() (models.Profile, bool) {
	return a.session.CurrentUser()
}

func (a *App) notify(message string, severity notify.Severity) {
	a.notes.Notify(message, severity)
}
