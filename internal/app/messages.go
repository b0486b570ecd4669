package app

import (
	"context"
	"net/http"

	"github.com/MarkMiraclee/vvclient/internal/models"
	"github.com/MarkMiraclee/vvclient/internal/ui"
)

// OpenMessages shows the modal and loads the list in server order. The unread badge is
// hidden locally; the count itself is only refreshed by the next profile load.
func (a *App) OpenMessages(ctx context.Context) {
	a.doc.Update(func(s *ui.State) {
		s.Messages.Open = true
		s.Messages.Placeholder = ui.Loading()
		s.Messages.Items = nil
	})

	var resp models.MessagesResponse
	err := a.api.Call(ctx, http.MethodGet, "/api/messages", nil, &resp)
	if err != nil {
		a.log.WithError(err).Warn("failed to load messages")
	}

	a.doc.Update(func(s *ui.State) {
		switch {
		case err != nil:
			s.Messages.Placeholder = ui.Failed()
		case len(resp.Messages) == 0:
			s.Messages.Placeholder = ui.Empty("暂无消息")
		default:
			s.Messages.Placeholder = nil
			s.Messages.Items = ui.MessageItems(resp.Messages)
		}
		s.Header.BadgeVisible = false
	})
}

// CloseMessages hides the modal and keeps the loaded list.
func (a *App) CloseMessages() {
	a.doc.Update(func(s *ui.State) {
		s.Messages.Open = false
	})
}
