// Package notify implements the transient status messages shown beside every view.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/MarkMiraclee/vvclient/internal/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Error   Severity = "error"
)

const (
	DisplayDuration = 3500 * time.Millisecond
	RemovalGrace    = 350 * time.Millisecond

	frameInterval = 16 * time.Millisecond
)

// Scheduler decides when deferred work runs: on a following frame or after a delay.
type Scheduler interface {
	NextFrame(fn func())
	AfterFunc(d time.Duration, fn func())
}

type timerScheduler struct {
	frame time.Duration
}

// NewTimerScheduler runs callbacks on runtime timers, treating a frame as ~16ms.
func NewTimerScheduler() Scheduler {
	return timerScheduler{frame: frameInterval}
}

func (s timerScheduler) NextFrame(fn func()) {
	time.AfterFunc(s.frame, fn)
}

func (s timerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

type Toast struct {
	ID       string
	Message  string
	Severity Severity
	// Shown is set from the second frame until DisplayDuration has passed.
	Shown bool
	// Fading is set once DisplayDuration has passed; removal follows RemovalGrace later.
	Fading bool
	// HideIn is how long the toast stays fully visible, measured at snapshot time.
	HideIn time.Duration

	created time.Time
}

// Visible reports whether a page rendered now should display the toast.
func (t Toast) Visible() bool {
	return !t.Fading
}

// HideDelay is HideIn as a CSS time value.
func (t Toast) HideDelay() string {
	return fmt.Sprintf("%dms", t.HideIn.Milliseconds())
}

type Surface struct {
	mu     sync.Mutex
	sched  Scheduler
	log    *logrus.Logger
	now    func() time.Time
	toasts []*Toast
}

func New(sched Scheduler, log *logrus.Logger) *Surface {
	return &Surface{sched: sched, log: log, now: time.Now}
}

// Notify appends a toast and schedules its whole life: shown from the second frame on,
// hidden after DisplayDuration, removed RemovalGrace later.
func (s *Surface) Notify(message string, severity Severity) string {
	if severity == "" {
		severity = Info
	}
	s.mu.Lock()
	t := &Toast{ID: uuid.NewString(), Message: message, Severity: severity, created: s.now()}
	s.toasts = append(s.toasts, t)
	s.mu.Unlock()

	metrics.NotificationsTotal.WithLabelValues(string(severity)).Inc()
	s.log.WithFields(logrus.Fields{"severity": severity, "toast": t.ID}).Debug(message)

	s.sched.NextFrame(func() {
		s.sched.NextFrame(func() {
			s.setShown(t, true)
		})
	})
	s.sched.AfterFunc(DisplayDuration, func() {
		s.fade(t)
		s.sched.AfterFunc(RemovalGrace, func() {
			s.remove(t)
		})
	})

	return t.ID
}

// Toasts returns the toasts currently on screen, oldest first.
func (s *Surface) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]Toast, 0, len(s.toasts))
	for _, t := range s.toasts {
		c := *t
		if !c.Fading {
			c.HideIn = max(DisplayDuration-now.Sub(c.created), 0)
		}
		out = append(out, c)
	}
	return out
}

func (s *Surface) setShown(t *Toast, shown bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Shown = shown
}

func (s *Surface) fade(t *Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Shown = false
	t.Fading = true
}

func (s *Surface) remove(t *Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cur := range s.toasts {
		if cur == t {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}
