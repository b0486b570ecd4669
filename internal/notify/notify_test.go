package notify

import (
	"io"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timer struct {
	at time.Duration
	fn func()
}

// fakeScheduler runs frames and timers only when the test asks for it.
type fakeScheduler struct {
	now    time.Duration
	frames []func()
	timers []timer
}

func (f *fakeScheduler) NextFrame(fn func()) {
	f.frames = append(f.frames, fn)
}

func (f *fakeScheduler) AfterFunc(d time.Duration, fn func()) {
	f.timers = append(f.timers, timer{at: f.now + d, fn: fn})
}

func (f *fakeScheduler) frame() {
	pending := f.frames
	f.frames = nil
	for _, fn := range pending {
		fn()
	}
}

func (f *fakeScheduler) advance(d time.Duration) {
	target := f.now + d
	for {
		sort.SliceStable(f.timers, func(i, j int) bool { return f.timers[i].at < f.timers[j].at })
		if len(f.timers) == 0 || f.timers[0].at > target {
			break
		}
		next := f.timers[0]
		f.timers = f.timers[1:]
		f.now = next.at
		next.fn()
	}
	f.now = target
}

func newSurface() (*Surface, *fakeScheduler) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	sched := &fakeScheduler{}
	s := New(sched, log)
	start := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return start.Add(sched.now) }
	return s, sched
}

func TestNotify_ShownOnSecondFrame(t *testing.T) {
	s, sched := newSurface()

	s.Notify("已退出登录", Info)
	toasts := s.Toasts()
	require.Len(t, toasts, 1)
	assert.False(t, toasts[0].Shown)

	sched.frame()
	assert.False(t, s.Toasts()[0].Shown)

	sched.frame()
	assert.True(t, s.Toasts()[0].Shown)
}

func TestNotify_Lifecycle(t *testing.T) {
	s, sched := newSurface()

	s.Notify("登录成功", Success)
	sched.frame()
	sched.frame()

	sched.advance(DisplayDuration - time.Millisecond)
	require.Len(t, s.Toasts(), 1)
	assert.True(t, s.Toasts()[0].Shown)

	sched.advance(time.Millisecond)
	require.Len(t, s.Toasts(), 1)
	assert.False(t, s.Toasts()[0].Shown)

	sched.advance(RemovalGrace - time.Millisecond)
	require.Len(t, s.Toasts(), 1)

	sched.advance(time.Millisecond)
	assert.Empty(t, s.Toasts())
}

func TestNotify_StacksIndependently(t *testing.T) {
	s, sched := newSurface()

	s.Notify("first", Info)
	sched.advance(time.Second)
	s.Notify("second", Error)

	toasts := s.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, "first", toasts[0].Message)
	assert.Equal(t, Error, toasts[1].Severity)

	sched.advance(DisplayDuration - time.Second + RemovalGrace)
	toasts = s.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "second", toasts[0].Message)

	sched.advance(time.Second)
	assert.Empty(t, s.Toasts())
}

func TestNotify_DefaultSeverity(t *testing.T) {
	s, _ := newSurface()
	s.Notify("hello", "")
	assert.Equal(t, Info, s.Toasts()[0].Severity)
}

func TestNotify_VisibleUntilFade(t *testing.T) {
	s, sched := newSurface()

	s.Notify("请输入手机号", Error)
	toast := s.Toasts()[0]
	assert.False(t, toast.Shown)
	assert.True(t, toast.Visible())
	assert.Equal(t, DisplayDuration, toast.HideIn)
	assert.Equal(t, "3500ms", toast.HideDelay())

	sched.advance(time.Second)
	toast = s.Toasts()[0]
	assert.True(t, toast.Visible())
	assert.Equal(t, "2500ms", toast.HideDelay())

	sched.advance(DisplayDuration - time.Second)
	toast = s.Toasts()[0]
	assert.True(t, toast.Fading)
	assert.False(t, toast.Visible())
	assert.Equal(t, "0ms", toast.HideDelay())
}
