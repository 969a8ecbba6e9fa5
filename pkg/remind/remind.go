// Package remind scans stored events on a fixed cadence and raises
// notifications for events starting now or in ten minutes.
package remind

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"harucal/pkg/day"
)

// DefaultInterval is the reminder tick cadence.
const DefaultInterval = 60 * time.Second

// Permission mirrors the platform notification permission states.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Notification is one reminder payload.
type Notification struct {
	Title   string
	Message string
}

// Notifier delivers a platform-level notification.
type Notifier interface {
	Notify(n Notification) error
}

// EventSource exposes the store read the scheduler polls. It never mutates.
type EventSource interface {
	AllEvents() []day.Event
}

type triggerKind string

const (
	triggerNow  triggerKind = "now"
	triggerSoon triggerKind = "soon"
)

// Scheduler polls an EventSource once per interval and raises each
// (date, event, trigger) at most once per day. It is inert until permission
// is granted, and lives for the lifetime of its Run context.
type Scheduler struct {
	Source   EventSource
	Notifier Notifier
	Interval time.Duration

	mu     sync.Mutex
	perm   Permission
	active *Notification
	fired  map[string]struct{}
	day    string
}

// NewScheduler returns an idle scheduler with the default interval.
func NewScheduler(source EventSource, notifier Notifier) *Scheduler {
	return &Scheduler{
		Source:   source,
		Notifier: notifier,
		Interval: DefaultInterval,
		perm:     PermissionDefault,
		fired:    map[string]struct{}{},
	}
}

// Permission returns the current permission state.
func (s *Scheduler) Permission() Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.perm
}

// RequestPermission arms the scheduler. Without a platform notifier the
// request is denied with an explanatory error; on grant the welcome
// notification fires.
func (s *Scheduler) RequestPermission() (Permission, error) {
	s.mu.Lock()
	if s.Notifier == nil {
		s.perm = PermissionDenied
		s.mu.Unlock()
		return PermissionDenied, fmt.Errorf("remind: desktop notifications are not supported on this platform")
	}
	s.perm = PermissionGranted
	s.mu.Unlock()

	s.raise(Notification{
		Title:   "알림이 켜졌습니다!",
		Message: "이제 예정된 일정에 대해 알림을 받게 됩니다.",
	})
	return PermissionGranted, nil
}

// Run ticks every Interval until ctx is done. The ticker is always stopped
// on return; no interval leaks across teardown.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.Tick(now)
		}
	}
}

// Tick runs one reminder scan against the wall clock truncated to the
// minute. Matching is exact-equality on the minute: a delayed or skipped
// tick misses its minute entirely, as the interval design intends.
func (s *Scheduler) Tick(now time.Time) {
	s.mu.Lock()
	if s.perm != PermissionGranted {
		s.mu.Unlock()
		return
	}
	today := day.Key(now)
	if s.day != today {
		// Day rollover: fired keys are scoped to the current day.
		s.day = today
		s.fired = map[string]struct{}{}
	}
	s.mu.Unlock()

	nowMinutes := now.Hour()*60 + now.Minute()

	for _, e := range s.Source.AllEvents() {
		if e.Date != today {
			continue
		}
		eventMinutes, ok := e.Minutes()
		if !ok {
			continue
		}

		switch {
		case eventMinutes == nowMinutes:
			if s.markFired(today, e.ID, triggerNow) {
				body := e.Description
				if body == "" {
					body = "지금 예정된 일정이 있습니다."
				}
				s.raise(Notification{Title: "[일정] " + e.Title, Message: body})
			}
		case eventMinutes-nowMinutes == 10:
			if s.markFired(today, e.ID, triggerSoon) {
				s.raise(Notification{Title: "[10분 전] " + e.Title, Message: "곧 시작되는 일정이 있습니다."})
			}
		}
	}
}

// markFired records the idempotency key and reports whether it was new.
func (s *Scheduler) markFired(date, id string, kind triggerKind) bool {
	key := date + "|" + id + "|" + string(kind)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, done := s.fired[key]; done {
		return false
	}
	s.fired[key] = struct{}{}
	return true
}

// Send raises a caller-supplied notification immediately, bypassing the
// scan. Used for user-initiated test notifications.
func (s *Scheduler) Send(title, message string) {
	s.raise(Notification{Title: title, Message: message})
}

// raise delivers through both channels: the platform notifier when
// permitted, and the in-app slot (last one wins, no queue).
func (s *Scheduler) raise(n Notification) {
	s.mu.Lock()
	s.active = &n
	deliver := s.perm == PermissionGranted && s.Notifier != nil
	s.mu.Unlock()

	if deliver {
		if err := s.Notifier.Notify(n); err != nil {
			fmt.Fprintf(os.Stderr, "remind: notify: %v\n", err)
		}
	}
}

// Active returns the currently displayed notification, if any.
func (s *Scheduler) Active() (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return Notification{}, false
	}
	return *s.active, true
}

// Dismiss clears the in-app slot.
func (s *Scheduler) Dismiss() {
	s.mu.Lock()
	s.active = nil
	s.mu.Unlock()
}
