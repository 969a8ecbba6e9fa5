// Package notify runs the reminder scheduler daemon.
package notify

import (
	"context"
	"errors"
	"fmt"

	"harucal/pkg/remind"
	"harucal/pkg/store"
)

type Run struct {
	Test  bool
	Title string
	Body  string

	Persistence store.Persistence
	Notifier    remind.Notifier
}

func (n *Run) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not run reminders, no persistence")
	}

	s := remind.NewScheduler(n.Persistence, n.Notifier)
	if _, err := s.RequestPermission(); err != nil {
		return err
	}

	if n.Test {
		title, body := n.Title, n.Body
		if title == "" {
			title = "🔔 테스트 알림"
			body = "시스템 알림이 정상적으로 작동합니다!"
		}
		s.Send(title, body)
		return nil
	}

	fmt.Println("reminder scheduler armed; watching today's events")
	err := s.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
