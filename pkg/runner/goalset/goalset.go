// Package goalset creates long-term goals and reports streaks.
package goalset

import (
	"context"
	"fmt"
	"time"

	"harucal/pkg/goal"
	"harucal/pkg/store"
)

type Set struct {
	Title string
	From  time.Time
	Until time.Time

	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not set goal, no persistence")
	}

	count, err := goal.Apply(n.Persistence, n.Title, n.From, n.Until)
	if err != nil {
		return err
	}
	fmt.Printf("목표가 설정되었습니다! %d일치 할 일이 추가되었습니다.\n", count)
	return nil
}

type Streak struct {
	Title string
	On    time.Time

	Persistence store.Persistence
}

func (n *Streak) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not compute streak, no persistence")
	}

	days := goal.Streak(n.Persistence.SnapshotNow(), n.Title, n.On)
	switch days {
	case 0:
		fmt.Printf("🏆 %s: 아직 연속 기록이 없어요.\n", n.Title)
	default:
		fmt.Printf("🏆 %s: %d일 연속!\n", n.Title, days)
	}
	return nil
}
