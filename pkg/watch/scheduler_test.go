package watch

import (
	"context"
	"strings"
	"testing"
)

func TestSchedulerEmptyScheduleIsNoop(t *testing.T) {
	s := NewScheduler("", nil)

	if err := s.Start(context.Background(), func() {}); err != nil {
		t.Errorf("Start() with empty schedule = %v, want nil", err)
	}
	s.Stop() // must be safe when nothing started
}

func TestSchedulerRejectsInvalidExpression(t *testing.T) {
	tests := []string{"not a schedule", "* * *", "99 * * * *"}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			s := NewScheduler(expr, nil)
			err := s.Start(context.Background(), func() {})
			if err == nil {
				t.Fatalf("Start(%q) = nil, want error", expr)
			}
			if !strings.Contains(err.Error(), "invalid cron schedule") {
				t.Errorf("error = %v", err)
			}
		})
	}
}

func TestSchedulerStartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewScheduler("@hourly", nil)
	if err := s.Start(ctx, func() {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := s.Start(ctx, func() {}); err == nil {
		t.Error("second Start() should fail while running")
	}

	s.Stop()
	s.Stop() // idempotent
}
