package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_AdvancesStatuses(t *testing.T) {
	advancer := mocks.NewMockStatusAdvancer(t)
	log := newTestLogger(t)

	s := New(advancer, 50*time.Millisecond, log)

	changed := []*domain.Event{
		{ID: "e1", VenueID: "v1", Status: domain.EventStatusOngoing},
		{ID: "e2", VenueID: "v1", Status: domain.EventStatusCompleted},
	}
	advancer.EXPECT().AdvanceStatuses(mock.Anything).Return(changed, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(advancer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	advancer := mocks.NewMockStatusAdvancer(t)
	log := newTestLogger(t)

	s := New(advancer, 50*time.Millisecond, log)

	advancer.EXPECT().AdvanceStatuses(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(advancer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	advancer := mocks.NewMockStatusAdvancer(t)
	log := newTestLogger(t)

	s := New(advancer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	advancer := mocks.NewMockStatusAdvancer(t)
	log := newTestLogger(t)

	s := New(advancer, 30*time.Millisecond, log)

	advancer.EXPECT().AdvanceStatuses(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(advancer.Calls), 3)
}
