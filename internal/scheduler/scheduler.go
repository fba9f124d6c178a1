package scheduler

import (
	"context"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type statusAdvancer interface {
	AdvanceStatuses(ctx context.Context) ([]*domain.Event, error)
}

// Scheduler periodically moves bookings through upcoming, ongoing and
// completed as their windows pass.
type Scheduler struct {
	advancer statusAdvancer
	interval time.Duration
	logger   logger.Logger
}

func New(
	advancer statusAdvancer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		advancer: advancer,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	changed, err := s.advancer.AdvanceStatuses(ctx)
	if err != nil {
		s.logger.Error("failed to advance event statuses",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range changed {
		s.logger.Info("event status advanced",
			logger.String("event_id", e.ID),
			logger.String("venue_id", e.VenueID),
			logger.String("status", string(e.Status)),
		)
	}
}
