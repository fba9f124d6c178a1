package ports

import (
	"context"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, venue *domain.Venue, event *domain.Event)
	NotifyBookingCancelled(ctx context.Context, venue *domain.Venue, event *domain.Event)
	NotifyPaymentReceived(ctx context.Context, venue *domain.Venue, event *domain.Event)
}
