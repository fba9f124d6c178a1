package notification

import (
	"context"
	"fmt"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02 Jan 2006 15:04"

// TelegramNotifier posts booking changes to the venue administrators' chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, venue *domain.Venue, event *domain.Event) {
	n.send(ctx, bookingCreatedText(venue, event))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, venue *domain.Venue, event *domain.Event) {
	n.send(ctx, bookingCancelledText(venue, event))
}

func (n *TelegramNotifier) NotifyPaymentReceived(ctx context.Context, venue *domain.Venue, event *domain.Event) {
	n.send(ctx, paymentReceivedText(venue, event))
}

func bookingCreatedText(venue *domain.Venue, event *domain.Event) string {
	return fmt.Sprintf(
		"*New booking*\n\n"+"Venue: %s\n"+"Event: %s\n"+"When (UTC): %s - %s\n"+"Price: %s %s (%s)",
		escape(venue.Name), escape(event.Name),
		event.StartAt.UTC().Format(timeLayout), event.EndAt.UTC().Format(timeLayout),
		event.FinalPrice.String(), venue.Currency, event.RentalType,
	)
}

func bookingCancelledText(venue *domain.Venue, event *domain.Event) string {
	return fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Venue: %s\n"+"Event: %s\n"+"When (UTC): %s - %s",
		escape(venue.Name), escape(event.Name),
		event.StartAt.UTC().Format(timeLayout), event.EndAt.UTC().Format(timeLayout),
	)
}

func paymentReceivedText(venue *domain.Venue, event *domain.Event) string {
	return fmt.Sprintf(
		"*Payment received*\n\n"+"Venue: %s\n"+"Event: %s\n"+"Amount: %s %s",
		escape(venue.Name), escape(event.Name), event.FinalPrice.String(), venue.Currency,
	)
}

// escape keeps user-supplied names from being read as Markdown entities.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no admin chat)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
