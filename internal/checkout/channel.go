package checkout

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"
)

// Channel delivers a formatted order message to an external messaging
// service. Delivery is best-effort: implementations have no way to confirm
// the message was received or even opened, and callers must not treat the
// returned link as proof of delivery.
type Channel interface {
	// Send hands the message off and returns a link the shopper can open
	// to complete the hand-off.
	Send(ctx context.Context, message string) (string, error)
}

// WhatsAppChannel builds wa.me deep links for a fixed business number.
type WhatsAppChannel struct {
	number string
	logger zerolog.Logger
}

// NewWhatsAppChannel creates a channel targeting the given business number
// (international format, digits only).
func NewWhatsAppChannel(number string, logger zerolog.Logger) *WhatsAppChannel {
	return &WhatsAppChannel{
		number: number,
		logger: logger.With().Str("component", "whatsapp-channel").Logger(),
	}
}

// Send builds the deep link embedding the message. There is no delivery
// confirmation; the link is handed back for the shopper's client to open.
func (c *WhatsAppChannel) Send(ctx context.Context, message string) (string, error) {
	link := "https://wa.me/" + c.number + "?text=" + url.QueryEscape(message)

	c.logger.Info().
		Str("number", c.number).
		Int("message_length", len(message)).
		Msg("order hand-off link generated")

	return link, nil
}
