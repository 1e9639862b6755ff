// Package checkout turns the current cart into an immutable order and
// hands it off to the shop's messaging channel.
package checkout

import (
	"context"

	"plastic-world/internal/model"
	"plastic-world/internal/store"

	"github.com/rs/zerolog"
)

// Result is the outcome of a completed checkout.
type Result struct {
	Order model.Order `json:"order"`
	// Link is the messaging deep link the shopper opens to send the
	// order. Best-effort only.
	Link string `json:"link"`
}

// Service orchestrates checkout: build the order, record it, notify the
// shop, clear the cart.
type Service struct {
	store    *store.Store
	channel  Channel
	shopName string
	logger   zerolog.Logger
}

// NewService creates a checkout service.
func NewService(st *store.Store, channel Channel, shopName string, logger zerolog.Logger) *Service {
	return &Service{
		store:    st,
		channel:  channel,
		shopName: shopName,
		logger:   logger.With().Str("service", "checkout").Logger(),
	}
}

// CompleteOrder snapshots the cart into a new order, prepends it to the
// order history, sends the hand-off message and clears the cart. The cart
// is cleared regardless of whether the hand-off succeeded; a channel
// failure is logged but never fails the checkout.
func (s *Service) CompleteOrder(ctx context.Context, customer model.CustomerDetails) (*Result, error) {
	items := s.store.CartItems()
	if len(items) == 0 {
		s.logger.Warn().Msg("checkout attempted with empty cart")
		return nil, model.ErrEmptyCart
	}

	order := BuildOrder(items, customer)
	s.store.PrependOrder(order)

	link, err := s.channel.Send(ctx, FormatOrderMessage(s.shopName, order))
	if err != nil {
		// Best-effort hand-off: the order is already recorded.
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("order hand-off failed")
		link = ""
	}

	s.store.ClearCart()

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Int64("total", order.Total).
		Msg("order completed")

	return &Result{Order: order, Link: link}, nil
}
