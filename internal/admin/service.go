// Package admin implements the back-office product workflow: catalogue
// CRUD with optional auto-posting to the shop's social page.
package admin

import (
	"context"

	"plastic-world/internal/model"
	"plastic-world/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Decision is an operator's answer to a confirmation prompt.
type Decision int

const (
	// Abort cancels the pending action.
	Abort Decision = iota
	// Proceed carries the pending action through.
	Proceed
)

// Prompter obtains a yes/no decision from the operator. In the HTTP
// surface the decision arrives with the request; tests inject fakes.
type Prompter interface {
	// ConfirmLocalSave asks whether to keep a local save after the
	// external post failed for the given reason.
	ConfirmLocalSave(ctx context.Context, reason string) Decision

	// ConfirmDelete asks whether to delete the given product.
	ConfirmDelete(ctx context.Context, product model.Product) Decision
}

// Poster publishes a product to the shop's social page.
type Poster interface {
	PostPhoto(ctx context.Context, product model.Product) (string, error)
}

// PlaceholderImage is assigned to drafts that carry no image.
const PlaceholderImage = "https://picsum.photos/400/300"

// SaveResult reports what a SaveProduct call did.
type SaveResult struct {
	Product model.Product `json:"product"`
	// Committed is false only when the operator aborted after a posting
	// failure; the catalogue is unchanged and the edit form stays open.
	Committed bool `json:"committed"`
	// PostID is the remote post identifier when auto-posting succeeded.
	PostID string `json:"postId,omitempty"`
}

// Service runs the product admin workflow against the shared store. The
// Prompter is supplied per call because the operator's decision travels
// with each request.
type Service struct {
	store  *store.Store
	poster Poster
	logger zerolog.Logger
}

// NewService creates an admin service.
func NewService(st *store.Store, poster Poster, logger zerolog.Logger) *Service {
	return &Service{
		store:  st,
		poster: poster,
		logger: logger.With().Str("service", "admin").Logger(),
	}
}

// SaveProduct commits a product draft. A draft without an id is a
// creation: it is assigned a fresh id and defaults for any missing field,
// and, when autoPost is set, posted to the social page before commit. A
// posting failure puts the decision to the operator: Abort leaves the
// catalogue untouched, Proceed saves locally without the post. Drafts with
// an existing id replace that entry in place; auto-posting never applies
// to edits.
func (s *Service) SaveProduct(ctx context.Context, draft model.Product, autoPost bool, prompter Prompter) (*SaveResult, error) {
	creating := draft.ID == ""
	if creating {
		draft = applyCreationDefaults(draft)
	}

	result := &SaveResult{Product: draft}

	if autoPost && creating {
		postID, err := s.poster.PostPhoto(ctx, draft)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("product_name", draft.Name).
				Msg("auto-post failed, asking operator")

			if prompter.ConfirmLocalSave(ctx, err.Error()) == Abort {
				s.logger.Info().Str("product_name", draft.Name).Msg("save aborted by operator")
				return nil, model.ErrSaveDeclined
			}
		} else {
			result.PostID = postID
		}
	}

	if creating {
		s.store.PrependProduct(draft)
	} else if !s.store.ReplaceProduct(draft) {
		s.logger.Warn().Str("product_id", draft.ID).Msg("edit targeted unknown product")
		return nil, model.ErrProductNotFound
	}

	result.Committed = true

	s.logger.Info().
		Str("product_id", draft.ID).
		Bool("created", creating).
		Bool("auto_posted", result.PostID != "").
		Msg("product saved")

	return result, nil
}

// DeleteProduct removes a product after operator confirmation. A declined
// prompt or an unknown id is a no-op; the bool reports whether an entry
// was removed.
func (s *Service) DeleteProduct(ctx context.Context, id string, prompter Prompter) (bool, error) {
	product, ok := s.store.ProductByID(id)
	if !ok {
		return false, nil
	}

	if prompter.ConfirmDelete(ctx, product) == Abort {
		s.logger.Info().Str("product_id", id).Msg("delete declined by operator")
		return false, nil
	}

	removed := s.store.RemoveProduct(id)
	if removed {
		s.logger.Info().Str("product_id", id).Str("product_name", product.Name).Msg("product deleted")
	}
	return removed, nil
}

// applyCreationDefaults fills the gaps in a creation draft: fresh id, zero
// numerics, the default unit, a placeholder image.
func applyCreationDefaults(draft model.Product) model.Product {
	draft.ID = uuid.NewString()

	if draft.Quantity < 0 {
		draft.Quantity = 0
	}
	if draft.Price < 0 {
		draft.Price = 0
	}
	if draft.WholesalePrice < 0 {
		draft.WholesalePrice = 0
	}
	if !draft.UnitType.Valid() {
		draft.UnitType = model.DefaultUnitType
	}
	if draft.Image.Kind == model.ImageRemote && draft.Image.URL == "" {
		draft.Image = model.RemoteImage(PlaceholderImage)
	}

	return draft
}
