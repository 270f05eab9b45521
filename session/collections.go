package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/store"
)

// shortID mints the compact ids used for cart lines and saved looks.
func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// AddToCart appends a garment with its chosen color variant. Adding the
// same garment again creates a second line; cart lines are distinct
// purchases, not quantities.
func (s *Service) AddToCart(ctx context.Context, userID string, item models.ClothingItem, color *models.ColorSwatch) (models.CartItem, error) {
	cart, err := s.Cart(ctx, userID)
	if err != nil {
		return models.CartItem{}, err
	}
	line := models.CartItem{CartID: shortID(), Item: item, Color: color}
	cart = append(cart, line)
	if err := s.store.Save(ctx, userID, store.KeyCart, cart); err != nil {
		return models.CartItem{}, err
	}
	return line, nil
}

// Cart returns the cart contents in insertion order.
func (s *Service) Cart(ctx context.Context, userID string) ([]models.CartItem, error) {
	var cart []models.CartItem
	if _, err := s.store.Load(ctx, userID, store.KeyCart, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart deletes a single line by its cart id.
func (s *Service) RemoveFromCart(ctx context.Context, userID, cartID string) error {
	cart, err := s.Cart(ctx, userID)
	if err != nil {
		return err
	}
	kept := cart[:0]
	for _, line := range cart {
		if line.CartID != cartID {
			kept = append(kept, line)
		}
	}
	return s.store.Save(ctx, userID, store.KeyCart, kept)
}

// ClearCart empties the cart.
func (s *Service) ClearCart(ctx context.Context, userID string) error {
	return s.store.Save(ctx, userID, store.KeyCart, []models.CartItem{})
}

// SaveLook prepends a saved look so the closet lists newest first. The id
// and timestamp are assigned here.
func (s *Service) SaveLook(ctx context.Context, userID string, look models.SavedLook) (models.SavedLook, error) {
	looks, err := s.Looks(ctx, userID)
	if err != nil {
		return models.SavedLook{}, err
	}
	look.ID = shortID()
	look.Timestamp = time.Now()
	looks = append([]models.SavedLook{look}, looks...)
	if err := s.store.Save(ctx, userID, store.KeySavedLooks, looks); err != nil {
		return models.SavedLook{}, err
	}
	return look, nil
}

// Looks returns the closet, newest first.
func (s *Service) Looks(ctx context.Context, userID string) ([]models.SavedLook, error) {
	var looks []models.SavedLook
	if _, err := s.store.Load(ctx, userID, store.KeySavedLooks, &looks); err != nil {
		return nil, err
	}
	return looks, nil
}

// UpdateLook replaces the notes and tags on a saved look.
func (s *Service) UpdateLook(ctx context.Context, userID, lookID, notes string, tags []string) (models.SavedLook, error) {
	looks, err := s.Looks(ctx, userID)
	if err != nil {
		return models.SavedLook{}, err
	}
	for i := range looks {
		if looks[i].ID == lookID {
			looks[i].Notes = notes
			looks[i].Tags = tags
			if err := s.store.Save(ctx, userID, store.KeySavedLooks, looks); err != nil {
				return models.SavedLook{}, err
			}
			return looks[i], nil
		}
	}
	return models.SavedLook{}, models.ErrLookNotFound
}

// DeleteLook removes a saved look by id.
func (s *Service) DeleteLook(ctx context.Context, userID, lookID string) error {
	looks, err := s.Looks(ctx, userID)
	if err != nil {
		return err
	}
	kept := looks[:0]
	found := false
	for _, l := range looks {
		if l.ID == lookID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return models.ErrLookNotFound
	}
	return s.store.Save(ctx, userID, store.KeySavedLooks, kept)
}

// AppendHistory prepends a completed try-on session to the history feed.
func (s *Service) AppendHistory(ctx context.Context, userID string, entry models.TryOnSession) error {
	history, err := s.History(ctx, userID)
	if err != nil {
		return err
	}
	entry.ID = strings.ToUpper(shortID())
	entry.Timestamp = time.Now()
	history = append([]models.TryOnSession{entry}, history...)
	return s.store.Save(ctx, userID, store.KeyHistory, history)
}

// History returns past try-on sessions, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]models.TryOnSession, error) {
	var history []models.TryOnSession
	if _, err := s.store.Load(ctx, userID, store.KeyHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// ClearHistory empties the history feed.
func (s *Service) ClearHistory(ctx context.Context, userID string) error {
	return s.store.Save(ctx, userID, store.KeyHistory, []models.TryOnSession{})
}
