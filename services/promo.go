package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/desuper666/Site-shop/models"
	"github.com/desuper666/Site-shop/session"
	"github.com/desuper666/Site-shop/store"
)

// PromoService applies promo codes to a user's session and manages the
// promo catalog for admins.
type PromoService struct {
	Store   store.Store
	Session session.PromoSession
	Log     *zap.Logger
	Now     func() time.Time
}

func NewPromoService(st store.Store, ps session.PromoSession, log *zap.Logger) *PromoService {
	return &PromoService{Store: st, Session: ps, Log: log, Now: time.Now}
}

// Apply validates a code and stores it as the user's pending promo. Any
// failure clears a previously pending promo; a stale code must not survive
// a rejected replacement.
func (s *PromoService) Apply(ctx context.Context, userID uint, code string) (*session.AppliedPromo, error) {
	promo, err := s.Store.GetActivePromoByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			if clearErr := s.Session.Clear(ctx, userID); clearErr != nil {
				return nil, clearErr
			}
			return nil, ErrInvalidPromo
		}
		return nil, err
	}

	if promo.ValidUntil.Before(s.Now()) {
		if clearErr := s.Session.Clear(ctx, userID); clearErr != nil {
			return nil, clearErr
		}
		return nil, ErrInvalidPromo
	}

	applied := session.AppliedPromo{
		PromoID:         promo.ID,
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
	}
	if err := s.Session.Set(ctx, userID, applied); err != nil {
		return nil, err
	}

	s.Log.Info("promo applied",
		zap.Uint("user_id", userID),
		zap.String("code", promo.Code),
		zap.Int("discount_percent", promo.DiscountPercent),
	)
	return &applied, nil
}

// Create adds a promo code (admin).
func (s *PromoService) Create(ctx context.Context, code string, discountPercent int, validUntil time.Time) (*models.PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, &ValidationError{Message: "code is required"}
	}
	if discountPercent < 1 || discountPercent > 100 {
		return nil, &ValidationError{Message: "discount_percent must be between 1 and 100"}
	}
	if validUntil.Before(s.Now()) {
		return nil, &ValidationError{Message: "valid_until must be in the future"}
	}

	promo := &models.PromoCode{
		Code:            code,
		DiscountPercent: discountPercent,
		ValidUntil:      validUntil,
		IsActive:        true,
		CreatedAt:       s.Now(),
	}
	if err := s.Store.CreatePromo(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// Deactivate flips the active flag off (admin). The code itself stays
// immutable.
func (s *PromoService) Deactivate(ctx context.Context, code string) error {
	return s.Store.DeactivatePromo(ctx, code)
}

func (s *PromoService) List(ctx context.Context) ([]models.PromoCode, error) {
	return s.Store.ListPromos(ctx)
}
