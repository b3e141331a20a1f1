package session

import "context"

// AppliedPromo is the pending promo a user applied to their cart. It is
// session state, not an order fact: checkout re-validates the underlying
// promo code before granting the discount.
type AppliedPromo struct {
	PromoID         uint   `json:"promo_id"`
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
}

// PromoSession stores the per-user pending promo. Get returns (nil, nil)
// when no promo is pending.
type PromoSession interface {
	Get(ctx context.Context, userID uint) (*AppliedPromo, error)
	Set(ctx context.Context, userID uint, promo AppliedPromo) error
	Clear(ctx context.Context, userID uint) error
}
