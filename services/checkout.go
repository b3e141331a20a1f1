package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/desuper666/Site-shop/models"
	"github.com/desuper666/Site-shop/session"
	"github.com/desuper666/Site-shop/store"
)

// CheckoutService turns a cart into an immutable order inside one
// transaction.
type CheckoutService struct {
	Store   store.Store
	Session session.PromoSession
	Log     *zap.Logger
	Now     func() time.Time
}

func NewCheckoutService(st store.Store, ps session.PromoSession, log *zap.Logger) *CheckoutService {
	return &CheckoutService{Store: st, Session: ps, Log: log, Now: time.Now}
}

// CheckoutRequest carries the delivery details captured at checkout.
type CheckoutRequest struct {
	DeliveryAddress string   `json:"delivery_address" binding:"required"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// PlaceOrder commits the user's cart as an order: per-line stock check under
// row locks, promo re-validation, order + item snapshots at current prices,
// stock decrement with restock stamping, cart cleared. All-or-nothing: any
// failure rolls the whole transaction back.
//
// A pending promo that went stale between apply and checkout is dropped
// silently and the order proceeds at full price. Apply-time rejects loudly,
// checkout does not; that asymmetry is intentional.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint, req CheckoutRequest) (*models.Order, error) {
	if req.DeliveryAddress == "" {
		return nil, &ValidationError{Message: "delivery address is required"}
	}

	pending, err := s.Session.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	var order *models.Order

	err = s.Store.Transaction(ctx, func(tx store.Store) error {
		items, err := tx.ListCartItems(ctx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// Lock every product row up front; the locks also serialize
		// against the restock sweep.
		products := make(map[uint]*models.Product, len(items))
		for _, item := range items {
			if item.Quantity < 1 {
				return &ValidationError{Message: "cart line has invalid quantity"}
			}
			product, err := tx.GetProductForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product.Stock < item.Quantity {
				return &InsufficientStockError{ProductID: product.ID, ProductName: product.NameEN}
			}
			products[item.ProductID] = product
		}

		var subtotal float64
		for _, item := range items {
			subtotal += products[item.ProductID].Price * float64(item.Quantity)
		}

		// Re-validate the pending promo; stale ones lose the discount
		// but never fail the order.
		var discount float64
		var promoID *uint
		if pending != nil {
			promo, err := tx.GetPromo(ctx, pending.PromoID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
			if promo != nil && promo.IsActive && !promo.ValidUntil.Before(now) {
				discount = subtotal * float64(pending.DiscountPercent) / 100
				id := promo.ID
				promoID = &id
			}
		}

		order = &models.Order{
			OrderRef:        now.Format("20060102150405") + "-" + uuid.NewString(),
			UserID:          userID,
			Total:           subtotal - discount,
			Date:            now,
			DeliveryAddress: req.DeliveryAddress,
			Latitude:        req.Latitude,
			Longitude:       req.Longitude,
			PromoCodeID:     promoID,
			DiscountApplied: discount,
		}
		for _, item := range items {
			product := products[item.ProductID]
			order.Items = append(order.Items, models.OrderItem{
				ProductID: product.ID,
				NameEN:    product.NameEN,
				NameRU:    product.NameRU,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		for _, item := range items {
			product := products[item.ProductID]
			product.Stock -= item.Quantity
			if product.Stock == 0 {
				restockAt := now
				product.RestockAt = &restockAt
			}
			if err := tx.SaveProduct(ctx, product); err != nil {
				return err
			}
			if err := tx.DeleteCartItem(ctx, item.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The session promo is consumed regardless of whether it still granted
	// a discount. Redis is outside the transaction, so this happens only
	// after a successful commit.
	if pending != nil {
		if err := s.Session.Clear(ctx, userID); err != nil {
			s.Log.Warn("failed to clear pending promo after checkout",
				zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	s.Log.Info("order placed",
		zap.Uint("user_id", userID),
		zap.String("order_ref", order.OrderRef),
		zap.Float64("total", order.Total),
		zap.Float64("discount", order.DiscountApplied),
	)
	return order, nil
}
