package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/desuper666/Site-shop/models"
	"github.com/desuper666/Site-shop/session"
	"github.com/desuper666/Site-shop/store"
)

// CartService manages cart lines and the display-time cart view.
type CartService struct {
	Store   store.Store
	Session session.PromoSession
	Log     *zap.Logger
	Now     func() time.Time
}

func NewCartService(st store.Store, ps session.PromoSession, log *zap.Logger) *CartService {
	return &CartService{Store: st, Session: ps, Log: log, Now: time.Now}
}

// CartView is the priced cart as shown to the user. Stock here is
// informational; it is enforced again at checkout.
type CartView struct {
	Items        []models.CartItem     `json:"items"`
	AppliedPromo *session.AppliedPromo `json:"applied_promo,omitempty"`
	Subtotal     float64               `json:"subtotal"`
	Discount     float64               `json:"discount"`
	Total        float64               `json:"total"`
}

// AddItem upserts the (user, product) cart line, incrementing the quantity
// on repeated adds. The combined quantity must not exceed current stock.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, &ValidationError{Message: "quantity must be at least 1"}
	}

	product, err := s.Store.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock == 0 {
		return nil, ErrOutOfStock
	}
	if product.Stock < quantity {
		return nil, &InsufficientStockError{ProductID: product.ID, ProductName: product.NameEN}
	}

	item, err := s.Store.GetCartItem(ctx, userID, productID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	newQuantity := quantity
	if item != nil {
		newQuantity += item.Quantity
	}
	if product.Stock < newQuantity {
		return nil, &InsufficientStockError{ProductID: product.ID, ProductName: product.NameEN}
	}

	if item == nil {
		item = &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   s.Now(),
		}
	} else {
		item.Quantity = newQuantity
	}

	if err := s.Store.SaveCartItem(ctx, item); err != nil {
		return nil, err
	}
	item.Product = *product
	return item, nil
}

// RemoveItem deletes one of the caller's cart lines. Lines belonging to
// other users are reported as not found.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	item, err := s.Store.GetCartItemByID(ctx, userID, itemID)
	if err != nil {
		return err
	}
	return s.Store.DeleteCartItem(ctx, item.ID)
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	return s.Store.ClearCart(ctx, userID)
}

// View prices the cart against current product prices and the pending
// promo, if any. The discount shown here is provisional.
func (s *CartService) View(ctx context.Context, userID uint) (*CartView, error) {
	items, err := s.Store.ListCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	view := &CartView{Items: items, Subtotal: subtotal, Total: subtotal}

	promo, err := s.Session.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if promo != nil {
		view.AppliedPromo = promo
		view.Discount = subtotal * float64(promo.DiscountPercent) / 100
		view.Total = subtotal - view.Discount
	}
	return view, nil
}
