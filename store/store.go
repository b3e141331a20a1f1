package store

import (
	"context"
	"errors"

	"github.com/desuper666/Site-shop/models"
)

// ErrNotFound is returned by lookups for missing rows. Implementations map
// their driver's not-found error to this sentinel.
var ErrNotFound = errors.New("record not found")

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Search   string
	MinPrice *float64
	MaxPrice *float64
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type ProductStore interface {
	CreateProduct(ctx context.Context, p *models.Product) error
	SaveProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	// GetProductForUpdate locks the product row for the remainder of the
	// surrounding transaction. Outside a transaction it behaves like GetProduct.
	GetProductForUpdate(ctx context.Context, id uint) (*models.Product, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error)
	// ListRestockCandidates returns products with zero stock and a pending
	// restock timestamp.
	ListRestockCandidates(ctx context.Context) ([]models.Product, error)
	CountProducts(ctx context.Context) (int64, error)
}

type CartStore interface {
	ListCartItems(ctx context.Context, userID uint) ([]models.CartItem, error)
	GetCartItem(ctx context.Context, userID, productID uint) (*models.CartItem, error)
	GetCartItemByID(ctx context.Context, userID, itemID uint) (*models.CartItem, error)
	SaveCartItem(ctx context.Context, item *models.CartItem) error
	DeleteCartItem(ctx context.Context, itemID uint) error
	ClearCart(ctx context.Context, userID uint) error
}

type PromoStore interface {
	CreatePromo(ctx context.Context, promo *models.PromoCode) error
	GetPromo(ctx context.Context, id uint) (*models.PromoCode, error)
	GetActivePromoByCode(ctx context.Context, code string) (*models.PromoCode, error)
	DeactivatePromo(ctx context.Context, code string) error
	ListPromos(ctx context.Context) ([]models.PromoCode, error)
}

type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context, userID uint) ([]models.Order, error)
	GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error)
}

// Store is the persisted relational store behind the shop. Transaction runs
// fn against a transaction-scoped Store; if fn returns an error nothing is
// committed.
type Store interface {
	UserStore
	ProductStore
	CartStore
	PromoStore
	OrderStore

	Transaction(ctx context.Context, fn func(Store) error) error
}
