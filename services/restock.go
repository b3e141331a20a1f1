package services

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/desuper666/Site-shop/store"
)

// Restocker replenishes zero-stock products once their restock cooldown has
// elapsed. Sweep is a polling pass; each product is handled in its own
// transaction so a sweep can safely overlap in-flight checkouts.
type Restocker struct {
	Store store.Store
	Log   *zap.Logger

	// Cooldown is how long a product stays at zero before replenishment.
	Cooldown time.Duration
	// MinStock and MaxStock bound the random restock quantity, inclusive.
	MinStock int
	MaxStock int

	Now     func() time.Time
	RandInt func(min, max int) int
}

func NewRestocker(st store.Store, log *zap.Logger) *Restocker {
	return &Restocker{
		Store:    st,
		Log:      log,
		Cooldown: 100 * time.Second,
		MinStock: 10,
		MaxStock: 20,
		Now:      time.Now,
		RandInt: func(min, max int) int {
			return min + rand.Intn(max-min+1)
		},
	}
}

// Sweep restocks every eligible product. Per-product failures are logged
// and do not stop the pass.
func (r *Restocker) Sweep(ctx context.Context) {
	candidates, err := r.Store.ListRestockCandidates(ctx)
	if err != nil {
		r.Log.Error("restock sweep failed to list products", zap.Error(err))
		return
	}

	for _, candidate := range candidates {
		if err := r.restock(ctx, candidate.ID); err != nil {
			r.Log.Error("restock failed",
				zap.Uint("product_id", candidate.ID), zap.Error(err))
		}
	}
}

func (r *Restocker) restock(ctx context.Context, productID uint) error {
	return r.Store.Transaction(ctx, func(tx store.Store) error {
		product, err := tx.GetProductForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		// Re-check under the lock; a checkout may have raced the sweep.
		if product.Stock != 0 || product.RestockAt == nil {
			return nil
		}
		if r.Now().Sub(*product.RestockAt) < r.Cooldown {
			return nil
		}

		product.Stock = r.RandInt(r.MinStock, r.MaxStock)
		product.RestockAt = nil
		if err := tx.SaveProduct(ctx, product); err != nil {
			return err
		}

		r.Log.Info("product restocked",
			zap.Uint("product_id", product.ID),
			zap.Int("stock", product.Stock),
		)
		return nil
	})
}
