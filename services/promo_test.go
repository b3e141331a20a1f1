package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/desuper666/Site-shop/services"
	"github.com/desuper666/Site-shop/store"
)

func newPromoService(st *memStore, ses *memSession) *services.PromoService {
	svc := services.NewPromoService(st, ses, zap.NewNop())
	svc.Now = func() time.Time { return testNow }
	return svc
}

func TestApplyPromo_Valid(t *testing.T) {
	st := newMemStore()
	ses := newMemSession()
	ctx := context.Background()
	promo := addPromo(t, st, "EASTER20", 20, testNow.Add(24*time.Hour), true)

	svc := newPromoService(st, ses)
	applied, err := svc.Apply(ctx, testUserID, "EASTER20")
	require.NoError(t, err)
	assert.Equal(t, promo.ID, applied.PromoID)
	assert.Equal(t, "EASTER20", applied.Code)
	assert.Equal(t, 20, applied.DiscountPercent)

	pending, _ := ses.Get(ctx, testUserID)
	require.NotNil(t, pending)
	assert.Equal(t, "EASTER20", pending.Code)
}

func TestApplyPromo_UnknownCodeClearsPending(t *testing.T) {
	st := newMemStore()
	ses := newMemSession()
	ctx := context.Background()
	addPromo(t, st, "EASTER20", 20, testNow.Add(24*time.Hour), true)

	svc := newPromoService(st, ses)
	_, err := svc.Apply(ctx, testUserID, "EASTER20")
	require.NoError(t, err)

	_, err = svc.Apply(ctx, testUserID, "NOSUCHCODE")
	assert.ErrorIs(t, err, services.ErrInvalidPromo)

	// The earlier promo must not survive a rejected replacement.
	pending, _ := ses.Get(ctx, testUserID)
	assert.Nil(t, pending)
}

func TestApplyPromo_ExpiredCode(t *testing.T) {
	st := newMemStore()
	ses := newMemSession()
	addPromo(t, st, "EASTER20", 20, testNow.Add(-time.Hour), true)

	svc := newPromoService(st, ses)
	_, err := svc.Apply(context.Background(), testUserID, "EASTER20")
	assert.ErrorIs(t, err, services.ErrInvalidPromo)
}

func TestApplyPromo_DeactivatedCode(t *testing.T) {
	st := newMemStore()
	ses := newMemSession()
	addPromo(t, st, "EASTER20", 20, testNow.Add(24*time.Hour), false)

	svc := newPromoService(st, ses)
	_, err := svc.Apply(context.Background(), testUserID, "EASTER20")
	assert.ErrorIs(t, err, services.ErrInvalidPromo)
}

func TestApplyPromo_ReplacesPending(t *testing.T) {
	st := newMemStore()
	ses := newMemSession()
	ctx := context.Background()
	addPromo(t, st, "EASTER20", 20, testNow.Add(24*time.Hour), true)
	addPromo(t, st, "ROMANOVLEXA25", 25, testNow.Add(24*time.Hour), true)

	svc := newPromoService(st, ses)
	_, err := svc.Apply(ctx, testUserID, "EASTER20")
	require.NoError(t, err)
	_, err = svc.Apply(ctx, testUserID, "ROMANOVLEXA25")
	require.NoError(t, err)

	pending, _ := ses.Get(ctx, testUserID)
	require.NotNil(t, pending)
	assert.Equal(t, "ROMANOVLEXA25", pending.Code)
	assert.Equal(t, 25, pending.DiscountPercent)
}

func TestCreatePromo(t *testing.T) {
	st := newMemStore()
	svc := newPromoService(st, newMemSession())

	promo, err := svc.Create(context.Background(), " winter10 ", 10, testNow.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "WINTER10", promo.Code)
	assert.Equal(t, 10, promo.DiscountPercent)
	assert.True(t, promo.IsActive)
	assert.NotZero(t, promo.ID)
}

func TestCreatePromo_Validation(t *testing.T) {
	svc := newPromoService(newMemStore(), newMemSession())
	ctx := context.Background()

	cases := []struct {
		name       string
		code       string
		percent    int
		validUntil time.Time
	}{
		{"empty code", "", 10, testNow.Add(time.Hour)},
		{"zero percent", "X", 0, testNow.Add(time.Hour)},
		{"percent above 100", "X", 101, testNow.Add(time.Hour)},
		{"expiry in the past", "X", 10, testNow.Add(-time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.code, tc.percent, tc.validUntil)
			var vErr *services.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestDeactivatePromo(t *testing.T) {
	st := newMemStore()
	ctx := context.Background()
	addPromo(t, st, "EASTER20", 20, testNow.Add(24*time.Hour), true)

	svc := newPromoService(st, newMemSession())
	require.NoError(t, svc.Deactivate(ctx, "EASTER20"))

	_, err := st.GetActivePromoByCode(ctx, "EASTER20")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeactivatePromo_Unknown(t *testing.T) {
	svc := newPromoService(newMemStore(), newMemSession())
	err := svc.Deactivate(context.Background(), "NOSUCHCODE")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
