package services_test

import (
	"context"
	"sort"
	"strings"

	"github.com/desuper666/Site-shop/models"
	"github.com/desuper666/Site-shop/session"
	"github.com/desuper666/Site-shop/store"
)

// memStore is an in-memory Store used by the service tests. Transaction
// snapshots all state and restores it when fn fails, mirroring the rollback
// behavior the GORM store gets from Postgres.
type memStore struct {
	users     map[uint]*models.User
	products  map[uint]*models.Product
	cartItems map[uint]*models.CartItem
	promos    map[uint]*models.PromoCode
	orders    map[uint]*models.Order
	nextID    uint
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[uint]*models.User),
		products:  make(map[uint]*models.Product),
		cartItems: make(map[uint]*models.CartItem),
		promos:    make(map[uint]*models.PromoCode),
		orders:    make(map[uint]*models.Order),
		nextID:    1,
	}
}

func (s *memStore) id() uint {
	id := s.nextID
	s.nextID++
	return id
}

func cloneProduct(p *models.Product) *models.Product {
	cp := *p
	if p.RestockAt != nil {
		t := *p.RestockAt
		cp.RestockAt = &t
	}
	return &cp
}

func cloneOrder(o *models.Order) *models.Order {
	co := *o
	if o.Latitude != nil {
		v := *o.Latitude
		co.Latitude = &v
	}
	if o.Longitude != nil {
		v := *o.Longitude
		co.Longitude = &v
	}
	if o.PromoCodeID != nil {
		v := *o.PromoCodeID
		co.PromoCodeID = &v
	}
	co.Items = append([]models.OrderItem(nil), o.Items...)
	return &co
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	cp.nextID = s.nextID
	for id, u := range s.users {
		v := *u
		cp.users[id] = &v
	}
	for id, p := range s.products {
		cp.products[id] = cloneProduct(p)
	}
	for id, c := range s.cartItems {
		v := *c
		cp.cartItems[id] = &v
	}
	for id, p := range s.promos {
		v := *p
		cp.promos[id] = &v
	}
	for id, o := range s.orders {
		cp.orders[id] = cloneOrder(o)
	}
	return cp
}

func (s *memStore) Transaction(_ context.Context, fn func(store.Store) error) error {
	saved := s.snapshot()
	if err := fn(s); err != nil {
		*s = *saved
		return err
	}
	return nil
}

// -------- Users --------

func (s *memStore) CreateUser(_ context.Context, user *models.User) error {
	user.ID = s.id()
	v := *user
	s.users[user.ID] = &v
	return nil
}

func (s *memStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	v := *u
	return &v, nil
}

func (s *memStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			v := *u
			return &v, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			v := *u
			return &v, nil
		}
	}
	return nil, store.ErrNotFound
}

// -------- Products --------

func (s *memStore) CreateProduct(_ context.Context, p *models.Product) error {
	if p.ID == 0 {
		p.ID = s.id()
	}
	s.products[p.ID] = cloneProduct(p)
	return nil
}

func (s *memStore) SaveProduct(_ context.Context, p *models.Product) error {
	s.products[p.ID] = cloneProduct(p)
	return nil
}

func (s *memStore) DeleteProduct(_ context.Context, id uint) error {
	if _, ok := s.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *memStore) GetProduct(_ context.Context, id uint) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneProduct(p), nil
}

func (s *memStore) GetProductForUpdate(ctx context.Context, id uint) (*models.Product, error) {
	return s.GetProduct(ctx, id)
}

func (s *memStore) ListProducts(_ context.Context, f store.ProductFilter) ([]models.Product, error) {
	var result []models.Product
	for _, p := range s.products {
		if f.Search != "" && !strings.Contains(strings.ToLower(p.NameEN), strings.ToLower(f.Search)) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		result = append(result, *cloneProduct(p))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *memStore) ListRestockCandidates(_ context.Context) ([]models.Product, error) {
	var result []models.Product
	for _, p := range s.products {
		if p.Stock == 0 && p.RestockAt != nil {
			result = append(result, *cloneProduct(p))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *memStore) CountProducts(_ context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

// -------- Cart --------

func (s *memStore) ListCartItems(_ context.Context, userID uint) ([]models.CartItem, error) {
	var result []models.CartItem
	for _, item := range s.cartItems {
		if item.UserID != userID {
			continue
		}
		v := *item
		if p, ok := s.products[item.ProductID]; ok {
			v.Product = *cloneProduct(p)
		}
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *memStore) GetCartItem(_ context.Context, userID, productID uint) (*models.CartItem, error) {
	for _, item := range s.cartItems {
		if item.UserID == userID && item.ProductID == productID {
			v := *item
			return &v, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memStore) GetCartItemByID(_ context.Context, userID, itemID uint) (*models.CartItem, error) {
	item, ok := s.cartItems[itemID]
	if !ok || item.UserID != userID {
		return nil, store.ErrNotFound
	}
	v := *item
	return &v, nil
}

func (s *memStore) SaveCartItem(_ context.Context, item *models.CartItem) error {
	if item.ID == 0 {
		item.ID = s.id()
	}
	v := *item
	v.Product = models.Product{}
	s.cartItems[item.ID] = &v
	return nil
}

func (s *memStore) DeleteCartItem(_ context.Context, itemID uint) error {
	if _, ok := s.cartItems[itemID]; !ok {
		return store.ErrNotFound
	}
	delete(s.cartItems, itemID)
	return nil
}

func (s *memStore) ClearCart(_ context.Context, userID uint) error {
	for id, item := range s.cartItems {
		if item.UserID == userID {
			delete(s.cartItems, id)
		}
	}
	return nil
}

// -------- Promo codes --------

func (s *memStore) CreatePromo(_ context.Context, promo *models.PromoCode) error {
	if promo.ID == 0 {
		promo.ID = s.id()
	}
	v := *promo
	s.promos[promo.ID] = &v
	return nil
}

func (s *memStore) GetPromo(_ context.Context, id uint) (*models.PromoCode, error) {
	p, ok := s.promos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	v := *p
	return &v, nil
}

func (s *memStore) GetActivePromoByCode(_ context.Context, code string) (*models.PromoCode, error) {
	for _, p := range s.promos {
		if p.Code == code && p.IsActive {
			v := *p
			return &v, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memStore) DeactivatePromo(_ context.Context, code string) error {
	for _, p := range s.promos {
		if p.Code == code {
			p.IsActive = false
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memStore) ListPromos(_ context.Context) ([]models.PromoCode, error) {
	var result []models.PromoCode
	for _, p := range s.promos {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// -------- Orders --------

func (s *memStore) CreateOrder(_ context.Context, order *models.Order) error {
	order.ID = s.id()
	for i := range order.Items {
		order.Items[i].ID = s.id()
		order.Items[i].OrderID = order.ID
	}
	s.orders[order.ID] = cloneOrder(order)
	return nil
}

func (s *memStore) ListOrders(_ context.Context, userID uint) ([]models.Order, error) {
	var result []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			result = append(result, *cloneOrder(o))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (s *memStore) GetOrder(_ context.Context, userID, orderID uint) (*models.Order, error) {
	o, ok := s.orders[orderID]
	if !ok || o.UserID != userID {
		return nil, store.ErrNotFound
	}
	return cloneOrder(o), nil
}

// memSession is an in-memory PromoSession.
type memSession struct {
	promos map[uint]session.AppliedPromo
}

func newMemSession() *memSession {
	return &memSession{promos: make(map[uint]session.AppliedPromo)}
}

func (s *memSession) Get(_ context.Context, userID uint) (*session.AppliedPromo, error) {
	p, ok := s.promos[userID]
	if !ok {
		return nil, nil
	}
	v := p
	return &v, nil
}

func (s *memSession) Set(_ context.Context, userID uint, promo session.AppliedPromo) error {
	s.promos[userID] = promo
	return nil
}

func (s *memSession) Clear(_ context.Context, userID uint) error {
	delete(s.promos, userID)
	return nil
}
