package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/desuper666/Site-shop/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a GORM connection in the Store interface.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// -------- Users --------

func (s *gormStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *gormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *gormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

// -------- Products --------

func (s *gormStore) CreateProduct(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *gormStore) SaveProduct(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *gormStore) DeleteProduct(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &product, nil
}

func (s *gormStore) GetProductForUpdate(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &product, nil
}

func (s *gormStore) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})

	if f.Search != "" {
		likePattern := "%" + f.Search + "%"
		query = query.Where(
			"name_en ILIKE ? OR description_en ILIKE ? OR name_ru ILIKE ? OR description_ru ILIKE ?",
			likePattern, likePattern, likePattern, likePattern,
		)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}

	var products []models.Product
	if err := query.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *gormStore) ListRestockCandidates(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).
		Where("stock = 0 AND restock_at IS NOT NULL").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *gormStore) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// -------- Cart --------

func (s *gormStore) ListCartItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *gormStore) GetCartItem(ctx context.Context, userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &item, nil
}

func (s *gormStore) GetCartItemByID(ctx context.Context, userID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &item, nil
}

func (s *gormStore) SaveCartItem(ctx context.Context, item *models.CartItem) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *gormStore) DeleteCartItem(ctx context.Context, itemID uint) error {
	result := s.db.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ClearCart(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// -------- Promo codes --------

func (s *gormStore) CreatePromo(ctx context.Context, promo *models.PromoCode) error {
	return s.db.WithContext(ctx).Create(promo).Error
}

func (s *gormStore) GetPromo(ctx context.Context, id uint) (*models.PromoCode, error) {
	var promo models.PromoCode
	if err := s.db.WithContext(ctx).First(&promo, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &promo, nil
}

func (s *gormStore) GetActivePromoByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	if err := s.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&promo).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &promo, nil
}

func (s *gormStore) DeactivatePromo(ctx context.Context, code string) error {
	result := s.db.WithContext(ctx).Model(&models.PromoCode{}).
		Where("code = ?", code).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ListPromos(ctx context.Context) ([]models.PromoCode, error) {
	var promos []models.PromoCode
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// -------- Orders --------

func (s *gormStore) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *gormStore) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormStore) GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &order, nil
}
