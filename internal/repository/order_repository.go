package repository

import (
	"context"

	"gorm.io/gorm"

	"shopsphere/internal/model"
)

// OrderRepository defines order persistence operations. Reads join in
// product display fields; the admin-facing reads also attach the owning
// user's email.
type OrderRepository interface {
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) withProduct(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Select("orders.*, products.name AS product_name, products.image AS product_image").
		Joins("JOIN products ON products.id = orders.product_id")
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("orders.*, products.name AS product_name, products.image AS product_image, users.email AS user_email").
		Joins("JOIN products ON products.id = orders.product_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.withProduct(ctx).
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("orders.*, products.name AS product_name, products.image AS product_image, users.email AS user_email").
		Joins("JOIN products ON products.id = orders.product_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
