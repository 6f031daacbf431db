package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopsphere/internal/auth"
	apperrors "shopsphere/internal/errors"
	"shopsphere/internal/model"
	"shopsphere/internal/repository"
)

// OrderService handles order operations. Every method takes the acting
// user's claims so ownership rules live in one place; admins bypass them.
type OrderService interface {
	List(ctx context.Context, actor *auth.Claims) ([]model.Order, error)
	Get(ctx context.Context, actor *auth.Claims, id uint) (*model.Order, error)
	Create(ctx context.Context, actor *auth.Claims, productID uint, quantity int) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*model.Order, error)
	Delete(ctx context.Context, actor *auth.Claims, id uint) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// List returns the actor's own orders, or every order for admins.
func (s *orderService) List(ctx context.Context, actor *auth.Claims) ([]model.Order, error) {
	if actor.Role == model.RoleAdmin {
		return s.orderRepo.ListAll(ctx)
	}
	return s.orderRepo.ListByUser(ctx, actor.UserID)
}

// Get returns an order if the actor owns it or is an admin.
func (s *orderService) Get(ctx context.Context, actor *auth.Claims, id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	if actor.Role != model.RoleAdmin && order.UserID != actor.UserID {
		return nil, apperrors.ErrAccessDenied
	}

	return order, nil
}

// Create places an order for the actor. The total is the product's current
// price times the quantity, frozen at this moment; later price changes do
// not touch existing orders. The price read and the insert are independent
// statements, not a transaction.
func (s *orderService) Create(ctx context.Context, actor *auth.Claims, productID uint, quantity int) (*model.Order, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	order := &model.Order{
		UserID:     actor.UserID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: product.Price * float64(quantity),
		Status:     model.OrderStatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

// UpdateStatus sets a new status and returns the refreshed order.
func (s *orderService) UpdateStatus(ctx context.Context, id uint, status string) (*model.Order, error) {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}
	return order, nil
}

// Delete removes an order if the actor owns it or is an admin. A repeat
// delete of the same id reports not found, never a failure.
func (s *orderService) Delete(ctx context.Context, actor *auth.Claims, id uint) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrderNotFound
		}
		return fmt.Errorf("find order: %w", err)
	}

	if actor.Role != model.RoleAdmin && order.UserID != actor.UserID {
		return apperrors.ErrAccessDenied
	}

	deleted, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if !deleted {
		return apperrors.ErrOrderNotFound
	}
	return nil
}
