package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shopsphere/internal/auth"
	apperrors "shopsphere/internal/errors"
	"shopsphere/internal/model"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func userClaims(id uint) *auth.Claims {
	return &auth.Claims{UserID: id, Email: "user@example.com", Role: model.RoleUser}
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: 100, Email: "admin@example.com", Role: model.RoleAdmin}
}

func TestOrderService_Create_FreezesTotal(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)

	mockProducts.On("FindByID", mock.Anything, uint(3)).Return(&model.Product{ID: 3, Price: 45}, nil)
	mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Order).ID = 10
	}).Return(nil)

	service := NewOrderService(mockOrders, mockProducts)
	order, err := service.Create(context.Background(), userClaims(1), 3, 2)

	require.NoError(t, err)
	assert.Equal(t, 90.0, order.TotalPrice)
	assert.Equal(t, uint(1), order.UserID)
	assert.Equal(t, model.OrderStatusPending, order.Status)

	// A later price change must not touch the stored total.
	mockProducts.On("FindByID", mock.Anything, uint(3)).Return(&model.Product{ID: 3, Price: 60}, nil)
	assert.Equal(t, 90.0, order.TotalPrice)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_Create_ProductNotFound(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	mockProducts.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewOrderService(mockOrders, mockProducts)
	order, err := service.Create(context.Background(), userClaims(1), 99, 1)

	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	assert.Nil(t, order)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Get_Ownership(t *testing.T) {
	order := &model.Order{ID: 5, UserID: 1, TotalPrice: 90}

	tests := []struct {
		name          string
		actor         *auth.Claims
		expectedError error
	}{
		{name: "owner reads own order", actor: userClaims(1)},
		{name: "other user is denied", actor: userClaims(2), expectedError: apperrors.ErrAccessDenied},
		{name: "admin reads any order", actor: adminClaims()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrders := new(MockOrderRepository)
			mockOrders.On("FindByID", mock.Anything, uint(5)).Return(order, nil)

			service := NewOrderService(mockOrders, new(MockProductRepository))
			got, err := service.Get(context.Background(), tt.actor, 5)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, order, got)
			}
		})
	}
}

func TestOrderService_List(t *testing.T) {
	t.Run("user sees only own orders", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockOrders.On("ListByUser", mock.Anything, uint(1)).Return([]model.Order{{ID: 5, UserID: 1}}, nil)

		service := NewOrderService(mockOrders, new(MockProductRepository))
		orders, err := service.List(context.Background(), userClaims(1))

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		mockOrders.AssertNotCalled(t, "ListAll", mock.Anything)
	})

	t.Run("admin sees every order", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockOrders.On("ListAll", mock.Anything).Return([]model.Order{{ID: 5}, {ID: 6}}, nil)

		service := NewOrderService(mockOrders, new(MockProductRepository))
		orders, err := service.List(context.Background(), adminClaims())

		assert.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}

func TestOrderService_Delete(t *testing.T) {
	t.Run("owner deletes, repeat delete reports not found", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockOrders.On("FindByID", mock.Anything, uint(5)).Return(&model.Order{ID: 5, UserID: 1}, nil).Once()
		mockOrders.On("Delete", mock.Anything, uint(5)).Return(true, nil).Once()
		mockOrders.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound).Once()

		service := NewOrderService(mockOrders, new(MockProductRepository))
		ctx := context.Background()

		assert.NoError(t, service.Delete(ctx, userClaims(1), 5))
		assert.ErrorIs(t, service.Delete(ctx, userClaims(1), 5), apperrors.ErrOrderNotFound)
		mockOrders.AssertExpectations(t)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockOrders.On("FindByID", mock.Anything, uint(5)).Return(&model.Order{ID: 5, UserID: 1}, nil)

		service := NewOrderService(mockOrders, new(MockProductRepository))
		err := service.Delete(context.Background(), userClaims(2), 5)

		assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
		mockOrders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockOrders.On("FindByID", mock.Anything, uint(5)).Return(&model.Order{ID: 5, Status: model.OrderStatusPending}, nil).Once()
	mockOrders.On("UpdateStatus", mock.Anything, uint(5), "shipped").Return(nil)
	mockOrders.On("FindByID", mock.Anything, uint(5)).Return(&model.Order{ID: 5, Status: "shipped"}, nil).Once()

	service := NewOrderService(mockOrders, new(MockProductRepository))
	order, err := service.UpdateStatus(context.Background(), 5, "shipped")

	require.NoError(t, err)
	assert.Equal(t, "shipped", order.Status)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockOrders.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewOrderService(mockOrders, new(MockProductRepository))
	_, err := service.UpdateStatus(context.Background(), 99, "shipped")

	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
	mockOrders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
