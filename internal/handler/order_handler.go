package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopsphere/internal/auth"
	apperrors "shopsphere/internal/errors"
	"shopsphere/internal/middleware"
	"shopsphere/internal/model"
	"shopsphere/internal/service"
)

// OrderHandler handles order endpoints. All routes sit behind the token
// middleware; ownership decisions happen in the service.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrderRequest represents an order placement request.
type CreateOrderRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// UpdateOrderStatusRequest represents an order status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse wraps a single order.
type OrderResponse struct {
	Order *model.Order `json:"order"`
}

// OrderListResponse wraps an order collection.
type OrderListResponse struct {
	Orders []model.Order `json:"orders"`
}

func actorClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "Access token required",
			Code:  "TOKEN_REQUIRED",
		})
	}
	return claims, nil
}

// List godoc
// @Summary List the caller's orders; admins see every order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} OrderListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	claims, err := actorClaims(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.List(c.Request().Context(), claims)
	if err != nil {
		return respondError(c, err)
	}

	if orders == nil {
		orders = []model.Order{}
	}
	return c.JSON(http.StatusOK, OrderListResponse{Orders: orders})
}

// Get godoc
// @Summary Get an order by id (owner or admin)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order id"
// @Success 200 {object} OrderResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	claims, err := actorClaims(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderService.Get(c.Request().Context(), claims, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, OrderResponse{Order: order})
}

// Create godoc
// @Summary Place an order for a product
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderRequest true "Order fields"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	claims, err := actorClaims(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.Create(c.Request().Context(), claims, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, OrderResponse{Order: order})
}

// UpdateStatus godoc
// @Summary Update an order's status (admin only)
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order id"
// @Param request body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, OrderResponse{Order: order})
}

// Delete godoc
// @Summary Delete an order (owner or admin)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order id"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	claims, err := actorClaims(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderService.Delete(c.Request().Context(), claims, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Order deleted successfully"})
}
