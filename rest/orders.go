package rest

import (
	"context"

	"github.com/pkg/errors"
)

// OrderItem is a line within a food order.
type OrderItem struct {
	FoodID     string  `json:"foodId"`
	FoodName   string  `json:"foodName,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice,omitempty"`
	TotalPrice float64 `json:"totalPrice,omitempty"`
}

// FoodOrder is a food order belonging to a user.
type FoodOrder struct {
	ID          string      `json:"id"`
	OrderID     string      `json:"orderId,omitempty"`
	Status      string      `json:"status,omitempty"`
	DiningMode  string      `json:"diningMode,omitempty"`
	Items       []OrderItem `json:"items,omitempty"`
	TotalAmount float64     `json:"totalAmount,omitempty"`
	TotalPrice  float64     `json:"totalPrice,omitempty"`
	OrderTime   string      `json:"orderTime,omitempty"`
	CreatedAt   string      `json:"createdAt,omitempty"`
}

// FoodOrderRequest creates a new food order, typically from the local cart.
type FoodOrderRequest struct {
	Items      []OrderItem `json:"items"`
	DiningMode string      `json:"diningMode,omitempty"`
}

// MyFoodOrders lists the authenticated user's food orders.
func (c *Client) MyFoodOrders(ctx context.Context) ([]FoodOrder, error) {
	var orders []FoodOrder
	if err := c.get(ctx, RouteFoodOrders, &orders); err != nil {
		return nil, errors.Wrap(err, "[Client.MyFoodOrders]")
	}
	return orders, nil
}

// CreateFoodOrder places a food order for the authenticated user.
func (c *Client) CreateFoodOrder(ctx context.Context, order FoodOrderRequest) (*FoodOrder, error) {
	var created FoodOrder
	if err := c.post(ctx, RouteFoodOrders, order, &created); err != nil {
		return nil, errors.Wrap(err, "[Client.CreateFoodOrder]")
	}
	return &created, nil
}
