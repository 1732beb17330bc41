package shopapi

import (
	"context"
	"fmt"
	"net/http"
)

const ordersPath = "/orders"

// CreateOrderRequest is the input for placing an order. Pricing, stock
// decrement and the order timestamp are all decided by the server.
type CreateOrderRequest struct {
	CustomerID int64 `json:"customerId"`
	ProductID  int64 `json:"productId"`
	Quantity   int   `json:"quantity"`
}

// ListOrders returns all orders. Ordering is whatever the server sends;
// callers sort for display.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	body, status, err := c.doJSON(ctx, http.MethodGet, ordersPath, nil)
	if err != nil {
		c.logErr("list orders", err)
		return nil, err
	}
	if status >= 400 {
		err := statusError(body, status)
		c.logErr("list orders", err)
		return nil, err
	}

	var dtos []orderDTO
	if err := decode(body, &dtos); err != nil {
		c.logErr("list orders", err)
		return nil, err
	}

	orders := make([]Order, 0, len(dtos))
	for _, d := range dtos {
		orders = append(orders, d.toOrder())
	}
	return orders, nil
}

// GetOrder returns an order by id, or a KindNotFound error.
func (c *Client) GetOrder(ctx context.Context, id int64) (*Order, error) {
	body, status, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", ordersPath, id), nil)
	if err != nil {
		c.logErr("get order", err)
		return nil, err
	}
	if status >= 400 {
		err := statusError(body, status)
		if !IsNotFound(err) {
			c.logErr("get order", err)
		}
		return nil, err
	}

	var dto orderDTO
	if err := decode(body, &dto); err != nil {
		c.logErr("get order", err)
		return nil, err
	}
	order := dto.toOrder()
	return &order, nil
}

// CreateOrder places an order and returns the server's view of it. An
// unrecognized status string in the response decodes to StatusSubmitted.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	body, status, err := c.doJSON(ctx, http.MethodPost, ordersPath, req)
	if err != nil {
		c.logErr("create order", err)
		return nil, err
	}
	if status >= 400 {
		err := statusError(body, status)
		c.logErr("create order", err)
		return nil, err
	}

	var dto orderDTO
	if err := decode(body, &dto); err != nil {
		c.logErr("create order", err)
		return nil, err
	}
	order := dto.toOrder()
	return &order, nil
}

// UpdateOrderStatus patches the status of an order. The new value is not
// validated here; the server owns the transition rules.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status OrderStatus) error {
	payload := map[string]string{"status": string(status)}
	body, code, err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/status", ordersPath, id), payload)
	if err != nil {
		c.logErr("update order status", err)
		return err
	}
	if code >= 400 {
		err := statusError(body, code)
		c.logErr("update order status", err)
		return err
	}
	return nil
}

// DeleteOrder deletes an order by id.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	body, status, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", ordersPath, id), nil)
	if err != nil {
		c.logErr("delete order", err)
		return err
	}
	if status >= 400 {
		err := statusError(body, status)
		c.logErr("delete order", err)
		return err
	}
	return nil
}
