package shopapi

import (
	"context"
	"fmt"
	"net/http"
)

const customersPath = "/customers"

// customerPayload is the mutable subset of Customer sent on create/update.
// The id is never part of the payload; the server owns identity.
type customerPayload struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	ShippingAddress string `json:"shippingAddress"`
}

// ListCustomers returns all customers.
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	body, status, err := c.doJSON(ctx, http.MethodGet, customersPath, nil)
	if err != nil {
		c.logErr("list customers", err)
		return nil, err
	}
	if status >= 400 {
		err := statusError(body, status)
		c.logErr("list customers", err)
		return nil, err
	}

	var customers []Customer
	if err := decode(body, &customers); err != nil {
		c.logErr("list customers", err)
		return nil, err
	}
	return customers, nil
}

// GetCustomer returns a customer by id. A missing customer comes back as a
// KindNotFound error.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	body, status, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", customersPath, id), nil)
	if err != nil {
		c.logErr("get customer", err)
		return nil, err
	}
	if status >= 400 {
		err := statusError(body, status)
		if !IsNotFound(err) {
			c.logErr("get customer", err)
		}
		return nil, err
	}

	var customer Customer
	if err := decode(body, &customer); err != nil {
		c.logErr("get customer", err)
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer creates a customer and returns the stored entity. When the
// server responds without a usable body the submitted values are returned.
func (c *Client) CreateCustomer(ctx context.Context, customer Customer) (*Customer, error) {
	return c.writeCustomer(ctx, http.MethodPost, customersPath, customer, "create customer")
}

// UpdateCustomer updates the customer identified by customer.ID.
func (c *Client) UpdateCustomer(ctx context.Context, customer Customer) (*Customer, error) {
	path := fmt.Sprintf("%s/%d", customersPath, customer.ID)
	return c.writeCustomer(ctx, http.MethodPut, path, customer, "update customer")
}

func (c *Client) writeCustomer(ctx context.Context, method, path string, customer Customer, op string) (*Customer, error) {
	payload := customerPayload{
		Name:            customer.Name,
		Surname:         customer.Surname,
		Username:        customer.Username,
		Email:           customer.Email,
		ShippingAddress: customer.ShippingAddress,
	}

	body, status, err := c.doJSON(ctx, method, path, payload)
	if err != nil {
		c.logErr(op, err)
		return nil, err
	}
	if status >= 400 {
		err := statusError(body, status)
		c.logErr(op, err)
		return nil, err
	}

	var stored Customer
	if err := decode(body, &stored); err != nil {
		c.logErr(op, err)
		return nil, err
	}
	if stored.ID == 0 {
		// Server answered 2xx without echoing the entity.
		stored = customer
	}
	return &stored, nil
}

// DeleteCustomer deletes a customer by id.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	body, status, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", customersPath, id), nil)
	if err != nil {
		c.logErr("delete customer", err)
		return err
	}
	if status >= 400 {
		err := statusError(body, status)
		c.logErr("delete customer", err)
		return err
	}
	return nil
}
