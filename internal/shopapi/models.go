package shopapi

import "time"

// Customer is a shop customer.
type Customer struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	ShippingAddress string `json:"shippingAddress"`
}

// Product is a catalogue product.
type Product struct {
	ID             int64   `json:"id"`
	ProductName    string  `json:"productName"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	StockAvailable int     `json:"stockAvailable"`
	ImageURL       string  `json:"imageUrl,omitempty"`
}

// OrderStatus enumerates the order lifecycle states. Transitions are owned by
// the remote API; this layer only decodes whatever the server reports.
type OrderStatus string

const (
	StatusSubmitted  OrderStatus = "Submitted"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus decodes a wire status string, defaulting to Submitted for
// anything unrecognized.
func ParseOrderStatus(s string) OrderStatus {
	switch OrderStatus(s) {
	case StatusSubmitted, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return OrderStatus(s)
	default:
		return StatusSubmitted
	}
}

// Order is a placed order. Price is the unit price captured at order time;
// ProductName is denormalized by the server.
type Order struct {
	ID          int64
	CustomerID  int64
	ProductID   int64
	ProductName string
	Quantity    int
	Price       float64
	OrderDate   time.Time
	Status      OrderStatus
}

// orderDTO is the wire representation of an Order. Status travels as free
// text and is decoded locally.
type orderDTO struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	ProductID   int64     `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	OrderDate   time.Time `json:"orderDate"`
	Status      string    `json:"status"`
}

func (d orderDTO) toOrder() Order {
	return Order{
		ID:          d.ID,
		CustomerID:  d.CustomerID,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		Price:       d.Price,
		OrderDate:   d.OrderDate,
		Status:      ParseOrderStatus(d.Status),
	}
}
