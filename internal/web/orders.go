package web

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/retailops/storefront/internal/shopapi"
)

type orderForm struct {
	CustomerID int64 `form:"customerId" binding:"required,gt=0"`
	ProductID  int64 `form:"productId" binding:"required,gt=0"`
	Quantity   int   `form:"quantity" binding:"required,gt=0"`
}

func (s *Server) listOrders(c *gin.Context) {
	flash := popFlashes(c)

	orders, err := s.api.ListOrders(c.Request.Context())
	if err != nil {
		orders = []shopapi.Order{}
		flash.Error = "Could not load orders. Please try again later."
	}

	// Newest first; server ordering is not trusted.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})

	s.render(c, http.StatusOK, "orders/list", gin.H{
		"Flash":  flash,
		"Orders": orders,
	})
}

func (s *Server) newOrderForm(c *gin.Context) {
	data := s.orderFormData(c, orderForm{})
	s.render(c, http.StatusOK, "orders/form", data)
}

func (s *Server) createOrder(c *gin.Context) {
	var form orderForm
	if err := c.ShouldBind(&form); err != nil {
		data := s.orderFormData(c, form)
		data["Error"] = "Please select a customer, a product and a valid quantity."
		s.render(c, http.StatusBadRequest, "orders/form", data)
		return
	}

	ctx := c.Request.Context()

	customer, err := s.api.GetCustomer(ctx, form.CustomerID)
	if err != nil || customer == nil {
		data := s.orderFormData(c, form)
		data["Error"] = "The selected customer does not exist."
		s.render(c, http.StatusBadRequest, "orders/form", data)
		return
	}

	product, err := s.api.GetProduct(ctx, form.ProductID)
	if err != nil || product == nil {
		data := s.orderFormData(c, form)
		data["Error"] = "The selected product does not exist."
		s.render(c, http.StatusBadRequest, "orders/form", data)
		return
	}

	if form.Quantity > product.StockAvailable {
		data := s.orderFormData(c, form)
		data["Error"] = fmt.Sprintf("Insufficient stock. Available: %d", product.StockAvailable)
		s.render(c, http.StatusBadRequest, "orders/form", data)
		return
	}

	if _, err := s.api.CreateOrder(ctx, shopapi.CreateOrderRequest{
		CustomerID: form.CustomerID,
		ProductID:  form.ProductID,
		Quantity:   form.Quantity,
	}); err != nil {
		data := s.orderFormData(c, form)
		data["Error"] = "Could not place the order. Please try again."
		s.render(c, http.StatusOK, "orders/form", data)
		return
	}

	addFlash(c, flashSuccess, "Order placed.")
	c.Redirect(http.StatusSeeOther, "/orders")
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.notFound(c)
		return
	}

	if err := s.api.DeleteOrder(c.Request.Context(), id); err != nil {
		addFlash(c, flashError, "Could not delete the order.")
	} else {
		addFlash(c, flashSuccess, "Order deleted.")
	}
	c.Redirect(http.StatusSeeOther, "/orders")
}

// orderFormData assembles the order form view model: the customer and product
// dropdowns plus the submitted selection. Lookup failures degrade to empty
// dropdowns; the form stays usable once the API recovers.
func (s *Server) orderFormData(c *gin.Context, form orderForm) gin.H {
	ctx := c.Request.Context()

	customers, err := s.api.ListCustomers(ctx)
	if err != nil {
		customers = []shopapi.Customer{}
	}
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		products = []shopapi.Product{}
	}

	return gin.H{
		"Customers": customers,
		"Products":  products,
		"Form":      form,
	}
}

// =============================================================================
// Proof of Payment
// =============================================================================

func (s *Server) proofOfPaymentForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.notFound(c)
		return
	}

	order, err := s.api.GetOrder(c.Request.Context(), id)
	if err != nil {
		if shopapi.IsNotFound(err) {
			s.notFound(c)
			return
		}
		addFlash(c, flashError, "Could not load the order. Please try again later.")
		c.Redirect(http.StatusSeeOther, "/orders")
		return
	}

	s.render(c, http.StatusOK, "orders/proof", gin.H{
		"Order": *order,
	})
}

func (s *Server) uploadProofOfPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.notFound(c)
		return
	}

	renderError := func(msg string) {
		data := gin.H{"Error": msg}
		if order, err := s.api.GetOrder(c.Request.Context(), id); err == nil {
			data["Order"] = *order
		} else {
			data["Order"] = shopapi.Order{ID: id}
		}
		s.render(c, http.StatusOK, "orders/proof", data)
	}

	header, err := c.FormFile("proofOfPayment")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			renderError("Please choose a file to upload.")
			return
		}
		renderError("Could not read the uploaded file.")
		return
	}

	upload, err := readUpload(header)
	if err != nil {
		renderError("Could not read the uploaded file.")
		return
	}

	storedName, err := s.api.UploadProofOfPayment(c.Request.Context(), shopapi.ProofOfPaymentUpload{
		FileName:     upload.Name,
		ContentType:  upload.ContentType,
		Data:         upload.Data,
		OrderID:      id,
		CustomerName: c.PostForm("customerName"),
	})
	if err != nil {
		msg := "Could not upload the file. Please try again."
		if shopapi.IsValidation(err) {
			msg = "The file was rejected: " + err.Error()
		}
		renderError(msg)
		return
	}

	addFlash(c, flashSuccess, "Proof of payment uploaded as "+storedName+".")
	c.Redirect(http.StatusSeeOther, "/orders")
}

// =============================================================================
// JSON endpoints (async client-side calls)
// =============================================================================

// productInfo returns price and stock for a product, for the order form's
// live lookup.
func (s *Server) productInfo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	product, err := s.api.GetProduct(c.Request.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		if shopapi.IsNotFound(err) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"productName":    product.ProductName,
		"price":          product.Price,
		"stockAvailable": product.StockAvailable,
	})
}

// updateOrderStatus changes an order's status. The value is forwarded as-is;
// the server owns transition rules.
func (s *Server) updateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "status is required"})
		return
	}

	if err := s.api.UpdateOrderStatus(c.Request.Context(), id, shopapi.OrderStatus(req.Status)); err != nil {
		status := http.StatusBadGateway
		if shopapi.IsNotFound(err) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false, "error": "could not update the order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated."})
}
