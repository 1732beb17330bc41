package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/retailops/storefront/internal/shopapi"
)

type customerForm struct {
	Name            string `form:"name" binding:"required"`
	Surname         string `form:"surname" binding:"required"`
	Username        string `form:"username" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	ShippingAddress string `form:"shippingAddress" binding:"required"`
}

func (f customerForm) toCustomer(id int64) shopapi.Customer {
	return shopapi.Customer{
		ID:              id,
		Name:            f.Name,
		Surname:         f.Surname,
		Username:        f.Username,
		Email:           f.Email,
		ShippingAddress: f.ShippingAddress,
	}
}

func (s *Server) listCustomers(c *gin.Context) {
	flash := popFlashes(c)

	customers, err := s.api.ListCustomers(c.Request.Context())
	if err != nil {
		customers = []shopapi.Customer{}
		flash.Error = "Could not load customers. Please try again later."
	}

	s.render(c, http.StatusOK, "customers/list", gin.H{
		"Flash":     flash,
		"Customers": customers,
	})
}

func (s *Server) newCustomerForm(c *gin.Context) {
	s.render(c, http.StatusOK, "customers/form", gin.H{
		"Customer": shopapi.Customer{},
	})
}

func (s *Server) createCustomer(c *gin.Context) {
	var form customerForm
	if err := c.ShouldBind(&form); err != nil {
		s.render(c, http.StatusBadRequest, "customers/form", gin.H{
			"Customer": form.toCustomer(0),
			"Error":    "Please fill in all fields with valid values.",
		})
		return
	}

	if _, err := s.api.CreateCustomer(c.Request.Context(), form.toCustomer(0)); err != nil {
		s.render(c, http.StatusOK, "customers/form", gin.H{
			"Customer": form.toCustomer(0),
			"Error":    "Could not save the customer. Please try again.",
		})
		return
	}

	addFlash(c, flashSuccess, "Customer created.")
	c.Redirect(http.StatusSeeOther, "/customers")
}

func (s *Server) editCustomerForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.notFound(c)
		return
	}

	customer, err := s.api.GetCustomer(c.Request.Context(), id)
	if err != nil {
		if shopapi.IsNotFound(err) {
			s.notFound(c)
			return
		}
		addFlash(c, flashError, "Could not load the customer. Please try again later.")
		c.Redirect(http.StatusSeeOther, "/customers")
		return
	}

	s.render(c, http.StatusOK, "customers/form", gin.H{
		"Customer": *customer,
	})
}

func (s *Server) updateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.notFound(c)
		return
	}

	var form customerForm
	if err := c.ShouldBind(&form); err != nil {
		s.render(c, http.StatusBadRequest, "customers/form", gin.H{
			"Customer": form.toCustomer(id),
			"Error":    "Please fill in all fields with valid values.",
		})
		return
	}

	if _, err := s.api.UpdateCustomer(c.Request.Context(), form.toCustomer(id)); err != nil {
		s.render(c, http.StatusOK, "customers/form", gin.H{
			"Customer": form.toCustomer(id),
			"Error":    "Could not save the customer. Please try again.",
		})
		return
	}

	addFlash(c, flashSuccess, "Customer updated.")
	c.Redirect(http.StatusSeeOther, "/customers")
}

func (s *Server) deleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.notFound(c)
		return
	}

	if err := s.api.DeleteCustomer(c.Request.Context(), id); err != nil {
		addFlash(c, flashError, "Could not delete the customer.")
	} else {
		addFlash(c, flashSuccess, "Customer deleted.")
	}
	c.Redirect(http.StatusSeeOther, "/customers")
}

// parseID reads the :id route parameter. Blank or non-numeric ids fail.
func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) notFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, "error/404", gin.H{})
}
