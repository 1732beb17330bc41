package web

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retailops/storefront/internal/shopapi"
)

type productForm struct {
	ProductName    string  `form:"productName" binding:"required"`
	Description    string  `form:"description"`
	Price          float64 `form:"price" binding:"required,gt=0"`
	StockAvailable int     `form:"stockAvailable" binding:"gte=0"`
	ImageURL       string  `form:"imageUrl"`
}

func (f productForm) toProduct(id int64) shopapi.Product {
	return shopapi.Product{
		ID:             id,
		ProductName:    f.ProductName,
		Description:    f.Description,
		Price:          f.Price,
		StockAvailable: f.StockAvailable,
		ImageURL:       f.ImageURL,
	}
}

func (s *Server) listProducts(c *gin.Context) {
	flash := popFlashes(c)

	products, err := s.api.ListProducts(c.Request.Context())
	if err != nil {
		products = []shopapi.Product{}
		flash.Error = "Could not load products. Please try again later."
	}

	s.render(c, http.StatusOK, "products/list", gin.H{
		"Flash":    flash,
		"Products": products,
	})
}

func (s *Server) newProductForm(c *gin.Context) {
	s.render(c, http.StatusOK, "products/form", gin.H{
		"Product": shopapi.Product{},
	})
}

func (s *Server) createProduct(c *gin.Context) {
	s.saveProduct(c, 0)
}

func (s *Server) editProductForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.notFound(c)
		return
	}

	product, err := s.api.GetProduct(c.Request.Context(), id)
	if err != nil {
		if shopapi.IsNotFound(err) {
			s.notFound(c)
			return
		}
		addFlash(c, flashError, "Could not load the product. Please try again later.")
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	s.render(c, http.StatusOK, "products/form", gin.H{
		"Product": *product,
	})
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.notFound(c)
		return
	}
	s.saveProduct(c, id)
}

// saveProduct handles both create (id == 0) and update form posts.
func (s *Server) saveProduct(c *gin.Context, id int64) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		s.render(c, http.StatusBadRequest, "products/form", gin.H{
			"Product": form.toProduct(id),
			"Error":   "Please fill in all fields with valid values.",
		})
		return
	}

	image, err := readImageFile(c)
	if err != nil {
		s.render(c, http.StatusBadRequest, "products/form", gin.H{
			"Product": form.toProduct(id),
			"Error":   "Could not read the uploaded image.",
		})
		return
	}

	product := form.toProduct(id)
	if id == 0 {
		_, err = s.api.CreateProduct(c.Request.Context(), product, image)
	} else {
		_, err = s.api.UpdateProduct(c.Request.Context(), product, image)
	}
	if err != nil {
		msg := "Could not save the product. Please try again."
		if shopapi.IsValidation(err) {
			msg = "The product was rejected: " + err.Error()
		}
		s.render(c, http.StatusOK, "products/form", gin.H{
			"Product": product,
			"Error":   msg,
		})
		return
	}

	if id == 0 {
		addFlash(c, flashSuccess, "Product created.")
	} else {
		addFlash(c, flashSuccess, "Product updated.")
	}
	c.Redirect(http.StatusSeeOther, "/products")
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.notFound(c)
		return
	}

	if err := s.api.DeleteProduct(c.Request.Context(), id); err != nil {
		addFlash(c, flashError, "Could not delete the product.")
	} else {
		addFlash(c, flashSuccess, "Product deleted.")
	}
	c.Redirect(http.StatusSeeOther, "/products")
}

// readImageFile extracts the optional image upload from the form. A missing
// file is not an error.
func readImageFile(c *gin.Context) (*shopapi.ProductImage, error) {
	header, err := c.FormFile("imageFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	upload, err := readUpload(header)
	if err != nil {
		return nil, err
	}
	return &shopapi.ProductImage{
		FileName:    upload.Name,
		ContentType: upload.ContentType,
		Data:        upload.Data,
	}, nil
}

// uploadedFile is a form file read into memory.
type uploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func readUpload(header *multipart.FileHeader) (*uploadedFile, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &uploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
