package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

const productsPath = "/products"

// ProductImage is an optional image attached to a product create/update.
type ProductImage struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ListProducts returns the full catalogue.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	body, status, err := c.doJSON(ctx, http.MethodGet, productsPath, nil)
	if err != nil {
		c.logErr("list products", err)
		return nil, err
	}
	if status >= 400 {
		err := statusError(body, status)
		c.logErr("list products", err)
		return nil, err
	}

	var products []Product
	if err := decode(body, &products); err != nil {
		c.logErr("list products", err)
		return nil, err
	}
	return products, nil
}

// GetProduct returns a product by id, or a KindNotFound error.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	body, status, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", productsPath, id), nil)
	if err != nil {
		c.logErr("get product", err)
		return nil, err
	}
	if status >= 400 {
		err := statusError(body, status)
		if !IsNotFound(err) {
			c.logErr("get product", err)
		}
		return nil, err
	}

	var product Product
	if err := decode(body, &product); err != nil {
		c.logErr("get product", err)
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a product. The request is a multipart form so an image
// file can ride along; image may be nil.
func (c *Client) CreateProduct(ctx context.Context, product Product, image *ProductImage) (*Product, error) {
	return c.writeProduct(ctx, http.MethodPost, productsPath, product, image, "create product")
}

// UpdateProduct updates the product identified by product.ID.
func (c *Client) UpdateProduct(ctx context.Context, product Product, image *ProductImage) (*Product, error) {
	path := fmt.Sprintf("%s/%d", productsPath, product.ID)
	return c.writeProduct(ctx, http.MethodPut, path, product, image, "update product")
}

func (c *Client) writeProduct(ctx context.Context, method, path string, product Product, image *ProductImage, op string) (*Product, error) {
	if image != nil && len(image.Data) > MaxUploadSize {
		err := &Error{Kind: KindValidation, Message: fmt.Sprintf("image exceeds maximum upload size of %d bytes", MaxUploadSize)}
		c.logErr(op, err)
		return nil, err
	}

	builder := newFormBuilder().
		field("ProductName", product.ProductName).
		field("Description", product.Description).
		field("Price", strconv.FormatFloat(product.Price, 'f', -1, 64)).
		field("StockAvailable", strconv.Itoa(product.StockAvailable))
	if product.ImageURL != "" {
		builder.field("ImageUrl", product.ImageURL)
	}
	if image != nil {
		builder.file("ImageFile", image.FileName, image.ContentType, image.Data)
	}

	body, contentType, err := builder.close()
	if err != nil {
		c.logErr(op, err)
		return nil, err
	}

	respBody, status, err := c.doMultipart(ctx, method, path, body, contentType)
	if err != nil {
		c.logErr(op, err)
		return nil, err
	}
	if status >= 400 {
		err := statusError(respBody, status)
		c.logErr(op, err)
		return nil, err
	}

	var stored Product
	if err := decode(respBody, &stored); err != nil {
		c.logErr(op, err)
		return nil, err
	}
	if stored.ID == 0 {
		stored = product
	}
	return &stored, nil
}

// DeleteProduct deletes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	body, status, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", productsPath, id), nil)
	if err != nil {
		c.logErr("delete product", err)
		return err
	}
	if status >= 400 {
		err := statusError(body, status)
		c.logErr("delete product", err)
		return err
	}
	return nil
}
