package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/catalog/app/services"
	"github.com/shashiranjanraj/catalog/pkg/response"
)

// maxBodyBytes caps create and update payloads.
const maxBodyBytes = 1 << 20

// ProductService is what the controller needs from the service layer.
type ProductService interface {
	List(ctx context.Context, category string) ([]services.ProductResponse, error)
	Get(ctx context.Context, id string) (services.ProductResponse, error)
	Create(ctx context.Context, in services.ProductInput) (services.ProductResponse, error)
	Update(ctx context.Context, id string, in services.ProductInput) (services.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type ProductController struct {
	service ProductService
}

func NewProductController(service ProductService) *ProductController {
	return &ProductController{service: service}
}

// Index handles GET /products[?category=].
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, products)
}

func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, product)
}

func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if err := decode(w, r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.service.Create(r.Context(), in)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, product)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if err := decode(w, r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, product)
}

func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "Product deleted successfully"})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{"status": "healthy", "service": "product-catalog"})
}

func decode(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
