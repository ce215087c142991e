package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/app/repositories"
	"github.com/shashiranjanraj/catalog/pkg/apperr"
	"github.com/shashiranjanraj/catalog/pkg/cache"
	"github.com/shashiranjanraj/catalog/pkg/logger"
	"github.com/shashiranjanraj/catalog/pkg/validate"
)

const (
	listCachePrefix = "products:"
	listCacheAll    = listCachePrefix + "all"
)

// ProductResponse is the wire shape of a product.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
}

// ProductInput is the body of create and update requests.
type ProductInput struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Category    string  `json:"category"    validate:"required,max=100"`
}

// Valid requires a name and a category; price and stock must not be negative.
func (in ProductInput) Valid() bool {
	return !validate.HasErrors(validate.Struct(in))
}

// ProductService holds the catalogue use cases.
type ProductService struct {
	repo     repositories.ProductRepository
	cache    cache.Store
	cacheTTL time.Duration
}

func NewProductService(repo repositories.ProductRepository, store cache.Store, ttl time.Duration) *ProductService {
	if store == nil {
		store = cache.Disabled()
	}
	return &ProductService{repo: repo, cache: store, cacheTTL: ttl}
}

// List returns all products, or the products of one category.
func (s *ProductService) List(ctx context.Context, category string) ([]ProductResponse, error) {
	log := logger.WithCtx(ctx)
	log.Info("listing products", "category", category)

	key := listKey(category)
	var cached []ProductResponse
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	products, err := s.repo.FindAll(ctx, category)
	if err != nil {
		return nil, err
	}

	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toResponse(p)
	}

	if err := s.cache.Set(ctx, key, out, s.cacheTTL); err != nil {
		log.Warn("cache set failed", "key", key, "error", err)
	}
	return out, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (ProductResponse, error) {
	logger.WithCtx(ctx).Info("getting product", "id", id)

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProductResponse{}, err
	}
	return toResponse(p), nil
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (ProductResponse, error) {
	logger.WithCtx(ctx).Info("creating product", "name", in.Name)

	if !in.Valid() {
		return ProductResponse{}, apperr.BadRequest("Invalid product data")
	}

	p := fromInput(primitive.NilObjectID, in)
	if _, err := s.repo.Create(ctx, &p); err != nil {
		return ProductResponse{}, err
	}

	s.invalidate(ctx, p.Category)
	return toResponse(p), nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (ProductResponse, error) {
	logger.WithCtx(ctx).Info("updating product", "id", id)

	if id == "" || !in.Valid() {
		return ProductResponse{}, apperr.BadRequest("Invalid product data")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProductResponse{}, err
	}

	p := fromInput(existing.ID, in)
	if err := s.repo.Update(ctx, p); err != nil {
		return ProductResponse{}, err
	}

	s.invalidate(ctx, existing.Category, p.Category)
	return toResponse(p), nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	logger.WithCtx(ctx).Info("deleting product", "id", id)

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, existing.Category)
	return nil
}

// invalidate drops the unfiltered list and the list of every given category.
func (s *ProductService) invalidate(ctx context.Context, categories ...string) {
	keys := []string{listCacheAll}
	seen := map[string]bool{}
	for _, c := range categories {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		keys = append(keys, listKey(c))
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		logger.WithCtx(ctx).Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}

func listKey(category string) string {
	if category == "" {
		return listCacheAll
	}
	return listCachePrefix + category
}

func fromInput(id primitive.ObjectID, in ProductInput) models.Product {
	return models.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
	}
}

func toResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Status:      p.Status(),
	}
}
