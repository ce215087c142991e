package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/app/services"
	"github.com/shashiranjanraj/catalog/pkg/apperr"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) FindAll(ctx context.Context, category string) ([]models.Product, error) {
	args := m.Called(ctx, category)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockRepo) FindByID(ctx context.Context, id string) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, p *models.Product) (string, error) {
	args := m.Called(ctx, p)
	p.ID = primitive.NewObjectID()
	return p.ID.Hex(), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, p models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) bool {
	return m.Called(ctx, key, dest).Bool(0)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Del(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

var ctx = context.Background()

func TestListMapsStatus(t *testing.T) {
	repo := &mockRepo{}
	repo.On("FindAll", ctx, "").Return([]models.Product{
		{ID: primitive.NewObjectID(), Name: "USB-C Cable", Stock: 500, Category: "Accessories"},
		{ID: primitive.NewObjectID(), Name: "Laptop Stand", Stock: 8, Category: "Accessories"},
		{ID: primitive.NewObjectID(), Name: "Webcam HD", Stock: 0, Category: "Electronics"},
	}, nil)

	svc := services.NewProductService(repo, nil, time.Minute)
	out, err := svc.List(ctx, "")
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, "in-stock", out[0].Status)
	assert.Equal(t, "low-stock", out[1].Status)
	assert.Equal(t, "out-of-stock", out[2].Status)
	assert.Len(t, out[0].ID, 24)
	repo.AssertExpectations(t)
}

func TestListUsesCache(t *testing.T) {
	repo := &mockRepo{}
	store := &mockCache{}
	store.On("Get", ctx, "products:Electronics", mock.Anything).Return(true).Once()

	svc := services.NewProductService(repo, store, time.Minute)
	_, err := svc.List(ctx, "Electronics")

	require.NoError(t, err)
	repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestListFillsCacheOnMiss(t *testing.T) {
	repo := &mockRepo{}
	repo.On("FindAll", ctx, "").Return([]models.Product{{Name: "Wireless Mouse", Stock: 150}}, nil)
	store := &mockCache{}
	store.On("Get", ctx, "products:all", mock.Anything).Return(false)
	store.On("Set", ctx, "products:all", mock.Anything, 30*time.Second).Return(errors.New("redis down"))

	svc := services.NewProductService(repo, store, 30*time.Second)
	out, err := svc.List(ctx, "")

	require.NoError(t, err, "cache failures must not fail the request")
	assert.Len(t, out, 1)
	store.AssertExpectations(t)
}

func TestListPropagatesRepoError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("FindAll", ctx, "").Return(nil, apperr.Internal("Database error occurred"))

	_, err := services.NewProductService(repo, nil, time.Minute).List(ctx, "")
	assert.Equal(t, 500, apperr.HTTPStatus(err))
}

func TestCreateValidates(t *testing.T) {
	invalid := []services.ProductInput{
		{Name: "", Category: "Electronics"},
		{Name: "Mouse", Category: ""},
		{Name: "Mouse", Category: "Electronics", Price: -1},
		{Name: "Mouse", Category: "Electronics", Stock: -1},
	}
	for _, in := range invalid {
		repo := &mockRepo{}
		_, err := services.NewProductService(repo, nil, time.Minute).Create(ctx, in)
		assert.Equal(t, 400, apperr.HTTPStatus(err), "%+v", in)
		assert.Equal(t, "Invalid product data", apperr.Message(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestCreateInvalidatesLists(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return("", nil)
	store := &mockCache{}
	store.On("Del", ctx, []string{"products:all", "products:Electronics"}).Return(nil)

	svc := services.NewProductService(repo, store, time.Minute)
	out, err := svc.Create(ctx, services.ProductInput{Name: "Headset", Price: 59.5, Stock: 4, Category: "Electronics"})

	require.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID.Hex(), out.ID)
	assert.Equal(t, "low-stock", out.Status)
	store.AssertExpectations(t)
}

func TestUpdate(t *testing.T) {
	id := primitive.NewObjectID()
	in := services.ProductInput{Name: "Laptop Stand", Price: 39.99, Stock: 20, Category: "Office"}

	t.Run("missing product", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("FindByID", ctx, id.Hex()).Return(models.Product{}, apperr.NotFound("Product not found"))

		_, err := services.NewProductService(repo, nil, time.Minute).Update(ctx, id.Hex(), in)
		assert.True(t, apperr.IsNotFound(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("moves category", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("FindByID", ctx, id.Hex()).Return(models.Product{ID: id, Category: "Accessories"}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(p models.Product) bool {
			return p.ID == id && p.Category == "Office" && p.Stock == 20
		})).Return(nil)
		store := &mockCache{}
		store.On("Del", ctx, []string{"products:all", "products:Accessories", "products:Office"}).Return(nil)

		out, err := services.NewProductService(repo, store, time.Minute).Update(ctx, id.Hex(), in)
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), out.ID)
		assert.Equal(t, "in-stock", out.Status)
		repo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		_, err := services.NewProductService(&mockRepo{}, nil, time.Minute).Update(ctx, id.Hex(), services.ProductInput{})
		assert.Equal(t, 400, apperr.HTTPStatus(err))
	})
}

func TestDelete(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	t.Run("deletes and invalidates", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("FindByID", ctx, id).Return(models.Product{Category: "Electronics"}, nil)
		repo.On("Delete", ctx, id).Return(nil)
		store := &mockCache{}
		store.On("Del", ctx, []string{"products:all", "products:Electronics"}).Return(nil)

		require.NoError(t, services.NewProductService(repo, store, time.Minute).Delete(ctx, id))
		repo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("FindByID", ctx, id).Return(models.Product{}, apperr.NotFound("Product not found"))

		err := services.NewProductService(repo, nil, time.Minute).Delete(ctx, id)
		assert.True(t, apperr.IsNotFound(err))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
