package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shashiranjanraj/catalog/app/controllers"
	"github.com/shashiranjanraj/catalog/app/routes"
	"github.com/shashiranjanraj/catalog/app/services"
	"github.com/shashiranjanraj/catalog/pkg/apperr"
	"github.com/shashiranjanraj/catalog/pkg/router"
)

const validID = "65f0a1b2c3d4e5f601234567"

type mockService struct{ mock.Mock }

func (m *mockService) List(ctx context.Context, category string) ([]services.ProductResponse, error) {
	args := m.Called(category)
	out, _ := args.Get(0).([]services.ProductResponse)
	return out, args.Error(1)
}

func (m *mockService) Get(ctx context.Context, id string) (services.ProductResponse, error) {
	args := m.Called(id)
	return args.Get(0).(services.ProductResponse), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, in services.ProductInput) (services.ProductResponse, error) {
	args := m.Called(in)
	return args.Get(0).(services.ProductResponse), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id string, in services.ProductInput) (services.ProductResponse, error) {
	args := m.Called(id, in)
	return args.Get(0).(services.ProductResponse), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

func do(svc *mockService, method, target, body string) *httptest.ResponseRecorder {
	r := router.New()
	routes.RegisterAPI(r, controllers.NewProductController(svc))

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(&mockService{}, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"product-catalog"}`, rec.Body.String())
}

func TestIndexPassesCategory(t *testing.T) {
	svc := &mockService{}
	svc.On("List", "Accessories").Return([]services.ProductResponse{
		{ID: validID, Name: "Laptop Stand", Price: 45, Stock: 8, Category: "Accessories", Status: "low-stock"},
	}, nil)

	rec := do(svc, http.MethodGet, "/products?category=Accessories", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"`+validID+`","name":"Laptop Stand","description":"","price":45,"stock":8,"category":"Accessories","status":"low-stock"}]`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestIndexEmptyIsArray(t *testing.T) {
	svc := &mockService{}
	svc.On("List", "").Return([]services.ProductResponse{}, nil)

	rec := do(svc, http.MethodGet, "/products", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestShow(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", validID).Return(services.ProductResponse{}, apperr.NotFound("Product not found"))

	rec := do(svc, http.MethodGet, "/products/"+validID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":404,"message":"Product not found"}`, rec.Body.String())
}

func TestShowRejectsMalformedID(t *testing.T) {
	svc := &mockService{}
	rec := do(svc, http.MethodGet, "/products/not-hex", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything)
}

func TestStore(t *testing.T) {
	svc := &mockService{}
	in := services.ProductInput{Name: "Headset", Description: "Wired", Price: 19.99, Stock: 30, Category: "Electronics"}
	svc.On("Create", in).Return(services.ProductResponse{ID: validID, Name: "Headset", Status: "in-stock"}, nil)

	rec := do(svc, http.MethodPost, "/products", `{"name":"Headset","description":"Wired","price":19.99,"stock":30,"category":"Electronics"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"`+validID+`"`)
	svc.AssertExpectations(t)
}

func TestStoreBadJSON(t *testing.T) {
	svc := &mockService{}
	rec := do(svc, http.MethodPost, "/products", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON")
	svc.AssertNotCalled(t, "Create", mock.Anything)
}

func TestStoreInvalidData(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything).Return(services.ProductResponse{}, apperr.BadRequest("Invalid product data"))

	rec := do(svc, http.MethodPost, "/products", `{"name":"","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"code":400,"message":"Invalid product data"}`, rec.Body.String())
}

func TestUpdate(t *testing.T) {
	svc := &mockService{}
	in := services.ProductInput{Name: "Webcam HD", Price: 59.99, Stock: 5, Category: "Electronics"}
	svc.On("Update", validID, in).Return(services.ProductResponse{ID: validID, Name: "Webcam HD", Stock: 5}, nil)

	rec := do(svc, http.MethodPut, "/products/"+validID, `{"name":"Webcam HD","price":59.99,"stock":5,"category":"Electronics"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestDestroy(t *testing.T) {
	svc := &mockService{}
	svc.On("Delete", validID).Return(nil)

	rec := do(svc, http.MethodDelete, "/products/"+validID, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully"}`, rec.Body.String())
}
