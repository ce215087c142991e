package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/pkg/apperr"
	"github.com/shashiranjanraj/catalog/pkg/logger"
	"github.com/shashiranjanraj/catalog/pkg/metrics"
)

// ProductsCollection is the collection shared with the seeder.
const ProductsCollection = "products"

const (
	msgNotFound = "Product not found"
	msgDBError  = "Database error occurred"
)

// ProductRepository is the persistence contract for products.
type ProductRepository interface {
	FindAll(ctx context.Context, category string) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, product *models.Product) (string, error)
	Update(ctx context.Context, product models.Product) error
	Delete(ctx context.Context, id string) error
}

// MongoProductRepository stores products in MongoDB.
type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(ProductsCollection)}
}

// FindAll returns every product, or only those in category when it is set.
func (r *MongoProductRepository) FindAll(ctx context.Context, category string) (products []models.Product, err error) {
	defer metrics.ObserveDBOperation("find", time.Now(), &err)

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, dbError(ctx, "find", err)
	}

	products = []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, dbError(ctx, "find", err)
	}

	logger.WithCtx(ctx).Debug("found products", "count", len(products), "category", category)
	return products, nil
}

// FindByID looks up a product by its hex ObjectID. Malformed ids are
// reported as not found.
func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (product models.Product, err error) {
	defer metrics.ObserveDBOperation("find_one", time.Now(), &err)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, apperr.NotFound(msgNotFound)
	}

	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, apperr.NotFound(msgNotFound)
	}
	if err != nil {
		return models.Product{}, dbError(ctx, "find_one", err)
	}
	return product, nil
}

// Create inserts product, stores the generated id on it and returns it as hex.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) (id string, err error) {
	defer metrics.ObserveDBOperation("insert", time.Now(), &err)

	product.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return "", dbError(ctx, "insert", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", apperr.Internal("Failed to create product")
	}
	product.ID = oid

	logger.WithCtx(ctx).Info("created product", "id", oid.Hex())
	return oid.Hex(), nil
}

// Update replaces every mutable field of the stored product.
func (r *MongoProductRepository) Update(ctx context.Context, product models.Product) (err error) {
	defer metrics.ObserveDBOperation("update", time.Now(), &err)

	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"stock":       product.Stock,
		"category":    product.Category,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return dbError(ctx, "update", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound(msgNotFound)
	}

	logger.WithCtx(ctx).Info("updated product", "id", product.ID.Hex())
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id string) (err error) {
	defer metrics.ObserveDBOperation("delete", time.Now(), &err)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound(msgNotFound)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return dbError(ctx, "delete", err)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound(msgNotFound)
	}

	logger.WithCtx(ctx).Info("deleted product", "id", id)
	return nil
}

// dbError logs the driver error and hides it behind a generic 500.
func dbError(ctx context.Context, op string, err error) error {
	logger.WithCtx(ctx).Error("mongodb operation failed", "operation", op, "error", err)
	return apperr.Internal(msgDBError)
}
