package seeders

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/catalog/app/models"
)

const (
	// DatabaseName is fixed; the seed command does not read DATABASE_NAME.
	DatabaseName       = "product_catalog"
	ProductsCollection = "products"
	CategoryField      = "category"
	Ascending          = 1

	CompletionMessage = "Database initialized with sample products!"
)

// SampleProducts returns the fixed seed data in insertion order.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse with USB receiver",
			Price:       29.99,
			Stock:       150,
			Category:    "Electronics",
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "RGB mechanical keyboard with blue switches",
			Price:       89.99,
			Stock:       75,
			Category:    "Electronics",
		},
		{
			Name:        "USB-C Cable",
			Description: "High-speed USB-C to USB-C cable, 2 meters",
			Price:       12.99,
			Stock:       500,
			Category:    "Accessories",
		},
		{
			Name:        "Laptop Stand",
			Description: "Adjustable aluminum laptop stand",
			Price:       45.00,
			Stock:       8,
			Category:    "Accessories",
		},
		{
			Name:        "Webcam HD",
			Description: "1080p HD webcam with built-in microphone",
			Price:       69.99,
			Stock:       0,
			Category:    "Electronics",
		},
	}
}

// SelectDatabase returns a handle to the named database. No I/O happens
// until the handle is used.
func SelectDatabase(client *mongo.Client, name string) *mongo.Database {
	return client.Database(name)
}

// InsertProducts writes records as a single ordered InsertMany.
func InsertProducts(ctx context.Context, coll *mongo.Collection, records []models.Product) error {
	docs := make([]interface{}, len(records))
	for i, p := range records {
		docs[i] = p
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

// EnsureIndex creates a single-field index. The server treats a request for
// an identical existing index as success.
func EnsureIndex(ctx context.Context, coll *mongo.Collection, field string, direction int) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: field, Value: direction}},
	})
	if err != nil {
		return fmt.Errorf("create index on %s: %w", field, err)
	}
	return nil
}

// ReportCompletion prints the completion line.
func ReportCompletion(w io.Writer) {
	fmt.Fprintln(w, CompletionMessage)
}

// Seeder populates the catalogue database. The collection is never
// cleared first, so every run appends another five documents.
type Seeder struct {
	client *mongo.Client
	out    io.Writer
}

func NewSeeder(client *mongo.Client, out io.Writer) *Seeder {
	return &Seeder{client: client, out: out}
}

// Run selects the database, runs the registered seeders and only then
// reports completion. Any failure returns before anything is printed.
func (s *Seeder) Run(ctx context.Context) error {
	db := SelectDatabase(s.client, DatabaseName)
	if err := RunAll(ctx, db); err != nil {
		return err
	}
	ReportCompletion(s.out)
	return nil
}

// SeedProducts is the registry entry for the sample catalogue.
func SeedProducts(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ProductsCollection)
	if err := InsertProducts(ctx, coll, SampleProducts()); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := EnsureIndex(ctx, coll, CategoryField, Ascending); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func init() {
	Register(ProductsCollection, SeedProducts)
}
