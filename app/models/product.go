package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Stock status labels reported by Product.Status.
const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// lowStockThreshold is the highest stock level still reported as low.
const lowStockThreshold = 10

// Product represents a product in the catalogue.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name"          json:"name"`
	Description string             `bson:"description"   json:"description"`
	Price       float64            `bson:"price"         json:"price"`
	Stock       int                `bson:"stock"         json:"stock"`
	Category    string             `bson:"category"      json:"category"`
}

// Status classifies the current stock level.
func (p Product) Status() string {
	switch {
	case p.Stock > lowStockThreshold:
		return StatusInStock
	case p.Stock > 0:
		return StatusLowStock
	default:
		return StatusOutOfStock
	}
}

func (p Product) IsAvailable() bool { return p.Stock > 0 }

func (p Product) CanFulfill(quantity int) bool { return p.Stock >= quantity }

// ReduceStock removes quantity units. The product is unchanged on error.
func (p *Product) ReduceStock(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if p.Stock < quantity {
		return ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

func (p *Product) IncreaseStock(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	p.Stock += quantity
	return nil
}
