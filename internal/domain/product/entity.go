package product

import (
	"errors"
	"math"
	"strings"
	"time"
)

const MaxNameLength = 200

// MaxUnits bounds stock and quantities to the INTEGER columns that store them.
const MaxUnits = math.MaxInt32

var (
	ErrEmptyID           = errors.New("product id is required")
	ErrEmptyName         = errors.New("product name is required")
	ErrNameTooLong       = errors.New("product name is too long")
	ErrNegativeStock     = errors.New("stock must not be negative")
	ErrStockTooLarge     = errors.New("stock is too large")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrQuantityTooLarge  = errors.New("quantity is too large")
)

type Product struct {
	id        string
	name      string
	stock     int
	createdAt time.Time
	updatedAt time.Time
}

func NewProduct(id, name string, stock int, now time.Time) (*Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if err := ValidateStock(stock); err != nil {
		return nil, err
	}
	return &Product{
		id:        id,
		name:      name,
		stock:     stock,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a product from storage without validation.
func Reconstruct(id, name string, stock int, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:        id,
		name:      name,
		stock:     stock,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Product) ID() string           { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Stock() int           { return p.stock }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func ValidateQuantity(quantity int) error {
	switch {
	case quantity <= 0:
		return ErrInvalidQuantity
	case quantity > MaxUnits:
		return ErrQuantityTooLarge
	}
	return nil
}

func ValidateStock(stock int) error {
	switch {
	case stock < 0:
		return ErrNegativeStock
	case stock > MaxUnits:
		return ErrStockTooLarge
	}
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
