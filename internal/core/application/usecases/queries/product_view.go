package queries

import (
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const productColumns = `
	id, name, category, price, discount_percentage, discount_valid_until,
	is_active, stock_quantity, created_at`

// ProductView is a catalog entry with its current selling price.
type ProductView struct {
	ID                 kernel.UUID     `json:"id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Price              kernel.Money    `json:"price"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	DiscountValidUntil *time.Time      `json:"discountValidUntil,omitempty"`
	DiscountedPrice    kernel.Money    `json:"discountedPrice"`
	StockQuantity      int             `json:"stockQuantity"`
	InStock            bool            `json:"inStock"`
	CreatedAt          time.Time       `json:"createdAt"`
}

type productRow struct {
	ID                 uuid.UUID
	Name               string
	Category           string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountValidUntil *time.Time
	IsActive           bool
	StockQuantity      int
	CreatedAt          time.Time
}

func (r productRow) product() (*product.Product, error) {
	return product.RestoreProduct(
		kernel.UUIDFrom(r.ID),
		r.Name,
		kernel.Category(r.Category),
		amount(r.Price),
		product.Discount{Percentage: r.DiscountPercentage, ValidUntil: r.DiscountValidUntil},
		r.IsActive,
		r.StockQuantity,
	)
}

func (r productRow) view(now time.Time) (ProductView, error) {
	p, err := r.product()
	if err != nil {
		return ProductView{}, err
	}
	d := p.Discount()
	return ProductView{
		ID:                 p.ID(),
		Name:               p.Name(),
		Category:           string(p.Category()),
		Price:              p.Price(),
		DiscountPercentage: d.Percentage,
		DiscountValidUntil: d.ValidUntil,
		DiscountedPrice:    p.DiscountedPrice(now),
		StockQuantity:      p.StockQuantity(),
		InStock:            p.IsActive() && p.InStock(),
		CreatedAt:          r.CreatedAt,
	}, nil
}
