// Package productrepo persists the catalog read model and performs the
// conditional stock updates checkout and cancellation rely on.
package productrepo

import (
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is a row of the products table.
type ProductDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name               string          `gorm:"type:varchar(255);not null"`
	Category           string          `gorm:"type:varchar(32);not null;index"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	DiscountValidUntil *time.Time
	IsActive           bool `gorm:"not null;index"`
	StockQuantity      int  `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	d := p.Discount()
	return ProductDTO{
		ID:                 p.ID().Raw(),
		Name:               p.Name(),
		Category:           p.Category().String(),
		Price:              p.Price().Decimal(),
		DiscountPercentage: d.Percentage,
		DiscountValidUntil: d.ValidUntil,
		IsActive:           p.IsActive(),
		StockQuantity:      p.StockQuantity(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(
		kernel.UUIDFrom(dto.ID),
		dto.Name,
		kernel.Category(dto.Category),
		price,
		product.Discount{Percentage: dto.DiscountPercentage, ValidUntil: dto.DiscountValidUntil},
		dto.IsActive,
		dto.StockQuantity,
	)
}
