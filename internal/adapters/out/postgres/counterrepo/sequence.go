// Package counterrepo hands out monotonically increasing order numbers.
package counterrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrderNumberDTO is one issued order number. The key comes from the
// table's identity sequence.
type OrderNumberDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	IssuedAt time.Time `gorm:"not null"`
}

func (OrderNumberDTO) TableName() string {
	return "order_numbers"
}

// GormOrderNumberSequence implements OrderNumberSequence. Every call inserts
// its own row, so concurrent checkouts neither share a value nor wait on each
// other's transactions. A rolled back checkout leaves a gap.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

func (s *GormOrderNumberSequence) Next(ctx context.Context) (int64, error) {
	dto := OrderNumberDTO{IssuedAt: time.Now()}
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}
	return dto.ID, nil
}
