package postgres

import (
	"meatdelivery/internal/adapters/out/postgres/cartrepo"
	"meatdelivery/internal/adapters/out/postgres/counterrepo"
	"meatdelivery/internal/adapters/out/postgres/couponrepo"
	"meatdelivery/internal/adapters/out/postgres/courierrepo"
	"meatdelivery/internal/adapters/out/postgres/orderrepo"
	"meatdelivery/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Tables lists the relational schema in dependency order.
func Tables() []any {
	return []any{
		&productrepo.ProductDTO{},
		&couponrepo.CouponDTO{},
		&couponrepo.CouponUsageDTO{},
		&cartrepo.CartDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&counterrepo.OrderNumberDTO{},
	}
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Tables()...)
}
