package queries

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItemView struct {
	ID          kernel.UUID  `json:"id"`
	ProductID   kernel.UUID  `json:"productId"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Quantity    int          `json:"quantity"`
	PriceAtTime kernel.Money `json:"priceAtTime"`
	Subtotal    kernel.Money `json:"subtotal"`
	Available   bool         `json:"available"`
}

type CartCouponView struct {
	Code           string       `json:"code"`
	DiscountAmount kernel.Money `json:"discountAmount"`
	AppliedAt      *time.Time   `json:"appliedAt,omitempty"`
}

type CartView struct {
	Items       []CartItemView  `json:"items"`
	TotalItems  int             `json:"totalItems"`
	Subtotal    kernel.Money    `json:"subtotal"`
	Discount    kernel.Money    `json:"discount"`
	FinalAmount kernel.Money    `json:"finalAmount"`
	Coupon      *CartCouponView `json:"appliedCoupon,omitempty"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

type cartItemDoc struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"productId"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"priceAtTime"`
}

type cartRow struct {
	Items           []cartItemDoc `gorm:"serializer:json"`
	CouponCode      string
	CouponDiscount  decimal.Decimal
	CouponAppliedAt *time.Time
	TotalItems      int
	Subtotal        decimal.Decimal
	FinalAmount     decimal.Decimal
	UpdatedAt       time.Time
}

type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []cartRow
	err := db.Raw(`
		SELECT items, coupon_code, coupon_discount, coupon_applied_at,
			total_items, subtotal, final_amount, updated_at
		FROM carts
		WHERE user_id = ?
	`, query.userID.Raw()).Scan(&rows).Error
	if err != nil {
		return CartView{}, err
	}
	if len(rows) == 0 {
		return CartView{Items: []CartItemView{}}, nil
	}
	row := rows[0]

	ids := make([]uuid.UUID, 0, len(row.Items))
	for _, it := range row.Items {
		ids = append(ids, it.ProductID)
	}
	catalog := make(map[uuid.UUID]productRow, len(ids))
	if len(ids) > 0 {
		var products []productRow
		err = db.Raw(`SELECT `+productColumns+` FROM products WHERE id IN ?`, ids).Scan(&products).Error
		if err != nil {
			return CartView{}, err
		}
		for _, p := range products {
			catalog[p.ID] = p
		}
	}

	items := make([]CartItemView, 0, len(row.Items))
	for _, it := range row.Items {
		price := amount(it.PriceAtTime)
		v := CartItemView{
			ID:          kernel.UUIDFrom(it.ID),
			ProductID:   kernel.UUIDFrom(it.ProductID),
			Quantity:    it.Quantity,
			PriceAtTime: price,
			Subtotal:    price.Times(it.Quantity).Round(),
		}
		if p, ok := catalog[it.ProductID]; ok {
			v.Name = p.Name
			v.Category = p.Category
			v.Available = p.IsActive && p.StockQuantity >= it.Quantity
		}
		items = append(items, v)
	}

	view := CartView{
		Items:       items,
		TotalItems:  row.TotalItems,
		Subtotal:    amount(row.Subtotal),
		Discount:    amount(row.CouponDiscount),
		FinalAmount: amount(row.FinalAmount),
		UpdatedAt:   &row.UpdatedAt,
	}
	if row.CouponCode != "" {
		view.Coupon = &CartCouponView{
			Code:           row.CouponCode,
			DiscountAmount: view.Discount,
			AppliedAt:      row.CouponAppliedAt,
		}
	}
	return view, nil
}
