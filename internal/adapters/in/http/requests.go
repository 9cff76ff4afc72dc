package http

import (
	"time"

	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=50"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=50"`
}

type couponCodeRequest struct {
	Code string `json:"code" validate:"required,min=3,max=20"`
}

type validateCouponRequest struct {
	Code        string        `json:"code" validate:"required,min=3,max=20"`
	OrderAmount *kernel.Money `json:"orderAmount"`
}

type addressRequest struct {
	Street       string `json:"street" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	ZipCode      string `json:"zipCode" validate:"required"`
	Country      string `json:"country"`
	Landmark     string `json:"landmark"`
	Instructions string `json:"instructions"`
}

type contactRequest struct {
	Phone          string `json:"phone" validate:"required"`
	AlternatePhone string `json:"alternatePhone"`
}

type checkoutRequest struct {
	DeliveryAddress     addressRequest `json:"deliveryAddress"`
	ContactInfo         contactRequest `json:"contactInfo"`
	PaymentMethod       string         `json:"paymentMethod" validate:"omitempty,oneof=cash-on-delivery online card"`
	SpecialInstructions string         `json:"specialInstructions" validate:"max=500"`
}

func (r checkoutRequest) toDomain() (order.DeliveryAddress, order.Contact, error) {
	a := r.DeliveryAddress
	address, err := order.NewDeliveryAddress(a.Street, a.City, a.State, a.ZipCode, a.Country, a.Landmark, a.Instructions)
	if err != nil {
		return order.DeliveryAddress{}, order.Contact{}, err
	}
	contact, err := order.NewContact(r.ContactInfo.Phone, r.ContactInfo.AlternatePhone)
	if err != nil {
		return order.DeliveryAddress{}, order.Contact{}, err
	}
	return address, contact, nil
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=preparing out-for-delivery cancelled"`
	Notes  string `json:"notes" validate:"max=500"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type assignCourierRequest struct {
	DeliveryBoyID string `json:"deliveryBoyId" validate:"required,uuid"`
}

type deliveryNotesRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

type availabilityRequest struct {
	Availability string `json:"availability" validate:"required,oneof=available offline"`
}

type createCourierRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Name   string `json:"name" validate:"required,max=100"`
	Phone  string `json:"phone" validate:"required,e164"`
}

type productDiscountRequest struct {
	Percentage decimal.Decimal `json:"percentage"`
	ValidUntil *time.Time      `json:"validUntil"`
}

type createProductRequest struct {
	Name          string                  `json:"name" validate:"required,max=100"`
	Category      string                  `json:"category" validate:"required"`
	Price         kernel.Money            `json:"price"`
	StockQuantity int                     `json:"stockQuantity" validate:"min=0"`
	Discount      *productDiscountRequest `json:"discount"`
}

func (r createProductRequest) discount() *product.Discount {
	if r.Discount == nil {
		return nil
	}
	return &product.Discount{Percentage: r.Discount.Percentage, ValidUntil: r.Discount.ValidUntil}
}

type createCouponRequest struct {
	Code                 string          `json:"code" validate:"required,min=3,max=20"`
	Description          string          `json:"description" validate:"max=200"`
	Type                 string          `json:"type" validate:"required,oneof=percentage fixed"`
	Value                decimal.Decimal `json:"value"`
	MinimumOrderValue    kernel.Money    `json:"minimumOrderValue"`
	MaximumDiscount      *kernel.Money   `json:"maximumDiscount"`
	UsageLimit           *int            `json:"usageLimit" validate:"omitempty,min=1"`
	UserUsageLimit       int             `json:"userUsageLimit" validate:"min=0"`
	ValidFrom            time.Time       `json:"validFrom" validate:"required"`
	ValidTo              time.Time       `json:"validTo" validate:"required"`
	ApplicableCategories []string        `json:"applicableCategories"`
	ExcludedProducts     []string        `json:"excludedProducts" validate:"dive,uuid"`
	UserEligibility      string          `json:"userEligibility" validate:"omitempty,oneof=all new premium"`
}

func (r createCouponRequest) terms() (coupon.Terms, error) {
	categories := make([]kernel.Category, 0, len(r.ApplicableCategories))
	for _, s := range r.ApplicableCategories {
		cat, err := kernel.ParseCategory(s)
		if err != nil {
			return coupon.Terms{}, err
		}
		categories = append(categories, cat)
	}
	excluded := make([]kernel.UUID, 0, len(r.ExcludedProducts))
	for _, s := range r.ExcludedProducts {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return coupon.Terms{}, err
		}
		excluded = append(excluded, id)
	}
	return coupon.Terms{
		Code:                 r.Code,
		Description:          r.Description,
		Type:                 coupon.DiscountType(r.Type),
		Value:                r.Value,
		MinimumOrderValue:    r.MinimumOrderValue,
		MaximumDiscount:      r.MaximumDiscount,
		UsageLimit:           r.UsageLimit,
		UserUsageLimit:       r.UserUsageLimit,
		ValidFrom:            r.ValidFrom,
		ValidTo:              r.ValidTo,
		ApplicableCategories: categories,
		ExcludedProducts:     excluded,
		UserEligibility:      coupon.Eligibility(r.UserEligibility),
	}, nil
}
