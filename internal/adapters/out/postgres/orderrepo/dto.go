// Package orderrepo persists orders as document-shaped rows: lines, address
// and status history are JSON columns next to the scalar fields the queries
// filter on.
package orderrepo

import (
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number                string          `gorm:"type:varchar(40);uniqueIndex;not null"`
	CustomerID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Items                 []ItemDTO       `gorm:"serializer:json;type:jsonb;not null"`
	Address               AddressDTO      `gorm:"serializer:json;type:jsonb;not null"`
	ContactPhone          string          `gorm:"type:varchar(32);not null"`
	ContactAlternatePhone string          `gorm:"type:varchar(32)"`
	Subtotal              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax                   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total                 decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CouponID              *uuid.UUID      `gorm:"type:uuid;index"`
	CouponCode            string          `gorm:"type:varchar(20)"`
	SpecialInstructions   string          `gorm:"type:text"`
	Status                string          `gorm:"type:varchar(32);not null;index"`
	PaymentMethod         string          `gorm:"type:varchar(32);not null"`
	PaymentStatus         string          `gorm:"type:varchar(32);not null"`
	TransactionID         string          `gorm:"type:varchar(128)"`
	PaidAt                *time.Time
	CourierID             *uuid.UUID `gorm:"type:uuid;index"`
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	DeliveryNotes         string            `gorm:"type:text"`
	History               []StatusChangeDTO `gorm:"serializer:json;type:jsonb;not null"`
	CreatedAt             time.Time         `gorm:"not null;index"`
	UpdatedAt             time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// mutableColumns are rewritten by Update; everything else is frozen at checkout.
var mutableColumns = []string{
	"status", "payment_status", "transaction_id", "paid_at",
	"courier_id", "estimated_delivery_time", "actual_delivery_time", "delivery_notes",
	"history", "updated_at",
}

type ItemDTO struct {
	ProductID   uuid.UUID       `json:"productId"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"priceAtTime"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type AddressDTO struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
	Landmark     string `json:"landmark,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type StatusChangeDTO struct {
	Status    string     `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
	UpdatedBy *uuid.UUID `json:"updatedBy,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, ItemDTO{
			ProductID:   it.ProductID.Raw(),
			Name:        it.Name,
			Quantity:    it.Quantity,
			PriceAtTime: it.PriceAtTime.Decimal(),
			Subtotal:    it.Subtotal.Decimal(),
		})
	}

	entries := o.History().Entries()
	history := make([]StatusChangeDTO, 0, len(entries))
	for _, e := range entries {
		var by *uuid.UUID
		if e.UpdatedBy != nil {
			raw := e.UpdatedBy.Raw()
			by = &raw
		}
		history = append(history, StatusChangeDTO{
			Status:    e.Status.String(),
			Timestamp: e.Timestamp,
			UpdatedBy: by,
			Notes:     e.Notes,
		})
	}

	a := o.Address()
	p := o.Pricing()
	pay := o.Payment()
	d := o.Delivery()

	dto := OrderDTO{
		ID:         o.ID().Raw(),
		Number:     o.Number(),
		CustomerID: o.CustomerID().Raw(),
		Items:      items,
		Address: AddressDTO{
			Street:       a.Street,
			City:         a.City,
			State:        a.State,
			ZipCode:      a.ZipCode,
			Country:      a.Country,
			Landmark:     a.Landmark,
			Instructions: a.Instructions,
		},
		ContactPhone:          o.Contact().Phone,
		ContactAlternatePhone: o.Contact().AlternatePhone,
		Subtotal:              p.Subtotal.Decimal(),
		DeliveryFee:           p.DeliveryFee.Decimal(),
		Tax:                   p.Tax.Decimal(),
		Discount:              p.Discount.Decimal(),
		Total:                 p.Total.Decimal(),
		SpecialInstructions:   o.SpecialInstructions(),
		Status:                o.Status().String(),
		PaymentMethod:         string(pay.Method),
		PaymentStatus:         string(pay.Status),
		TransactionID:         pay.TransactionID,
		PaidAt:                pay.PaidAt,
		EstimatedDeliveryTime: d.EstimatedTime,
		ActualDeliveryTime:    d.ActualDeliveryTime,
		DeliveryNotes:         d.Notes,
		History:               history,
		CreatedAt:             o.CreatedAt(),
	}

	if ref := o.Coupon(); ref != nil {
		couponID := ref.CouponID.Raw()
		dto.CouponID = &couponID
		dto.CouponCode = ref.Code
	}
	if d.AssignedTo != nil {
		courierID := d.AssignedTo.Raw()
		dto.CourierID = &courierID
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		price, err := kernel.NewMoney(it.PriceAtTime)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(kernel.UUIDFrom(it.ProductID), it.Name, it.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	pricing, err := pricingOf(dto)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, h := range dto.History {
		s, parseErr := order.ParseStatus(h.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		var by *kernel.UUID
		if h.UpdatedBy != nil {
			id := kernel.UUIDFrom(*h.UpdatedBy)
			by = &id
		}
		history = append(history, order.StatusChange{Status: s, Timestamp: h.Timestamp, UpdatedBy: by, Notes: h.Notes})
	}

	var ref *order.CouponRef
	if dto.CouponID != nil {
		ref = &order.CouponRef{CouponID: kernel.UUIDFrom(*dto.CouponID), Code: dto.CouponCode}
	}

	var assigned *kernel.UUID
	if dto.CourierID != nil {
		id := kernel.UUIDFrom(*dto.CourierID)
		assigned = &id
	}

	draft := order.Draft{
		Number:     dto.Number,
		CustomerID: kernel.UUIDFrom(dto.CustomerID),
		Items:      items,
		Address: order.DeliveryAddress{
			Street:       dto.Address.Street,
			City:         dto.Address.City,
			State:        dto.Address.State,
			ZipCode:      dto.Address.ZipCode,
			Country:      dto.Address.Country,
			Landmark:     dto.Address.Landmark,
			Instructions: dto.Address.Instructions,
		},
		Contact:             order.Contact{Phone: dto.ContactPhone, AlternatePhone: dto.ContactAlternatePhone},
		Pricing:             pricing,
		PaymentMethod:       order.PaymentMethod(dto.PaymentMethod),
		Coupon:              ref,
		SpecialInstructions: dto.SpecialInstructions,
	}

	return order.RestoreOrder(
		kernel.UUIDFrom(dto.ID),
		draft,
		status,
		order.PaymentInfo{
			Method:        order.PaymentMethod(dto.PaymentMethod),
			Status:        order.PaymentStatus(dto.PaymentStatus),
			TransactionID: dto.TransactionID,
			PaidAt:        dto.PaidAt,
		},
		order.DeliveryInfo{
			AssignedTo:         assigned,
			EstimatedTime:      dto.EstimatedDeliveryTime,
			ActualDeliveryTime: dto.ActualDeliveryTime,
			Notes:              dto.DeliveryNotes,
		},
		history,
		dto.CreatedAt,
	)
}

func pricingOf(dto OrderDTO) (order.Pricing, error) {
	amounts := []decimal.Decimal{dto.Subtotal, dto.DeliveryFee, dto.Tax, dto.Discount, dto.Total}
	money := make([]kernel.Money, len(amounts))
	for i, a := range amounts {
		m, err := kernel.NewMoney(a)
		if err != nil {
			return order.Pricing{}, err
		}
		money[i] = m
	}
	return order.Pricing{
		Subtotal:    money[0],
		DeliveryFee: money[1],
		Tax:         money[2],
		Discount:    money[3],
		Total:       money[4],
	}, nil
}
