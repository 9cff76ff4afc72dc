package queries

import (
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderColumns is the projection every order read model is built from.
const orderColumns = `
	id, number, customer_id, items, address,
	contact_phone, contact_alternate_phone,
	subtotal, delivery_fee, tax, discount, total, coupon_code,
	status, payment_method, payment_status, paid_at,
	courier_id, estimated_delivery_time, actual_delivery_time, delivery_notes,
	special_instructions, history, created_at`

// activeCourierStatuses are the statuses in which an order occupies its courier.
var activeCourierStatuses = []string{
	order.Confirmed.String(),
	order.Preparing.String(),
	order.OutForDelivery.String(),
}

type OrderItemView struct {
	ProductID   kernel.UUID  `json:"productId"`
	Name        string       `json:"name"`
	Quantity    int          `json:"quantity"`
	PriceAtTime kernel.Money `json:"priceAtTime"`
	Subtotal    kernel.Money `json:"subtotal"`
}

type AddressView struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
	Landmark     string `json:"landmark,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type StatusChangeView struct {
	Status    string       `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	UpdatedBy *kernel.UUID `json:"updatedBy,omitempty"`
	Notes     string       `json:"notes,omitempty"`
}

// OrderView is the full read model of an order as customers, couriers and
// admins see it.
type OrderView struct {
	ID                    kernel.UUID        `json:"id"`
	Number                string             `json:"orderNumber"`
	CustomerID            kernel.UUID        `json:"customerId"`
	Items                 []OrderItemView    `json:"items"`
	Address               AddressView        `json:"deliveryAddress"`
	ContactPhone          string             `json:"contactPhone"`
	AlternatePhone        string             `json:"alternatePhone,omitempty"`
	Subtotal              kernel.Money       `json:"subtotal"`
	DeliveryFee           kernel.Money       `json:"deliveryFee"`
	Tax                   kernel.Money       `json:"tax"`
	Discount              kernel.Money       `json:"discount"`
	Total                 kernel.Money       `json:"total"`
	FormattedTotal        string             `json:"formattedTotal"`
	CouponCode            string             `json:"couponCode,omitempty"`
	Status                string             `json:"status"`
	PaymentMethod         string             `json:"paymentMethod"`
	PaymentStatus         string             `json:"paymentStatus"`
	PaidAt                *time.Time         `json:"paidAt,omitempty"`
	CourierID             *kernel.UUID       `json:"assignedTo,omitempty"`
	EstimatedDeliveryTime *time.Time         `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time         `json:"actualDeliveryTime,omitempty"`
	DeliveryNotes         string             `json:"deliveryNotes,omitempty"`
	SpecialInstructions   string             `json:"specialInstructions,omitempty"`
	History               []StatusChangeView `json:"statusHistory"`
	CreatedAt             time.Time          `json:"createdAt"`
}

type orderItemDoc struct {
	ProductID   uuid.UUID       `json:"productId"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"priceAtTime"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type statusChangeDoc struct {
	Status    string     `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
	UpdatedBy *uuid.UUID `json:"updatedBy,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

type orderRow struct {
	ID                    uuid.UUID
	Number                string
	CustomerID            uuid.UUID
	Items                 []orderItemDoc `gorm:"serializer:json"`
	Address               AddressView    `gorm:"serializer:json"`
	ContactPhone          string
	ContactAlternatePhone string
	Subtotal              decimal.Decimal
	DeliveryFee           decimal.Decimal
	Tax                   decimal.Decimal
	Discount              decimal.Decimal
	Total                 decimal.Decimal
	CouponCode            string
	Status                string
	PaymentMethod         string
	PaymentStatus         string
	PaidAt                *time.Time
	CourierID             *uuid.UUID
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	DeliveryNotes         string
	SpecialInstructions   string
	History               []statusChangeDoc `gorm:"serializer:json"`
	CreatedAt             time.Time
}

func (r orderRow) view() OrderView {
	items := make([]OrderItemView, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, OrderItemView{
			ProductID:   kernel.UUIDFrom(it.ProductID),
			Name:        it.Name,
			Quantity:    it.Quantity,
			PriceAtTime: amount(it.PriceAtTime),
			Subtotal:    amount(it.Subtotal),
		})
	}

	history := make([]StatusChangeView, 0, len(r.History))
	for _, h := range r.History {
		history = append(history, StatusChangeView{
			Status:    h.Status,
			Timestamp: h.Timestamp,
			UpdatedBy: optionalID(h.UpdatedBy),
			Notes:     h.Notes,
		})
	}

	total := amount(r.Total)
	return OrderView{
		ID:                    kernel.UUIDFrom(r.ID),
		Number:                r.Number,
		CustomerID:            kernel.UUIDFrom(r.CustomerID),
		Items:                 items,
		Address:               r.Address,
		ContactPhone:          r.ContactPhone,
		AlternatePhone:        r.ContactAlternatePhone,
		Subtotal:              amount(r.Subtotal),
		DeliveryFee:           amount(r.DeliveryFee),
		Tax:                   amount(r.Tax),
		Discount:              amount(r.Discount),
		Total:                 total,
		FormattedTotal:        total.Format(),
		CouponCode:            r.CouponCode,
		Status:                r.Status,
		PaymentMethod:         r.PaymentMethod,
		PaymentStatus:         r.PaymentStatus,
		PaidAt:                r.PaidAt,
		CourierID:             optionalID(r.CourierID),
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		ActualDeliveryTime:    r.ActualDeliveryTime,
		DeliveryNotes:         r.DeliveryNotes,
		SpecialInstructions:   r.SpecialInstructions,
		History:               history,
		CreatedAt:             r.CreatedAt,
	}
}

func optionalID(id *uuid.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := kernel.UUIDFrom(*id)
	return &v
}

// selectOrders runs a query projecting orderColumns and maps every row.
func selectOrders(db *gorm.DB, sql string, args ...any) ([]OrderView, error) {
	var rows []orderRow
	if err := db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	return views, nil
}
