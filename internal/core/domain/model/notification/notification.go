// Package notification models in-app notifications sent to customers when
// their orders change. Notifications are informational: losing one never
// affects an order.
package notification

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"
	"meatdelivery/internal/pkg/guard"
)

// DefaultTTL is how long a notification stays in the inbox.
const DefaultTTL = 30 * 24 * time.Hour

var ErrNotificationIsNotConstructed = errors.New("notification must be created via New or Restore")

type Type string

const (
	OrderPlaced         Type = "order_placed"
	OrderConfirmed      Type = "order_confirmed"
	OrderPreparing      Type = "order_preparing"
	OrderOutForDelivery Type = "order_out_for_delivery"
	OrderDelivered      Type = "order_delivered"
	OrderCancelled      Type = "order_cancelled"
)

type Category string

const (
	CategoryOrder    Category = "order"
	CategoryDelivery Category = "delivery"
	CategoryPayment  Category = "payment"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type template struct {
	title    string
	message  string
	category Category
	priority Priority
}

var templates = map[Type]template{
	OrderPlaced: {
		title:    "Order Placed Successfully!",
		message:  "Your order #{orderNumber} has been placed successfully. We'll notify you when it's confirmed.",
		category: CategoryOrder,
		priority: PriorityMedium,
	},
	OrderConfirmed: {
		title:    "Order Confirmed",
		message:  "Great news! Your order #{orderNumber} has been confirmed and is being prepared.",
		category: CategoryOrder,
		priority: PriorityHigh,
	},
	OrderPreparing: {
		title:    "Order Being Prepared",
		message:  "Your order #{orderNumber} is now being prepared.",
		category: CategoryOrder,
		priority: PriorityMedium,
	},
	OrderOutForDelivery: {
		title:    "Order Out for Delivery",
		message:  "Your order #{orderNumber} is on its way! Expected delivery in 30-45 minutes.",
		category: CategoryDelivery,
		priority: PriorityHigh,
	},
	OrderDelivered: {
		title:    "Order Delivered!",
		message:  "Your order #{orderNumber} has been delivered successfully. Enjoy your meal!",
		category: CategoryOrder,
		priority: PriorityHigh,
	},
	OrderCancelled: {
		title:    "Order Cancelled",
		message:  "Your order #{orderNumber} has been cancelled. Any payment will be refunded within 2-3 business days.",
		category: CategoryOrder,
		priority: PriorityHigh,
	},
}

// Notification is one inbox entry of a customer.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	typ         Type
	title       string
	message     string
	category    Category
	priority    Priority
	data        map[string]string
	isRead      bool
	readAt      *time.Time
	createdAt   time.Time
	expiresAt   time.Time
	guard       guard.ConstructorGuard
}

// New renders the template of typ with data. Placeholders look like {key};
// every data entry is also kept on the notification.
//
// Example:
//
//	n, err := notification.New(kernel.NewUUID(), customerID, notification.OrderPlaced,
//	    map[string]string{"orderNumber": "MD17184456000000001"}, now)
//	// n.Message(): "Your order #MD17184456000000001 has been placed successfully. ..."
func New(id, recipientID kernel.UUID, typ Type, data map[string]string, now time.Time) (*Notification, error) {
	tpl, ok := templates[typ]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q has no template", string(typ)))
	}
	if err := errors.Join(id.Validate(), recipientID.Validate()); err != nil {
		return nil, err
	}
	return &Notification{
		id:          id,
		recipientID: recipientID,
		typ:         typ,
		title:       render(tpl.title, data),
		message:     render(tpl.message, data),
		category:    tpl.category,
		priority:    tpl.priority,
		data:        maps.Clone(data),
		createdAt:   now,
		expiresAt:   now.Add(DefaultTTL),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Restore rebuilds a notification from storage.
func Restore(
	id, recipientID kernel.UUID,
	typ Type,
	title, message string,
	category Category,
	priority Priority,
	data map[string]string,
	readAt *time.Time,
	createdAt, expiresAt time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), recipientID.Validate()); err != nil {
		return nil, err
	}
	return &Notification{
		id:          id,
		recipientID: recipientID,
		typ:         typ,
		title:       title,
		message:     message,
		category:    category,
		priority:    priority,
		data:        maps.Clone(data),
		isRead:      readAt != nil,
		readAt:      readAt,
		createdAt:   createdAt,
		expiresAt:   expiresAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func render(s string, data map[string]string) string {
	for k, v := range data {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID          { return n.id }
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }
func (n *Notification) Type() Type               { return n.typ }
func (n *Notification) Title() string            { return n.title }
func (n *Notification) Message() string          { return n.message }
func (n *Notification) Category() Category       { return n.category }
func (n *Notification) Priority() Priority       { return n.priority }
func (n *Notification) Data() map[string]string  { return maps.Clone(n.data) }
func (n *Notification) IsRead() bool             { return n.isRead }
func (n *Notification) ReadAt() *time.Time       { return n.readAt }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
func (n *Notification) ExpiresAt() time.Time     { return n.expiresAt }

// MarkRead is idempotent; the first read time is kept.
func (n *Notification) MarkRead(now time.Time) {
	if n.isRead {
		return
	}
	t := now
	n.isRead = true
	n.readAt = &t
}
