// Package http exposes the marketplace over a JSON REST API. Every response
// is wrapped in an Envelope; domain errors are mapped to statuses by
// ErrorHandler.
package http

import (
	"meatdelivery/internal/core/application/usecases/commands"
	"meatdelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers are the use cases the API delegates to.
type Handlers struct {
	// Cart
	AddCartItem    commands.AddCartItemCommandHandler
	UpdateCartItem commands.UpdateCartItemCommandHandler
	RemoveCartItem commands.RemoveCartItemCommandHandler
	ClearCart      commands.ClearCartCommandHandler
	ApplyCoupon    commands.ApplyCouponCommandHandler
	RemoveCoupon   commands.RemoveCouponCommandHandler
	GetCart        queries.GetCartQueryHandler

	// Orders
	Checkout          commands.CheckoutCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	AssignCourier     commands.AssignCourierCommandHandler
	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	GetOrderStats     queries.GetOrderStatsQueryHandler

	// Delivery
	AcceptOrder               commands.AcceptOrderCommandHandler
	MarkOutForDelivery        commands.MarkOutForDeliveryCommandHandler
	MarkDelivered             commands.MarkDeliveredCommandHandler
	CreateCourier             commands.CreateCourierCommandHandler
	ApproveCourier            commands.ApproveCourierCommandHandler
	UpdateCourierAvailability commands.UpdateCourierAvailabilityCommandHandler
	GetPendingOrders          queries.GetPendingOrdersQueryHandler
	GetAssignedOrders         queries.GetAssignedOrdersQueryHandler
	GetCourierStats           queries.GetCourierStatsQueryHandler
	ListCouriers              queries.ListCouriersQueryHandler

	// Catalog
	CreateProduct    commands.CreateProductCommandHandler
	GetProduct       queries.GetProductQueryHandler
	ListProducts     queries.ListProductsQueryHandler
	CreateCoupon     commands.CreateCouponCommandHandler
	DeactivateCoupon commands.DeactivateCouponCommandHandler
	GetActiveCoupons queries.GetActiveCouponsQueryHandler
	ValidateCoupon   queries.ValidateCouponQueryHandler

	// Notifications
	ListNotifications    queries.ListNotificationsQueryHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler
}

// Server binds Handlers to routes.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// Register mounts every route on g. Routes other than the catalog reads need
// a bearer token verified by auth.
func (s *Server) Register(g *echo.Group, auth echo.MiddlewareFunc) {
	admin := RequireRole(RoleAdmin)
	courierOnly := RequireRole(RoleCourier)

	g.GET("/products", s.ListProducts)
	g.GET("/products/:id", s.GetProduct)
	g.POST("/products", s.CreateProduct, auth, admin)

	g.GET("/coupons/active", s.GetActiveCoupons)
	g.POST("/coupons/validate", s.ValidateCoupon, auth)
	g.POST("/coupons", s.CreateCoupon, auth, admin)
	g.DELETE("/coupons/:id", s.DeactivateCoupon, auth, admin)

	cart := g.Group("/cart", auth)
	cart.GET("", s.GetCart)
	cart.POST("/add", s.AddCartItem)
	cart.PUT("/update/:itemId", s.UpdateCartItem)
	cart.DELETE("/remove/:itemId", s.RemoveCartItem)
	cart.DELETE("/clear", s.ClearCart)
	cart.POST("/apply-coupon", s.ApplyCoupon)
	cart.DELETE("/remove-coupon", s.RemoveCoupon)

	orders := g.Group("/orders", auth)
	orders.POST("", s.Checkout)
	orders.GET("", s.ListOrders)
	orders.GET("/stats", s.GetOrderStats, admin)
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus, admin)
	orders.PATCH("/:id/cancel", s.CancelOrder)
	orders.PATCH("/:id/assign", s.AssignCourier, admin)

	delivery := g.Group("/delivery", auth)
	delivery.GET("/orders/pending", s.GetPendingOrders, courierOnly)
	delivery.GET("/orders/assigned", s.GetAssignedOrders, courierOnly)
	delivery.POST("/orders/:orderId/accept", s.AcceptOrder, courierOnly)
	delivery.PUT("/orders/:orderId/out-for-delivery", s.MarkOutForDelivery, courierOnly)
	delivery.PUT("/orders/:orderId/delivered", s.MarkDelivered, courierOnly)
	delivery.GET("/stats", s.GetCourierStats, courierOnly)
	delivery.PUT("/availability", s.UpdateAvailability, courierOnly)
	delivery.POST("/logout", s.Logout, courierOnly)
	delivery.GET("/couriers", s.ListCouriers, admin)
	delivery.POST("/couriers", s.CreateCourier, admin)
	delivery.PATCH("/couriers/:id/approve", s.ApproveCourier, admin)

	notifications := g.Group("/notifications", auth)
	notifications.GET("", s.ListNotifications)
	notifications.PATCH("/:id/read", s.MarkNotificationRead)
}
