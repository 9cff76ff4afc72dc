package http

import (
	"meatdelivery/internal/core/application/usecases/commands"
	"meatdelivery/internal/core/application/usecases/queries"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// orderView re-reads an order a command already authorized.
func (s *Server) orderView(c echo.Context, orderID kernel.UUID) (queries.OrderView, error) {
	q, err := queries.NewGetOrderQuery(orderID, actorFrom(c).ID, true)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.h.GetOrder.Handle(c.Request().Context(), q)
}

func (s *Server) respondOrder(c echo.Context, o *order.Order, message string) error {
	view, err := s.orderView(c, o.ID())
	if err != nil {
		return err
	}
	return ok(c, message, view)
}

// Checkout handles POST /orders.
func (s *Server) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	address, contact, err := req.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCheckoutCommand(actorFrom(c).ID, address, contact,
		order.PaymentMethod(req.PaymentMethod), req.SpecialInstructions)
	if err != nil {
		return err
	}
	placed, err := s.h.Checkout.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	view, err := s.orderView(c, placed.ID())
	if err != nil {
		return err
	}
	return created(c, "Order placed successfully", view)
}

// ListOrders handles GET /orders. Customers see their own orders, admins all.
func (s *Server) ListOrders(c echo.Context) error {
	page, err := pageFrom(c)
	if err != nil {
		return err
	}

	actor := actorFrom(c)
	q, err := queries.NewListOrdersQuery(actor.ID, actor.IsAdmin(), c.QueryParam("status"), page)
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return ok(c, "", orders)
}

// GetOrderStats handles GET /orders/stats.
func (s *Server) GetOrderStats(c echo.Context) error {
	stats, err := s.h.GetOrderStats.Handle(c.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return err
	}
	return ok(c, "", stats)
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	actor := actorFrom(c)
	q, err := queries.NewGetOrderQuery(orderID, actor.ID, actor.IsAdmin())
	if err != nil {
		return err
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return ok(c, "", view)
}

// UpdateOrderStatus handles PATCH /orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req updateStatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actorFrom(c).ID, status, req.Notes)
	if err != nil {
		return err
	}
	updated, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondOrder(c, updated, "Order status updated")
}

// CancelOrder handles PATCH /orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req cancelOrderRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	actor := actorFrom(c)
	cmd, err := commands.NewCancelOrderCommand(orderID, actor.ID, actor.IsAdmin(), req.Reason)
	if err != nil {
		return err
	}
	cancelled, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondOrder(c, cancelled, "Order cancelled successfully")
}

// AssignCourier handles PATCH /orders/:id/assign.
func (s *Server) AssignCourier(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req assignCourierRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	courierID, err := kernel.UUIDFromString(req.DeliveryBoyID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, actorFrom(c).ID)
	if err != nil {
		return err
	}
	assigned, err := s.h.AssignCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondOrder(c, assigned, "Delivery boy assigned successfully")
}
