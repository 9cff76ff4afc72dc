package http

import (
	"meatdelivery/internal/core/application/usecases/commands"
	"meatdelivery/internal/core/application/usecases/queries"
	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetPendingOrders handles GET /delivery/orders/pending.
func (s *Server) GetPendingOrders(c echo.Context) error {
	orders, err := s.h.GetPendingOrders.Handle(c.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return err
	}
	return ok(c, "", orders)
}

// GetAssignedOrders handles GET /delivery/orders/assigned.
func (s *Server) GetAssignedOrders(c echo.Context) error {
	q, err := queries.NewGetAssignedOrdersQuery(actorFrom(c).ID)
	if err != nil {
		return err
	}
	orders, err := s.h.GetAssignedOrders.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return ok(c, "", orders)
}

// AcceptOrder handles POST /delivery/orders/:orderId/accept.
func (s *Server) AcceptOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actorFrom(c).ID)
	if err != nil {
		return err
	}
	accepted, err := s.h.AcceptOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondOrder(c, accepted, "Order accepted successfully")
}

// MarkOutForDelivery handles PUT /delivery/orders/:orderId/out-for-delivery.
func (s *Server) MarkOutForDelivery(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	var req deliveryNotesRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewMarkOutForDeliveryCommand(orderID, actorFrom(c).ID, req.Notes)
	if err != nil {
		return err
	}
	updated, err := s.h.MarkOutForDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondOrder(c, updated, "Order marked as out for delivery")
}

// MarkDelivered handles PUT /delivery/orders/:orderId/delivered.
func (s *Server) MarkDelivered(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	var req deliveryNotesRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, actorFrom(c).ID, req.Notes)
	if err != nil {
		return err
	}
	delivered, err := s.h.MarkDelivered.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondOrder(c, delivered, "Order marked as delivered")
}

// GetCourierStats handles GET /delivery/stats.
func (s *Server) GetCourierStats(c echo.Context) error {
	q, err := queries.NewGetCourierStatsQuery(actorFrom(c).ID)
	if err != nil {
		return err
	}
	stats, err := s.h.GetCourierStats.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return ok(c, "", stats)
}

// UpdateAvailability handles PUT /delivery/availability.
func (s *Server) UpdateAvailability(c echo.Context) error {
	var req availabilityRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return s.setAvailability(c, courier.Availability(req.Availability), "Availability updated")
}

// Logout handles POST /delivery/logout. The token stays valid until it
// expires; the courier just stops receiving work.
func (s *Server) Logout(c echo.Context) error {
	return s.setAvailability(c, courier.Offline, "Logged out successfully")
}

func (s *Server) setAvailability(c echo.Context, availability courier.Availability, message string) error {
	cmd, err := commands.NewUpdateCourierAvailabilityCommand(actorFrom(c).ID, availability)
	if err != nil {
		return err
	}
	updated, err := s.h.UpdateCourierAvailability.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, message, queries.NewCourierView(updated))
}

// ListCouriers handles GET /delivery/couriers?availability=.
func (s *Server) ListCouriers(c echo.Context) error {
	q, err := queries.NewListCouriersQuery(courier.Availability(c.QueryParam("availability")))
	if err != nil {
		return err
	}
	couriers, err := s.h.ListCouriers.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return ok(c, "", couriers)
}

// CreateCourier handles POST /delivery/couriers. The courier profile shares
// its id with the identity service user.
func (s *Server) CreateCourier(c echo.Context) error {
	var req createCourierRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateCourierCommand(userID, req.Name, req.Phone)
	if err != nil {
		return err
	}
	profile, err := s.h.CreateCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return created(c, "Delivery boy registered", queries.NewCourierView(profile))
}

// ApproveCourier handles PATCH /delivery/couriers/:id/approve.
func (s *Server) ApproveCourier(c echo.Context) error {
	courierID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveCourierCommand(courierID)
	if err != nil {
		return err
	}
	approved, err := s.h.ApproveCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, "Delivery boy approved", queries.NewCourierView(approved))
}
