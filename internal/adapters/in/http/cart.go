package http

import (
	"meatdelivery/internal/core/application/usecases/commands"
	"meatdelivery/internal/core/application/usecases/queries"
	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) cartView(c echo.Context, userID kernel.UUID) (queries.CartView, error) {
	q, err := queries.NewGetCartQuery(userID)
	if err != nil {
		return queries.CartView{}, err
	}
	return s.h.GetCart.Handle(c.Request().Context(), q)
}

// GetCart handles GET /cart.
func (s *Server) GetCart(c echo.Context) error {
	view, err := s.cartView(c, actorFrom(c).ID)
	if err != nil {
		return err
	}
	return ok(c, "", view)
}

// AddCartItem handles POST /cart/add.
func (s *Server) AddCartItem(c echo.Context) error {
	var req addCartItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return err
	}

	userID := actorFrom(c).ID
	cmd, err := commands.NewAddCartItemCommand(userID, productID, req.Quantity)
	if err != nil {
		return err
	}
	if _, err = s.h.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	view, err := s.cartView(c, userID)
	if err != nil {
		return err
	}
	return ok(c, "Item added to cart", view)
}

// UpdateCartItem handles PUT /cart/update/:itemId.
func (s *Server) UpdateCartItem(c echo.Context) error {
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return err
	}
	var req updateCartItemRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	userID := actorFrom(c).ID
	cmd, err := commands.NewUpdateCartItemCommand(userID, itemID, req.Quantity)
	if err != nil {
		return err
	}
	if _, err = s.h.UpdateCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	view, err := s.cartView(c, userID)
	if err != nil {
		return err
	}
	return ok(c, "Cart item updated", view)
}

// RemoveCartItem handles DELETE /cart/remove/:itemId.
func (s *Server) RemoveCartItem(c echo.Context) error {
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return err
	}

	userID := actorFrom(c).ID
	cmd, err := commands.NewRemoveCartItemCommand(userID, itemID)
	if err != nil {
		return err
	}
	if _, err = s.h.RemoveCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	view, err := s.cartView(c, userID)
	if err != nil {
		return err
	}
	return ok(c, "Item removed from cart", view)
}

// ClearCart handles DELETE /cart/clear.
func (s *Server) ClearCart(c echo.Context) error {
	userID := actorFrom(c).ID
	cmd, err := commands.NewClearCartCommand(userID)
	if err != nil {
		return err
	}
	if _, err = s.h.ClearCart.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	view, err := s.cartView(c, userID)
	if err != nil {
		return err
	}
	return ok(c, "Cart cleared", view)
}

// ApplyCoupon handles POST /cart/apply-coupon.
func (s *Server) ApplyCoupon(c echo.Context) error {
	var req couponCodeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	userID := actorFrom(c).ID
	cmd, err := commands.NewApplyCouponCommand(userID, req.Code)
	if err != nil {
		return err
	}
	res, err := s.h.ApplyCoupon.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	view, err := s.cartView(c, userID)
	if err != nil {
		return err
	}
	return ok(c, "Coupon applied successfully", map[string]any{
		"cart":     view,
		"discount": res.Discount,
	})
}

// RemoveCoupon handles DELETE /cart/remove-coupon.
func (s *Server) RemoveCoupon(c echo.Context) error {
	userID := actorFrom(c).ID
	cmd, err := commands.NewRemoveCouponCommand(userID)
	if err != nil {
		return err
	}
	if _, err = s.h.RemoveCoupon.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	view, err := s.cartView(c, userID)
	if err != nil {
		return err
	}
	return ok(c, "Coupon removed", view)
}
