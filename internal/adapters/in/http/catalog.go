package http

import (
	"net/http"
	"strconv"

	"meatdelivery/internal/core/application/usecases/commands"
	"meatdelivery/internal/core/application/usecases/queries"
	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /products?category=&search=&minPrice=&maxPrice=&inStock=&page=&limit=.
func (s *Server) ListProducts(c echo.Context) error {
	page, err := pageFrom(c)
	if err != nil {
		return err
	}

	filter := queries.ProductFilter{
		Category: kernel.Category(c.QueryParam("category")),
		Search:   c.QueryParam("search"),
	}
	if filter.MinPrice, err = queryMoney(c, "minPrice"); err != nil {
		return err
	}
	if filter.MaxPrice, err = queryMoney(c, "maxPrice"); err != nil {
		return err
	}
	if raw := c.QueryParam("inStock"); raw != "" {
		if filter.InStock, err = strconv.ParseBool(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid format for parameter inStock")
		}
	}

	q, err := queries.NewListProductsQuery(filter, page)
	if err != nil {
		return err
	}
	products, err := s.h.ListProducts.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return ok(c, "", products)
}

func queryMoney(c echo.Context, name string) (*kernel.Money, error) {
	f, err := queryFloat(c, name)
	if err != nil || f == nil {
		return nil, err
	}
	m, err := kernel.MoneyFromFloat(*f)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetProduct handles GET /products/:id.
func (s *Server) GetProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	q, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return err
	}
	view, err := s.h.GetProduct.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return ok(c, "", view)
}

// CreateProduct handles POST /products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	category, err := kernel.ParseCategory(req.Category)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, category, req.Price, req.StockQuantity, req.discount())
	if err != nil {
		return err
	}
	p, err := s.h.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	q, err := queries.NewGetProductQuery(p.ID())
	if err != nil {
		return err
	}
	view, err := s.h.GetProduct.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return created(c, "Product created successfully", view)
}

// GetActiveCoupons handles GET /coupons/active.
func (s *Server) GetActiveCoupons(c echo.Context) error {
	page, err := pageFrom(c)
	if err != nil {
		return err
	}
	coupons, err := s.h.GetActiveCoupons.Handle(c.Request().Context(), queries.NewGetActiveCouponsQuery(page))
	if err != nil {
		return err
	}
	return ok(c, "", coupons)
}

// ValidateCoupon handles POST /coupons/validate. It previews the discount
// without touching the cart.
func (s *Server) ValidateCoupon(c echo.Context) error {
	var req validateCouponRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	q, err := queries.NewValidateCouponQuery(req.Code, actorFrom(c).ID, req.OrderAmount)
	if err != nil {
		return err
	}
	preview, err := s.h.ValidateCoupon.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return ok(c, "Coupon is valid", preview)
}

// CreateCoupon handles POST /coupons.
func (s *Server) CreateCoupon(c echo.Context) error {
	var req createCouponRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	terms, err := req.terms()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateCouponCommand(terms)
	if err != nil {
		return err
	}
	cp, err := s.h.CreateCoupon.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return created(c, "Coupon created successfully", queries.NewCouponView(cp))
}

// DeactivateCoupon handles DELETE /coupons/:id. Coupons are never removed.
func (s *Server) DeactivateCoupon(c echo.Context) error {
	couponID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeactivateCouponCommand(couponID)
	if err != nil {
		return err
	}
	if err = s.h.DeactivateCoupon.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return ok(c, "Coupon deactivated successfully", nil)
}
