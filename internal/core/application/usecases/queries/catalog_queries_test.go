package queries_test

import (
	"testing"
	"time"

	"meatdelivery/internal/adapters/out/postgres/cartrepo"
	"meatdelivery/internal/adapters/out/postgres/pgtest"
	"meatdelivery/internal/adapters/out/postgres/productrepo"
	"meatdelivery/internal/core/application/usecases/queries"
	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/product"
	"meatdelivery/internal/core/domain/services"
	"meatdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type catalog struct {
	db       *gorm.DB
	products *productrepo.GormProductRepository
	carts    *cartrepo.GormCartRepository
}

func newCatalog(t *testing.T) catalog {
	t.Helper()
	db := pgtest.SQLite(t, &productrepo.ProductDTO{}, &cartrepo.CartDTO{})
	return catalog{
		db:       db,
		products: productrepo.NewGormProductRepository(db),
		carts:    cartrepo.NewGormCartRepository(db),
	}
}

func (c catalog) add(t *testing.T, name string, category kernel.Category, price int64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, category, kernel.Rupees(price), stock)
	require.NoError(t, err)
	require.NoError(t, c.products.Add(t.Context(), p))
	return p
}

func TestListProductsQueryHandler_Handle(t *testing.T) {
	c := newCatalog(t)
	c.add(t, "Chicken Breast", kernel.CategoryChicken, 320, 10)
	c.add(t, "Chicken Wings", kernel.CategoryChicken, 250, 0)
	c.add(t, "Mutton Curry Cut", kernel.CategoryMutton, 700, 5)
	retired, err := product.RestoreProduct(kernel.NewUUID(), "Chicken Liver", kernel.CategoryChicken,
		kernel.Rupees(150), product.Discount{}, false, 3)
	require.NoError(t, err)
	require.NoError(t, c.products.Add(t.Context(), retired))
	handler := queries.NewListProductsQueryHandler(c.db)

	names := func(page queries.Paginated[queries.ProductView]) []string {
		out := make([]string, 0, len(page.Items))
		for _, p := range page.Items {
			out = append(out, p.Name)
		}
		return out
	}

	tests := []struct {
		name   string
		filter queries.ProductFilter
		want   []string
	}{
		{"should list every active product", queries.ProductFilter{},
			[]string{"Chicken Breast", "Chicken Wings", "Mutton Curry Cut"}},
		{"should filter by category", queries.ProductFilter{Category: kernel.CategoryMutton},
			[]string{"Mutton Curry Cut"}},
		{"should search names case-insensitively", queries.ProductFilter{Search: " wINGS "},
			[]string{"Chicken Wings"}},
		{"should keep products in stock", queries.ProductFilter{Category: kernel.CategoryChicken, InStock: true},
			[]string{"Chicken Breast"}},
		{"should apply a price range", queries.ProductFilter{MinPrice: ptr(kernel.Rupees(300)), MaxPrice: ptr(kernel.Rupees(500))},
			[]string{"Chicken Breast"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewListProductsQuery(tt.filter, queries.Page{})
			require.NoError(t, err)

			page, err := handler.Handle(t.Context(), query)

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, names(page))
			assert.Equal(t, int64(len(tt.want)), page.Total)
		})
	}

	t.Run("should page the listing", func(t *testing.T) {
		query, err := queries.NewListProductsQuery(queries.ProductFilter{}, queries.NewPage(2, 2))
		require.NoError(t, err)

		page, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
		assert.Equal(t, int64(2), page.Pages)
		assert.Len(t, page.Items, 1)
	})
}

func TestGetProductQueryHandler_Handle(t *testing.T) {
	c := newCatalog(t)
	handler := queries.NewGetProductQueryHandler(c.db)

	t.Run("should price an active discount", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Rohu Fish", kernel.CategoryFish, kernel.Rupees(500), 4)
		require.NoError(t, err)
		until := time.Now().Add(24 * time.Hour)
		require.NoError(t, p.SetDiscount(product.Discount{Percentage: decimal.NewFromInt(20), ValidUntil: &until}))
		require.NoError(t, c.products.Add(t.Context(), p))
		query, err := queries.NewGetProductQuery(p.ID())
		require.NoError(t, err)

		view, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, view.DiscountedPrice.Equal(kernel.Rupees(400)), view.DiscountedPrice.String())
		assert.True(t, view.Price.Equal(kernel.Rupees(500)))
		assert.True(t, view.InStock)
	})

	t.Run("should hide an inactive product", func(t *testing.T) {
		p, err := product.RestoreProduct(kernel.NewUUID(), "Pork Ribs", kernel.CategoryPork,
			kernel.Rupees(450), product.Discount{}, false, 9)
		require.NoError(t, err)
		require.NoError(t, c.products.Add(t.Context(), p))
		query, err := queries.NewGetProductQuery(p.ID())
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGetCartQueryHandler_Handle(t *testing.T) {
	c := newCatalog(t)
	handler := queries.NewGetCartQueryHandler(c.db)

	t.Run("should return an empty summary without a cart", func(t *testing.T) {
		query, err := queries.NewGetCartQuery(kernel.NewUUID())
		require.NoError(t, err)

		view, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.True(t, view.FinalAmount.IsZero())
		assert.Nil(t, view.Coupon)
	})

	t.Run("should name the lines and carry the coupon", func(t *testing.T) {
		userID := kernel.NewUUID()
		breast := c.add(t, "Chicken Breast", kernel.CategoryChicken, 300, 10)
		mutton := c.add(t, "Mutton Keema", kernel.CategoryMutton, 150, 1)
		shopping, err := cart.NewCart(kernel.NewUUID(), userID, time.Now())
		require.NoError(t, err)
		require.NoError(t, shopping.AddItem(breast, 2, time.Now()))
		require.NoError(t, shopping.AddItem(mutton, 1, time.Now()))
		maxDiscount := kernel.Rupees(200)
		welcome, err := coupon.NewCoupon(kernel.NewUUID(), coupon.Terms{
			Code:              "WELCOME10",
			Type:              coupon.Percentage,
			Value:             decimal.NewFromInt(10),
			MinimumOrderValue: kernel.Rupees(500),
			MaximumDiscount:   &maxDiscount,
			ValidFrom:         time.Now().Add(-time.Hour),
			ValidTo:           time.Now().Add(time.Hour),
		})
		require.NoError(t, err)
		catalogMap := map[kernel.UUID]*product.Product{breast.ID(): breast, mutton.ID(): mutton}
		_, err = services.CouponApplier{}.Apply(shopping, welcome, catalogMap, userID, time.Now())
		require.NoError(t, err)
		require.NoError(t, c.carts.Save(t.Context(), shopping))
		query, err := queries.NewGetCartQuery(userID)
		require.NoError(t, err)

		view, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		byName := map[string]queries.CartItemView{}
		for _, it := range view.Items {
			byName[it.Name] = it
		}
		assert.True(t, byName["Chicken Breast"].Subtotal.Equal(kernel.Rupees(600)))
		assert.Equal(t, "chicken", byName["Chicken Breast"].Category)
		assert.True(t, byName["Mutton Keema"].Available)
		assert.Equal(t, 3, view.TotalItems)
		assert.True(t, view.Subtotal.Equal(kernel.Rupees(750)), view.Subtotal.String())
		assert.True(t, view.Discount.Equal(kernel.Rupees(75)), view.Discount.String())
		assert.True(t, view.FinalAmount.Equal(kernel.Rupees(675)), view.FinalAmount.String())
		require.NotNil(t, view.Coupon)
		assert.Equal(t, "WELCOME10", view.Coupon.Code)
	})
}

func ptr[T any](v T) *T { return &v }
