package services_test

import (
	"testing"
	"time"

	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/product"
	"meatdelivery/internal/core/domain/services"
	"meatdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func welcome10(t *testing.T) *coupon.Coupon {
	t.Helper()
	c, err := coupon.NewCoupon(kernel.NewUUID(), coupon.Terms{
		Code:              "WELCOME10",
		Type:              coupon.Percentage,
		Value:             decimal.NewFromInt(10),
		MinimumOrderValue: kernel.Rupees(500),
		MaximumDiscount:   ptr(kernel.Rupees(200)),
		ValidFrom:         now.AddDate(0, -1, 0),
		ValidTo:           now.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	return c
}

type catalog map[kernel.UUID]*product.Product

func (c catalog) add(t *testing.T, category kernel.Category, price int64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Cut "+category.String(), category, kernel.Rupees(price), 100)
	require.NoError(t, err)
	c[p.ID()] = p
	return p
}

func filledCart(t *testing.T, products catalog, lines map[*product.Product]int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), now)
	require.NoError(t, err)
	for p, qty := range lines {
		require.NoError(t, c.AddItem(p, qty, now))
	}
	return c
}

func TestCouponApplier_Apply(t *testing.T) {
	t.Run("should attach a percentage coupon to a cart over the minimum", func(t *testing.T) {
		products := catalog{}
		chicken := products.add(t, kernel.CategoryChicken, 200)
		prawns := products.add(t, kernel.CategorySeafood, 200)
		c := filledCart(t, products, map[*product.Product]int{chicken: 2, prawns: 1})
		cp := welcome10(t)

		discount, err := services.CouponApplier{}.Apply(c, cp, products, c.UserID(), now)

		require.NoError(t, err)
		assert.Equal(t, "60.00", discount.String())
		require.NotNil(t, c.AppliedCoupon())
		assert.Equal(t, "WELCOME10", c.AppliedCoupon().Code)
		assert.Equal(t, "540.00", c.Totals().FinalAmount.String())
		assert.Zero(t, cp.UsageCount())
	})

	t.Run("should yield the same discount after remove and re-apply", func(t *testing.T) {
		products := catalog{}
		chicken := products.add(t, kernel.CategoryChicken, 350)
		mutton := products.add(t, kernel.CategoryMutton, 900)
		c := filledCart(t, products, map[*product.Product]int{chicken: 3, mutton: 2})
		cp := welcome10(t)

		first, err := services.CouponApplier{}.Apply(c, cp, products, c.UserID(), now)
		require.NoError(t, err)
		firstFinal := c.Totals().FinalAmount
		require.NoError(t, c.RemoveCoupon(now.Add(time.Minute)))
		assert.True(t, c.Totals().FinalAmount.Equal(c.Totals().Subtotal))
		second, err := services.CouponApplier{}.Apply(c, cp, products, c.UserID(), now.Add(2*time.Minute))

		require.NoError(t, err)
		assert.True(t, first.Equal(second), "first %s, second %s", first, second)
		assert.True(t, firstFinal.Equal(c.Totals().FinalAmount))
		assert.Equal(t, "200.00", second.String())
		assert.Zero(t, cp.UsageCount())
	})

	t.Run("should only count lines in applicable categories", func(t *testing.T) {
		products := catalog{}
		chicken := products.add(t, kernel.CategoryChicken, 600)
		prawns := products.add(t, kernel.CategorySeafood, 400)
		c := filledCart(t, products, map[*product.Product]int{chicken: 1, prawns: 1})
		cp, err := coupon.NewCoupon(kernel.NewUUID(), coupon.Terms{
			Code:                 "CHICKEN20",
			Type:                 coupon.Percentage,
			Value:                decimal.NewFromInt(20),
			MinimumOrderValue:    kernel.Rupees(500),
			ValidFrom:            now.AddDate(0, -1, 0),
			ValidTo:              now.AddDate(0, 1, 0),
			ApplicableCategories: []kernel.Category{kernel.CategoryChicken},
		})
		require.NoError(t, err)

		discount, err := services.CouponApplier{}.Apply(c, cp, products, c.UserID(), now)

		require.NoError(t, err)
		assert.Equal(t, "120.00", discount.String())
	})

	t.Run("should reject a coupon when nothing in the cart is applicable", func(t *testing.T) {
		products := catalog{}
		prawns := products.add(t, kernel.CategorySeafood, 800)
		c := filledCart(t, products, map[*product.Product]int{prawns: 1})
		cp, err := coupon.NewCoupon(kernel.NewUUID(), coupon.Terms{
			Code:                 "MUTTON15",
			Type:                 coupon.Percentage,
			Value:                decimal.NewFromInt(15),
			ValidFrom:            now.AddDate(0, -1, 0),
			ValidTo:              now.AddDate(0, 1, 0),
			ApplicableCategories: []kernel.Category{kernel.CategoryMutton},
		})
		require.NoError(t, err)

		_, err = services.CouponApplier{}.Apply(c, cp, products, c.UserID(), now)

		require.ErrorIs(t, err, coupon.ErrCouponNotApplicable)
		assert.Nil(t, c.AppliedCoupon())
	})

	t.Run("should reject a cart below the minimum order value", func(t *testing.T) {
		products := catalog{}
		chicken := products.add(t, kernel.CategoryChicken, 400)
		c := filledCart(t, products, map[*product.Product]int{chicken: 1})

		_, err := services.CouponApplier{}.Apply(c, welcome10(t), products, c.UserID(), now)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Nil(t, c.AppliedCoupon())
	})

	t.Run("should reject an expired coupon", func(t *testing.T) {
		products := catalog{}
		chicken := products.add(t, kernel.CategoryChicken, 600)
		c := filledCart(t, products, map[*product.Product]int{chicken: 1})

		_, err := services.CouponApplier{}.Apply(c, welcome10(t), products, c.UserID(), now.AddDate(0, 2, 0))

		require.ErrorIs(t, err, coupon.ErrCouponHasExpired)
	})

	t.Run("should reject an empty cart", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), now)
		require.NoError(t, err)

		_, err = services.CouponApplier{}.Apply(c, welcome10(t), catalog{}, c.UserID(), now)

		require.ErrorIs(t, err, cart.ErrCartIsEmpty)
	})

	t.Run("should fail when a cart product is unknown", func(t *testing.T) {
		products := catalog{}
		chicken := products.add(t, kernel.CategoryChicken, 600)
		c := filledCart(t, products, map[*product.Product]int{chicken: 1})

		_, err := services.CouponApplier{}.Apply(c, welcome10(t), catalog{}, c.UserID(), now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCouponApplier_Refresh(t *testing.T) {
	t.Run("should re-price the coupon after the cart grows", func(t *testing.T) {
		products := catalog{}
		chicken := products.add(t, kernel.CategoryChicken, 300)
		c := filledCart(t, products, map[*product.Product]int{chicken: 2})
		cp := welcome10(t)
		_, err := services.CouponApplier{}.Apply(c, cp, products, c.UserID(), now)
		require.NoError(t, err)
		require.NoError(t, c.AddItem(chicken, 1, now))

		dropped, err := services.CouponApplier{}.Refresh(c, cp, products, c.UserID(), now)

		require.NoError(t, err)
		assert.False(t, dropped)
		assert.Equal(t, "90.00", c.AppliedCoupon().Discount.String())
		assert.Equal(t, "810.00", c.Totals().FinalAmount.String())
	})

	t.Run("should drop the coupon when the cart falls below the minimum", func(t *testing.T) {
		products := catalog{}
		chicken := products.add(t, kernel.CategoryChicken, 300)
		c := filledCart(t, products, map[*product.Product]int{chicken: 2})
		cp := welcome10(t)
		_, err := services.CouponApplier{}.Apply(c, cp, products, c.UserID(), now)
		require.NoError(t, err)
		item := c.Items()[0]
		require.NoError(t, c.UpdateItem(item.ID(), chicken, 1, now))

		dropped, err := services.CouponApplier{}.Refresh(c, cp, products, c.UserID(), now)

		require.NoError(t, err)
		assert.True(t, dropped)
		assert.Nil(t, c.AppliedCoupon())
		assert.Equal(t, "300.00", c.Totals().FinalAmount.String())
	})

	t.Run("should drop the coupon when it no longer exists", func(t *testing.T) {
		products := catalog{}
		chicken := products.add(t, kernel.CategoryChicken, 300)
		c := filledCart(t, products, map[*product.Product]int{chicken: 2})
		_, err := services.CouponApplier{}.Apply(c, welcome10(t), products, c.UserID(), now)
		require.NoError(t, err)

		dropped, err := services.CouponApplier{}.Refresh(c, nil, products, c.UserID(), now)

		require.NoError(t, err)
		assert.True(t, dropped)
		assert.Nil(t, c.AppliedCoupon())
	})

	t.Run("should do nothing without a coupon", func(t *testing.T) {
		products := catalog{}
		chicken := products.add(t, kernel.CategoryChicken, 300)
		c := filledCart(t, products, map[*product.Product]int{chicken: 2})

		dropped, err := services.CouponApplier{}.Refresh(c, nil, products, c.UserID(), now)

		require.NoError(t, err)
		assert.False(t, dropped)
	})
}
