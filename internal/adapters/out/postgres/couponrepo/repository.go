package couponrepo

import (
	"context"
	"errors"
	"time"

	"meatdelivery/internal/core/domain/model/coupon"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCouponRepository implements CouponRepository using GORM.
type GormCouponRepository struct {
	db *gorm.DB
}

func NewGormCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

func (r *GormCouponRepository) Add(ctx context.Context, aggregate *coupon.Coupon) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause("coupon code already exists", err)
	}
	return err
}

// Update writes the activity flag only; usage counters are owned by RecordUsage.
func (r *GormCouponRepository) Update(ctx context.Context, aggregate *coupon.Coupon) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CouponDTO{}).
		Where("id = ?", aggregate.ID().Raw()).
		Updates(map[string]any{"is_active": aggregate.IsActive(), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("coupon", aggregate.ID().String())
	}

	return nil
}

func (r *GormCouponRepository) Get(ctx context.Context, id kernel.UUID) (*coupon.Coupon, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "id = ?", id.Raw())
}

func (r *GormCouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	code = coupon.NormalizeCode(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	c, err := r.first(ctx, "code = ?", code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundError("coupon", code)
	}
	return c, err
}

func (r *GormCouponRepository) first(ctx context.Context, query string, arg any) (*coupon.Coupon, error) {
	var dto CouponDTO
	if err := r.db.WithContext(ctx).Preload("Usages").First(&dto, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coupon", arg)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormCouponRepository) ListActive(ctx context.Context, now time.Time) ([]*coupon.Coupon, error) {
	var dtos []CouponDTO
	err := r.db.WithContext(ctx).
		Preload("Usages").
		Where("is_active AND valid_from <= ? AND valid_to >= ?", now, now).
		Order("valid_to").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	coupons := make([]*coupon.Coupon, 0, len(dtos))
	for _, dto := range dtos {
		c, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		coupons = append(coupons, c)
	}

	return coupons, nil
}

// RecordUsage redeems the coupon in two conditional writes that must run
// inside the caller's transaction. The coupon row only grows while it is
// active and below usage_limit; the customer's row only grows while below
// user_usage_limit. Losing either race leaves the rows untouched.
func (r *GormCouponRepository) RecordUsage(
	ctx context.Context,
	aggregate *coupon.Coupon,
	userID kernel.UUID,
	now time.Time,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ApplyUsage(userID, now); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	result := db.Model(&CouponDTO{}).
		Where("id = ? AND is_active AND (usage_limit IS NULL OR usage_count < usage_limit)", aggregate.ID().Raw()).
		Updates(map[string]any{
			"usage_count": gorm.Expr("usage_count + 1"),
			"updated_at":  now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return coupon.ErrCouponUsageLimitReached
	}

	usage := CouponUsageDTO{
		CouponID:   aggregate.ID().Raw(),
		UserID:     userID.Raw(),
		UsageCount: 1,
		LastUsed:   now,
	}
	result = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "coupon_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"usage_count": gorm.Expr("coupon_usages.usage_count + 1"),
			"last_used":   now,
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "coupon_usages.usage_count < ?", Vars: []any{aggregate.Terms().UserUsageLimit}},
		}},
	}).Create(&usage)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return coupon.ErrCouponUserLimitReached
	}

	return nil
}
