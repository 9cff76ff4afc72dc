package cmd

import (
	"log/slog"

	"meatdelivery/internal/adapters/in/http"
	"meatdelivery/internal/adapters/out/postgres"
	"meatdelivery/internal/adapters/out/postgres/couponrepo"
	"meatdelivery/internal/core/application/notifications"
	"meatdelivery/internal/core/application/usecases/commands"
	"meatdelivery/internal/core/application/usecases/queries"
	"meatdelivery/internal/core/ports"
	"meatdelivery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config        Config
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	notifications ports.NotificationRepository
	notifier      commands.OrderNotifier
	logger        *slog.Logger
}

// NewCompositionRoot wires the use cases over the relational store, the
// notification inbox and the event publisher.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	notificationStore ports.NotificationRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		notifications: notificationStore,
		notifier:      notifications.NewDispatcher(notificationStore, publisher, logger),
		logger:        logger,
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) couponUoWFactory() commands.CouponUoWFactory {
	return FuncCouponUoWFactory(func() commands.CouponUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW { return c.uowFactory.Create() })
}

// CreateHandlers builds every command and query handler the API uses.
func (c *CompositionRoot) CreateHandlers() http.Handlers {
	return http.Handlers{
		AddCartItem:    commands.NewAddCartItemCommandHandler(c.cartUoWFactory()),
		UpdateCartItem: commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory()),
		RemoveCartItem: commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory()),
		ClearCart:      commands.NewClearCartCommandHandler(c.cartUoWFactory()),
		ApplyCoupon:    commands.NewApplyCouponCommandHandler(c.cartUoWFactory()),
		RemoveCoupon:   commands.NewRemoveCouponCommandHandler(c.cartUoWFactory()),
		GetCart:        queries.NewGetCartQueryHandler(c.gormDB),

		Checkout:          commands.NewCheckoutCommandHandler(c.uow(), c.notifier),
		CancelOrder:       commands.NewCancelOrderCommandHandler(c.uow(), c.notifier),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(c.uow(), c.notifier),
		AssignCourier:     commands.NewAssignCourierCommandHandler(c.deliveryUoWFactory(), c.notifier),
		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:        queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrderStats:     queries.NewGetOrderStatsQueryHandler(c.gormDB),

		AcceptOrder:               commands.NewAcceptOrderCommandHandler(c.deliveryUoWFactory(), c.notifier),
		MarkOutForDelivery:        commands.NewMarkOutForDeliveryCommandHandler(c.deliveryUoWFactory(), c.notifier),
		MarkDelivered:             commands.NewMarkDeliveredCommandHandler(c.deliveryUoWFactory(), c.notifier),
		CreateCourier:             commands.NewCreateCourierCommandHandler(c.courierUoWFactory()),
		ApproveCourier:            commands.NewApproveCourierCommandHandler(c.courierUoWFactory()),
		UpdateCourierAvailability: commands.NewUpdateCourierAvailabilityCommandHandler(c.courierUoWFactory()),
		GetPendingOrders:          queries.NewGetPendingOrdersQueryHandler(c.gormDB),
		GetAssignedOrders:         queries.NewGetAssignedOrdersQueryHandler(c.gormDB),
		GetCourierStats:           queries.NewGetCourierStatsQueryHandler(c.gormDB),
		ListCouriers:              queries.NewListCouriersQueryHandler(c.gormDB),

		CreateProduct:    commands.NewCreateProductCommandHandler(c.productUoWFactory()),
		GetProduct:       queries.NewGetProductQueryHandler(c.gormDB),
		ListProducts:     queries.NewListProductsQueryHandler(c.gormDB),
		CreateCoupon:     commands.NewCreateCouponCommandHandler(c.couponUoWFactory()),
		DeactivateCoupon: commands.NewDeactivateCouponCommandHandler(c.couponUoWFactory()),
		GetActiveCoupons: queries.NewGetActiveCouponsQueryHandler(c.gormDB),
		ValidateCoupon:   queries.NewValidateCouponQueryHandler(couponrepo.NewGormCouponRepository(c.gormDB)),

		ListNotifications:    queries.NewListNotificationsQueryHandler(c.notifications),
		MarkNotificationRead: commands.NewMarkNotificationReadCommandHandler(c.notifications),
	}
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(c.CreateHandlers())
}

func (c *CompositionRoot) CreatePurgeExpiredNotificationsCommandHandler() commands.PurgeExpiredNotificationsCommandHandler {
	return commands.NewPurgeExpiredNotificationsCommandHandler(c.notifications)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeExpiredNotificationsCommandHandler(),
		c.config.NotificationCleanupSchedule,
		c.logger,
	)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCouponUoWFactory func() commands.CouponUoW

func (f FuncCouponUoWFactory) Create() commands.CouponUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
