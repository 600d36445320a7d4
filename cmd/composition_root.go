package cmd

import (
	"context"
	"fmt"

	"foodorder/api"
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/catalogseed"
	"foodorder/internal/adapters/out/memory"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/core/application/pricing"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/metrics"
	"foodorder/internal/pkg/password"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// catalogStore is the catalog as seen by pricing and by the seeder.
type catalogStore interface {
	ports.Catalog
	catalogseed.Writer
}

// CompositionRoot owns the storage handles and builds every handler from them.
type CompositionRoot struct {
	cfg     Config
	log     *zap.Logger
	metrics *metrics.Metrics

	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	catalog    catalogStore

	orders   queries.OrderReader
	couriers queries.CourierReader
	reviews  queries.ReviewReader
}

// NewCompositionRoot opens the configured storage driver and seeds the catalog.
func NewCompositionRoot(ctx context.Context, cfg Config, log *zap.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		cfg:     cfg,
		log:     log,
		metrics: metrics.New(),
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if err := root.openPostgres(); err != nil {
			return nil, err
		}
	case StorageDriverMemory:
		root.openMemory()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.CatalogSeedPath != "" {
		n, err := catalogseed.LoadFile(ctx, cfg.CatalogSeedPath, root.catalog)
		if err != nil {
			root.Close()
			return nil, err
		}
		log.Info("catalog seeded", zap.Int("items", n), zap.String("path", cfg.CatalogSeedPath))
	}
	return root, nil
}

func (c *CompositionRoot) openPostgres() error {
	settings := postgres.Settings{
		Host:     c.cfg.DBHost,
		Port:     c.cfg.DBPort,
		User:     c.cfg.DBUser,
		Password: c.cfg.DBPassword,
		Name:     c.cfg.DBName,
		SSLMode:  c.cfg.DBSslMode,
	}
	db, err := postgres.Open(settings.DSN())
	if err != nil {
		return err
	}
	if err = postgres.Migrate(db); err != nil {
		return err
	}

	factory := postgres.NewGormUnitOfWorkFactory(db, c.cfg.StorageTimeout)
	// Repositories of a unit of work that was never begun read straight from the pool.
	readers := factory.Create()

	c.gormDB = db
	c.uowFactory = factory
	c.catalog = catalogrepo.NewGormCatalog(db, c.cfg.StorageTimeout)
	c.orders = readers.OrderRepository()
	c.couriers = readers.CourierRepository()
	c.reviews = readers.ReviewRepository()
	return nil
}

func (c *CompositionRoot) openMemory() {
	store := memory.NewStore()

	c.uowFactory = store.UnitOfWorkFactory()
	c.catalog = memory.NewCatalog()
	c.orders = store.OrderRepository()
	c.couriers = store.CourierRepository()
	c.reviews = store.ReviewRepository()
}

// Close releases the database pool, if any.
func (c *CompositionRoot) Close() {
	if c.gormDB == nil {
		return
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Commands

func (c *CompositionRoot) CreateCreateOrderCommandHandler() (commands.CreateOrderCommandHandler, error) {
	pricer, err := pricing.NewValidator(c.catalog)
	if err != nil {
		return commands.CreateOrderCommandHandler{}, err
	}
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, pricer), nil
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f, password.NewBcryptHasher(bcrypt.DefaultCost))
}

func (c *CompositionRoot) CreateAddReviewCommandHandler() commands.AddReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateDispatchOpenOrderCommandHandler() commands.DispatchOpenOrderCommandHandler {
	return commands.NewDispatchOpenOrderCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) deliveryUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// Queries

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListAllOrdersQueryHandler() queries.ListAllOrdersQueryHandler {
	return queries.NewListAllOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListOpenOrdersQueryHandler() queries.ListOpenOrdersQueryHandler {
	return queries.NewListOpenOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetActiveDeliveryQueryHandler() queries.GetActiveDeliveryQueryHandler {
	return queries.NewGetActiveDeliveryQueryHandler(c.couriers, c.orders)
}

func (c *CompositionRoot) CreateListCouriersQueryHandler() queries.ListCouriersQueryHandler {
	return queries.NewListCouriersQueryHandler(c.couriers)
}

func (c *CompositionRoot) CreateListItemReviewsQueryHandler() queries.ListItemReviewsQueryHandler {
	return queries.NewListItemReviewsQueryHandler(c.reviews)
}

// Adapters

// CreateHTTPRouter wires every handler behind the echo router.
func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	createOrder, err := c.CreateCreateOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	verifier, err := httpadapter.NewTokenVerifier(c.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	validator, err := httpadapter.NewRequestValidator(api.OpenAPI)
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:      createOrder,
		SetOrderStatus:   c.CreateSetOrderStatusCommandHandler(),
		RegisterCourier:  c.CreateRegisterCourierCommandHandler(),
		AssignDelivery:   c.CreateAssignDeliveryCommandHandler(),
		CompleteDelivery: c.CreateCompleteDeliveryCommandHandler(),
		AcceptOrder:      c.CreateAcceptOrderCommandHandler(),
		MarkDelivered:    c.CreateMarkDeliveredCommandHandler(),
		AddReview:        c.CreateAddReviewCommandHandler(),

		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListCustomerOrders: c.CreateListCustomerOrdersQueryHandler(),
		ListAllOrders:      c.CreateListAllOrdersQueryHandler(),
		ListOpenOrders:     c.CreateListOpenOrdersQueryHandler(),
		GetActiveDelivery:  c.CreateGetActiveDeliveryQueryHandler(),
		ListCouriers:       c.CreateListCouriersQueryHandler(),
		ListItemReviews:    c.CreateListItemReviewsQueryHandler(),
	}, c.log, c.metrics)

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Verifier:     verifier,
		ClaimLimiter: httpadapter.NewRateLimiter(c.cfg.ClaimRateLimit, c.cfg.ClaimRateBurst),
		Validator:    validator,
	}), nil
}

// CreateJobManager registers the enabled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	manager := jobs.NewJobManager()
	if c.cfg.AutoDispatchEnabled {
		manager.Register("auto dispatch job", jobs.NewAutoDispatchJob(
			c.CreateDispatchOpenOrderCommandHandler(),
			c.cfg.AutoDispatchSchedule,
			c.cfg.StorageTimeout,
			c.log,
			c.metrics,
		))
	}
	return manager
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
