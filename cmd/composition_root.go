package cmd

import (
	"log/slog"

	"skate/internal/adapters/out/storage"
	"skate/internal/adapters/out/storage/orderrepo"
	"skate/internal/core/application/service"
	"skate/internal/core/application/usecases/commands"
	"skate/internal/core/application/usecases/queries"
	"skate/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *storage.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: storage.NewGormUnitOfWorkFactory(gormDB, logger),
		registry:   registry,
		logger:     logger,
	}
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSweepOrphanItemsCommandHandler() commands.SweepOrphanItemsCommandHandler {
	return commands.NewSweepOrphanItemsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateOrderService() *service.OrderService {
	return service.NewOrderService(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweepHandler := c.CreateSweepOrphanItemsCommandHandler()
	return jobs.NewJobManager(&sweepHandler, c.config.OrphanSweepSchedule, c.registry, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
