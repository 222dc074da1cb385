package cmd

import (
	"log/slog"

	"helpii/internal/adapters/out/postgres"
	"helpii/internal/core/application/usecases/commands"
	"helpii/internal/core/application/usecases/queries"
	"helpii/internal/core/domain/services"
	"helpii/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateDeliveryTypeCommandHandler() commands.CreateDeliveryTypeCommandHandler {
	var f commands.DeliveryTypeUoWFactory = FuncDeliveryTypeUoWFactory(func() commands.DeliveryTypeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryTypeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePricingRuleCommandHandler() commands.CreatePricingRuleCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePricingRuleCommandHandler(f)
}

func (c *CompositionRoot) CreateSeedCatalogCommandHandler() commands.SeedCatalogCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedCatalogCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveQuoteQueryHandler() queries.ResolveQuoteQueryHandler {
	uow := c.uowFactory.Create()
	resolver := services.NewQuoteResolver(c.logger)
	return queries.NewResolveQuoteQueryHandler(
		uow.DeliveryTypeRepository(), uow.PricingRuleRepository(), resolver)
}

func (c *CompositionRoot) CreateGetDeliveryTypesQueryHandler() queries.GetDeliveryTypesQueryHandler {
	return queries.NewGetDeliveryTypesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuditCatalogQueryHandler() queries.AuditCatalogQueryHandler {
	return queries.NewAuditCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAuditCatalogQueryHandler(), c.logger)
}

type FuncDeliveryTypeUoWFactory func() commands.DeliveryTypeUoW

func (f FuncDeliveryTypeUoWFactory) Create() commands.DeliveryTypeUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
