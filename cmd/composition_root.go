package cmd

import (
	"log/slog"

	"printship/internal/adapters/out/postgres"
	"printship/internal/adapters/out/ups"
	"printship/internal/core/application/usecases/commands"
	"printship/internal/core/application/usecases/queries"
	"printship/internal/core/domain/model/order"
	"printship/internal/core/domain/model/packing"
	"printship/internal/core/ports"
	"printship/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	labelClient    ports.CarrierLabelClient
	trackingClient ports.CarrierTrackingClient
	catalog        packing.Catalog
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	labelClient, err := ups.NewLabelClient(config.CarrierBaseURL, config.CarrierAPIKey, nil)
	if err != nil {
		return CompositionRoot{}, err
	}

	trackingClient, err := ups.NewTrackingClient(config.CarrierBaseURL, config.CarrierAPIKey, nil)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		labelClient:    labelClient,
		trackingClient: trackingClient,
		catalog:        packing.DefaultCatalog(),
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShippingLabelCommandHandler() commands.CreateShippingLabelCommandHandler {
	return commands.NewCreateShippingLabelCommandHandler(c.orderUoWFactory(), c.labelClient)
}

func (c *CompositionRoot) CreateMarkLabelPrintedCommandHandler() commands.MarkLabelPrintedCommandHandler {
	return commands.NewMarkLabelPrintedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordCarrierScanCommandHandler() commands.RecordCarrierScanCommandHandler {
	return commands.NewRecordCarrierScanCommandHandler(c.orderUoWFactory(), order.NewPossessionMatcher())
}

func (c *CompositionRoot) CreateGetShipmentStatusQueryHandler() queries.GetShipmentStatusQueryHandler {
	return queries.NewGetShipmentStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEstimatePackingQueryHandler() queries.EstimatePackingQueryHandler {
	return queries.NewEstimatePackingQueryHandler(c.gormDB, c.catalog)
}

func (c *CompositionRoot) Catalog() packing.Catalog {
	return c.catalog
}

func (c *CompositionRoot) CreateJobManager(schedule string, logger *slog.Logger) *jobs.JobManager {
	// The poll job lists orders outside any transaction; scan detection opens
	// its own unit of work per tracking number.
	orderRepo := c.uowFactory.Create().OrderRepository()
	return jobs.NewJobManager(
		orderRepo,
		c.trackingClient,
		c.CreateRecordCarrierScanCommandHandler(),
		schedule,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
