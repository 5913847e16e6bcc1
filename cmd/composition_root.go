package cmd

import (
	"fleet/internal/adapters/out/postgres"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires every use case to the shared database connection.
// Handlers are created per call; they are cheap and carry no state beyond
// their unit of work factory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// UnitOfWorkFactory exposes the untyped factory for adapters that read
// single records outside a command.
func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	return commands.NewUpdateVehicleCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRemoveVehicleCommandHandler() commands.RemoveVehicleCommandHandler {
	return commands.NewRemoveVehicleCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.createDriverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	return commands.NewUpdateDriverCommandHandler(c.createDriverUoWFactory())
}

func (c *CompositionRoot) CreateRemoveDriverCommandHandler() commands.RemoveDriverCommandHandler {
	return commands.NewRemoveDriverCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	return commands.NewCreateAssignmentCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAssignmentCommandHandler() commands.UpdateAssignmentCommandHandler {
	return commands.NewUpdateAssignmentCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateStartAssignmentCommandHandler() commands.StartAssignmentCommandHandler {
	return commands.NewStartAssignmentCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCompleteAssignmentCommandHandler() commands.CompleteAssignmentCommandHandler {
	return commands.NewCompleteAssignmentCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCancelAssignmentCommandHandler() commands.CancelAssignmentCommandHandler {
	return commands.NewCancelAssignmentCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateMatchAssignmentCommandHandler() commands.MatchAssignmentCommandHandler {
	return commands.NewMatchAssignmentCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateExpiredDriversCommandHandler() commands.DeactivateExpiredDriversCommandHandler {
	return commands.NewDeactivateExpiredDriversCommandHandler(c.createDriverUoWFactory())
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnfinishedAssignmentsQueryHandler() queries.GetUnfinishedAssignmentsQueryHandler {
	return queries.NewGetUnfinishedAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createDriverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
