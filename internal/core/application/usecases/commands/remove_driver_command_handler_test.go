package commands_test

import (
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveDriverCommandHandler_Handle_DetachesAssignmentsAndPreferredLinks(t *testing.T) {
	ctx := t.Context()

	v := buildVehicle(t)
	d := buildDriver(t)
	a := buildScheduledAssignment(t, v, d)
	require.NoError(t, v.SetPreferredDriver(d.ID()))

	cmd, err := commands.NewRemoveDriverCommand(d.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	vehicleRepo := new(MockVehicleRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		driverRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		assignmentRepo.On("GetAllByDriver", ctx, d.ID()).Return([]*assignment.Assignment{a}, nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		vehicleRepo.On("GetAllByPreferredDriver", ctx, d.ID()).Return([]*vehicle.Vehicle{v}, nil).Once(),
		vehicleRepo.On("Update", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		driverRepo.On("Delete", ctx, d.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, a.DriverID(), "assignment keeps existing with the reference detached")
	require.NotNil(t, a.VehicleID())
	assert.Nil(t, v.PreferredDriverID())
	uow.AssertExpectations(t)
}

func TestRemoveDriverCommandHandler_Handle_RefusesActiveHolder(t *testing.T) {
	ctx := t.Context()

	v := buildVehicle(t)
	d := buildDriver(t)
	a := buildScheduledAssignment(t, v, d)
	require.NoError(t, a.Start())

	cmd, err := commands.NewRemoveDriverCommand(d.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	vehicleRepo := new(MockVehicleRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		driverRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		assignmentRepo.On("GetAllByDriver", ctx, d.ID()).Return([]*assignment.Assignment{a}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceUnavailable)
	driverRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
