package commands_test

import (
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateVehicleCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()
		cargo := 800

		cmd, err := commands.NewCreateVehicleCommand(id, "XY987ZT", "Mercedes", "Sprinter", vehicle.TypeSupplyVan, 2, &cargo, "tail lift")

		require.NoError(t, err)
		assert.True(t, cmd.VehicleID().IsEqual(id))
		assert.Equal(t, "XY987ZT", cmd.Plate())
		assert.Equal(t, vehicle.TypeSupplyVan, cmd.VehicleType())
		assert.Equal(t, 2, cmd.PassengerCapacity())
		require.NotNil(t, cmd.CargoCapacityKG())
		assert.Equal(t, 800, *cmd.CargoCapacityKG())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject empty plate", func(t *testing.T) {
		_, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "", "Mercedes", "Sprinter", vehicle.TypeSupplyVan, 2, nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative passenger capacity", func(t *testing.T) {
		_, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "XY987ZT", "Mercedes", "Sprinter", vehicle.TypeSupplyVan, -1, nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-positive cargo capacity", func(t *testing.T) {
		cargo := 0

		_, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "XY987ZT", "Mercedes", "Sprinter", vehicle.TypeSupplyVan, 2, &cargo, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown vehicle type", func(t *testing.T) {
		_, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "XY987ZT", "Mercedes", "Sprinter", vehicle.Type(42), 2, nil, "")

		require.Error(t, err)
	})

	t.Run("not constructed command fails validation", func(t *testing.T) {
		var cmd commands.CreateVehicleCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateVehicleCommandIsNotConstructed)
	})
}

func TestCreateVehicleCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "XY987ZT", "Mercedes", "Sprinter", vehicle.TypeSupplyVan, 2, nil, "")
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Add", ctx, mock.MatchedBy(func(v *vehicle.Vehicle) bool {
			return v.Plate() == "XY987ZT" && v.Status() == vehicle.StatusAvailable
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateVehicleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
