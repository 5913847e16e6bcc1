package vehicle_test

import (
	"testing"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNewVehicle(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("creates available vehicle with valid parameters", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "ABC123", "Toyota", "Hiace", vehicle.TypePassengerVan, 8, intPtr(500), "wheelchair ramp")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.ID().IsEqual(validID))
		assert.Equal(t, "ABC123", v.Plate())
		assert.Equal(t, vehicle.TypePassengerVan, v.Type())
		assert.Equal(t, 8, v.PassengerCapacity())
		assert.Equal(t, 500, *v.CargoCapacityKG())
		assert.Equal(t, vehicle.StatusAvailable, v.Status())
		assert.Nil(t, v.Position())
		assert.Nil(t, v.PreferredDriverID())
	})

	t.Run("fails without plate", func(t *testing.T) {
		_, err := vehicle.NewVehicle(validID, "", "Toyota", "Hiace", vehicle.TypeStaffCar, 4, nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "plate")
	})

	t.Run("fails with invalid type", func(t *testing.T) {
		_, err := vehicle.NewVehicle(validID, "ABC123", "Toyota", "Hiace", vehicle.TypeUnknown, 4, nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails with negative passenger capacity", func(t *testing.T) {
		_, err := vehicle.NewVehicle(validID, "ABC123", "Toyota", "Hiace", vehicle.TypeStaffCar, -1, nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "passenger capacity")
	})

	t.Run("fails with non-positive cargo capacity", func(t *testing.T) {
		_, err := vehicle.NewVehicle(validID, "ABC123", "Toyota", "Hiace", vehicle.TypeCargoTruck, 2, intPtr(0), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cargo capacity")
	})

	t.Run("zero passenger capacity is allowed for cargo vehicles", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "ABC123", "Mercedes", "Sprinter", vehicle.TypeCargoTruck, 0, intPtr(1200), "")

		require.NoError(t, err)
		assert.Equal(t, 0, v.PassengerCapacity())
	})
}

func TestVehicle_ClaimAndRelease(t *testing.T) {
	newVehicle := func(t *testing.T) *vehicle.Vehicle {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), "ABC123", "Toyota", "Hiace", vehicle.TypeStaffCar, 4, nil, "")
		require.NoError(t, err)
		return v
	}

	t.Run("reserve from available", func(t *testing.T) {
		v := newVehicle(t)

		require.NoError(t, v.Reserve())
		assert.Equal(t, vehicle.StatusReserved, v.Status())
	})

	t.Run("mark in use from available and from reserved", func(t *testing.T) {
		v := newVehicle(t)
		require.NoError(t, v.MarkInUse())
		assert.Equal(t, vehicle.StatusInUse, v.Status())

		v = newVehicle(t)
		require.NoError(t, v.Reserve())
		require.NoError(t, v.MarkInUse())
		assert.Equal(t, vehicle.StatusInUse, v.Status())
	})

	t.Run("claiming an in-use vehicle fails", func(t *testing.T) {
		v := newVehicle(t)
		require.NoError(t, v.MarkInUse())

		err := v.MarkInUse()

		require.ErrorIs(t, err, errs.ErrResourceUnavailable)
		assert.Contains(t, err.Error(), "ABC123")
		assert.Contains(t, err.Error(), "in_use")
	})

	t.Run("claiming a vehicle in maintenance fails", func(t *testing.T) {
		v := newVehicle(t)
		require.NoError(t, v.SetStatus(vehicle.StatusMaintenance))

		require.ErrorIs(t, v.Reserve(), errs.ErrResourceUnavailable)
		require.ErrorIs(t, v.MarkInUse(), errs.ErrResourceUnavailable)
	})

	t.Run("release returns claimed vehicle to available", func(t *testing.T) {
		v := newVehicle(t)
		require.NoError(t, v.MarkInUse())

		v.Release()

		assert.Equal(t, vehicle.StatusAvailable, v.Status())
	})

	t.Run("release does not touch maintenance", func(t *testing.T) {
		v := newVehicle(t)
		require.NoError(t, v.SetStatus(vehicle.StatusMaintenance))

		v.Release()

		assert.Equal(t, vehicle.StatusMaintenance, v.Status())
	})
}

func TestVehicle_CanCarry(t *testing.T) {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "ABC123", "Toyota", "Hiace", vehicle.TypePassengerVan, 4, intPtr(300), "")
	require.NoError(t, err)

	assert.True(t, v.CanCarry(4, nil))
	assert.False(t, v.CanCarry(5, nil))
	assert.True(t, v.CanCarry(2, intPtr(300)))
	assert.False(t, v.CanCarry(2, intPtr(301)))

	noCargo, err := vehicle.NewVehicle(kernel.NewUUID(), "XYZ789", "Fiat", "Uno", vehicle.TypeStaffCar, 4, nil, "")
	require.NoError(t, err)

	assert.True(t, noCargo.CanCarry(4, nil))
	assert.False(t, noCargo.CanCarry(1, intPtr(1)))
}

func TestVehicle_PreferredDriver(t *testing.T) {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "ABC123", "Toyota", "Hiace", vehicle.TypeStaffCar, 4, nil, "")
	require.NoError(t, err)

	driverID := kernel.NewUUID()
	require.NoError(t, v.SetPreferredDriver(driverID))
	require.NotNil(t, v.PreferredDriverID())
	assert.True(t, v.PreferredDriverID().IsEqual(driverID))

	v.ClearPreferredDriver()
	assert.Nil(t, v.PreferredDriverID())
}

func TestVehicle_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var v vehicle.Vehicle

		require.Error(t, v.Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("valid statuses parse", func(t *testing.T) {
		for _, s := range []string{"available", "in_use", "maintenance", "reserved"} {
			parsed, err := vehicle.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, parsed.String())
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := vehicle.StatusFromString("parked")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTypeFromString(t *testing.T) {
	t.Run("valid types parse", func(t *testing.T) {
		for _, s := range []string{"staff_car", "supply_van", "ambulance", "passenger_van", "cargo_truck", "other"} {
			parsed, err := vehicle.TypeFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, parsed.String())
		}
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := vehicle.TypeFromString("hovercraft")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
