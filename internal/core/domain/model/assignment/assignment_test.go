package assignment_test

import (
	"testing"
	"time"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validRequirements(t *testing.T) assignment.Requirements {
	t.Helper()
	r, err := assignment.NewRequirements(2, nil, nil, "")
	require.NoError(t, err)
	return r
}

func newPendingAssignment(t *testing.T) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(kernel.NewUUID(), assignment.ServiceStaff,
		"Central Hospital", time.Now().Add(time.Hour), validRequirements(t))
	require.NoError(t, err)
	return a
}

func TestNewAssignment(t *testing.T) {
	validID := kernel.NewUUID()
	start := time.Now().Add(time.Hour)

	t.Run("creates pending assignment with request timestamp", func(t *testing.T) {
		before := time.Now().UTC()
		a, err := assignment.NewAssignment(validID, assignment.ServicePatients, "Clinic North", start, validRequirements(t))
		after := time.Now().UTC()

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, assignment.StatusPendingAutoAssignment, a.Status())
		assert.Nil(t, a.VehicleID())
		assert.Nil(t, a.DriverID())
		assert.Nil(t, a.ActualEnd())
		assert.False(t, a.RequestedAt().Before(before))
		assert.False(t, a.RequestedAt().After(after))
	})

	t.Run("fails without destination", func(t *testing.T) {
		_, err := assignment.NewAssignment(validID, assignment.ServiceStaff, "", start, validRequirements(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "destination")
	})

	t.Run("fails without requested start", func(t *testing.T) {
		_, err := assignment.NewAssignment(validID, assignment.ServiceStaff, "Depot", time.Time{}, validRequirements(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "requested start")
	})

	t.Run("fails with unconstructed requirements", func(t *testing.T) {
		var reqs assignment.Requirements

		_, err := assignment.NewAssignment(validID, assignment.ServiceStaff, "Depot", start, reqs)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Requirements must be created")
	})
}

func TestNewRequirements(t *testing.T) {
	t.Run("valid requirements", func(t *testing.T) {
		preferred := vehicle.TypeAmbulance
		r, err := assignment.NewRequirements(3, intPtr(50), &preferred, "stretcher")

		require.NoError(t, err)
		assert.Equal(t, 3, r.Passengers())
		assert.Equal(t, 50, *r.CargoKG())
		assert.Equal(t, vehicle.TypeAmbulance, *r.PreferredType())
		assert.True(t, r.HasCargo())
	})

	t.Run("zero passengers rejected", func(t *testing.T) {
		_, err := assignment.NewRequirements(0, nil, nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "req_passengers")
	})

	t.Run("non-positive cargo rejected", func(t *testing.T) {
		_, err := assignment.NewRequirements(1, intPtr(0), nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "req_cargo_kg")
	})

	t.Run("invalid preferred type rejected", func(t *testing.T) {
		bad := vehicle.TypeUnknown
		_, err := assignment.NewRequirements(1, nil, &bad, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAssignment_SetExpectedEnd(t *testing.T) {
	t.Run("strictly after requested start", func(t *testing.T) {
		a := newPendingAssignment(t)

		end := a.RequestedStart().Add(2 * time.Hour)
		require.NoError(t, a.SetExpectedEnd(end))
		require.NotNil(t, a.ExpectedEnd())
		assert.True(t, a.ExpectedEnd().Equal(end))
	})

	t.Run("equal to requested start is rejected", func(t *testing.T) {
		a := newPendingAssignment(t)

		err := a.SetExpectedEnd(a.RequestedStart())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "expected_end")
		assert.Nil(t, a.ExpectedEnd())
	})

	t.Run("before requested start is rejected", func(t *testing.T) {
		a := newPendingAssignment(t)

		err := a.SetExpectedEnd(a.RequestedStart().Add(-time.Minute))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAssignment_Lifecycle(t *testing.T) {
	vehicleID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	t.Run("attach resources schedules the assignment", func(t *testing.T) {
		a := newPendingAssignment(t)

		require.NoError(t, a.AttachResources(vehicleID, driverID))

		assert.Equal(t, assignment.StatusScheduled, a.Status())
		assert.True(t, a.VehicleID().IsEqual(vehicleID))
		assert.True(t, a.DriverID().IsEqual(driverID))
	})

	t.Run("attach after failed matching reschedules", func(t *testing.T) {
		a := newPendingAssignment(t)
		require.NoError(t, a.FailAutoAssignment())

		require.NoError(t, a.AttachResources(vehicleID, driverID))
		assert.Equal(t, assignment.StatusScheduled, a.Status())
	})

	t.Run("start requires attached resources", func(t *testing.T) {
		a := newPendingAssignment(t)

		err := a.Start()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "vehicle and driver must be attached")
	})

	t.Run("full lifecycle start then complete", func(t *testing.T) {
		a := newPendingAssignment(t)
		require.NoError(t, a.AttachResources(vehicleID, driverID))

		require.NoError(t, a.Start())
		assert.Equal(t, assignment.StatusActive, a.Status())
		assert.Nil(t, a.ActualEnd())

		now := time.Now()
		require.NoError(t, a.Complete(now))
		assert.Equal(t, assignment.StatusCompleted, a.Status())
		require.NotNil(t, a.ActualEnd())
		assert.True(t, a.ActualEnd().Equal(now.UTC()))
	})

	t.Run("complete is not idempotent", func(t *testing.T) {
		a := newPendingAssignment(t)
		require.NoError(t, a.AttachResources(vehicleID, driverID))
		require.NoError(t, a.Start())
		require.NoError(t, a.Complete(time.Now()))
		firstEnd := *a.ActualEnd()

		err := a.Complete(time.Now().Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, assignment.StatusCompleted, a.Status())
		assert.True(t, a.ActualEnd().Equal(firstEnd))
	})

	t.Run("cancel from scheduled", func(t *testing.T) {
		a := newPendingAssignment(t)
		require.NoError(t, a.AttachResources(vehicleID, driverID))

		require.NoError(t, a.Cancel())
		assert.Equal(t, assignment.StatusCancelled, a.Status())
	})

	t.Run("cancel from terminal fails", func(t *testing.T) {
		a := newPendingAssignment(t)
		require.NoError(t, a.Cancel())

		require.ErrorIs(t, a.Cancel(), errs.ErrInvalidTransition)
	})
}

func TestAssignment_DetachResources(t *testing.T) {
	a := newPendingAssignment(t)
	require.NoError(t, a.AttachResources(kernel.NewUUID(), kernel.NewUUID()))

	a.DetachVehicle()
	assert.Nil(t, a.VehicleID())
	assert.NotNil(t, a.DriverID())

	a.DetachDriver()
	assert.Nil(t, a.DriverID())
	// Record survives resource deletion; only the link degrades.
	assert.Equal(t, assignment.StatusScheduled, a.Status())
}

func TestAssignment_ReplaceResources(t *testing.T) {
	t.Run("replaces pair on scheduled assignment", func(t *testing.T) {
		a := newPendingAssignment(t)
		require.NoError(t, a.AttachResources(kernel.NewUUID(), kernel.NewUUID()))

		newVehicle := kernel.NewUUID()
		newDriver := kernel.NewUUID()
		require.NoError(t, a.ReplaceResources(newVehicle, newDriver))

		assert.Equal(t, assignment.StatusScheduled, a.Status())
		assert.True(t, a.VehicleID().IsEqual(newVehicle))
		assert.True(t, a.DriverID().IsEqual(newDriver))
	})

	t.Run("rejected while pending", func(t *testing.T) {
		a := newPendingAssignment(t)

		err := a.ReplaceResources(kernel.NewUUID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
