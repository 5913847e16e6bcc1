package errs_test

import (
	"errors"
	"testing"

	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("vehicleId", "123")

		assert.Equal(t, "vehicleId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("vehicleId", "123", cause)

		assert.Equal(t, "vehicleId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: vehicleId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("plate")

		assert.Equal(t, "plate", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: plate", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("plate", cause)

		assert.Equal(t, "plate", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: plate (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("licenseNumber")

		assert.Equal(t, "licenseNumber", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: licenseNumber", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("licenseNumber", cause)

		assert.Equal(t, "licenseNumber", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: licenseNumber (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestResourceUnavailableError(t *testing.T) {
	t.Run("NewResourceUnavailableError", func(t *testing.T) {
		err := errs.NewResourceUnavailableError("vehicle", "ABC123", "maintenance")

		assert.Equal(t, "vehicle", err.ResourceName)
		assert.Equal(t, "ABC123", err.ID)
		assert.Equal(t, "maintenance", err.Status)
		require.NoError(t, err.Cause)
		assert.Equal(t, "resource unavailable: vehicle ABC123 is maintenance", err.Error())
		assert.Equal(t, errs.ErrResourceUnavailable, err.Unwrap())
	})

	t.Run("NewResourceUnavailableErrorWithCause", func(t *testing.T) {
		cause := errors.New("driver is deactivated")
		err := errs.NewResourceUnavailableErrorWithCause("driver", "L1", "available", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "resource unavailable: driver L1 is available (cause: driver is deactivated)", err.Error())
		assert.Equal(t, errs.ErrResourceUnavailable, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("completed", "complete")

		assert.Equal(t, "completed", err.From)
		assert.Equal(t, "complete", err.Command)
		assert.Equal(t, "invalid transition: complete is not allowed from completed", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithReason", func(t *testing.T) {
		err := errs.NewInvalidTransitionErrorWithReason("scheduled", "start", "driver not active")

		assert.Equal(t, "driver not active", err.Reason)
		assert.Equal(t, "invalid transition: start is not allowed from scheduled (driver not active)", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrResourceUnavailable)
		require.Error(t, errs.ErrInvalidTransition)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "resource unavailable", errs.ErrResourceUnavailable.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("driverId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("plate"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("lat", 150, -90, 90), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("make"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewResourceUnavailableError("vehicle", "V", "in_use"), errs.ErrResourceUnavailable)
		require.ErrorIs(t, errs.NewInvalidTransitionError("cancelled", "start"), errs.ErrInvalidTransition)
	})
}
