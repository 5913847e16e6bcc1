package commands

import (
	"context"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/services"
)

// matchAndClaim runs the matching service over the currently available pool
// and claims the chosen vehicle under a row lock. The pool is read without
// locks, so a concurrent claim may win the picked vehicle between selection
// and lock acquisition; the loser then drops that candidate and matches again
// against the remainder of the pool.
//
// On success the vehicle is reserved, the assignment holds both resources and
// the vehicle row is persisted; the caller still persists the assignment and
// commits. Returns services.ErrNoMatchFound once the pool is exhausted.
func matchAndClaim(ctx context.Context, uow UoW, aggregate *assignment.Assignment) error {
	vehicleRepo := uow.VehicleRepository()

	vehicles, err := vehicleRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	drivers, err := uow.DriverRepository().GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	matcher := services.NewMatcher()

	for len(vehicles) > 0 {
		pickedVehicle, pickedDriver, err := matcher.Match(aggregate, vehicles, drivers)
		if err != nil {
			return err
		}

		locked, err := vehicleRepo.GetForUpdate(ctx, pickedVehicle.ID())
		if err != nil {
			return err
		}

		if locked.Status() != vehicle.StatusAvailable {
			// Lost the race for this vehicle. Try the next candidate.
			vehicles = dropCandidate(vehicles, pickedVehicle.ID())
			continue
		}

		if err = locked.Reserve(); err != nil {
			return err
		}

		if err = aggregate.AttachResources(locked.ID(), pickedDriver.ID()); err != nil {
			return err
		}

		return vehicleRepo.Update(ctx, locked)
	}

	return services.ErrNoMatchFound
}

func dropCandidate(pool []*vehicle.Vehicle, id kernel.UUID) []*vehicle.Vehicle {
	kept := pool[:0]
	for _, v := range pool {
		if !v.ID().IsEqual(id) {
			kept = append(kept, v)
		}
	}
	return kept
}
