package services

import (
	"errors"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
)

// ErrNoMatchFound is returned when no compatible vehicle and driver pair
// exists for an assignment. The assignment is then surfaced for manual
// intervention through the auto_assignment_failed status.
var ErrNoMatchFound = errors.New("no compatible vehicle and driver pair found")

// Matcher is the domain service that selects a compatible (vehicle, driver)
// pair for an unassigned transport request.
//
// Compatibility predicate:
//   - vehicle is available
//   - vehicle satisfies the passenger and cargo demand
//   - vehicle matches the preferred type, when one is requested
//   - driver is active and available
//   - driver is qualified to operate the vehicle's type
//
// Selection among compatible pairs:
//  1. a pair using the vehicle's designated preferred driver wins
//  2. otherwise the pair with the smallest capacity surplus over the request
//     wins (best fit, conserving large vehicles)
//  3. remaining ties go to the lexicographically smallest vehicle id, then
//     the earliest-registered driver, so matching is deterministic
type Matcher struct{}

// NewMatcher creates a Matcher ready for use.
func NewMatcher() Matcher {
	return Matcher{}
}

type candidate struct {
	vehicle   *vehicle.Vehicle
	driver    *driver.Driver
	surplus   int
	preferred bool
}

// betterThan reports whether c should be selected over other.
func (c candidate) betterThan(other candidate) bool {
	if c.preferred != other.preferred {
		return c.preferred
	}
	if c.surplus != other.surplus {
		return c.surplus < other.surplus
	}
	if cmp := compareIDs(c.vehicle.ID().String(), other.vehicle.ID().String()); cmp != 0 {
		return cmp < 0
	}
	if !c.driver.RegisteredAt().Equal(other.driver.RegisteredAt()) {
		return c.driver.RegisteredAt().Before(other.driver.RegisteredAt())
	}
	return compareIDs(c.driver.ID().String(), other.driver.ID().String()) < 0
}

func compareIDs(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Match selects the best compatible pair for the assignment. Selection does
// not mutate anything: the caller reserves the chosen vehicle and attaches
// both resources once it holds the appropriate row locks, and may call Match
// again with a narrower pool if it loses the claim to a concurrent writer.
//
// Returns ErrNoMatchFound when no pair satisfies the compatibility predicate.
func (m Matcher) Match(
	a *assignment.Assignment,
	vehicles []*vehicle.Vehicle,
	drivers []*driver.Driver,
) (*vehicle.Vehicle, *driver.Driver, error) {
	if err := a.Validate(); err != nil {
		return nil, nil, err
	}

	if a.Status() != assignment.StatusPendingAutoAssignment && a.Status() != assignment.StatusAutoAssignmentFailed {
		return nil, nil, errs.NewInvalidTransitionError(a.Status().String(), "match")
	}

	best, err := m.findBestPair(a, vehicles, drivers)
	if err != nil {
		return nil, nil, err
	}

	return best.vehicle, best.driver, nil
}

func (m Matcher) findBestPair(
	a *assignment.Assignment,
	vehicles []*vehicle.Vehicle,
	drivers []*driver.Driver,
) (*candidate, error) {
	req := a.Requirements()

	var best *candidate

	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return nil, err
		}

		if v.Status() != vehicle.StatusAvailable {
			continue
		}
		if req.PreferredType() != nil && v.Type() != *req.PreferredType() {
			continue
		}
		if !v.CanCarry(req.Passengers(), req.CargoKG()) {
			continue
		}

		for _, d := range drivers {
			if err := d.Validate(); err != nil {
				return nil, err
			}

			if !d.CanTakeWork() || !d.IsQualifiedFor(v.Type()) {
				continue
			}

			c := candidate{
				vehicle:   v,
				driver:    d,
				surplus:   capacitySurplus(v, req),
				preferred: isPreferredDriver(v, d),
			}

			if best == nil || c.betterThan(*best) {
				best = &c
			}
		}
	}

	if best == nil {
		return nil, ErrNoMatchFound
	}

	return best, nil
}

// capacitySurplus measures how much capacity the vehicle would waste on the
// request. Cargo surplus only counts when the request carries cargo.
func capacitySurplus(v *vehicle.Vehicle, req assignment.Requirements) int {
	surplus := v.PassengerCapacity() - req.Passengers()
	if req.HasCargo() && v.CargoCapacityKG() != nil {
		surplus += *v.CargoCapacityKG() - *req.CargoKG()
	}
	return surplus
}

func isPreferredDriver(v *vehicle.Vehicle, d *driver.Driver) bool {
	return v.PreferredDriverID() != nil && v.PreferredDriverID().IsEqual(d.ID())
}
