package assignment

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Status represents the lifecycle state of an assignment. It implements a
// state machine with defined transitions; every transition method returns the
// new status or an InvalidTransitionError naming the source status and the
// attempted command.
//
// State transitions:
//
//	pending_auto_assignment ──schedule──> scheduled ──start──> active ──complete──> completed
//	        │                                 │                   │
//	        │fail                             │cancel             │cancel
//	        v                                 v                   v
//	auto_assignment_failed ──schedule──>  cancelled           cancelled
//	        │cancel
//	        v
//	    cancelled
//
// completed and cancelled are terminal. auto_assignment_failed is not: it may
// be scheduled again by a matching retry or manual resource attachment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPendingAutoAssignment is the initial status of an assignment
	// created without resources, waiting for the matching engine.
	StatusPendingAutoAssignment

	// StatusScheduled means resources are attached and the service has not
	// started yet.
	StatusScheduled

	// StatusActive means the service is running.
	StatusActive

	// StatusCompleted means the service finished. Terminal.
	StatusCompleted

	// StatusCancelled means the assignment was called off. Terminal.
	StatusCancelled

	// StatusAutoAssignmentFailed means the matching engine found no
	// compatible resources. Surfaced for manual intervention; retryable.
	StatusAutoAssignmentFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:               "unknown",
		StatusPendingAutoAssignment: "pending_auto_assignment",
		StatusScheduled:             "scheduled",
		StatusActive:                "active",
		StatusCompleted:             "completed",
		StatusCancelled:             "cancelled",
		StatusAutoAssignmentFailed:  "auto_assignment_failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPendingAutoAssignment: "pending_auto_assignment",
		StatusScheduled:             "scheduled",
		StatusActive:                "active",
		StatusCompleted:             "completed",
		StatusCancelled:             "cancelled",
		StatusAutoAssignmentFailed:  "auto_assignment_failed",
	}
}

// Validate reports whether the status is a member of the closed enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("assignment status",
			fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Schedule transitions to scheduled. Allowed from pending_auto_assignment
// (matching succeeded) and auto_assignment_failed (retry or manual
// attachment).
func (s Status) Schedule() (Status, error) {
	if s != StatusPendingAutoAssignment && s != StatusAutoAssignmentFailed {
		return 0, errs.NewInvalidTransitionError(s.String(), "schedule")
	}
	return StatusScheduled, nil
}

// Start transitions to active. Allowed only from scheduled.
func (s Status) Start() (Status, error) {
	if s != StatusScheduled {
		return 0, errs.NewInvalidTransitionError(s.String(), "start")
	}
	return StatusActive, nil
}

// Complete transitions to completed. Allowed only from active.
func (s Status) Complete() (Status, error) {
	if s != StatusActive {
		return 0, errs.NewInvalidTransitionError(s.String(), "complete")
	}
	return StatusCompleted, nil
}

// Cancel transitions to cancelled. Allowed from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionError(s.String(), "cancel")
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError(s.String(), "cancel")
	}
	return StatusCancelled, nil
}

// FailAutoAssignment transitions to auto_assignment_failed. Allowed only from
// pending_auto_assignment.
func (s Status) FailAutoAssignment() (Status, error) {
	if s != StatusPendingAutoAssignment {
		return 0, errs.NewInvalidTransitionError(s.String(), "fail_auto_assignment")
	}
	return StatusAutoAssignmentFailed, nil
}

// StatusFromString parses an assignment status received from an external caller.
func StatusFromString(str string) (Status, error) {
	for s, v := range getValidStatusStrings() {
		if v == str {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("assignment status",
		fmt.Errorf("%q is not a valid assignment status", str))
}
