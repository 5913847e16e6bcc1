package commands_test

import (
	"context"
	"testing"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func updateCommandForID(t *testing.T, a *assignment.Assignment) commands.UpdateAssignmentCommand {
	t.Helper()
	cmd, err := commands.NewUpdateAssignmentCommand(a.ID(), nil, nil, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	return cmd
}

func expectFieldUpdate(ctx context.Context, a *assignment.Assignment) (*MockAssignmentRepository, *MockUoW) {
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	return assignmentRepo, uow
}

func TestUpdateAssignmentCommandHandler_Handle_ServiceAndRequirementChanges(t *testing.T) {
	ctx := t.Context()

	a := buildPendingAssignment(t)
	newStart := time.Now().Add(4 * time.Hour).Truncate(time.Second)
	preferred := vehicle.TypeCargoTruck

	cmd := updateCommandForID(t, a).
		WithServiceType(assignment.ServiceSupplies).
		WithRequestedStart(newStart).
		WithRequirements(intPointer(5), intPointer(300), &preferred, stringPointer("forklift on site"))

	_, uow := expectFieldUpdate(ctx, a)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateAssignmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, assignment.ServiceSupplies, a.ServiceType())
	assert.True(t, a.RequestedStart().Equal(newStart))
	req := a.Requirements()
	assert.Equal(t, 5, req.Passengers())
	require.NotNil(t, req.CargoKG())
	assert.Equal(t, 300, *req.CargoKG())
	require.NotNil(t, req.PreferredType())
	assert.Equal(t, vehicle.TypeCargoTruck, *req.PreferredType())
	assert.Equal(t, "forklift on site", req.Special())
	uow.AssertExpectations(t)
}

func TestUpdateAssignmentCommandHandler_Handle_PartialRequirementChangeKeepsRest(t *testing.T) {
	ctx := t.Context()

	a := buildPendingAssignment(t) // two passengers, no cargo
	cmd := updateCommandForID(t, a).
		WithRequirements(nil, intPointer(120), nil, nil)

	_, uow := expectFieldUpdate(ctx, a)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateAssignmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	req := a.Requirements()
	assert.Equal(t, 2, req.Passengers())
	require.NotNil(t, req.CargoKG())
	assert.Equal(t, 120, *req.CargoKG())
	assert.Nil(t, req.PreferredType())
}

func TestUpdateAssignmentCommandHandler_Handle_WindowMovedAsAWhole(t *testing.T) {
	ctx := t.Context()

	a := buildPendingAssignment(t)
	require.NoError(t, a.SetExpectedEnd(a.RequestedStart().Add(time.Hour)))

	// The whole window jumps past the old expected end.
	newStart := a.RequestedStart().Add(6 * time.Hour)
	newEnd := newStart.Add(2 * time.Hour)

	cmd, err := commands.NewUpdateAssignmentCommand(a.ID(), nil, nil, nil, nil, &newEnd, nil, nil, nil)
	require.NoError(t, err)
	cmd = cmd.WithRequestedStart(newStart)

	_, uow := expectFieldUpdate(ctx, a)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateAssignmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, a.RequestedStart().Equal(newStart))
	require.NotNil(t, a.ExpectedEnd())
	assert.True(t, a.ExpectedEnd().Equal(newEnd))
}

func TestUpdateAssignmentCommandHandler_Handle_InvalidRequirementsRejected(t *testing.T) {
	ctx := t.Context()

	a := buildPendingAssignment(t)
	cmd := updateCommandForID(t, a).WithRequirements(intPointer(0), nil, nil, nil)

	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateAssignmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 2, a.Requirements().Passengers(), "requirements must be untouched")
	assignmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func intPointer(v int) *int {
	return &v
}

func stringPointer(v string) *string {
	return &v
}
