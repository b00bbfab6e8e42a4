package commands_test

import (
	"context"
	"errors"
	"testing"

	"printship/internal/core/application/usecases/commands"
	"printship/internal/core/domain/model/order"
	"printship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkLabelPrintedCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	aggregate := labeledOrder(t)
	cmd, _ := commands.NewMarkLabelPrintedCommand(42)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkLabelPrintedCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Printed, aggregate.LabelStatus())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMarkLabelPrintedCommandHandler_Handle_NoLabelIsRefused(t *testing.T) {
	ctx := context.Background()
	aggregate := unlabeledOrder(t)
	cmd, _ := commands.NewMarkLabelPrintedCommand(42)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkLabelPrintedCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.NotCreated, aggregate.LabelStatus())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkLabelPrintedCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewMarkLabelPrintedCommand(404)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("orderID", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkLabelPrintedCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkLabelPrintedCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := context.Background()
	aggregate := labeledOrder(t)
	cmd, _ := commands.NewMarkLabelPrintedCommand(42)
	commitErr := errors.New("commit failed")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(commitErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkLabelPrintedCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commitErr)
}

func TestMarkLabelPrintedCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	h := commands.NewMarkLabelPrintedCommandHandler(factory)
	err := h.Handle(context.Background(), commands.MarkLabelPrintedCommand{})

	require.ErrorIs(t, err, commands.ErrMarkLabelPrintedCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
