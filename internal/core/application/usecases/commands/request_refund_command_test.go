package commands_test

import (
	"testing"

	"ordercore/internal/core/application/usecases/commands"
	"ordercore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestRefundCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewRequestRefundCommand(orderID, "damaged in transit", nil)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "damaged in transit", cmd.Reason())
	assert.Nil(t, cmd.OwnerID())
}

func TestNewRequestRefundCommand_EmptyReasonAllowed(t *testing.T) {
	cmd, err := commands.NewRequestRefundCommand(kernel.NewUUID(), "", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Reason())
}

func TestNewRequestRefundCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRequestRefundCommand(kernel.UUID{}, "reason", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
