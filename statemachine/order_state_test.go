package statemachine

import (
	"testing"

	"ding-dong-api/models"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StateOpen, StateOf(&models.Order{}))
	assert.Equal(t, StatePaid, StateOf(&models.Order{Paid: true}))
	assert.Equal(t, StateDelivered, StateOf(&models.Order{Delivered: true}))
	assert.Equal(t, StateDelivered, StateOf(&models.Order{Paid: true, Delivered: true}))
}

func TestCanUpdate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CanUpdate(&models.Order{}))
	assert.NoError(t, CanUpdate(&models.Order{Paid: true}))
	assert.ErrorIs(t, CanUpdate(&models.Order{Delivered: true}), ErrOrderDelivered)
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, Terminal(StateOpen))
	assert.False(t, Terminal(StatePaid))
	assert.True(t, Terminal(StateDelivered))
}
