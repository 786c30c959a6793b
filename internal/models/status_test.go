package models_test

import (
	"testing"

	"buildmat-orders-api-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOfferedTargets_FromPending(t *testing.T) {
	targets := models.StatusPending.OfferedTargets()

	assert.Contains(t, targets, models.StatusInProgress)
	assert.Contains(t, targets, models.StatusCancelled)
	assert.NotContains(t, targets, models.StatusPending)
}

func TestOfferedTargets_FromInProgress(t *testing.T) {
	targets := models.StatusInProgress.OfferedTargets()

	assert.Contains(t, targets, models.StatusDelivered)
	assert.Contains(t, targets, models.StatusCancelled)
	assert.NotContains(t, targets, models.StatusPending)
	assert.NotContains(t, targets, models.StatusInProgress)
}

func TestOfferedTargets_TerminalStatesOfferNothing(t *testing.T) {
	assert.Empty(t, models.StatusDelivered.OfferedTargets())
	assert.Empty(t, models.StatusCancelled.OfferedTargets())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{models.StatusPending, models.StatusInProgress, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusPending, false},
		{models.StatusInProgress, models.StatusDelivered, true},
		{models.StatusInProgress, models.StatusCancelled, true},
		{models.StatusInProgress, models.StatusPending, false},
		{models.StatusDelivered, models.StatusInProgress, false},
		{models.StatusDelivered, models.StatusCancelled, false},
		{models.StatusCancelled, models.StatusPending, false},
		{models.StatusCancelled, models.StatusDelivered, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"from %s to %s", tt.from, tt.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, models.StatusPending.Terminal())
	assert.False(t, models.StatusInProgress.Terminal())
	assert.True(t, models.StatusDelivered.Terminal())
	assert.True(t, models.StatusCancelled.Terminal())
}

func TestStatusValid(t *testing.T) {
	for _, s := range models.AllStatuses {
		assert.True(t, s.Valid())
	}
	assert.False(t, models.OrderStatus("Shipped").Valid())
	assert.False(t, models.OrderStatus("").Valid())
}
