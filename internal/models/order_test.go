package models_test

import (
	"testing"

	"buildmat-orders-api-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	items := []models.MaterialItem{
		{MaterialID: "cement-50kg", Quantity: 2, UnitPrice: 250},
		{MaterialID: "rebar-3-8", Quantity: 1, UnitPrice: 80},
	}

	assert.Equal(t, 580.0, models.OrderTotal(items))
}

func TestOrderTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, models.OrderTotal(nil))
}

func TestPaymentTypeValid(t *testing.T) {
	assert.True(t, models.PaymentCash.Valid())
	assert.True(t, models.PaymentCredit.Valid())
	assert.False(t, models.PaymentType("Check").Valid())
}

func TestCreditFrequencyValid(t *testing.T) {
	assert.True(t, models.CreditWeekly.Valid())
	assert.True(t, models.CreditBiweekly.Valid())
	assert.True(t, models.CreditMonthly.Valid())
	assert.False(t, models.CreditFrequency("Yearly").Valid())
}
