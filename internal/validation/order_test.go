package validation_test

import (
	"testing"
	"time"

	"buildmat-orders-api-server/internal/models"
	"buildmat-orders-api-server/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderInput() validation.OrderInput {
	start := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	return validation.OrderInput{
		Requester:    "Maria Gonzalez",
		Site:         "Torre Norte",
		Street:       "Av. Reforma",
		Number:       "120",
		Neighborhood: "Centro",
		PostalCode:   "06600",
		City:         "Monterrey",
		State:        "Nuevo Leon",
		PaymentType:  models.PaymentCash,
		Total:        580,
		Materials: []models.MaterialItem{
			{MaterialID: "cement-50kg", Description: "Cement 50kg bag", Quantity: 2, UnitPrice: 250},
			{MaterialID: "rebar-3-8", Description: "Rebar 3/8", Quantity: 1, UnitPrice: 80},
		},
		DeliveryWindowStart: start,
		DeliveryWindowEnd:   start.AddDate(0, 0, 5),
	}
}

func codesFor(errs []validation.FieldError, field string) []string {
	var codes []string
	for _, e := range errs {
		if e.Field == field {
			codes = append(codes, e.Code)
		}
	}
	return codes
}

func TestValidateOrder_Valid(t *testing.T) {
	assert.Empty(t, validation.ValidateOrder(validOrderInput()))
}

func TestValidateOrder_InvertedWindow(t *testing.T) {
	in := validOrderInput()
	in.DeliveryWindowEnd = in.DeliveryWindowStart.AddDate(0, 0, -1)

	errs := validation.ValidateOrder(in)
	assert.Contains(t, codesFor(errs, "deliveryWindowEnd"), validation.CodeWindowInverted)
}

func TestValidateOrder_EqualWindowDatesAllowed(t *testing.T) {
	in := validOrderInput()
	in.DeliveryWindowEnd = in.DeliveryWindowStart

	assert.Empty(t, validation.ValidateOrder(in))
}

func TestValidateOrder_CreditRequiresFrequency(t *testing.T) {
	in := validOrderInput()
	in.PaymentType = models.PaymentCredit
	in.CreditFrequency = ""

	errs := validation.ValidateOrder(in)
	assert.Contains(t, codesFor(errs, "creditFrequency"), validation.CodeCreditFreqMissing)

	in.CreditFrequency = models.CreditBiweekly
	assert.Empty(t, validation.ValidateOrder(in))
}

func TestValidateOrder_TotalMustMatchLineItems(t *testing.T) {
	in := validOrderInput()
	in.Total = 600

	errs := validation.ValidateOrder(in)
	require.Len(t, errs, 1)
	assert.Equal(t, validation.FieldError{Field: "total", Code: validation.CodeTotalMismatch}, errs[0])
}

func TestValidateOrder_EmptyMaterials(t *testing.T) {
	in := validOrderInput()
	in.Materials = nil
	in.Total = 0

	errs := validation.ValidateOrder(in)
	assert.Contains(t, codesFor(errs, "materials"), validation.CodeEmptyMaterials)
}

func TestValidateOrder_MaterialRules(t *testing.T) {
	in := validOrderInput()
	in.Materials = []models.MaterialItem{
		{MaterialID: "", Quantity: 0, UnitPrice: -1},
	}
	in.Total = 0

	errs := validation.ValidateOrder(in)
	assert.Contains(t, codesFor(errs, "materials.materialID"), validation.CodeRequired)
	assert.Contains(t, codesFor(errs, "materials.quantity"), validation.CodeQuantityMin)
	assert.Contains(t, codesFor(errs, "materials.unitPrice"), validation.CodePriceNegative)
}

func TestValidateOrder_PostalCode(t *testing.T) {
	in := validOrderInput()
	in.PostalCode = "123"

	errs := validation.ValidateOrder(in)
	assert.Contains(t, codesFor(errs, "postalCode"), validation.CodeInvalidFormat)
}

func TestValidateOrder_ShortNames(t *testing.T) {
	in := validOrderInput()
	in.Requester = "Jo"
	in.Site = ""

	errs := validation.ValidateOrder(in)
	assert.Contains(t, codesFor(errs, "requester"), validation.CodeTooShort)
	assert.Contains(t, codesFor(errs, "site"), validation.CodeRequired)
}

func TestValidateOrder_UnknownPaymentType(t *testing.T) {
	in := validOrderInput()
	in.PaymentType = models.PaymentType("Barter")

	errs := validation.ValidateOrder(in)
	assert.Contains(t, codesFor(errs, "paymentType"), validation.CodeInvalidValue)
}
