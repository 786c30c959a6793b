package validation

import (
	"math"
	"regexp"
	"time"

	"buildmat-orders-api-server/internal/models"
)

var postalCodeRe = regexp.MustCompile(`^\d{5}$`)

// OrderInput is the validatable shape of an order submission.
type OrderInput struct {
	Requester           string
	Site                string
	Street              string
	Number              string
	Neighborhood        string
	PostalCode          string
	City                string
	State               string
	PaymentType         models.PaymentType
	CreditFrequency     models.CreditFrequency
	Total               float64
	Materials           []models.MaterialItem
	DeliveryWindowStart time.Time
	DeliveryWindowEnd   time.Time
}

// ValidateOrder applies the order submission rules and returns every
// violation found. Dates are assumed well-formed; parsing is the
// transport layer's concern.
func ValidateOrder(in OrderInput) []FieldError {
	var errs []FieldError

	errs = append(errs, requireMinLen("requester", in.Requester, 3)...)
	errs = append(errs, requireMinLen("site", in.Site, 3)...)
	errs = append(errs, requireMinLen("street", in.Street, 3)...)
	errs = append(errs, requireMinLen("neighborhood", in.Neighborhood, 3)...)
	if in.Number == "" {
		errs = append(errs, FieldError{Field: "number", Code: CodeRequired})
	}
	if !postalCodeRe.MatchString(in.PostalCode) {
		errs = append(errs, FieldError{Field: "postalCode", Code: CodeInvalidFormat})
	}
	if in.City == "" {
		errs = append(errs, FieldError{Field: "city", Code: CodeRequired})
	}
	if in.State == "" {
		errs = append(errs, FieldError{Field: "state", Code: CodeRequired})
	}

	if !in.PaymentType.Valid() {
		errs = append(errs, FieldError{Field: "paymentType", Code: CodeInvalidValue})
	}
	if in.PaymentType == models.PaymentCredit && in.CreditFrequency == "" {
		errs = append(errs, FieldError{Field: "creditFrequency", Code: CodeCreditFreqMissing})
	}
	if in.CreditFrequency != "" && !in.CreditFrequency.Valid() {
		errs = append(errs, FieldError{Field: "creditFrequency", Code: CodeInvalidValue})
	}

	if in.DeliveryWindowStart.IsZero() {
		errs = append(errs, FieldError{Field: "deliveryWindowStart", Code: CodeRequired})
	}
	if in.DeliveryWindowEnd.IsZero() {
		errs = append(errs, FieldError{Field: "deliveryWindowEnd", Code: CodeRequired})
	} else if in.DeliveryWindowEnd.Before(in.DeliveryWindowStart) {
		errs = append(errs, FieldError{Field: "deliveryWindowEnd", Code: CodeWindowInverted})
	}

	if len(in.Materials) == 0 {
		errs = append(errs, FieldError{Field: "materials", Code: CodeEmptyMaterials})
	}
	for _, item := range in.Materials {
		if item.MaterialID == "" {
			errs = append(errs, FieldError{Field: "materials.materialID", Code: CodeRequired})
		}
		if item.Quantity < 1 {
			errs = append(errs, FieldError{Field: "materials.quantity", Code: CodeQuantityMin})
		}
		if item.UnitPrice < 0 {
			errs = append(errs, FieldError{Field: "materials.unitPrice", Code: CodePriceNegative})
		}
	}

	// The stored total is derived from the line items and must match.
	if math.Abs(in.Total-models.OrderTotal(in.Materials)) > 1e-9 {
		errs = append(errs, FieldError{Field: "total", Code: CodeTotalMismatch})
	}

	return errs
}

func requireMinLen(field, value string, min int) []FieldError {
	if value == "" {
		return []FieldError{{Field: field, Code: CodeRequired}}
	}
	if len([]rune(value)) < min {
		return []FieldError{{Field: field, Code: CodeTooShort}}
	}
	return nil
}
