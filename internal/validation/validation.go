// Package validation holds the field-level business rules for incoming
// requests, decoupled from any form or transport layer. Each validator
// returns a list of tagged field errors; an empty list means valid.
package validation

// FieldError tags a single invalid field with a machine-readable code.
type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

// Error codes shared across validators.
const (
	CodeRequired          = "required"
	CodeTooShort          = "too_short"
	CodeInvalidFormat     = "invalid_format"
	CodeInvalidValue      = "invalid_value"
	CodeWindowInverted    = "window_inverted"
	CodeQuantityMin       = "quantity_min"
	CodePriceNegative     = "price_negative"
	CodeEmptyMaterials    = "empty_materials"
	CodeTotalMismatch     = "total_mismatch"
	CodeCreditFreqMissing = "credit_frequency_required"
	CodePasswordMismatch  = "password_mismatch"
)
