package validation_test

import (
	"testing"

	"buildmat-orders-api-server/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantCode string
	}{
		{"too short", "Xy7!", validation.CodePasswordTooShort},
		{"no uppercase", "mypass9!word", validation.CodePasswordNoUpper},
		{"no digit", "MyPass!word", validation.CodePasswordNoDigit},
		{"no special char", "MyPass9word", validation.CodePasswordNoSpecial},
		{"identical consecutive", "MyPaass9!x", validation.CodePasswordRepeatedChars},
		{"ascending digits", "MyPass123!", validation.CodePasswordSequence},
		{"ascending letters", "MyPabcss9!", validation.CodePasswordSequence},
		{"ascending letters mixed case", "MyPaBcDs9!", validation.CodePasswordSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidatePassword(tt.password)
			var codes []string
			for _, e := range errs {
				codes = append(codes, e.Code)
			}
			assert.Contains(t, codes, tt.wantCode)
		})
	}
}

func TestValidatePassword_Valid(t *testing.T) {
	assert.Empty(t, validation.ValidatePassword("Xk9!mQw2#r"))
}

func TestValidatePersonalRegistration(t *testing.T) {
	valid := validation.PersonalRegistrationInput{
		FullName:        "Maria Gonzalez",
		Email:           "maria@example.com",
		Password:        "Xk9!mQw2#r",
		ConfirmPassword: "Xk9!mQw2#r",
	}
	assert.Empty(t, validation.ValidatePersonalRegistration(valid))

	mismatched := valid
	mismatched.ConfirmPassword = "Xk9!mQw2#s"
	errs := validation.ValidatePersonalRegistration(mismatched)
	assert.Equal(t, []validation.FieldError{{Field: "confirmPassword", Code: validation.CodePasswordMismatch}}, errs)

	badEmail := valid
	badEmail.Email = "not-an-email"
	errs = validation.ValidatePersonalRegistration(badEmail)
	assert.Equal(t, []validation.FieldError{{Field: "email", Code: validation.CodeInvalidFormat}}, errs)
}

func TestValidateCompanyRegistration(t *testing.T) {
	valid := validation.CompanyRegistrationInput{
		CompanyName:     "Constructora del Norte",
		RFC:             "CNO010203AB1",
		Phone:           "8112345678",
		Email:           "compras@cnorte.mx",
		Password:        "Xk9!mQw2#r",
		ConfirmPassword: "Xk9!mQw2#r",
	}
	assert.Empty(t, validation.ValidateCompanyRegistration(valid))

	badRFC := valid
	badRFC.RFC = "invalid"
	errs := validation.ValidateCompanyRegistration(badRFC)
	assert.Equal(t, []validation.FieldError{{Field: "rfc", Code: validation.CodeInvalidFormat}}, errs)

	badPhone := valid
	badPhone.Phone = "12345"
	errs = validation.ValidateCompanyRegistration(badPhone)
	assert.Equal(t, []validation.FieldError{{Field: "phone", Code: validation.CodeInvalidFormat}}, errs)
}
