package validation

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	rfcRe   = regexp.MustCompile(`^[A-Z&Ñ]{3,4}\d{6}[A-V1-9][A-Z\d]{2}$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)

	hasUpperRe   = regexp.MustCompile(`[A-Z]`)
	hasDigitRe   = regexp.MustCompile(`\d`)
	hasSpecialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// PersonalRegistrationInput is a personal account sign-up.
type PersonalRegistrationInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// CompanyRegistrationInput is a company account sign-up. RFC is the
// Mexican federal taxpayer registry code.
type CompanyRegistrationInput struct {
	CompanyName     string
	RFC             string
	Phone           string
	Email           string
	Password        string
	ConfirmPassword string
}

func ValidatePersonalRegistration(in PersonalRegistrationInput) []FieldError {
	var errs []FieldError
	errs = append(errs, requireMinLen("fullName", in.FullName, 3)...)
	if !emailRe.MatchString(in.Email) {
		errs = append(errs, FieldError{Field: "email", Code: CodeInvalidFormat})
	}
	errs = append(errs, ValidatePassword(in.Password)...)
	if in.Password != in.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirmPassword", Code: CodePasswordMismatch})
	}
	return errs
}

func ValidateCompanyRegistration(in CompanyRegistrationInput) []FieldError {
	var errs []FieldError
	errs = append(errs, requireMinLen("companyName", in.CompanyName, 3)...)
	if !rfcRe.MatchString(in.RFC) {
		errs = append(errs, FieldError{Field: "rfc", Code: CodeInvalidFormat})
	}
	if !phoneRe.MatchString(in.Phone) {
		errs = append(errs, FieldError{Field: "phone", Code: CodeInvalidFormat})
	}
	if !emailRe.MatchString(in.Email) {
		errs = append(errs, FieldError{Field: "email", Code: CodeInvalidFormat})
	}
	errs = append(errs, ValidatePassword(in.Password)...)
	if in.Password != in.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirmPassword", Code: CodePasswordMismatch})
	}
	return errs
}

// Password policy codes.
const (
	CodePasswordTooShort      = "password_too_short"
	CodePasswordNoUpper       = "password_no_uppercase"
	CodePasswordNoDigit       = "password_no_digit"
	CodePasswordNoSpecial     = "password_no_special"
	CodePasswordRepeatedChars = "password_repeated_chars"
	CodePasswordSequence      = "password_sequence"
)

// ValidatePassword enforces the account password policy: at least 8
// characters with an uppercase letter, a digit and a special symbol,
// no identical consecutive characters, and no runs of three ascending
// characters such as "abc" or "123".
func ValidatePassword(password string) []FieldError {
	var errs []FieldError
	if len(password) < 8 {
		errs = append(errs, FieldError{Field: "password", Code: CodePasswordTooShort})
	}
	if !hasUpperRe.MatchString(password) {
		errs = append(errs, FieldError{Field: "password", Code: CodePasswordNoUpper})
	}
	if !hasDigitRe.MatchString(password) {
		errs = append(errs, FieldError{Field: "password", Code: CodePasswordNoDigit})
	}
	if !hasSpecialRe.MatchString(password) {
		errs = append(errs, FieldError{Field: "password", Code: CodePasswordNoSpecial})
	}
	if hasIdenticalConsecutive(password) {
		errs = append(errs, FieldError{Field: "password", Code: CodePasswordRepeatedChars})
	}
	if hasSequentialRun(password) {
		errs = append(errs, FieldError{Field: "password", Code: CodePasswordSequence})
	}
	return errs
}

func hasIdenticalConsecutive(s string) bool {
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			return true
		}
	}
	return false
}

// hasSequentialRun detects three ascending characters in a row,
// case-insensitive for letters.
func hasSequentialRun(s string) bool {
	runes := []rune(lower(s))
	for i := 0; i+2 < len(runes); i++ {
		if runes[i+1] == runes[i]+1 && runes[i+2] == runes[i]+2 {
			return true
		}
	}
	return false
}

func lower(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r + ('a' - 'A')
		}
	}
	return string(out)
}
