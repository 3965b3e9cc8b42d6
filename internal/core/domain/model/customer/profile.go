package customer

import (
	"regexp"
	"strings"

	"dashboard/internal/pkg/errs"
)

const mobilePrefix = "+60"

var (
	mobileNumberPattern = regexp.MustCompile(`^\+601(1\d{8}|[02-9]\d{7})$`)
	emailPattern        = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$")
	nonDigits           = regexp.MustCompile(`\D`)
)

// Profile is the validated input for registering a customer.
type Profile struct {
	DisplayName  string
	MobileNumber string
	Email        string
	Address      string
}

// NewProfile trims the fields and normalises the mobile number to its
// international form, e.g. "012-345 6789" becomes "+60123456789".
func NewProfile(displayName, mobileNumber, email, address string) (Profile, error) {
	displayName = strings.TrimSpace(displayName)
	email = strings.TrimSpace(email)
	address = strings.TrimSpace(address)

	if displayName == "" {
		return Profile{}, errs.NewValueIsRequiredError("please fill in your name first")
	}
	if strings.TrimSpace(mobileNumber) == "" {
		return Profile{}, errs.NewValueIsRequiredError("please fill in mobile number first")
	}
	mobileNumber = NormalizeMobileNumber(mobileNumber)
	if !mobileNumberPattern.MatchString(mobileNumber) {
		return Profile{}, errs.NewValueIsInvalidError("please complete mobile number first")
	}
	if email == "" {
		return Profile{}, errs.NewValueIsRequiredError("please fill in your email address first")
	}
	if !emailPattern.MatchString(email) {
		return Profile{}, errs.NewValueIsInvalidError("please complete your email address first")
	}
	return Profile{
		DisplayName:  displayName,
		MobileNumber: mobileNumber,
		Email:        email,
		Address:      address,
	}, nil
}

// NormalizeMobileNumber keeps the digits of a local number and prefixes the
// country code. A leading trunk zero is dropped.
func NormalizeMobileNumber(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), mobilePrefix)
	digits := nonDigits.ReplaceAllString(s, "")
	digits = strings.TrimPrefix(digits, "0")
	return mobilePrefix + digits
}
