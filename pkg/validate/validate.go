package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email normalizes and validates an email address, returning it
// lowercased and trimmed.
func Email(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("%w: invalid email format", autherror.ErrInvalidInput)
	}

	return email, nil
}

// Phone parses a phone number against the default region, verifies it is
// a valid number from an allowed region, and returns it in E.164 format.
func Phone(phone, defaultRegion string, allowedRegions []string) (string, error) {
	parsed, err := phonenumbers.Parse(strings.TrimSpace(phone), defaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: invalid phone number format", autherror.ErrInvalidInput)
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("%w: invalid phone number", autherror.ErrInvalidInput)
	}

	region := phonenumbers.GetRegionCodeForNumber(parsed)
	allowed := false
	for _, r := range allowedRegions {
		if r == region {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("%w: phone numbers from %s are not supported", autherror.ErrInvalidInput, region)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// FullName trims and validates a display-able full name.
func FullName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return "", fmt.Errorf("%w: full name must be at least 2 characters", autherror.ErrInvalidInput)
	}

	return name, nil
}
