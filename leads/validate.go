// Package leads validates and normalizes lead form submissions before they
// are handed to the submission sink.
package leads

import (
	"regexp"
	"strings"

	"github.com/halalsenpai/electricwheels/models"
)

var (
	nonDigits = regexp.MustCompile(`\D`)

	// Pakistani mobile numbers, matched against the digits-only form:
	// bare 3XXXXXXXXX (10 digits), local 03XXXXXXXXX (11), or
	// country-coded 923XXXXXXXXX (12). The 3 after the prefix is the
	// mobile discriminator.
	pkMobile = regexp.MustCompile(`^(92|0)?3[0-9]{9}$`)
)

// NormalizePhone strips formatting, validates the regional mobile pattern
// and rewrites the number into canonical +92XXXXXXXXXX form. Returns false
// when the input is not a valid Pakistani mobile number.
func NormalizePhone(raw string) (string, bool) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if !pkMobile.MatchString(digits) {
		return "", false
	}

	switch {
	case strings.HasPrefix(digits, "92"):
		return "+" + digits, true
	case strings.HasPrefix(digits, "0"):
		return "+92" + digits[1:], true
	default:
		return "+92" + digits, true
	}
}

// Validate checks a raw lead request and returns the normalized copy.
// On failure the returned FieldErrors names every offending field; the
// request is only usable when the error map is empty.
func Validate(req models.LeadRequest) (models.LeadRequest, models.FieldErrors) {
	errs := models.FieldErrors{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len([]rune(name)) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		errs["phone"] = "Phone number is required"
	} else if normalized, ok := NormalizePhone(phone); !ok {
		errs["phone"] = "Please enter a valid Pakistani phone number (e.g., 03XX-XXXXXXX)"
	} else {
		phone = normalized
	}

	if req.Locale != "" && req.Locale != "en" && req.Locale != "ur" {
		errs["locale"] = "Locale must be 'en' or 'ur'"
	}

	if len(errs) > 0 {
		return models.LeadRequest{}, errs
	}

	normalized := req
	normalized.Name = name
	normalized.Phone = phone
	normalized.Message = strings.TrimSpace(req.Message)
	return normalized, nil
}
