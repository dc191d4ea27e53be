package application

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	tldRe   = regexp.MustCompile(`\.([a-zA-Z]{2,})$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]+$`)
)

// NormalizeURL prefixes https:// onto scheme-less input and requires the
// hostname to end in a dot-separated TLD, so "github.com/foo" passes while
// "not a url" does not.
func NormalizeURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	normalized := raw
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		normalized = "https://" + raw
	}

	u, err := url.Parse(normalized)
	if err != nil || u.Host == "" {
		return normalized, false
	}
	if !tldRe.MatchString(u.Hostname()) {
		return normalized, false
	}
	return normalized, true
}

func ValidPhoneNumber(phone string) bool {
	return phoneRe.MatchString(phone)
}

// SubmitInput carries everything the applicant supplies. Identity fields
// (user id, email) come from the verified session, never from the request
// body.
type SubmitInput struct {
	ApplicantName string   `validate:"required,min=2"`
	Message       string   `validate:"required,min=1,max=500"`
	ProfileLinks  []string `validate:"omitempty,dive,required"`
	PhoneNumber   *string
}

// FieldErrors maps field name to a human-readable message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for f, m := range e {
		parts = append(parts, f+": "+m)
	}
	return strings.Join(parts, "; ")
}

// validateSubmit checks every field and normalizes profile links in place.
// Returns nil when the input is clean; no store access happens here.
func validateSubmit(email string, in *SubmitInput) FieldErrors {
	fe := FieldErrors{}

	if err := validate.Var(email, "required,email"); err != nil {
		fe["applicant_email"] = "enter a valid email address"
	}

	in.ApplicantName = strings.TrimSpace(in.ApplicantName)
	in.Message = strings.TrimSpace(in.Message)

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, ve := range verrs {
				switch ve.Field() {
				case "ApplicantName":
					fe["applicant_name"] = "name must be at least 2 characters"
				case "Message":
					fe["application_message"] = "message must be 1-500 characters"
				}
			}
		} else {
			fe["_form"] = "invalid input"
		}
	}

	normalized := make([]string, 0, len(in.ProfileLinks))
	for _, link := range in.ProfileLinks {
		n, ok := NormalizeURL(link)
		if !ok {
			fe["profile_links"] = "each profile link must be a valid URL"
			continue
		}
		normalized = append(normalized, n)
	}
	in.ProfileLinks = normalized

	if in.PhoneNumber != nil {
		p := strings.TrimSpace(*in.PhoneNumber)
		if p == "" {
			in.PhoneNumber = nil
		} else if !ValidPhoneNumber(p) {
			fe["phone_number"] = "phone number may contain digits and a leading + only"
		} else {
			in.PhoneNumber = &p
		}
	}

	if len(fe) > 0 {
		return fe
	}
	return nil
}
