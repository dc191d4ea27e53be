package application

import (
	"strings"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"github.com/foo", "https://github.com/foo", true},
		{"https://github.com/foo", "https://github.com/foo", true},
		{"http://example.com", "http://example.com", true},
		{"  linkedin.com/in/someone  ", "https://linkedin.com/in/someone", true},
		{"not a url", "", false},
		{"localhost", "", false},
		{"just-a-hostname", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeURL(c.in)
		if ok != c.valid {
			t.Errorf("NormalizeURL(%q) valid = %v, want %v", c.in, ok, c.valid)
			continue
		}
		if c.valid && got != c.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidPhoneNumber(t *testing.T) {
	valid := []string{"+4915112345678", "0612345678", "15551234567"}
	for _, p := range valid {
		if !ValidPhoneNumber(p) {
			t.Errorf("ValidPhoneNumber(%q) should be true", p)
		}
	}
	invalid := []string{"+49 151 1234", "phone", "123-456", "++49123", "12+34"}
	for _, p := range invalid {
		if ValidPhoneNumber(p) {
			t.Errorf("ValidPhoneNumber(%q) should be false", p)
		}
	}
}

func TestValidateSubmit_CleanInput(t *testing.T) {
	phone := "+4915112345678"
	in := SubmitInput{
		ApplicantName: "  Ada Lovelace  ",
		Message:       "I'd love to help build this",
		ProfileLinks:  []string{"github.com/ada"},
		PhoneNumber:   &phone,
	}
	fe := validateSubmit("a@x.com", &in)
	if fe != nil {
		t.Fatalf("validateSubmit returned errors for clean input: %v", fe)
	}
	if in.ApplicantName != "Ada Lovelace" {
		t.Errorf("name not trimmed: %q", in.ApplicantName)
	}
	if len(in.ProfileLinks) != 1 || in.ProfileLinks[0] != "https://github.com/ada" {
		t.Errorf("profile link not normalized: %v", in.ProfileLinks)
	}
}

func TestValidateSubmit_FieldErrors(t *testing.T) {
	cases := []struct {
		name  string
		email string
		in    SubmitInput
		field string
	}{
		{"bad email", "nope", SubmitInput{ApplicantName: "Ada", Message: "hi"}, "applicant_email"},
		{"short name", "a@x.com", SubmitInput{ApplicantName: "A", Message: "hi"}, "applicant_name"},
		{"empty message", "a@x.com", SubmitInput{ApplicantName: "Ada", Message: ""}, "application_message"},
		{"long message", "a@x.com", SubmitInput{ApplicantName: "Ada", Message: strings.Repeat("x", 501)}, "application_message"},
		{"bad link", "a@x.com", SubmitInput{ApplicantName: "Ada", Message: "hi", ProfileLinks: []string{"not a url"}}, "profile_links"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fe := validateSubmit(c.email, &c.in)
			if fe == nil {
				t.Fatal("expected field errors, got none")
			}
			if _, ok := fe[c.field]; !ok {
				t.Errorf("expected error on field %q, got %v", c.field, fe)
			}
		})
	}
}

func TestValidateSubmit_MessageBoundaries(t *testing.T) {
	for _, n := range []int{1, 500} {
		in := SubmitInput{ApplicantName: "Ada", Message: strings.Repeat("x", n)}
		if fe := validateSubmit("a@x.com", &in); fe != nil {
			t.Errorf("message of length %d should validate, got %v", n, fe)
		}
	}
}

func TestValidateSubmit_PhoneCleared(t *testing.T) {
	blank := "   "
	in := SubmitInput{ApplicantName: "Ada", Message: "hi", PhoneNumber: &blank}
	if fe := validateSubmit("a@x.com", &in); fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if in.PhoneNumber != nil {
		t.Error("blank phone number should be cleared to nil")
	}

	bad := "call me"
	in = SubmitInput{ApplicantName: "Ada", Message: "hi", PhoneNumber: &bad}
	fe := validateSubmit("a@x.com", &in)
	if fe == nil {
		t.Fatal("expected field errors for bad phone")
	}
	if _, ok := fe["phone_number"]; !ok {
		t.Errorf("expected error on phone_number, got %v", fe)
	}
}
