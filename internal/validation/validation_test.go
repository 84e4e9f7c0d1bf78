package validation

import (
	"net/url"
	"strings"
	"testing"
)

func TestValidate_CollectsAllFailures(t *testing.T) {
	errs := Validate(Fields{"name": "  ", "email": "nope", "message": ""},
		Required("name", "Name is required"),
		Email("email", "Valid email is required"),
		Required("message", "Message is required"),
	)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	want := []string{"name", "email", "message"}
	for i, f := range want {
		if errs[i].Field != f {
			t.Errorf("errs[%d]: expected field %q, got %q", i, f, errs[i].Field)
		}
	}
}

func TestValidate_NoFailuresReturnsNil(t *testing.T) {
	errs := Validate(Fields{"email": "a@b.com"}, Email("email", "bad"))
	if errs != nil {
		t.Errorf("expected nil, got %v", errs)
	}
}

func TestValidate_TrimsBeforeChecks(t *testing.T) {
	errs := Validate(Fields{"email": "  a@b.com  "}, Email("email", "bad"))
	if errs != nil {
		t.Errorf("expected surrounding whitespace to be ignored, got %v", errs)
	}
}

func TestExact_KeepsWhitespace(t *testing.T) {
	rules := []Rule{
		Exact(MinLength("password", 6, "too short")),
		Exact(Required("current", "required")),
	}
	if errs := Validate(Fields{"password": "      ", "current": " "}, rules...); errs != nil {
		t.Errorf("expected whitespace to count, got %v", errs)
	}
	errs := Validate(Fields{"password": " abc ", "current": ""}, rules...)
	if !errs.Has("password") || !errs.Has("current") {
		t.Errorf("expected both rules to fail, got %v", errs)
	}
	// Without Exact the same value is trimmed first.
	if errs := Validate(Fields{"password": "      "}, MinLength("password", 6, "too short")); !errs.Has("password") {
		t.Errorf("expected trimmed value to fail, got %v", errs)
	}
}

func TestValidate_URLValuesSource(t *testing.T) {
	form := url.Values{}
	form.Set("position", "Designer")
	if errs := Validate(form, Required("position", "Position is required"), Required("phone", "Phone is required")); !errs.Has("phone") || errs.Has("position") {
		t.Errorf("unexpected result: %v", errs)
	}
}

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"a@b.com":           true,
		"first.last@sub.io": true,
		"a@b":               false,
		"@b.com":            false,
		"a b@c.com":         false,
		"":                  false,
		"user@@example.com": false,
	}
	for in, want := range cases {
		if got := IsEmail(in); got != want {
			t.Errorf("IsEmail(%q): want %v, got %v", in, want, got)
		}
	}
}

func TestOneOf(t *testing.T) {
	r := OneOf("market", "Invalid market", "us", "europe", "middle_east")
	if errs := Validate(Fields{"market": "europe"}, r); errs != nil {
		t.Errorf("expected europe to pass, got %v", errs)
	}
	if errs := Validate(Fields{"market": "asia"}, r); !errs.Has("market") {
		t.Error("expected asia to fail")
	}
	if errs := Validate(Fields{}, r); !errs.Has("market") {
		t.Error("expected missing value to fail")
	}
}

func TestMinMaxLength(t *testing.T) {
	min := MinLength("password", 6, "too short")
	if errs := Validate(Fields{"password": "12345"}, min); !errs.Has("password") {
		t.Error("expected 5 chars to fail MinLength(6)")
	}
	if errs := Validate(Fields{"password": "123456"}, min); errs != nil {
		t.Errorf("expected 6 chars to pass, got %v", errs)
	}

	max := MaxLength("excerpt", 3, "too long")
	if errs := Validate(Fields{"excerpt": "äöü"}, max); errs != nil {
		t.Errorf("expected 3 runes to pass, got %v", errs)
	}
	if errs := Validate(Fields{"excerpt": strings.Repeat("x", 4)}, max); !errs.Has("excerpt") {
		t.Error("expected 4 chars to fail MaxLength(3)")
	}
}

func TestOptional(t *testing.T) {
	r := Optional(Email("email", "bad"))
	if errs := Validate(Fields{}, r); errs != nil {
		t.Errorf("expected empty optional field to pass, got %v", errs)
	}
	if errs := Validate(Fields{"email": "nope"}, r); !errs.Has("email") {
		t.Error("expected a present but invalid optional field to fail")
	}
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{{Field: "a", Message: "x"}, {Field: "b", Message: "y"}}
	if got := errs.Error(); got != "validation failed: a: x; b: y" {
		t.Errorf("unexpected message %q", got)
	}
}
