package validation

import "testing"

func TestValidateStruct(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=2"`
	}

	v := NewValidator()

	if err := v.ValidateStruct(form{Email: "user@campus.ac.id", Name: "Ana"}); err != nil {
		t.Errorf("ValidateStruct() error = %v for valid input", err)
	}

	if err := v.ValidateStruct(form{Email: "not-an-email", Name: "A"}); err == nil {
		t.Error("expected validation errors for invalid input")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
	}

	v := NewValidator()
	err := v.ValidateStruct(form{Email: "nope"})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	formatted := FormatValidationErrors(err)
	if formatted["email"] != "Invalid email format" {
		t.Errorf("formatted[email] = %q, want %q", formatted["email"], "Invalid email format")
	}
}

func TestSanitizeString(t *testing.T) {
	got := SanitizeString("  hello\x00world  ")
	if got != "helloworld" {
		t.Errorf("SanitizeString() = %q, want %q", got, "helloworld")
	}
}
