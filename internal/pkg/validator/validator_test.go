package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:00", "18:00", "23:59"}
	invalid := []string{"24:00", "09:60", "9:00", "09:00:00", "", "nine"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"01.02.2025", "31.12.2024"}
	invalid := []string{"32.01.2025", "2025-02-01", "1.2.2025", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidSortDirection(t *testing.T) {
	for _, s := range []string{"", "asc", "desc"} {
		if !IsValidSortDirection(s) {
			t.Errorf("IsValidSortDirection(%q) = false, want true", s)
		}
	}
	if IsValidSortDirection("up") {
		t.Error(`IsValidSortDirection("up") = true, want false`)
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start", Message: "start must be a HH:MM clock time"},
		{Field: "end", Message: "end must be a HH:MM clock time"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["start"] == "" || m["end"] == "" {
		t.Errorf("ToMap() = %v, want both fields present", m)
	}
	if errs.Error() == "" {
		t.Error("Error() must describe the failing fields")
	}
}
