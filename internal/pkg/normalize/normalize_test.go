package normalize

import (
	"testing"
)

func TestCompany(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`ТОО "AVC Production"`, "AVC Production"},
		{`TOO "AVC Групп"`, "AVC Групп"},
		{"AVC Production", "AVC Production"},
		{"  AVC   Production  ", "AVC Production"},
		{`"First Delivery"`, "First Delivery"},
		{"", ""},
	}
	for _, c := range cases {
		got := Company(c.input)
		if got != c.want {
			t.Errorf("Company(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestCompanyKeyMatchesAcrossForms(t *testing.T) {
	// The same company arrives as 'ТОО "X"' from the directory and as a
	// bare file-name prefix from uploads.
	if CompanyKey(`ТОО "AVC Production"`) != CompanyKey("avc production") {
		t.Error("legal-form prefix and casing must not split a company identity")
	}
	if CompanyKey("AVC Групп") == CompanyKey("AVC Production") {
		t.Error("distinct companies must keep distinct keys")
	}
}

func TestEmployeeName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Иванов Иван Петрович", "иванов иван петрович"},
		{"  Иванов   Иван  ", "иванов иван"},
		{"ШТАРК НИКОЛАЙ ОЛЕГОВИЧ", "штарк николай олегович"},
	}
	for _, c := range cases {
		got := EmployeeName(c.input)
		if got != c.want {
			t.Errorf("EmployeeName(%q) = %q, want %q", c.input, got, c.want)
		}
	}

	// A combining-mark spelling and the precomposed character must map to
	// the same identity.
	composed := "Й"          // U+0419
	decomposed := "Й" // И + combining breve
	if EmployeeName(composed) != EmployeeName(decomposed) {
		t.Error("NFC normalization must unify composed and decomposed forms")
	}
}

func TestShortName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Иванов Иван Петрович", "Иванов И. П."},
		{"Иванов Иван", "Иванов И."},
		{"Иванов", "Иванов"},
		{"", ""},
	}
	for _, c := range cases {
		got := ShortName(c.input)
		if got != c.want {
			t.Errorf("ShortName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestCollatorOrdersCyrillic(t *testing.T) {
	c := Collator()
	if !(c.CompareString("Абильдинов", "Баталов") < 0) {
		t.Error("А must precede Б")
	}
	if !(c.CompareString("Ёлкин", "Жуков") < 0) {
		t.Error("Ё must precede Ж")
	}
}
