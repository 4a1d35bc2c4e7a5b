package domain

import "testing"

func TestNewLabel_DerivesIDN(t *testing.T) {
	tests := []struct {
		ascii string
		idn   bool
	}{
		{"example", false},
		{"xn--pple-43d", true},
		{"XN--pple-43d", true},
		{"xn-", false},
		{"", false},
	}
	for _, tt := range tests {
		l := NewLabel(tt.ascii, tt.ascii, true)
		if l.IsIDN != tt.idn {
			t.Errorf("NewLabel(%q).IsIDN = %v, want %v", tt.ascii, l.IsIDN, tt.idn)
		}
	}
}

func TestLabel_ASCIIWithLeadingDelimiter(t *testing.T) {
	if got := NewLabel("com", "com", true).ASCIIWithLeadingDelimiter(); got != ".com" {
		t.Errorf("got %q, want %q", got, ".com")
	}
	if got := NewLabel("example", "example", false).ASCIIWithLeadingDelimiter(); got != "example" {
		t.Errorf("got %q, want %q", got, "example")
	}
}

func TestLabel_Display(t *testing.T) {
	idn := NewLabel("xn--pple-43d", "аpple", false)
	if idn.Display() != "аpple" {
		t.Errorf("IDN label should display Unicode, got %q", idn.Display())
	}
	plain := Label{ASCII: "example", Unicode: "ignored"}
	if plain.Display() != "example" {
		t.Errorf("non-IDN label should display ASCII, got %q", plain.Display())
	}
}
