package mask

import (
	"strings"
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"one char", "a", "*"},
		{"three chars", "abc", "***"},
		{"four chars", "abcd", "a**d"},
		{"typical", "password123", "p*********3"},
		{"multibyte", "пароль", "п****ь"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mask(tt.input); got != tt.want {
				t.Errorf("Mask(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaskHidesMiddle(t *testing.T) {
	got := Mask("Tr0ub4dor&3")
	if strings.Contains(got, "b4dor") {
		t.Errorf("middle characters leaked: %q", got)
	}
}
