package textutil

import "testing"

func TestLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"multibyte", "äöü", 3},
		{"mixed scripts", "илčλ!", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Len(tt.input); got != tt.want {
				t.Errorf("Len(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestUcFirst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"will be ucfirst", "Will be ucfirst"},
		{"äpfel", "Äpfel"},
		{"Already", "Already"},
		{"<b>tag", "<b>tag"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := UcFirst(tt.input); got != tt.want {
				t.Errorf("UcFirst(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		mode  Case
		want  string
	}{
		{"upper", "hello", CaseUpper, "HELLO"},
		{"upper unicode", "äöüèéилčλ", CaseUpper, "ÄÖÜÈÉИЛČΛ"},
		{"lower", "HELLO", CaseLower, "hello"},
		{"lower unicode", "ÄÖÜ", CaseLower, "äöü"},
		{"title", "will be titled", CaseTitle, "Will Be Titled"},
		{"title lowers the rest", "wILL bE", CaseTitle, "Will Be"},
		{"unknown mode is identity", "MiXed", Case(42), "MiXed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertCase(tt.input, tt.mode); got != tt.want {
				t.Errorf("ConvertCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
