package html2text

// Notes:
// - LinkMode: tests validation and case-insensitive parsing
// - CaseMode: tests that the empty mode is accepted as "unset"
// - ElementConfig.merge: tests that only non-zero fields override
// - DefaultElements: tests the shipped table and that each call returns a copy
// - Input: tests the HTML/Markdown exclusivity rule

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestLinkMode_Validate - LinkMode Validation
// ---------------------------------------------------------------------------

func TestLinkMode_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode    LinkMode
		wantErr error
	}{
		{LinkNone, nil},
		{LinkInline, nil},
		{LinkNextLine, nil},
		{LinkTable, nil},
		{LinkBBCode, nil},
		{"", ErrInvalidLinkMode},
		{"Table", ErrInvalidLinkMode},
		{"footnote", ErrInvalidLinkMode},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()

			err := tt.mode.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LinkMode(%q).Validate() = %v, want %v", tt.mode, err, tt.wantErr)
			}
		})
	}
}

func TestParseLinkMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    LinkMode
		wantErr error
	}{
		{"inline", LinkInline, nil},
		{"TABLE", LinkTable, nil},
		{"  NextLine ", LinkNextLine, nil},
		{"bbcode", LinkBBCode, nil},
		{"", "", ErrInvalidLinkMode},
		{"links", "", ErrInvalidLinkMode},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLinkMode(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseLinkMode(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLinkMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCaseMode_Validate - CaseMode Validation
// ---------------------------------------------------------------------------

func TestCaseMode_Validate(t *testing.T) {
	t.Parallel()

	valid := []CaseMode{"", CaseUpper, CaseLower, CaseUcfirst, CaseTitle, CaseNone}
	for _, m := range valid {
		if err := m.Validate(); err != nil {
			t.Errorf("CaseMode(%q).Validate() unexpected error: %v", m, err)
		}
	}

	for _, m := range []CaseMode{"UPPER", "camel"} {
		if err := m.Validate(); !errors.Is(err, ErrInvalidCaseMode) {
			t.Errorf("CaseMode(%q).Validate() = %v, want ErrInvalidCaseMode", m, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestElementConfig_Merge - Field-wise Override
// ---------------------------------------------------------------------------

func TestElementConfig_Merge(t *testing.T) {
	t.Parallel()

	base := ElementConfig{Case: CaseUpper, Prepend: "\n\n", Append: "\n\n"}
	repl := &Replace{Pattern: "a", Replacement: "b"}

	tests := []struct {
		name string
		over ElementConfig
		want ElementConfig
	}{
		{
			name: "empty override keeps everything",
			over: ElementConfig{},
			want: base,
		},
		{
			name: "case only",
			over: ElementConfig{Case: CaseLower},
			want: ElementConfig{Case: CaseLower, Prepend: "\n\n", Append: "\n\n"},
		},
		{
			name: "affixes and replace",
			over: ElementConfig{Prepend: "[", Append: "]", Replace: repl},
			want: ElementConfig{Case: CaseUpper, Prepend: "[", Append: "]", Replace: repl},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := base.merge(tt.over)
			if got != tt.want {
				t.Errorf("merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDefaultElements - Shipped Element Table
// ---------------------------------------------------------------------------

func TestDefaultElements(t *testing.T) {
	t.Parallel()

	got := DefaultElements()

	tests := []struct {
		name string
		want ElementConfig
	}{
		{"h1", ElementConfig{Case: CaseUpper, Prepend: "\n\n", Append: "\n\n"}},
		{"h4", ElementConfig{Case: CaseUpper}},
		{"h6", ElementConfig{Case: CaseUpper, Prepend: "\n\n", Append: "\n\n"}},
		{"th", ElementConfig{Case: CaseUpper, Prepend: "\t\t", Append: "\n"}},
		{"strong", ElementConfig{Case: CaseUpper}},
		{"b", ElementConfig{Case: CaseUpper}},
		{"li", ElementConfig{Prepend: "\t* ", Append: "\n"}},
		{"i", ElementConfig{Prepend: "_", Append: "_"}},
		{"em", ElementConfig{Prepend: "_", Append: "_"}},
	}

	if len(got) != 12 {
		t.Errorf("DefaultElements() has %d entries, want 12", len(got))
	}
	for _, tt := range tests {
		if got[tt.name] != tt.want {
			t.Errorf("DefaultElements()[%q] = %+v, want %+v", tt.name, got[tt.name], tt.want)
		}
	}
}

func TestDefaultElements_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := DefaultElements()
	first["h1"] = ElementConfig{Case: CaseLower}
	delete(first, "li")

	second := DefaultElements()
	if second["h1"].Case != CaseUpper {
		t.Errorf("DefaultElements() h1 modified by caller: %+v", second["h1"])
	}
	if _, ok := second["li"]; !ok {
		t.Error("DefaultElements() li removed by caller")
	}
}

// ---------------------------------------------------------------------------
// TestValidateElementName
// ---------------------------------------------------------------------------

func TestValidateElementName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"h1", "mark", "my-tag"} {
		if err := validateElementName(name); err != nil {
			t.Errorf("validateElementName(%q) unexpected error: %v", name, err)
		}
	}
	for _, name := range []string{"", "H1", "1h", "a b", "<p>", "-x"} {
		if err := validateElementName(name); !errors.Is(err, ErrInvalidElement) {
			t.Errorf("validateElementName(%q) = %v, want ErrInvalidElement", name, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestInput_Validate
// ---------------------------------------------------------------------------

func TestInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{"empty", Input{}, nil},
		{"html only", Input{HTML: "<p>x</p>"}, nil},
		{"markdown only", Input{Markdown: "# x"}, nil},
		{"base url alone", Input{BaseURL: "http://x.org"}, nil},
		{"both", Input{HTML: "x", Markdown: "y"}, ErrAmbiguousInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.input.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
