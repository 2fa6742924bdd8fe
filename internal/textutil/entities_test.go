package textutil

import "testing"

func TestDecodeEntities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no entities", "plain", "plain"},
		{"named", "&copy; 2024 &amp; more", "© 2024 & more"},
		{"numeric", "&#8212;&#x2014;", "——"},
		{"unknown left alone", "&bogus;", "&bogus;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DecodeEntities(tt.input); got != tt.want {
				t.Errorf("DecodeEntities(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSpecialCharsRoundTrip(t *testing.T) {
	t.Parallel()

	input := `<a href="x">Tom's & Jerry</a>`
	escaped := EscapeSpecialChars(input)

	want := "&lt;a href=&quot;x&quot;&gt;Tom&#039;s &amp; Jerry&lt;/a&gt;"
	if escaped != want {
		t.Fatalf("EscapeSpecialChars() = %q, want %q", escaped, want)
	}
	if got := DecodeSpecialChars(escaped); got != input {
		t.Errorf("DecodeSpecialChars() = %q, want %q", got, input)
	}
}

func TestDecodeSpecialChars_SinglePass(t *testing.T) {
	t.Parallel()

	if got := DecodeSpecialChars("&amp;lt;"); got != "&lt;" {
		t.Errorf("DecodeSpecialChars(%q) = %q, want %q", "&amp;lt;", got, "&lt;")
	}
	if got := DecodeSpecialChars("&copy;"); got != "&copy;" {
		t.Errorf("DecodeSpecialChars should ignore non-special entities, got %q", got)
	}
}
