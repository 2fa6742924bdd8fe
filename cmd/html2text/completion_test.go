package main

// Notes:
// - Generated scripts are checked for the structure each shell requires and
//   for every command and flag, not for byte-exact output.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion - Script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell Shell
		want  []string
	}{
		{ShellBash, []string{
			"_html2text_completions()",
			"complete -F _html2text_completions html2text",
			`--links|-l) COMPREPLY=($(compgen -W "none inline nextline table bbcode"`,
			`--output|-o) COMPREPLY=($(compgen -d`,
			"--image-prefix",
		}},
		{ShellZsh, []string{
			"#compdef html2text",
			"_html2text()",
			"_describe 'command' commands",
			"{-l,--links}'[link mode\\: none, inline, nextline, table, bbcode]:links:(none inline nextline table bbcode)'",
			"'--stdout[print text to stdout instead of writing files]'",
			"compdef _html2text html2text",
		}},
		{ShellFish, []string{
			"function __fish_html2text_needs_command",
			"function __fish_html2text_using_command",
			"complete -c html2text -n __fish_html2text_needs_command -a convert",
			"-l links -s l -x -a 'none inline nextline table bbcode'",
			"-l config -s c -r -F",
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion() unexpected error: %v", err)
			}

			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
			for _, cmd := range getCommands() {
				if !strings.Contains(out, cmd.Name) {
					t.Errorf("%s script missing command %q", tt.shell, cmd.Name)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("powershell"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("GenerateCompletion(powershell) error = %v, want ErrUnsupportedShell", err)
	}
	if buf.Len() != 0 {
		t.Errorf("GenerateCompletion(powershell) wrote %d bytes, want none", buf.Len())
	}
}

// ---------------------------------------------------------------------------
// TestExtractFlagsFromFlagSet - Flag metadata
// ---------------------------------------------------------------------------

func TestExtractFlagsFromFlagSet(t *testing.T) {
	t.Parallel()

	flags := extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{}))
	byName := map[string]flagDef{}
	for _, f := range flags {
		byName[f.Long] = f
	}

	tests := []struct {
		long  string
		short string
		typ   flagType
	}{
		{"links", "l", flagEnum},
		{"config", "c", flagFile},
		{"output", "o", flagDir},
		{"workers", "w", flagInt},
		{"width", "", flagInt},
		{"stdout", "", flagBool},
		{"base-url", "", flagString},
	}

	for _, tt := range tests {
		f, ok := byName[tt.long]
		if !ok {
			t.Errorf("flag --%s not extracted", tt.long)
			continue
		}
		if f.Short != tt.short {
			t.Errorf("--%s short = %q, want %q", tt.long, f.Short, tt.short)
		}
		if f.Type != tt.typ {
			t.Errorf("--%s type = %d, want %d", tt.long, f.Type, tt.typ)
		}
	}
}

func TestZshEscape(t *testing.T) {
	t.Parallel()

	if got, want := zshEscape("it's [x]: y"), `it'\''s \[x\]\: y`; got != want {
		t.Errorf("zshEscape() = %q, want %q", got, want)
	}
}

func TestRunCompletion_NoArgs(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv("")
	if err := runCompletion(nil, env); err != nil {
		t.Fatalf("runCompletion() unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Usage: html2text completion <shell>") {
		t.Errorf("stdout = %q, want completion usage", stdout.String())
	}
}
