package main

import (
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{"no args", nil, "Usage: html2text <command>", ""},
		{"convert", []string{"convert"}, "Usage: html2text convert <input|->", ""},
		{"config", []string{"config"}, "Usage: html2text config", ""},
		{"version", []string{"version"}, "Usage: html2text version", ""},
		{"help", []string{"help"}, "Usage: html2text help [command]", ""},
		{"completion", []string{"completion"}, "Usage: html2text completion <shell>", ""},
		{"unknown", []string{"bogus"}, "", "Unknown command: bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv("")
			runHelp(tt.args, env)

			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestPrintConvertUsage_ListsEveryFlag(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv("")
	printConvertUsage(env.Stdout)

	for _, f := range extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})) {
		if !strings.Contains(stdout.String(), "--"+f.Long) {
			t.Errorf("convert usage missing --%s", f.Long)
		}
	}
}
