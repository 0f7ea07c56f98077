package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runConvertCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// Reset flag state between runs; cobra keeps it on the package vars.
	convertFrom = "novelai"
	convertNegative = ""
	convertOut = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"convert"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommandFromNovelAI(t *testing.T) {
	out, err := runConvertCommand(t, "", "--from", "novelai", "2::good::, -1::bad::")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "(good:2)\n\nNegative prompt:\nbad\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestConvertCommandFromPixAI(t *testing.T) {
	out, err := runConvertCommand(t, "", "--from", "pixai", "--negative", "bad", "good")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "good, -1::bad::\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestConvertCommandReadsStdin(t *testing.T) {
	out, err := runConvertCommand(t, "{{tag}}\n", "--from", "novelai")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "(tag:1.1)\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestConvertCommandRejectsUnknownSyntax(t *testing.T) {
	_, err := runConvertCommand(t, "", "--from", "sdxl", "tag")
	if err == nil {
		t.Error("expected error for unknown source syntax")
	}
}
