package config

import (
	"bytes"
	"os"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCode1(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	exitWriter = &buf
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		exitWriter = os.Stderr
		exitFunc = os.Exit
	})

	Exitf("fatal: %s", "locale catalog missing")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "fatal: locale catalog missing\n" {
		t.Fatalf("stderr = %q, want %q", got, "fatal: locale catalog missing\n")
	}
}
