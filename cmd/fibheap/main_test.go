package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunDefaultSummary(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"fibheap", "-budget", "30"}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, errBuf.String())
	}
	if out.Len() == 0 {
		t.Error("expected the default summary to print something")
	}
}

func TestRunHelpFlagExitsZero(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"fibheap", "-h"}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("expected exit code 0 for -h, got %d", code)
	}
}

func TestRunInvalidFlagReturnsConfigError(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"fibheap", "-nonexistent-flag"}, &out, &errBuf)

	if code != 4 {
		t.Fatalf("expected exit code 4 for invalid args, got %d", code)
	}
}

func TestRunVersionFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"fibheap", "--version"}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("expected exit code 0 for --version, got %d", code)
	}
	if !strings.Contains(out.String(), "fibheap") {
		t.Errorf("expected version output to mention fibheap, got: %s", out.String())
	}
}
