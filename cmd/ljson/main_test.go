package main

import (
	"bytes"
	"strings"
	"testing"

	"cosmossdk.io/log"
)

func TestRunNoCommandExitCode(t *testing.T) {
	var stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &bytes.Buffer{}, &stderr, log.NewNopLogger())
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
	if !strings.Contains(stderr.String(), "usage:") {
		t.Fatalf("expected usage output, got %q", stderr.String())
	}
}

func TestRunTopLevelHelpExitZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr, log.NewNopLogger())
	if code != exitSuccess {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "usage: ljson") {
		t.Fatalf("expected help output, got %q", stdout.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"bogus"}, strings.NewReader(""), &stdout, &stderr, log.NewNopLogger())
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Fatalf("expected unknown-command message, got %q", stderr.String())
	}
}

func TestCmdParseValidInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"parse", "-"}, strings.NewReader(`{"a":1}`), &stdout, &stderr, log.NewNopLogger())
	if code != exitSuccess {
		t.Fatalf("expected exit 0, got %d (%s)", code, stdout.String())
	}
	if strings.TrimSpace(stdout.String()) != "ok" {
		t.Fatalf("expected %q, got %q", "ok", stdout.String())
	}
}

func TestCmdParseQuietSuppressesOkLine(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"parse", "--quiet", "-"}, strings.NewReader(`null`), &stdout, &stderr, log.NewNopLogger())
	if code != exitSuccess {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected empty stdout with --quiet, got %q", stdout.String())
	}
}

func TestCmdParseInvalidInputExitsNonZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"parse", "-"}, strings.NewReader(`{"a":}`), &stdout, &stderr, log.NewNopLogger())
	if code != exitInput {
		t.Fatalf("expected exit %d, got %d", exitInput, code)
	}
}

func TestCmdFormatRoundTrips(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"format", "-"}, strings.NewReader(`{"b": 2, "a": 1}`), &stdout, &stderr, log.NewNopLogger())
	if code != exitSuccess {
		t.Fatalf("expected exit 0, got %d (%s)", code, stderr.String())
	}
	if stdout.String() != `{"b":2,"a":1}` {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}

func TestCmdMultipleInputFilesRejected(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"parse", "a.json", "b.json"}, strings.NewReader(""), &stdout, &stderr, log.NewNopLogger())
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
}
