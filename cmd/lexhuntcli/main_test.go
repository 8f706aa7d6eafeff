package main

import (
	"os"
	"testing"
)

func runWithArgs(args ...string) int {
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = append([]string{"lexhuntcli"}, args...)
	return run()
}

// Keep these exit codes stable: they matter in scripts.
func TestRun_NoArgs_Exit2(t *testing.T) {
	if got := runWithArgs(); got != 2 {
		t.Fatalf("exit=%d, want 2", got)
	}
}

func TestRun_UnknownCommand_Exit2(t *testing.T) {
	if got := runWithArgs("nope"); got != 2 {
		t.Fatalf("exit=%d, want 2", got)
	}
}

func TestRun_Hunt_MissingLengthFlags_Exit2(t *testing.T) {
	if got := runWithArgs("hunt", "--dict", "words.txt"); got != 2 {
		t.Fatalf("exit=%d, want 2", got)
	}
}

func TestRun_Hunt_MaxWithoutMin_Exit2(t *testing.T) {
	if got := runWithArgs("hunt", "--dict", "words.txt", "--max-length", "5"); got != 2 {
		t.Fatalf("exit=%d, want 2", got)
	}
}

func TestParseTLDList(t *testing.T) {
	got, err := parseTLDList("com, .IO,com,, io")
	if err != nil {
		t.Fatalf("parseTLDList: %v", err)
	}
	if len(got) != 2 || got[0] != ".com" || got[1] != ".io" {
		t.Fatalf("parseTLDList: got %v, want [.com .io]", got)
	}

	if _, err := parseTLDList("co.uk"); err == nil {
		t.Fatalf("parseTLDList: expected error for multi-label tld")
	}
}
