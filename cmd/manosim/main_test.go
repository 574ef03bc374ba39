package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProgram(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.asm")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunSubcommandExitsZeroOnHalt(t *testing.T) {
	path := writeProgram(t, "ORG 0", "LDA A", "ADD B", "STA C", "HLT",
		"A, DEC 83", "B, DEC -23", "C, DEC 0", "END")

	code := run([]string{"run", path})
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

func TestAssembleSubcommandExitsOneOnError(t *testing.T) {
	path := writeProgram(t, "ORG 0", "BADOP A", "HLT", "A, DEC 1", "END")

	code := run([]string{"assemble", path})
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestMissingFileExitsTwo(t *testing.T) {
	code := run([]string{"run", filepath.Join(t.TempDir(), "does-not-exist.asm")})
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestUnknownSubcommandExitsTwo(t *testing.T) {
	path := writeProgram(t, "ORG 0", "HLT", "END")
	code := run([]string{"bogus", path})
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}
