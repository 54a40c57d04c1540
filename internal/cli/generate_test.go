package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the CLI with args against a temp cache dir.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestGenerateMock(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.svg")

	if err := runCommand(t, "generate", "--mock", "--seed", "7", "-o", out); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("output does not look like SVG: %.40s", data)
	}
}

func TestGenerateMockDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.svg")
	b := filepath.Join(dir, "b.svg")

	// Mock data is seeded, but each document gets a fresh ID, so two
	// runs differ only in their ID prefix.
	if err := runCommand(t, "generate", "--mock", "--seed", "3", "-o", a); err != nil {
		t.Fatal(err)
	}
	if err := runCommand(t, "generate", "--mock", "--seed", "3", "-o", b); err != nil {
		t.Fatal(err)
	}

	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	if len(da) != len(db) {
		t.Errorf("same seed should produce same-shaped output: %d vs %d bytes", len(da), len(db))
	}
}

func TestGenerateBothTypes(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cal.svg")

	if err := runCommand(t, "generate", "--mock", "--type", "grid,banner", "-o", out); err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, path := range []string{
		filepath.Join(filepath.Dir(out), "cal_grid.svg"),
		filepath.Join(filepath.Dir(out), "cal_banner.svg"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing artifact %s: %v", path, err)
		}
	}
}

func TestGenerateJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "layout.json")

	if err := runCommand(t, "generate", "--mock", "--format", "json", "-o", out); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		t.Errorf("output is not JSON: %.40s", data)
	}
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	if err := runCommand(t, "generate", "--mock", "--format", "png"); err == nil {
		t.Error("expected error for unsupported format")
	}
	if err := runCommand(t, "generate", "--mock", "--type", "chart"); err == nil {
		t.Error("expected error for unsupported type")
	}
	if err := runCommand(t, "generate", "--mock", "--theme", "nope"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestFetchThenRender(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "contributions.json")
	out := filepath.Join(dir, "board.svg")

	if err := runCommand(t, "fetch", "--mock", "--seed", "5", "-o", data); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if err := runCommand(t, "render", data, "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("render output does not look like SVG: %.40s", svg)
	}
}

func TestRenderMissingInput(t *testing.T) {
	if err := runCommand(t, "render", filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestCachePath(t *testing.T) {
	if err := runCommand(t, "cache", "path"); err != nil {
		t.Fatalf("cache path: %v", err)
	}
}

func TestCacheClearEmpty(t *testing.T) {
	if err := runCommand(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
}

func TestGenerateRejectsBadOutputPath(t *testing.T) {
	if err := runCommand(t, "generate", "--mock", "-o", "dist/\x00bad.svg"); err == nil {
		t.Error("expected error for output path with control characters")
	}
}

func TestFetchRejectsBadOutputPath(t *testing.T) {
	if err := runCommand(t, "fetch", "--mock", "-o", "bad\x00.json"); err == nil {
		t.Error("expected error for output path with control characters")
	}
}

func TestCommandsLogThroughContext(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	out := filepath.Join(t.TempDir(), "out.svg")

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--mock", "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	// The pipeline logs its stages through the logger RootCommand put
	// in the command context, which writes to the CLI's writer.
	if !strings.Contains(buf.String(), "rendered outputs") {
		t.Errorf("pipeline logs missing from CLI logger output: %q", buf.String())
	}
}
