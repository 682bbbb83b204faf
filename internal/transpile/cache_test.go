package transpile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsStaleMissingExecutable(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "out.cpp")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	stale, err := IsStale(filepath.Join(dir, "missing.exe"), src)
	if err != nil {
		t.Fatal(err)
	}
	if !stale {
		t.Error("a missing executable must be reported stale")
	}
}

func TestIsStaleOlderThanSource(t *testing.T) {
	dir := t.TempDir()
	exec := filepath.Join(dir, "out.exe")
	src := filepath.Join(dir, "out.cpp")

	writeAt(t, exec, time.Now().Add(-time.Hour))
	writeAt(t, src, time.Now())

	stale, err := IsStale(exec, src)
	if err != nil {
		t.Fatal(err)
	}
	if !stale {
		t.Error("executable older than source must be reported stale")
	}
}

func TestIsStaleFreshBuild(t *testing.T) {
	dir := t.TempDir()
	exec := filepath.Join(dir, "out.exe")
	src := filepath.Join(dir, "out.cpp")

	writeAt(t, src, time.Now().Add(-time.Hour))
	writeAt(t, exec, time.Now())

	stale, err := IsStale(exec, src)
	if err != nil {
		t.Fatal(err)
	}
	// Only stale if older than the running translator binary too; in a test
	// binary built well before "now" this should hold fresh.
	if stale {
		t.Error("executable newer than source and translator must not be reported stale")
	}
}

func TestArtifactPaths(t *testing.T) {
	src, exe := ArtifactPaths("scripts/demo.txt", "build")
	if src != filepath.Join("build", "demo.cpp") {
		t.Errorf("srcPath = %q", src)
	}
	if exe != filepath.Join("build", "demo.exe") {
		t.Errorf("execPath = %q", exe)
	}
}

func TestArtifactPathsNoExtension(t *testing.T) {
	src, exe := ArtifactPaths("demo", "build")
	if src != filepath.Join("build", "demo.cpp") {
		t.Errorf("srcPath = %q", src)
	}
	if exe != filepath.Join("build", "demo.exe") {
		t.Errorf("execPath = %q", exe)
	}
}

func writeAt(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}
