package crash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useReportDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := reportDir
	reportDir = func() string { return dir }
	t.Cleanup(func() { reportDir = old })
	return dir
}

func TestWriteReportCreatesFile(t *testing.T) {
	dir := useReportDir(t)
	path, err := writeReport("/photos/team.jpg", "boom", []byte("stacktrace"))
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("report written to %s, want under %s", path, dir)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	s := string(b)
	for _, want := range []string{"clickblur crash report", "Image: /photos/team.jpg", "Panic: boom", "stacktrace"} {
		if !strings.Contains(s, want) {
			t.Fatalf("report missing %q:\n%s", want, s)
		}
	}
}

func TestWriteReportWithoutImage(t *testing.T) {
	useReportDir(t)
	path, err := writeReport("", "early", nil)
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	b, _ := os.ReadFile(path)
	if strings.Contains(string(b), "Image:") {
		t.Fatalf("no image line expected:\n%s", b)
	}
}

func TestWriteReportUnwritableDir(t *testing.T) {
	old := reportDir
	reportDir = func() string { return filepath.Join(t.TempDir(), "missing") }
	defer func() { reportDir = old }()
	if _, err := writeReport("x.png", "boom", nil); err == nil {
		t.Fatalf("expected error for missing report dir")
	}
}
