package imaging

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExiftoolWriter_MissingFile(t *testing.T) {
	w := ExiftoolWriter{}
	err := w.WriteComment(filepath.Join(t.TempDir(), "nope.webp"), "comment")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestExiftoolWriter_RoundTrip(t *testing.T) {
	if _, err := exec.LookPath("exiftool"); err != nil {
		t.Skip("exiftool not available, skipping round-trip test")
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "image.png")
	writePNGFile(t, path, nil)

	comment := "steps: 20, seed: 42\nsoftware: test"
	w := ExiftoolWriter{}
	if err := w.WriteComment(path, comment); err != nil {
		t.Fatalf("WriteComment() error: %v", err)
	}

	got, err := ReadComment(path)
	if err != nil {
		t.Fatalf("ReadComment() error: %v", err)
	}
	if !strings.Contains(got, "steps: 20") {
		t.Errorf("UserComment = %q, expected it to contain %q", got, "steps: 20")
	}
}

func TestReadComment_MissingFile(t *testing.T) {
	_, err := ReadComment(filepath.Join(t.TempDir(), "nope.webp"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
