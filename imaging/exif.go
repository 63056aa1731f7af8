package imaging

import (
	"encoding/json"
	"fmt"
	"os/exec"
)

// CommentWriter stores a text comment in an image file's metadata.
type CommentWriter interface {
	WriteComment(path, comment string) error
}

// ExiftoolWriter writes comments into the EXIF UserComment tag using
// the exiftool binary.
type ExiftoolWriter struct{}

// WriteComment sets the UserComment tag on the file, replacing the
// file in place rather than leaving an _original backup behind.
func (ExiftoolWriter) WriteComment(path, comment string) error {
	cmd := exec.Command("exiftool", "-overwrite_original", "-UserComment="+comment, path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("exiftool failed: %w: %s", err, extractFirstLine(string(output)))
	}
	return nil
}

// ReadComment returns the UserComment tag of a file, mainly for
// verifying round-trips in tests.
func ReadComment(path string) (string, error) {
	cmd := exec.Command("exiftool", "-j", "-UserComment", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("exiftool failed: %w: %s", err, extractFirstLine(string(output)))
	}

	var tags []struct {
		UserComment string `json:"UserComment"`
	}
	if err := json.Unmarshal(output, &tags); err != nil {
		return "", fmt.Errorf("failed to parse exiftool output: %w", err)
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("exiftool returned no data for %s", path)
	}
	return tags[0].UserComment, nil
}
