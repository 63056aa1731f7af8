package imaging

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Encoder transcodes a single image file to WebP.
type Encoder interface {
	Encode(srcPath, dstPath string, lossless bool) error
}

// CwebpEncoder shells out to the cwebp binary from libwebp.
type CwebpEncoder struct {
	Quality int
}

// Encode converts srcPath to a WebP file at dstPath.
func (e *CwebpEncoder) Encode(srcPath, dstPath string, lossless bool) error {
	cmd := exec.Command("cwebp", e.args(srcPath, dstPath, lossless)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("cwebp failed: %w: %s", err, extractFirstLine(string(output)))
	}
	return nil
}

func (e *CwebpEncoder) args(srcPath, dstPath string, lossless bool) []string {
	args := []string{"-q", strconv.Itoa(e.Quality), "-quiet"}
	if lossless {
		args = append(args, "-lossless")
	}
	return append(args, srcPath, "-o", dstPath)
}

// extractFirstLine pulls the first non-empty line out of tool output
// for error messages.
func extractFirstLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
		return strings.TrimSpace(lines[0])
	}
	return "no additional information available"
}
