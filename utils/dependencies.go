package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// ValidateConversionDependencies checks that cwebp is available in PATH.
// exiftool is deliberately not checked here: without it metadata embedding
// degrades per file instead of blocking the whole run, so callers query
// HasExiftool separately.
func ValidateConversionDependencies() error {
	if _, err := exec.LookPath("cwebp"); err != nil {
		return fmt.Errorf("cwebp not found in PATH. %s", InstallInstructions("cwebp"))
	}

	return nil
}

// HasExiftool reports whether exiftool is available for metadata embedding
func HasExiftool() bool {
	_, err := exec.LookPath("exiftool")
	return err == nil
}

// InstallInstructions returns platform-specific installation instructions for a tool
func InstallInstructions(tool string) string {
	packages := map[string]struct {
		brew string
		apt  string
		url  string
	}{
		"cwebp":    {brew: "webp", apt: "webp", url: "https://developers.google.com/speed/webp/download"},
		"exiftool": {brew: "exiftool", apt: "libimage-exiftool-perl", url: "https://exiftool.org"},
	}

	pkg, ok := packages[tool]
	if !ok {
		return fmt.Sprintf("Install %s and make sure it is in PATH", tool)
	}

	switch runtime.GOOS {
	case "darwin":
		return fmt.Sprintf("Install with: brew install %s", pkg.brew)
	case "linux":
		return fmt.Sprintf("Install with: apt-get install %s (Ubuntu/Debian) or dnf install %s (Fedora)", pkg.apt, pkg.brew)
	case "windows":
		return fmt.Sprintf("Download from %s and add to PATH", pkg.url)
	default:
		return fmt.Sprintf("Download from %s", pkg.url)
	}
}
