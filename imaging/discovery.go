package imaging

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const imageExtension = ".png"

// IsImageFile checks whether a path looks like a PNG image by extension
func IsImageFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), imageExtension)
}

// FindImageFilesRecursively scans a directory tree for PNG files
func FindImageFilesRecursively(directory string) ([]string, error) {
	var files []string
	var err error

	// Use fd if available for better performance, otherwise fall back to filepath.WalkDir
	if isFdAvailable() {
		files, err = findImageFilesWithFd(directory)
		if err != nil {
			// If fd fails, fall back to the standard method
			files, err = findImageFilesWithWalkDir(directory)
		}
	} else {
		files, err = findImageFilesWithWalkDir(directory)
	}

	return files, err
}

// isFdAvailable checks if the 'fd' command is available in PATH
func isFdAvailable() bool {
	_, err := exec.LookPath("fd")
	return err == nil
}

// findImageFilesWithWalkDir uses filepath.WalkDir to find PNG files (fallback method)
func findImageFilesWithWalkDir(directory string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(directory, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if IsImageFile(path) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// findImageFilesWithFd uses the 'fd' command to efficiently find PNG files.
// Hidden and ignored files are included to match what WalkDir returns.
func findImageFilesWithFd(directory string) ([]string, error) {
	cmd := exec.Command("fd", "--extension", "png", "--type", "f", "--hidden", "--no-ignore", ".", directory)
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	var files []string
	for _, line := range lines {
		if line != "" && IsImageFile(line) {
			files = append(files, line)
		}
	}

	return files, nil
}
