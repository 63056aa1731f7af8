package utils

import (
	"path/filepath"
	"strings"
)

// Common network mount points and filesystem names seen in paths
var (
	networkMountPrefixes = []string{
		"/mnt/",     // Linux NFS/SMB mounts
		"/media/",   // Linux removable/network media
		"/Volumes/", // macOS network volumes
	}

	networkFSIndicators = []string{"nfs", "cifs", "smb", "webdav", "ftp", "sftp"}
)

// IsNetworkDrive detects if a path is on a network-mounted drive.
// Used to drop to a single worker, since parallel transcodes over a
// network mount tend to be slower than sequential ones.
func IsNetworkDrive(path string) bool {
	// Windows UNC paths, checked before Abs normalizes the slashes away
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	for _, prefix := range networkMountPrefixes {
		if strings.HasPrefix(absPath, prefix) {
			return true
		}
	}

	lowerPath := strings.ToLower(absPath)
	for _, indicator := range networkFSIndicators {
		if strings.Contains(lowerPath, indicator) {
			return true
		}
	}

	return false
}
