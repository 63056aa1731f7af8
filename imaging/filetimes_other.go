//go:build !linux && !darwin && !windows

package imaging

import (
	"os"
	"time"
)

const creationTimeSupported = false

func fillPlatformTimes(fi os.FileInfo, ts *TimestampSet) {}

func applyCreationTime(path string, creation time.Time) error {
	return nil
}
