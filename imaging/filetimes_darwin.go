//go:build darwin

package imaging

import (
	"os"
	"syscall"
	"time"
)

// macOS exposes birth time through stat but offers no way to set it,
// so creation time is captured for reference only.
const creationTimeSupported = false

func fillPlatformTimes(fi os.FileInfo, ts *TimestampSet) {
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		ts.Access = time.Unix(st.Atimespec.Unix())
		ts.Creation = time.Unix(st.Birthtimespec.Unix())
	}
}

func applyCreationTime(path string, creation time.Time) error {
	return nil
}
