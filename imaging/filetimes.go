package imaging

import (
	"fmt"
	"os"
	"time"
)

// TimestampSet holds the file times captured from a source image so they
// can be applied to its converted output.
type TimestampSet struct {
	Access   time.Time
	Modify   time.Time
	Creation time.Time
}

// CreationTimeSupported reports whether this platform can set file
// creation times. Only Windows supports it; everywhere else creation
// time is either read-only or not a filesystem concept.
func CreationTimeSupported() bool {
	return creationTimeSupported
}

// CaptureFileTimes reads the access, modify and (where available)
// creation times of a file.
func CaptureFileTimes(path string) (*TimestampSet, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	ts := &TimestampSet{Modify: fi.ModTime()}
	fillPlatformTimes(fi, ts)
	if ts.Access.IsZero() {
		ts.Access = ts.Modify
	}
	return ts, nil
}

// ApplyTo sets the captured times on another file. Creation time is
// only set when preserveCreation is true and the platform supports it.
func (ts *TimestampSet) ApplyTo(path string, preserveCreation bool) error {
	if err := os.Chtimes(path, ts.Access, ts.Modify); err != nil {
		return fmt.Errorf("failed to set access/modify times: %w", err)
	}

	if preserveCreation && creationTimeSupported && !ts.Creation.IsZero() {
		if err := applyCreationTime(path, ts.Creation); err != nil {
			return fmt.Errorf("failed to set creation time: %w", err)
		}
	}
	return nil
}
