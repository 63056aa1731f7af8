//go:build windows

package imaging

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

const creationTimeSupported = true

func fillPlatformTimes(fi os.FileInfo, ts *TimestampSet) {
	if st, ok := fi.Sys().(*syscall.Win32FileAttributeData); ok {
		ts.Access = time.Unix(0, st.LastAccessTime.Nanoseconds())
		ts.Creation = time.Unix(0, st.CreationTime.Nanoseconds())
	}
}

func applyCreationTime(path string, creation time.Time) error {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	h, err := windows.CreateFile(pathPtr,
		windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	ft := windows.NsecToFiletime(creation.UnixNano())
	return windows.SetFileTime(h, &ft, nil, nil)
}
