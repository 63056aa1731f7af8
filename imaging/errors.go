package imaging

import "fmt"

// ErrorKind classifies what went wrong during a conversion job. Only
// SourceUnreadable, TranscodeFailed and VerificationFailed abort a job;
// the remaining kinds are logged and the job carries on.
type ErrorKind string

const (
	SourceUnreadable     ErrorKind = "source unreadable"
	MetadataUnavailable  ErrorKind = "metadata unavailable"
	TranscodeFailed      ErrorKind = "transcode failed"
	VerificationFailed   ErrorKind = "verification failed"
	MetadataWriteFailed  ErrorKind = "metadata write failed"
	TimestampApplyFailed ErrorKind = "timestamp apply failed"
	DeleteFailed         ErrorKind = "delete failed"
)

// ConversionError ties a failure kind to the file it happened on
type ConversionError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
