package imaging

// ConversionRequest describes one file's conversion. Built per discovered
// file and consumed by exactly one worker.
type ConversionRequest struct {
	SourcePath     string
	DeleteOriginal bool
	Lossless       bool
}

// ConversionResult is produced once per request and consumed by the
// progress aggregation.
type ConversionResult struct {
	SourcePath   string
	OutputPath   string
	OriginalSize int64
	NewSize      int64
	BytesSaved   int64 // negative when the WebP came out larger
	Success      bool
	Error        *ConversionError
}

// MetadataField is a single key/value entry from an image's text metadata
type MetadataField struct {
	Key   string
	Value string
}

// Metadata holds extracted fields as an ordered mapping: keys are unique
// and keep first-occurrence chunk order. Order is preserved all the way
// into the rendered comment.
type Metadata []MetadataField

// BatchSummary reports the batch outcome after the worker pool drains
type BatchSummary struct {
	TotalFiles      int
	FailedCount     int
	TotalBytesSaved int64
}
