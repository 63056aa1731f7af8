package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WebpQuality is the default cwebp quality factor.
const WebpQuality = 100

// ConvertOptions controls how a batch of images is converted.
type ConvertOptions struct {
	Quality              int
	Lossless             bool
	DeleteOriginal       bool
	Verify               bool
	VerifyThreshold      int
	PreserveCreationTime bool
}

// DefaultConvertOptions returns conversion options with sensible defaults.
func DefaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Quality:              WebpQuality,
		VerifyThreshold:      defaultVerifyThreshold,
		PreserveCreationTime: CreationTimeSupported(),
	}
}

// Converter turns PNG files into WebP files while carrying over text
// metadata and file timestamps.
type Converter struct {
	opts    *ConvertOptions
	encoder Encoder
	tagger  CommentWriter
}

// NewConverter builds a converter backed by the cwebp and exiftool
// binaries.
func NewConverter(opts *ConvertOptions) *Converter {
	if opts == nil {
		opts = DefaultConvertOptions()
	}
	return &Converter{
		opts:    opts,
		encoder: &CwebpEncoder{Quality: opts.Quality},
		tagger:  ExiftoolWriter{},
	}
}

// OutputPath returns the WebP path for a source image, the same name
// with the extension swapped.
func OutputPath(imageFile string) string {
	return strings.TrimSuffix(imageFile, filepath.Ext(imageFile)) + ".webp"
}

// Convert processes a single source image. Failures to carry over
// metadata or timestamps do not fail the conversion, but they do keep
// the original around even when deletion was requested.
func (c *Converter) Convert(req ConversionRequest) *ConversionResult {
	result := &ConversionResult{SourcePath: req.SourcePath}

	f, err := os.Open(req.SourcePath)
	if err != nil {
		return fail(result, SourceUnreadable, err)
	}
	meta, err := ReadPNGMetadata(f)
	_ = f.Close()
	if err != nil {
		warn(MetadataUnavailable, req.SourcePath, err)
		meta = nil
	}

	times, err := CaptureFileTimes(req.SourcePath)
	if err != nil {
		return fail(result, SourceUnreadable, err)
	}
	originalSize, err := GetFileSize(req.SourcePath)
	if err != nil {
		return fail(result, SourceUnreadable, err)
	}
	result.OriginalSize = originalSize

	outputPath := OutputPath(req.SourcePath)
	if err := c.encoder.Encode(req.SourcePath, outputPath, req.Lossless); err != nil {
		_ = os.Remove(outputPath)
		return fail(result, TranscodeFailed, err)
	}
	result.OutputPath = outputPath

	newSize, err := GetFileSize(outputPath)
	if err != nil {
		return fail(result, TranscodeFailed, err)
	}
	result.NewSize = newSize
	result.BytesSaved = originalSize - newSize

	if c.opts.Verify {
		distance, err := PerceptualDistance(req.SourcePath, outputPath)
		if err != nil {
			_ = os.Remove(outputPath)
			return fail(result, VerificationFailed, err)
		}
		if distance > c.opts.VerifyThreshold {
			_ = os.Remove(outputPath)
			return fail(result, VerificationFailed,
				fmt.Errorf("perceptual distance %d exceeds threshold %d", distance, c.opts.VerifyThreshold))
		}
	}

	// Metadata and timestamp carry-over is best effort, but an
	// incomplete copy means the original must not be deleted.
	preserved := true
	if len(meta) > 0 {
		if err := c.tagger.WriteComment(outputPath, meta.Comment()); err != nil {
			preserved = false
			warn(MetadataWriteFailed, outputPath, err)
		}
	}
	if err := times.ApplyTo(outputPath, c.opts.PreserveCreationTime); err != nil {
		preserved = false
		warn(TimestampApplyFailed, outputPath, err)
	}

	if req.DeleteOriginal {
		if !preserved {
			fmt.Printf("%s\n", warnStyle.Render(
				fmt.Sprintf("⚠️  keeping original %s: metadata or timestamps were not fully preserved", req.SourcePath)))
		} else if err := os.Remove(req.SourcePath); err != nil {
			warn(DeleteFailed, req.SourcePath, err)
		}
	}

	result.Success = true
	return result
}

func fail(result *ConversionResult, kind ErrorKind, err error) *ConversionResult {
	result.Error = &ConversionError{Kind: kind, Path: result.SourcePath, Err: err}
	return result
}

func warn(kind ErrorKind, path string, err error) {
	fmt.Printf("%s\n", warnStyle.Render(fmt.Sprintf("⚠️  %s: %s: %v", path, kind, err)))
}

// GetFileSize returns the size of a file in bytes
func GetFileSize(filePath string) (int64, error) {
	fi, err := os.Stat(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to get file size: %w", err)
	}
	return fi.Size(), nil
}
