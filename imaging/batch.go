package imaging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// jobPacing is the pause each worker takes after finishing a file, to
// keep a long batch from saturating the disk.
const jobPacing = 100 * time.Millisecond

// DefaultWorkerCount returns the worker pool size for local drives,
// one less than the CPU count but no more than four. cwebp is already
// multithreaded, so more workers mostly just add disk contention.
func DefaultWorkerCount() int {
	return max(1, min(4, runtime.NumCPU()-1))
}

// Batch converts a list of image files using a pool of workers.
type Batch struct {
	Files   []string
	Workers int
	Pacing  time.Duration

	opts     *ConvertOptions
	convert  func(ConversionRequest) *ConversionResult
	progress io.Writer
}

// NewBatch builds a batch over the given files.
func NewBatch(files []string, workers int, opts *ConvertOptions) *Batch {
	if opts == nil {
		opts = DefaultConvertOptions()
	}
	if workers <= 0 {
		workers = DefaultWorkerCount()
	}
	return &Batch{
		Files:    files,
		Workers:  workers,
		Pacing:   jobPacing,
		opts:     opts,
		convert:  NewConverter(opts).Convert,
		progress: os.Stderr,
	}
}

// Run converts all files and blocks until the batch is done.
func (b *Batch) Run() *BatchSummary {
	progress := NewAggregateProgress(len(b.Files))
	bar := b.newProgressBar(len(b.Files))

	jobs := make(chan ConversionRequest, len(b.Files))
	var wg sync.WaitGroup

	for i := 0; i < b.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range jobs {
				snapshot := b.runOne(req, progress)
				bar.Describe(snapshot.Description())
				_ = bar.Add(1)
				if b.Pacing > 0 {
					// pace while still holding the worker slot
					time.Sleep(b.Pacing)
				}
			}
		}()
	}

	for _, file := range b.Files {
		jobs <- ConversionRequest{
			SourcePath:     file,
			DeleteOriginal: b.opts.DeleteOriginal,
			Lossless:       b.opts.Lossless,
		}
	}
	close(jobs)

	wg.Wait()
	_ = bar.Finish()

	final := progress.Snapshot()
	return &BatchSummary{
		TotalFiles:      final.Processed,
		FailedCount:     final.Failed,
		TotalBytesSaved: final.BytesSaved,
	}
}

// runOne converts a single file and folds the outcome into the shared
// progress state, returning the combined snapshot.
func (b *Batch) runOne(req ConversionRequest, progress *AggregateProgress) ProgressSnapshot {
	result := b.convert(req)
	if result.Error != nil {
		fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("Error processing file: %v", result.Error)))
		return progress.RecordFailure()
	}
	return progress.Record(result.BytesSaved)
}

func (b *Batch) newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Processing images"),
		progressbar.OptionSetWriter(b.progress),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(b.progress)
		}),
	)
}
