package cmd

import (
	"fmt"

	"github.com/lepinkainen/png2webp/imaging"
	"github.com/lepinkainen/png2webp/types"
	"github.com/lepinkainen/png2webp/ui"
	"github.com/lepinkainen/png2webp/utils"
)

type ConvertCmd struct {
	Directory string `arg:"" name:"directory" help:"Directory to scan recursively for PNG images" type:"existingdir"`
	Delete    bool   `help:"Delete original PNG files after successful conversion"`
	Lossless  bool   `help:"Use lossless WebP compression"`
	Quality   int    `help:"WebP quality factor (1-100)" default:"100"`
	Workers   int    `help:"Number of parallel workers" default:"0"`
	Verify    bool   `help:"Compare converted images against originals with a perceptual hash"`
	DryRun    bool   `help:"Show what would be converted without making changes"`
}

func (cmd *ConvertCmd) Validate() error {
	if cmd.Quality < 1 || cmd.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", cmd.Quality)
	}
	return nil
}

func (cmd *ConvertCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	if !cmd.DryRun {
		if err := utils.ValidateConversionDependencies(); err != nil {
			return err
		}
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("png2webp %s", version)))

	files, err := imaging.FindImageFilesRecursively(cmd.Directory)
	if err != nil {
		return fmt.Errorf("failed to scan directory %s: %w", cmd.Directory, err)
	}

	if len(files) == 0 {
		fmt.Println(ui.InfoStyle.Render("No PNG files found."))
		cmd.printSummary(&imaging.BatchSummary{})
		return nil
	}

	if cmd.DryRun {
		fmt.Println(ui.ProcessingStyle.Render("🔍 DRY RUN MODE - No files will be modified"))
		return cmd.runDryRun(files)
	}

	if !utils.HasExiftool() {
		fmt.Println(ui.WarnStyle.Render("⚠️  exiftool not found, PNG text metadata will not be carried over"))
		fmt.Println(utils.InstallInstructions("exiftool"))
	}

	workers := cmd.Workers
	if workers <= 0 {
		if utils.IsNetworkDrive(cmd.Directory) {
			workers = 1 // Use single worker for network drives
			fmt.Printf("⚠️  Network drive detected, using 1 worker for optimal performance\n")
		} else {
			workers = imaging.DefaultWorkerCount()
		}
	}

	opts := imaging.DefaultConvertOptions()
	opts.Quality = cmd.Quality
	opts.Lossless = cmd.Lossless
	opts.DeleteOriginal = cmd.Delete
	opts.Verify = cmd.Verify

	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("🖼️  Converting %d PNG files to WebP with %d workers:", len(files), workers)))

	summary := imaging.NewBatch(files, workers, opts).Run()
	cmd.printSummary(summary)
	return nil
}

// runDryRun lists the files that would be converted without touching them
func (cmd *ConvertCmd) runDryRun(files []string) error {
	fmt.Printf("📊 Found %d PNG files:\n\n", len(files))

	var totalSize int64
	for _, file := range files {
		size, err := imaging.GetFileSize(file)
		if err != nil {
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", err)))
			continue
		}
		fmt.Printf("📷 %s (%s)\n", file, imaging.FormatSize(size))
		totalSize += size
	}

	fmt.Printf("\n📈 Total: %d files, %s\n", len(files), imaging.FormatSize(totalSize))
	return nil
}

// printSummary displays final statistics
func (cmd *ConvertCmd) printSummary(summary *imaging.BatchSummary) {
	fmt.Printf("\n%s\n", ui.HeaderStyle.Render("📊 Conversion Summary"))
	if summary.FailedCount > 0 {
		fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Failed: %d files", summary.FailedCount)))
	}
	fmt.Printf("Processed %d files.\n", summary.TotalFiles)
	fmt.Printf("Total size reduction: %s\n", imaging.FormatSize(summary.TotalBytesSaved))
}
