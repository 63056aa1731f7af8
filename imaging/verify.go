package imaging

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/corona10/goimagehash"
	_ "golang.org/x/image/webp"
)

// Hamming distance at or below this means the two images look the same.
const defaultVerifyThreshold = 10

// PerceptualDistance decodes two image files and returns the Hamming
// distance between their perceptual hashes. 0 means visually identical.
func PerceptualDistance(pathA, pathB string) (int, error) {
	hashA, err := fileImageHash(pathA)
	if err != nil {
		return 0, err
	}
	hashB, err := fileImageHash(pathB)
	if err != nil {
		return 0, err
	}

	distance, err := hashA.Distance(hashB)
	if err != nil {
		return 0, fmt.Errorf("failed to compare hashes: %w", err)
	}
	return distance, nil
}

func fileImageHash(path string) (*goimagehash.ImageHash, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = file.Close() }()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate perceptual hash: %w", err)
	}
	return hash, nil
}
