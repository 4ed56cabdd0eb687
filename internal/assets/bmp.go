package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// FaceFilename returns the bitmap file name for a face index.
func FaceFilename(index int) string {
	return fmt.Sprintf("image%d.bmp", index)
}

// DecodeBMP reads and decodes the bitmap for index from dir.
func DecodeBMP(dir string, index int) (image.Image, error) {
	path := filepath.Join(dir, FaceFilename(index))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open face %d: %w", index, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
