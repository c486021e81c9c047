package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/mdouchement/hdr"
	_ "github.com/mdouchement/hdr/codec/rgbe" // Radiance HDR decoder
	_ "golang.org/x/image/bmp"                // BMP decoder
	_ "golang.org/x/image/tiff"               // TIFF decoder
)

// ImagesEnv names a directory searched first for texture images
const ImagesEnv = "PATHTRACER_IMAGES"

// ImageData contains a decoded image as packed 8-bit RGB, row-major from the top
type ImageData struct {
	Width  int
	Height int
	Pixels []byte // 3 bytes per pixel, offset y*Width*3 + x*3
}

// LoadImage decodes a PNG, JPEG, GIF, BMP, TIFF or Radiance HDR file into
// 8-bit RGB. Alpha is dropped.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return ToRGB(img), nil
}

// ToRGB converts any image to packed 8-bit RGB. High dynamic range images
// are clamped to [0,1] per channel.
func ToRGB(img image.Image) *ImageData {
	if hdrImg, ok := img.(hdr.Image); ok {
		return hdrToRGB(hdrImg)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]byte, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			offset := y*width*3 + x*3
			pixels[offset] = byte(r >> 8)
			pixels[offset+1] = byte(g >> 8)
			pixels[offset+2] = byte(b >> 8)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

func hdrToRGB(img hdr.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]byte, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.HDRAt(x+bounds.Min.X, y+bounds.Min.Y).HDRRGBA()
			offset := y*width*3 + x*3
			pixels[offset] = floatToByte(r)
			pixels[offset+1] = floatToByte(g)
			pixels[offset+2] = floatToByte(b)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// floatToByte maps [0,1] onto [0,255], saturating outside the range
func floatToByte(value float64) byte {
	if value <= 0 {
		return 0
	}
	if value >= 1 {
		return 255
	}
	return byte(256 * value)
}

// ImageSearchPaths returns the directories FindImage looks in, in order
func ImageSearchPaths() []string {
	var dirs []string
	if dir := os.Getenv(ImagesEnv); dir != "" {
		dirs = append(dirs, dir)
	}
	return append(dirs, "input", "images", ".")
}

// FindImage resolves a texture name against the search paths
func FindImage(name string, dirs []string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
		}
	}

	return "", fmt.Errorf("image %s not found in %v: %w", name, dirs, os.ErrNotExist)
}

// LoadImageTexture finds, decodes and wraps an image as a texture
func LoadImageTexture(name string) (*material.ImageTexture, error) {
	path, err := FindImage(name, ImageSearchPaths())
	if err != nil {
		return nil, err
	}

	data, err := LoadImage(path)
	if err != nil {
		return nil, err
	}

	return material.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}
