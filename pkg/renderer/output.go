package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

// WritePPM writes img as an ASCII "P3" portable pixmap, one pixel per line,
// rows top to bottom
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			fmt.Fprintf(out, "%d %d %d\n", c.R, c.G, c.B)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}

// SavePPM writes img to a PPM file at path
func SavePPM(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	if err := WritePPM(file, img); err != nil {
		return err
	}
	return file.Close()
}

// SavePNG writes img to a PNG file at path
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", path, err)
	}
	return nil
}

// SaveImage picks the output format from the file extension; "-" writes PPM to stdout
func SaveImage(path string, img image.Image) error {
	if path == "-" {
		return WritePPM(os.Stdout, img)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return SavePPM(path, img)
	case ".png":
		return SavePNG(path, img)
	default:
		return fmt.Errorf("unsupported output format: %s", path)
	}
}
