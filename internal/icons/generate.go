// Package icons generates the app's PWA icon set from public/logo.png.
//
// Each target icon is the logo scaled to fit a square canvas (aspect ratio
// preserved, Lanczos resampling), centered over an opaque navy background,
// and written back to the public directory as PNG.
package icons

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/saikumarmk/monash-handbook-plus/internal/logging"
)

// Generator produces the icon set for one public directory.
type Generator struct {
	PublicDir string
	Logger    *logging.Logger

	// Out receives the user-facing progress lines. Defaults to stdout.
	Out io.Writer
}

// NewGenerator creates a generator for the given public directory.
func NewGenerator(publicDir string, logger *logging.Logger) *Generator {
	return &Generator{
		PublicDir: publicDir,
		Logger:    logger,
		Out:       os.Stdout,
	}
}

// Run generates all icon targets from <public>/logo.png.
//
// A missing logo is reported on Out and is not an error: the run produces
// no output files and the process exits cleanly. Any other failure (corrupt
// image, unwritable directory) is returned to the caller.
func (g *Generator) Run(ctx context.Context) error {
	inputPath := filepath.Join(g.PublicDir, SourceName)
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		fmt.Fprintf(g.Out, "Error: %s not found at %s\n", SourceName, inputPath)
		return nil
	}

	fmt.Fprintln(g.Out, "Generating PWA icons from logo.png...")

	src, err := g.loadSource(inputPath)
	if err != nil {
		return err
	}

	for _, target := range Targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.generate(src, target); err != nil {
			return err
		}
		fmt.Fprintf(g.Out, "✓ Generated %s\n", target.Filename)
	}

	fmt.Fprintln(g.Out, "Done!")
	return nil
}

// loadSource decodes the logo and normalizes it to NRGBA so every pixel
// carries an alpha value the compositing step can use as a mask.
func (g *Generator) loadSource(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	g.Logger.Debug().
		Str("format", format).
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Msg("Decoded source logo")

	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	return nrgba, nil
}

// ScaledSize computes the dimensions of a w×h logo scaled to fit a
// size×size canvas with its aspect ratio preserved. At least one axis
// equals size; the fractional remainder on the other axis is truncated.
func ScaledSize(w, h, size int) (newW, newH int) {
	ratio := float64(w) / float64(h)
	if ratio > 1 {
		// Wider than tall
		return size, int(float64(size) / ratio)
	}
	// Taller than wide (or square)
	return int(float64(size) * ratio), size
}

// generate renders one target: scale, center over the background, encode.
func (g *Generator) generate(src *image.NRGBA, target Target) error {
	bounds := src.Bounds()
	newW, newH := ScaledSize(bounds.Dx(), bounds.Dy(), target.Size)

	scaled := resize.Resize(uint(newW), uint(newH), src, resize.Lanczos3)

	canvas := image.NewNRGBA(image.Rect(0, 0, target.Size, target.Size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	x := (target.Size - newW) / 2
	y := (target.Size - newH) / 2
	region := image.Rect(x, y, x+newW, y+newH)
	draw.Draw(canvas, region, scaled, scaled.Bounds().Min, draw.Over)

	outputPath := filepath.Join(g.PublicDir, target.Filename)
	if err := writePNG(outputPath, canvas); err != nil {
		return err
	}

	g.Logger.Debug().
		Str("path", outputPath).
		Int("size", target.Size).
		Int("width", newW).
		Int("height", newH).
		Msg("Wrote icon")
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
