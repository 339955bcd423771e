// Package swatch renders palettes as PNG images, one labelled horizontal
// band per colour.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/inkswatch/internal/colour"
)

// ErrNoBands is returned when asked to render an empty palette.
var ErrNoBands = errors.New("no colours to render")

// Band is one labelled colour stripe.
type Band struct {
	Label  string
	Colour colour.RGB
}

// Options controls the image geometry. Zero values use the defaults.
type Options struct {
	Width      int
	BandHeight int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 480
	}
	if o.BandHeight <= 0 {
		o.BandHeight = 48
	}
	return o
}

// Render draws bands top to bottom.
func Render(bands []Band, opts Options) (*image.RGBA, error) {
	if len(bands) == 0 {
		return nil, ErrNoBands
	}
	opts = opts.withDefaults()

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.BandHeight*len(bands)))
	face := basicfont.Face7x13

	for i, b := range bands {
		rect := image.Rect(0, i*opts.BandHeight, opts.Width, (i+1)*opts.BandHeight)
		draw.Draw(img, rect, image.NewUniform(toColor(b.Colour)), image.Point{}, draw.Src)

		if b.Label == "" {
			continue
		}
		// Baseline centred vertically in the band.
		baseline := rect.Min.Y + (opts.BandHeight+face.Ascent-face.Descent)/2
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(labelColour(b.Colour)),
			Face: face,
			Dot:  fixed.P(8, baseline),
		}
		d.DrawString(b.Label)
	}

	return img, nil
}

// Encode renders bands and writes them to w as PNG.
func Encode(w io.Writer, bands []Band, opts Options) error {
	img, err := Render(bands, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WriteFile renders bands into a PNG file at path, replacing it atomically.
func WriteFile(path string, bands []Band, opts Options) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".swatch-*.png")
	if err != nil {
		return fmt.Errorf("failed to create swatch file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, bands, opts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write swatch file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write swatch file: %w", err)
	}
	return nil
}

func toColor(c colour.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// labelColour picks whichever of black or white contrasts more with c.
func labelColour(c colour.RGB) color.Color {
	return toColor(colour.TextColour(c))
}
