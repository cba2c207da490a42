// Package wordcloud renders a frequency-weighted word image from resume
// text. Rendering is a presentation concern; layout and colors are not
// deterministic and callers should only rely on the image dimensions.
package wordcloud

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math/rand"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/jonathan/resume-analyzer/internal/patterns"
	"github.com/jonathan/resume-analyzer/internal/textmetrics"
)

// Defaults match the rendered cloud's usual display size.
const (
	DefaultMaxWords = 50
	DefaultWidth    = 800
	DefaultHeight   = 400

	minFontSize = 14.0
	maxFontSize = 64.0
)

// Options configures the rendered image.
type Options struct {
	MaxWords int
	Width    int
	Height   int
}

// DefaultOptions returns the standard cloud configuration.
func DefaultOptions() *Options {
	return &Options{
		MaxWords: DefaultMaxWords,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
	}
}

// palette holds the fill colors words cycle through.
var palette = [][3]float64{
	{0.12, 0.47, 0.71},
	{1.00, 0.50, 0.05},
	{0.17, 0.63, 0.17},
	{0.84, 0.15, 0.16},
	{0.58, 0.40, 0.74},
	{0.55, 0.34, 0.29},
}

// Render draws a word cloud for the text and returns the raster image.
// Words are stop-word filtered and weighted by frequency; the most
// frequent words render largest. Empty or all-stop-word text produces a
// blank image of the requested size.
func Render(text string, opts *Options) (image.Image, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}
	maxWords := opts.MaxWords
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}

	filtered := textmetrics.FilterStopWords(textmetrics.Keywords(text), patterns.StopWords)
	top := textmetrics.NewFrequencies(filtered).TopN(maxWords)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if len(top) == 0 {
		return dc.Image(), nil
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	maxCount := top[0].Count
	minCount := top[len(top)-1].Count

	// Row-packing layout: biggest words first, left to right, wrapping
	// to a new row when the current one fills up.
	const margin = 10.0
	x, y := margin, margin
	rowHeight := 0.0

	for i, wc := range top {
		size := fontSizeFor(wc.Count, minCount, maxCount)
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create font face: %w", err)
		}
		dc.SetFontFace(face)

		w, h := dc.MeasureString(wc.Word)
		if x+w > float64(opts.Width)-margin {
			x = margin
			y += rowHeight + margin
			rowHeight = 0
		}
		if y+h > float64(opts.Height)-margin {
			break
		}

		c := palette[(i+rand.Intn(len(palette)))%len(palette)]
		dc.SetRGB(c[0], c[1], c[2])
		dc.DrawString(wc.Word, x, y+h)

		x += w + margin
		if h > rowHeight {
			rowHeight = h
		}
	}

	return dc.Image(), nil
}

// RenderPNG renders the cloud and encodes it as PNG.
func RenderPNG(w io.Writer, text string, opts *Options) error {
	img, err := Render(text, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// fontSizeFor scales a count into the font size range linearly.
func fontSizeFor(count, minCount, maxCount int) float64 {
	if maxCount == minCount {
		return (minFontSize + maxFontSize) / 2
	}
	frac := float64(count-minCount) / float64(maxCount-minCount)
	return minFontSize + frac*(maxFontSize-minFontSize)
}
