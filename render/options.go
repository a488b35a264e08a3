// SPDX-License-Identifier: MIT

package render

import (
	"gonum.org/v1/plot/vg"
)

// Defaults.
const (
	DefaultWidth  = 4 * vg.Inch
	DefaultHeight = 4 * vg.Inch
	DefaultLevels = 64
	DefaultFormat = "png"
)

const (
	panicSize   = "render: width and height must be > 0"
	panicLevels = "render: palette levels must be ≥ 2"
	panicFormat = "render: format must not be empty"
)

// Option customizes a render call.
type Option func(*Options)

// Options holds the resolved settings.
type Options struct {
	width, height vg.Length
	levels        int
	title         string
	format        string
}

// WithSize sets the image size. Panics unless both are positive.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicSize)
	}

	return func(o *Options) { o.width, o.height = width, height }
}

// WithLevels sets the number of heat-map palette colors. Panics if n < 2.
func WithLevels(n int) Option {
	if n < 2 {
		panic(panicLevels)
	}

	return func(o *Options) { o.levels = n }
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

// WithFormat sets the image format ("png", "svg", "pdf", ...). Unknown
// formats surface as an error from the renderer.
func WithFormat(format string) Option {
	if format == "" {
		panic(panicFormat)
	}

	return func(o *Options) { o.format = format }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		width:  DefaultWidth,
		height: DefaultHeight,
		levels: DefaultLevels,
		format: DefaultFormat,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
