package glyph

import (
	"io"
	"log/slog"
)

// FootprintMode selects how outline ink is projected onto the grid.
type FootprintMode uint8

const (
	// FootprintBounds marks every cell touched by a primitive's bounding
	// box. This over-approximates ink coverage at O(primitives) cost and
	// is the default: overlap decisions only need coarse vertical-extent
	// information.
	FootprintBounds FootprintMode = iota

	// FootprintCoverage scan-converts the actual outline and marks cells
	// with nonzero coverage. Grid dimensions are identical to
	// FootprintBounds; only cell occupancy differs.
	FootprintCoverage
)

// Option configures extraction.
type Option func(*config)

type config struct {
	parserName string
	mode       FootprintMode
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		parserName: defaultParserName,
		mode:       FootprintBounds,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithParser selects the markup parser backend by registered name.
// The default is "xml" (encoding/xml token scan).
func WithParser(name string) Option {
	return func(c *config) {
		c.parserName = name
	}
}

// WithFootprintMode selects the footprint rasterization mode.
func WithFootprintMode(m FootprintMode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithLogger sets the logger used for extraction diagnostics, such as a
// glyph falling back to the default coordinate box. Extraction never logs
// through any global; pass the logger you want or get silence.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
