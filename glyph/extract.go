package glyph

// Extract parses one glyph's markup and derives its footprint.
//
// The logical frame comes from the markup's declared coordinate box when
// present, else DefaultFrame. Every outline primitive contributes its own
// bounding box; the union of those boxes is rasterized onto the grid at
// Resolution logical units per cell (or, under FootprintCoverage, the
// outlines themselves are scan-converted). The per-column run summary is
// then derived from the grid.
//
// Extract fails with an error unwrapping to ErrNoOutline when the markup
// contains no recognizable outline element. A failed character must not
// abort batch processing; callers collect the error and move on (see
// kern.LoadStyle), substituting Placeholder at render time.
func Extract(markup string, char rune, opts ...Option) (*Glyph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	doc, err := getParser(cfg.parserName).Parse(markup)
	if err != nil {
		return nil, err
	}

	frame, declared := doc.Frame()
	if !declared {
		frame = DefaultFrame
		cfg.logger.Debug("glyph: markup declares no coordinate box, using default",
			"char", string(char),
			"frame", DefaultFrame)
	}

	outlines := doc.Outlines()
	if len(outlines) == 0 {
		return nil, &NoOutlineError{Char: char}
	}

	// Parse each primitive's path data. A single malformed primitive is
	// dropped with a warning rather than failing the glyph; the glyph
	// fails only when nothing parseable remains.
	var (
		paths [][]segment
		boxes []box
	)
	for _, d := range outlines {
		segs, err := parsePath(d)
		if err != nil {
			cfg.logger.Warn("glyph: skipping malformed outline primitive",
				"char", string(char),
				"err", err)
			continue
		}
		minX, minY, maxX, maxY := pathBox(segs)
		paths = append(paths, segs)
		boxes = append(boxes, box{minX: minX, minY: minY, maxX: maxX, maxY: maxY})
	}
	if len(paths) == 0 {
		return nil, &NoOutlineError{Char: char}
	}

	var grid [][]bool
	switch cfg.mode {
	case FootprintCoverage:
		grid = rasterizeCoverage(frame, paths)
	default:
		grid = rasterizeBounds(frame, boxes)
	}

	return &Glyph{
		Char:   char,
		Markup: markup,
		Frame:  frame,
		Bounds: BoundsOf(frame),
		Grid:   grid,
		Runs:   runsFrom(grid),
		Scale:  1,
	}, nil
}
