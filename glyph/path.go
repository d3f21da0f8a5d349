package glyph

import (
	"math"
	"strconv"
)

// Path data parsing for outline primitives.
//
// The parser covers the command set that lettering assets actually use
// (move, line, horizontal/vertical, quadratic and cubic curves including
// the smooth shorthands, arcs, close). Coordinates may be absolute or
// relative. Arcs contribute their endpoints only; the footprint is a coarse
// over-approximation, so flattening the elliptical sweep is not worth the
// cost here.

type segOp uint8

const (
	opMove segOp = iota
	opLine
	opQuad
	opCube
	opClose
)

type point struct {
	X, Y float64
}

// segment is a single parsed path command in absolute coordinates.
// opLine and opMove use P1 as the target point. opQuad uses P1 as the
// control point and P2 as the end point. opCube uses P1 and P2 as control
// points and P3 as the end point.
type segment struct {
	Op         segOp
	P1, P2, P3 point
}

// pathBox returns the bounding box of all points appearing in the segments,
// control points included. Including control points over-covers curves,
// which is the right direction for an ink over-approximation.
func pathBox(segs []segment) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	add := func(p point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, s := range segs {
		switch s.Op {
		case opMove, opLine:
			add(s.P1)
		case opQuad:
			add(s.P1)
			add(s.P2)
		case opCube:
			add(s.P1)
			add(s.P2)
			add(s.P3)
		}
	}
	return minX, minY, maxX, maxY
}

// pathScanner tokenizes SVG path data.
type pathScanner struct {
	data string
	pos  int
	cmd  byte
}

func (s *pathScanner) err(reason string) error {
	return &PathError{Pos: s.pos, Cmd: s.cmd, Reason: reason}
}

func (s *pathScanner) skipSep() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

func isCommand(b byte) bool {
	switch b {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't',
		'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// number scans one float token. SVG allows tokens to abut ("1.5.5" is two
// numbers, "1-2" is two numbers), so the scan is manual rather than a split.
func (s *pathScanner) number() (float64, error) {
	s.skipSep()
	start := s.pos
	if s.pos < len(s.data) && (s.data[s.pos] == '+' || s.data[s.pos] == '-') {
		s.pos++
	}
	digits := false
	for s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
		s.pos++
		digits = true
	}
	if s.pos < len(s.data) && s.data[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
			s.pos++
			digits = true
		}
	}
	if !digits {
		s.pos = start
		return 0, s.err("expected number")
	}
	if s.pos < len(s.data) && (s.data[s.pos] == 'e' || s.data[s.pos] == 'E') {
		mark := s.pos
		s.pos++
		if s.pos < len(s.data) && (s.data[s.pos] == '+' || s.data[s.pos] == '-') {
			s.pos++
		}
		expDigits := false
		for s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
			s.pos++
			expDigits = true
		}
		if !expDigits {
			// Not an exponent after all (e.g. a following "m" command
			// can't start with 'e', but be safe and back out).
			s.pos = mark
		}
	}
	v, err := strconv.ParseFloat(s.data[start:s.pos], 64)
	if err != nil {
		return 0, s.err("malformed number " + strconv.Quote(s.data[start:s.pos]))
	}
	return v, nil
}

func (s *pathScanner) pair() (point, error) {
	x, err := s.number()
	if err != nil {
		return point{}, err
	}
	y, err := s.number()
	if err != nil {
		return point{}, err
	}
	return point{X: x, Y: y}, nil
}

// hasMoreArgs reports whether another argument group follows for the
// current command (SVG allows implicit command repetition).
func (s *pathScanner) hasMoreArgs() bool {
	s.skipSep()
	if s.pos >= len(s.data) {
		return false
	}
	b := s.data[s.pos]
	return !isCommand(b)
}

// parsePath parses SVG path data into absolute segments.
func parsePath(d string) ([]segment, error) {
	s := &pathScanner{data: d}
	var (
		segs     []segment
		cur      point // current point
		start    point // subpath start, target of close
		lastCtrl point // last control point, for smooth shorthands
		lastOp   segOp = opClose
	)

	abs := func(rel bool, p point) point {
		if rel {
			return point{X: cur.X + p.X, Y: cur.Y + p.Y}
		}
		return p
	}

	// reflect returns lastCtrl mirrored around the current point, or the
	// current point itself when the previous command set no control point.
	reflect := func(want segOp) point {
		if lastOp != want {
			return cur
		}
		return point{X: 2*cur.X - lastCtrl.X, Y: 2*cur.Y - lastCtrl.Y}
	}

	for {
		s.skipSep()
		if s.pos >= len(s.data) {
			break
		}
		c := s.data[s.pos]
		if !isCommand(c) {
			return nil, s.err("expected command letter")
		}
		s.cmd = c
		s.pos++
		rel := c >= 'a' && c <= 'z'

		switch c {
		case 'M', 'm':
			p, err := s.pair()
			if err != nil {
				return nil, err
			}
			cur = abs(rel, p)
			start = cur
			segs = append(segs, segment{Op: opMove, P1: cur})
			lastOp = opMove
			// Additional pairs after a moveto are implicit linetos.
			for s.hasMoreArgs() {
				p, err = s.pair()
				if err != nil {
					return nil, err
				}
				cur = abs(rel, p)
				segs = append(segs, segment{Op: opLine, P1: cur})
				lastOp = opLine
			}

		case 'L', 'l':
			for {
				p, err := s.pair()
				if err != nil {
					return nil, err
				}
				cur = abs(rel, p)
				segs = append(segs, segment{Op: opLine, P1: cur})
				lastOp = opLine
				if !s.hasMoreArgs() {
					break
				}
			}

		case 'H', 'h':
			for {
				x, err := s.number()
				if err != nil {
					return nil, err
				}
				if rel {
					x += cur.X
				}
				cur = point{X: x, Y: cur.Y}
				segs = append(segs, segment{Op: opLine, P1: cur})
				lastOp = opLine
				if !s.hasMoreArgs() {
					break
				}
			}

		case 'V', 'v':
			for {
				y, err := s.number()
				if err != nil {
					return nil, err
				}
				if rel {
					y += cur.Y
				}
				cur = point{X: cur.X, Y: y}
				segs = append(segs, segment{Op: opLine, P1: cur})
				lastOp = opLine
				if !s.hasMoreArgs() {
					break
				}
			}

		case 'C', 'c':
			for {
				c1, err := s.pair()
				if err != nil {
					return nil, err
				}
				c2, err := s.pair()
				if err != nil {
					return nil, err
				}
				end, err := s.pair()
				if err != nil {
					return nil, err
				}
				c1, c2, end = abs(rel, c1), abs(rel, c2), abs(rel, end)
				segs = append(segs, segment{Op: opCube, P1: c1, P2: c2, P3: end})
				lastCtrl = c2
				cur = end
				lastOp = opCube
				if !s.hasMoreArgs() {
					break
				}
			}

		case 'S', 's':
			for {
				c1 := reflect(opCube)
				c2, err := s.pair()
				if err != nil {
					return nil, err
				}
				end, err := s.pair()
				if err != nil {
					return nil, err
				}
				c2, end = abs(rel, c2), abs(rel, end)
				segs = append(segs, segment{Op: opCube, P1: c1, P2: c2, P3: end})
				lastCtrl = c2
				cur = end
				lastOp = opCube
				if !s.hasMoreArgs() {
					break
				}
			}

		case 'Q', 'q':
			for {
				c1, err := s.pair()
				if err != nil {
					return nil, err
				}
				end, err := s.pair()
				if err != nil {
					return nil, err
				}
				c1, end = abs(rel, c1), abs(rel, end)
				segs = append(segs, segment{Op: opQuad, P1: c1, P2: end})
				lastCtrl = c1
				cur = end
				lastOp = opQuad
				if !s.hasMoreArgs() {
					break
				}
			}

		case 'T', 't':
			for {
				c1 := reflect(opQuad)
				end, err := s.pair()
				if err != nil {
					return nil, err
				}
				end = abs(rel, end)
				segs = append(segs, segment{Op: opQuad, P1: c1, P2: end})
				lastCtrl = c1
				cur = end
				lastOp = opQuad
				if !s.hasMoreArgs() {
					break
				}
			}

		case 'A', 'a':
			for {
				// rx ry x-axis-rotation large-arc-flag sweep-flag x y
				for i := 0; i < 5; i++ {
					if _, err := s.number(); err != nil {
						return nil, err
					}
				}
				end, err := s.pair()
				if err != nil {
					return nil, err
				}
				end = abs(rel, end)
				segs = append(segs, segment{Op: opLine, P1: end})
				cur = end
				lastOp = opLine
				if !s.hasMoreArgs() {
					break
				}
			}

		case 'Z', 'z':
			segs = append(segs, segment{Op: opClose})
			cur = start
			lastOp = opClose
		}
	}

	if len(segs) == 0 {
		return nil, &PathError{Pos: 0, Reason: "empty path data"}
	}
	return segs, nil
}
