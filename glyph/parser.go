package glyph

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MarkupParser is the injected capability that turns raw markup text into a
// Document the extractor can query. The default implementation walks the
// XML token stream with encoding/xml; hosts with their own DOM (or a
// stricter SVG parser) can register an alternative backend.
type MarkupParser interface {
	// Parse parses one glyph's markup.
	Parse(markup string) (Document, error)
}

// Document is an element-like handle over parsed glyph markup.
// The extractor needs exactly two things from it: the declared coordinate
// box, if any, and the outline primitives' path data.
type Document interface {
	// Frame returns the declared coordinate box and true, or a zero Frame
	// and false when the markup declares none.
	Frame() (Frame, bool)

	// Outlines returns the path data of every outline primitive, in
	// document order. Empty when the markup has no outline.
	Outlines() []string
}

// parserRegistry holds registered markup parsers.
var parserRegistry = map[string]MarkupParser{
	"xml": xmlParser{},
}

// defaultParserName is the name of the default parser backend.
const defaultParserName = "xml"

// RegisterParser registers a custom markup parser backend under a name,
// selectable per extraction via WithParser.
func RegisterParser(name string, p MarkupParser) {
	parserRegistry[name] = p
}

func getParser(name string) MarkupParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}

// xmlParser is the default MarkupParser built on encoding/xml.
// It is tolerant by design: it scans the token stream for the root
// element's viewBox and for path elements anywhere in the tree, ignoring
// everything else (groups, styling, metadata).
type xmlParser struct{}

type xmlDocument struct {
	frame    Frame
	hasFrame bool
	outlines []string
}

func (d *xmlDocument) Frame() (Frame, bool) { return d.frame, d.hasFrame }
func (d *xmlDocument) Outlines() []string   { return d.outlines }

func (xmlParser) Parse(markup string) (Document, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, ErrEmptyMarkup
	}

	dec := xml.NewDecoder(strings.NewReader(markup))
	// Glyph assets are not always well-formed XML; be permissive about
	// entities and charset so a stray &nbsp; does not kill a character.
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	doc := &xmlDocument{}
	seenRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("glyph: markup parse: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !seenRoot {
			seenRoot = true
			for _, attr := range start.Attr {
				if strings.EqualFold(attr.Name.Local, "viewBox") {
					if f, ok := parseViewBox(attr.Value); ok {
						doc.frame = f
						doc.hasFrame = true
					}
				}
			}
		}
		if strings.EqualFold(start.Name.Local, "path") {
			for _, attr := range start.Attr {
				if attr.Name.Local == "d" && strings.TrimSpace(attr.Value) != "" {
					doc.outlines = append(doc.outlines, attr.Value)
				}
			}
		}
	}

	return doc, nil
}

// parseViewBox parses a "minX minY width height" attribute value.
// Commas and whitespace both separate fields.
func parseViewBox(s string) (Frame, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return Frame{}, false
	}
	var vals [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Frame{}, false
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return Frame{}, false
	}
	return Frame{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, true
}
