package glyph

import "testing"

func TestParseViewBox(t *testing.T) {
	tests := []struct {
		in   string
		want Frame
		ok   bool
	}{
		{"0 0 100 100", Frame{0, 0, 100, 100}, true},
		{"10,20,30,40", Frame{10, 20, 30, 40}, true},
		{" 0  0\t64 64 ", Frame{0, 0, 64, 64}, true},
		{"-5 -5 10 10", Frame{-5, -5, 10, 10}, true},
		{"0 0 100", Frame{}, false},
		{"0 0 0 100", Frame{}, false},
		{"0 0 -10 100", Frame{}, false},
		{"a b c d", Frame{}, false},
	}
	for _, tt := range tests {
		got, ok := parseViewBox(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseViewBox(%q) = (%+v, %v), want (%+v, %v)",
				tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestXMLParserCollectsNestedPaths(t *testing.T) {
	markup := `<svg viewBox="0 0 100 100">
		<g fill="#111"><path d="M0 0 L10 10"/></g>
		<g><g><path d="M20 20 L30 30"/></g></g>
		<rect x="0" y="0" width="5" height="5"/>
	</svg>`
	doc, err := xmlParser{}.Parse(markup)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := len(doc.Outlines()); got != 2 {
		t.Errorf("outlines = %d, want 2", got)
	}
	f, ok := doc.Frame()
	if !ok || f != (Frame{0, 0, 100, 100}) {
		t.Errorf("frame = (%+v, %v), want declared box", f, ok)
	}
}

func TestXMLParserNoFrame(t *testing.T) {
	doc, err := xmlParser{}.Parse(`<svg><path d="M0 0 L1 1"/></svg>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := doc.Frame(); ok {
		t.Error("frame reported for markup without viewBox")
	}
}

func TestRegisterParser(t *testing.T) {
	stub := stubParser{doc: &xmlDocument{outlines: []string{"M0 0 L10 10"}}}
	RegisterParser("stub", stub)
	g, err := Extract("anything", 'z', WithParser("stub"))
	if err != nil {
		t.Fatalf("Extract via custom parser failed: %v", err)
	}
	if g.Frame != DefaultFrame {
		t.Errorf("frame = %+v, want default", g.Frame)
	}
}

type stubParser struct {
	doc Document
}

func (s stubParser) Parse(string) (Document, error) { return s.doc, nil }
