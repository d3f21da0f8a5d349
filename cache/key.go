package cache

import (
	"hash/fnv"

	"github.com/wildstyle/kern/glyph"
)

// GlyphKey identifies one extracted glyph: a character in a particular
// variant of a particular style.
type GlyphKey struct {
	Style   string
	Char    rune
	Variant glyph.Variant
}

// GlyphKeyHasher computes the shard-selection hash for a GlyphKey.
func GlyphKeyHasher(k GlyphKey) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k.Style))
	var buf [5]byte
	buf[0] = byte(k.Char)
	buf[1] = byte(k.Char >> 8)
	buf[2] = byte(k.Char >> 16)
	buf[3] = byte(k.Char >> 24)
	buf[4] = byte(k.Variant)
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// NewGlyphCache creates the cache the engine keeps extracted glyphs in.
func NewGlyphCache(capacity int) *Cache[GlyphKey, *glyph.Glyph] {
	return New[GlyphKey, *glyph.Glyph](capacity, GlyphKeyHasher)
}
