package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/wildstyle/kern/glyph"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](10, StringHasher)

	c.Set("a", 42)
	v, ok := c.Get("a")
	if !ok || v != 42 {
		t.Errorf("Get(a) = (%d, %v), want (42, true)", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[string, int](10, StringHasher)
	calls := 0
	create := func() int {
		calls++
		return 7
	}
	if v := c.GetOrCreate("k", create); v != 7 {
		t.Errorf("GetOrCreate = %d, want 7", v)
	}
	if v := c.GetOrCreate("k", create); v != 7 {
		t.Errorf("GetOrCreate = %d, want 7", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestEviction(t *testing.T) {
	// Capacity 1 per shard: inserting two keys that land in the same
	// shard must evict the older.
	c := New[string, int](1, func(string) uint64 { return 0 })
	c.Set("old", 1)
	c.Set("new", 2)
	if _, ok := c.Get("old"); ok {
		t.Error("oldest entry survived past capacity")
	}
	if _, ok := c.Get("new"); !ok {
		t.Error("newest entry evicted")
	}
}

func TestLRUOrder(t *testing.T) {
	c := New[string, int](2, func(string) uint64 { return 0 })
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // refresh a; b becomes oldest
	c.Set("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Error("refreshed entry evicted instead of stale one")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry evicted")
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New[string, int](10, StringHasher)
	c.Set("a", 1)
	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}
	c.Set("b", 2)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestStats(t *testing.T) {
	c := New[string, int](10, StringHasher)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("nope")
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("stats = %d hits %d misses, want 2 and 1", s.Hits, s.Misses)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int](32, StringHasher)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa(i % 50)
				c.Set(key, i)
				c.Get(key)
				c.GetOrCreate(key, func() int { return i })
			}
		}(g)
	}
	wg.Wait()
}

func TestGlyphCacheKeying(t *testing.T) {
	c := NewGlyphCache(0)
	std := GlyphKey{Style: "block", Char: 'a', Variant: glyph.VariantStandard}
	alt := GlyphKey{Style: "block", Char: 'a', Variant: glyph.VariantAlternate}

	c.Set(std, &glyph.Glyph{Char: 'a'})
	if _, ok := c.Get(alt); ok {
		t.Error("variant ignored in cache key")
	}
	if _, ok := c.Get(std); !ok {
		t.Error("stored glyph not found")
	}
}

func TestSnapshotReplace(t *testing.T) {
	type table struct{ n int }

	s := NewSnapshot[table](nil)
	if _, ok := s.Load(); ok {
		t.Error("empty snapshot reported a value")
	}

	first := &table{n: 1}
	if prev := s.Replace(first); prev != nil {
		t.Errorf("Replace returned %v, want nil", prev)
	}
	got, ok := s.Load()
	if !ok || got != first {
		t.Error("Load did not return the installed snapshot")
	}

	second := &table{n: 2}
	if prev := s.Replace(second); prev != first {
		t.Error("Replace did not hand back the prior snapshot")
	}
}
