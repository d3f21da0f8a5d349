package parallel

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestEachRunsAll(t *testing.T) {
	p := New(4)
	defer p.Close()

	var hits [100]atomic.Int32
	err := p.Each(context.Background(), len(hits), func(i int) {
		hits[i].Add(1)
	})
	if err != nil {
		t.Fatalf("Each returned %v", err)
	}
	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Errorf("entry %d ran %d times, want 1", i, got)
		}
	}
}

func TestEachEmpty(t *testing.T) {
	p := New(2)
	defer p.Close()
	if err := p.Each(context.Background(), 0, func(int) {
		t.Error("fn called for empty batch")
	}); err != nil {
		t.Errorf("Each returned %v", err)
	}
}

func TestEachCancelledContext(t *testing.T) {
	p := New(2)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	err := p.Each(ctx, 50, func(int) { ran.Add(1) })
	if err != context.Canceled {
		t.Errorf("Each returned %v, want context.Canceled", err)
	}
	if ran.Load() != 0 {
		t.Errorf("%d entries ran after pre-cancelled context", ran.Load())
	}
}

func TestEachCancelMidBatch(t *testing.T) {
	p := New(2)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Int32
	err := p.Each(ctx, 1000, func(i int) {
		if ran.Add(1) == 10 {
			cancel()
		}
	})
	if err != context.Canceled {
		t.Errorf("Each returned %v, want context.Canceled", err)
	}
	// Entries that already started completed; the rest were skipped.
	if n := ran.Load(); n < 10 || n == 1000 {
		t.Errorf("ran %d entries, want >=10 and <1000", n)
	}
}

func TestEachAfterClose(t *testing.T) {
	p := New(2)
	p.Close()

	var ran atomic.Int32
	if err := p.Each(context.Background(), 10, func(int) { ran.Add(1) }); err != nil {
		t.Fatalf("Each returned %v", err)
	}
	if ran.Load() != 10 {
		t.Errorf("inline fallback ran %d entries, want 10", ran.Load())
	}
}

func TestCloseIdempotent(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()
}

func TestDefaultWorkers(t *testing.T) {
	p := New(0)
	defer p.Close()
	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", p.Workers())
	}
}
