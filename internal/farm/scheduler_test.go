package farm

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"
)

func TestSchedulerHandsOutEveryTile(t *testing.T) {
	s := newScheduler(image.Rect(0, 0, 64, 48), 32)

	seen := make(map[image.Rectangle]bool)
	for range 4 {
		tile, found := s.popTile()
		if !found {
			t.Fatal("scheduler ran out of tiles early")
		}
		if seen[tile] {
			t.Fatalf("tile %v handed out twice before re-handout", tile)
		}
		seen[tile] = true
	}

	// With nothing unstarted left, started tiles are handed out again.
	tile, found := s.popTile()
	if !found {
		t.Fatal("expected a re-handed tile")
	}
	if !seen[tile] {
		t.Errorf("re-handed tile %v was never started", tile)
	}

	if p := s.snapshot(); p.Done || p.Finished != 0 {
		t.Errorf("unexpected progress before any results: %+v", p)
	}
}

func TestSchedulerCompletion(t *testing.T) {
	s := newScheduler(image.Rect(0, 0, 64, 48), 32)

	for {
		tile, found := s.popTile()
		if !found {
			break
		}
		s.tileFinished(image.NewRGBA(tile))
	}

	p := s.snapshot()
	if !p.Done {
		t.Error("expected scheduler to be done")
	}
	if p.Finished != 1 {
		t.Errorf("finished = %g, want 1", p.Finished)
	}

	select {
	case <-s.ctx.Done():
	default:
		t.Error("expected completion to cancel the scheduler context")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := s.image(ctx); err != nil {
		t.Errorf("image after completion: %v", err)
	}
}

func TestSchedulerComposite(t *testing.T) {
	bounds := image.Rect(0, 0, 8, 8)
	s := newScheduler(bounds, 4)

	red := color.RGBA{R: 255, A: 255}
	for {
		tile, found := s.popTile()
		if !found {
			break
		}
		img := image.NewRGBA(tile)
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				img.SetRGBA(x, y, red)
			}
		}
		s.tileFinished(img)
	}

	out := s.imageSnapshot()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if got := out.RGBAAt(x, y); got != red {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, red)
			}
		}
	}
}

func TestSchedulerDuplicateResult(t *testing.T) {
	s := newScheduler(image.Rect(0, 0, 4, 4), 4)

	tile, found := s.popTile()
	if !found {
		t.Fatal("expected one tile")
	}

	// The same tile reported twice, as happens after a re-handout, must
	// not double count.
	s.tileFinished(image.NewRGBA(tile))
	s.tileFinished(image.NewRGBA(tile))

	if p := s.snapshot(); p.Finished != 1 {
		t.Errorf("finished = %g, want 1", p.Finished)
	}
}

func TestSchedulerImageWaitsForCompletion(t *testing.T) {
	s := newScheduler(image.Rect(0, 0, 4, 4), 4)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := s.image(ctx); err == nil {
		t.Error("expected image to time out while tiles are outstanding")
	}
}
