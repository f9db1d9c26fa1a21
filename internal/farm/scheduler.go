package farm

import (
	"context"
	"image"
	"image/draw"
	"log"
	"sync"

	"github.com/ivantronics/mandelbrot"
)

// Progress describes the state of a running render.
type Progress struct {
	Finished float64 `json:"finished"`
	Workers  int     `json:"workers"`
	Done     bool    `json:"done"`
}

// scheduler tracks which tiles of the target image still need work and
// composites finished tiles. When no unstarted tiles remain, started
// tiles are handed out again, so a stalled worker cannot stall the
// render.
type scheduler struct {
	img *image.RGBA

	ctx       context.Context
	ctxCancel context.CancelFunc

	totalPixels    int
	finishedPixels int
	workers        int

	unstarted map[image.Rectangle]struct{}
	inProcess map[image.Rectangle]struct{}
	m         sync.Mutex
}

func newScheduler(bounds image.Rectangle, tileSize int) *scheduler {
	img := image.NewRGBA(bounds)
	tiles := mandelbrot.SplitTiles(bounds, tileSize)
	unstarted := make(map[image.Rectangle]struct{}, len(tiles))
	for _, t := range tiles {
		unstarted[t] = struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &scheduler{
		img:         img,
		ctx:         ctx,
		ctxCancel:   cancel,
		totalPixels: bounds.Dx() * bounds.Dy(),
		unstarted:   unstarted,
		inProcess:   make(map[image.Rectangle]struct{}),
	}
}

func (s *scheduler) popTile() (tile image.Rectangle, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	// Get unstarted tile
	if len(s.unstarted) > 0 {
		for tile = range s.unstarted {
			break
		}
		delete(s.unstarted, tile)

		// Move popped tile to currently processed tiles
		s.inProcess[tile] = struct{}{}
		return tile, true
	}

	// If there is no unstarted tile, we work again on a started one
	if len(s.inProcess) > 0 {
		for tile = range s.inProcess {
			break
		}
		return tile, true
	}

	return image.Rectangle{}, false
}

func (s *scheduler) tileFinished(tileImg *image.RGBA) {
	defer log.Printf("finished: %.3f", s.finished())

	rect := tileImg.Bounds()
	s.m.Lock()
	defer s.m.Unlock()

	// Composite the tile at its global coordinates.
	draw.Draw(s.img, rect, tileImg, rect.Min, draw.Src)

	// Duplicate results for a re-handed tile only count once.
	if _, found := s.inProcess[rect]; found {
		s.finishedPixels += rect.Dx() * rect.Dy()
	}

	delete(s.inProcess, rect)

	if len(s.unstarted) == 0 && len(s.inProcess) == 0 {
		s.ctxCancel()
	}
}

func (s *scheduler) finished() float64 {
	s.m.Lock()
	defer s.m.Unlock()
	return float64(s.finishedPixels) / float64(s.totalPixels)
}

func (s *scheduler) snapshot() Progress {
	s.m.Lock()
	defer s.m.Unlock()
	return Progress{
		Finished: float64(s.finishedPixels) / float64(s.totalPixels),
		Workers:  s.workers,
		Done:     len(s.unstarted) == 0 && len(s.inProcess) == 0,
	}
}

// imageSnapshot copies the image as composited so far.
func (s *scheduler) imageSnapshot() *image.RGBA {
	s.m.Lock()
	defer s.m.Unlock()
	clone := image.NewRGBA(s.img.Bounds())
	copy(clone.Pix, s.img.Pix)
	return clone
}

// image blocks until every tile has been composited.
func (s *scheduler) image(ctx context.Context) (*image.RGBA, error) {
	select {
	case <-s.ctx.Done():
		return s.img, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *scheduler) incActiveWorkers() {
	s.m.Lock()
	s.workers++
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

func (s *scheduler) decActiveWorkers() {
	s.m.Lock()
	s.workers--
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}
