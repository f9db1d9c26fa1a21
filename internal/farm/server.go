package farm

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/ivantronics/mandelbrot"
)

// Server coordinates one distributed render. It owns the scheduler and
// serves the websocket endpoint workers dial, plus plain HTTP endpoints
// for watching the render fill in.
type Server struct {
	params RenderParams
	sched  *scheduler
}

// NewServer validates params and prepares a render split into square
// tiles of tileSize. Non-positive tileSize falls back to the default.
func NewServer(params RenderParams, tileSize int) (*Server, error) {
	if _, _, _, err := params.Components(); err != nil {
		return nil, fmt.Errorf("render params: %w", err)
	}
	if tileSize <= 0 {
		tileSize = mandelbrot.DefaultTileSize
	}
	bounds := image.Rect(0, 0, params.ImageWidth, params.ImageHeight)
	return &Server{
		params: params,
		sched:  newScheduler(bounds, tileSize),
	}, nil
}

// Handler returns the HTTP mux: /ws for workers, /image for a PNG of
// the render so far, /progress for a JSON status.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWorker)
	mux.HandleFunc("/image", s.handleImage)
	mux.HandleFunc("/progress", s.handleProgress)
	return mux
}

// Image blocks until every tile has been composited.
func (s *Server) Image(ctx context.Context) (*image.RGBA, error) {
	return s.sched.image(ctx)
}

// Progress reports how much of the image is done and how many worker
// sessions are attached.
func (s *Server) Progress() Progress {
	return s.sched.snapshot()
}

// Done is closed once the render is complete.
func (s *Server) Done() <-chan struct{} {
	return s.sched.ctx.Done()
}

func (s *Server) handleWorker(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()
	c.SetReadLimit(maxMessageBytes)

	if err := s.serveWorker(r.Context(), c); err != nil {
		log.Printf("worker session: %v", err)
		return
	}
	c.Close(websocket.StatusNormalClosure, "render complete")
}

// serveWorker drives one worker session: greet, then a job/result loop
// until the scheduler runs out of tiles.
func (s *Server) serveWorker(ctx context.Context, c *websocket.Conn) error {
	var hello Hello
	if err := wsjson.Read(ctx, c, &hello); err != nil {
		return fmt.Errorf("read hello: %w", err)
	}
	log.Printf("worker connected: %s (%d procs)", hello.Name, hello.Procs)

	s.sched.incActiveWorkers()
	defer s.sched.decActiveWorkers()

	seq := 0
	for {
		tile, found := s.sched.popTile()
		if !found {
			return nil
		}
		seq++

		job := Job{Seq: seq, Tile: SpecFromRect(tile), Params: s.params}
		if err := wsjson.Write(ctx, c, job); err != nil {
			return fmt.Errorf("send job %d: %w", job.Seq, err)
		}

		var res Result
		if err := wsjson.Read(ctx, c, &res); err != nil {
			return fmt.Errorf("read result %d: %w", job.Seq, err)
		}
		if res.Seq != job.Seq || res.Tile != job.Tile {
			return fmt.Errorf("result %d/%v does not match job %d/%v", res.Seq, res.Tile, job.Seq, job.Tile)
		}

		img, err := res.Image()
		if err != nil {
			return err
		}
		s.sched.tileFinished(img)
	}
}

func (s *Server) handleImage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, s.sched.imageSnapshot()); err != nil {
		log.Printf("encode image: %v", err)
	}
}

func (s *Server) handleProgress(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.sched.snapshot()); err != nil {
		log.Printf("encode progress: %v", err)
	}
}
