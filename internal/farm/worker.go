package farm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/ivantronics/mandelbrot"
)

// Work renders tiles for the farm server at url until the server closes
// the connection or ctx is canceled. It opens one websocket session per
// proc, so a single worker process saturates its CPUs. Non-positive
// procs means runtime.NumCPU.
func Work(ctx context.Context, url, name string, procs int) error {
	if procs <= 0 {
		procs = runtime.NumCPU()
	}
	log.Printf("starting %d render sessions against %s", procs, url)

	errs := make(chan error, procs)
	var wg sync.WaitGroup
	wg.Add(procs)
	for i := range procs {
		go func() {
			defer wg.Done()
			session := fmt.Sprintf("%s/%d", name, i)
			if err := workSession(ctx, url, session); err != nil {
				errs <- fmt.Errorf("session %s: %w", session, err)
			}
		}()
	}
	wg.Wait()
	close(errs)

	var all []error
	for err := range errs {
		all = append(all, err)
	}
	return errors.Join(all...)
}

func workSession(ctx context.Context, url, name string) error {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("websocket.Dial: %w", err)
	}
	defer c.CloseNow()
	c.SetReadLimit(maxMessageBytes)

	if err := wsjson.Write(ctx, c, Hello{Name: name, Procs: 1}); err != nil {
		return fmt.Errorf("send hello: %w", err)
	}

	for {
		var job Job
		if err := wsjson.Read(ctx, c, &job); err != nil {
			// A normal closure is the server saying the render is done.
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return fmt.Errorf("read job: %w", err)
		}
		log.Printf("%s: rendering tile %v", name, job.Tile.Rect())

		res, err := renderJob(job)
		if err != nil {
			return err
		}
		if err := wsjson.Write(ctx, c, res); err != nil {
			return fmt.Errorf("send result %d: %w", res.Seq, err)
		}
	}
}

func renderJob(job Job) (Result, error) {
	set, vp, pal, err := job.Params.Components()
	if err != nil {
		return Result{}, fmt.Errorf("job %d params: %w", job.Seq, err)
	}
	img, err := mandelbrot.RenderTile(set, vp, pal, job.Params.Smooth, job.Tile.Rect())
	if err != nil {
		return Result{}, fmt.Errorf("render tile %v: %w", job.Tile.Rect(), err)
	}
	return ResultFromImage(job.Seq, img), nil
}
