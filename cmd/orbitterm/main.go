// Command orbitterm orbits a wireframe scene in the terminal with the orbit controls.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/gdamore/tcell/v2"
)

func main() {
	ortho := flag.Bool("ortho", false, "Start with an orthographic camera")
	damping := flag.Float64("damping", 0.15, "Damping factor per frame, 0 disables inertia")
	autoRotate := flag.Float64("autorotate", 0, "Auto-rotate speed, 0 disables")
	fps := flag.Int("fps", 30, "Frames per second")
	logPath := flag.String("log", "", "Write logs to this file (the terminal is taken by the viewer)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *fps <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid fps %d\n", *fps)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(*logPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	v := newViewer(*ortho, float32(*damping), float32(*autoRotate), logger)
	if err := run(v, time.Second/time.Duration(*fps)); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "orbitterm: %v\n", err)
		os.Exit(1)
	}
}

func openLogger(path string, debug bool) (common.Logger, func(), error) {
	if path == "" {
		return common.NewNopLogger(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	var w io.Writer = f
	return common.NewWriterLogger(w, w, "orbitterm", debug), func() { f.Close() }, nil
}

func run(v *viewer, frameTime time.Duration) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()
	v.resize(s.Size())

	// Input is read on its own goroutine and handed to the render loop, which is the only
	// goroutine touching the controls.
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, isResize := ev.(*tcell.EventResize); isResize {
				s.Sync()
			}
			if v.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.frame()
			s.Clear()
			w, h := s.Size()
			if w <= 20 || h <= 4 {
				continue
			}
			v.draw(s)
			s.Show()
		}
	}
}
