package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/gridsnake/audio"
	"github.com/lixenwraith/gridsnake/cli"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/input"
	"github.com/lixenwraith/gridsnake/metrics"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/render"
	"github.com/lixenwraith/gridsnake/status"
	"github.com/lixenwraith/gridsnake/system"
)

var snapshotFlag = flag.String("snapshot", "", "PNG path for Ctrl+S snapshots, default gridsnake-<session>.png")

func main() {
	opts := cli.Register(flag.CommandLine)
	flag.Parse()

	cfg, err := opts.Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridsnake: %v\n", err)
		os.Exit(2)
	}

	session := uuid.NewString()
	if logFile := cli.SetupLogging(opts.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.SetPrefix("[" + session[:8] + "] ")
	log.Printf("session %s starting: %+v", session, cfg)

	snapshotPath := *snapshotFlag
	if snapshotPath == "" {
		snapshotPath = "gridsnake-" + session + ".png"
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashReset(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	var player audio.Player = &audio.NopPlayer{}
	if bp, err := audio.NewBeepPlayer(); err == nil {
		player = bp
		defer bp.Close()
	} else {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	player.SetMuted(opts.Mute)

	w, err := system.NewWorld(cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "gridsnake: %v\n", err)
		os.Exit(1)
	}

	var journal *log.Logger
	if opts.Debug {
		journal = log.Default()
	}

	clock := engine.NewPausableClock(nil)
	tracker := input.NewTracker()
	pipeline := system.NewPipeline(w, system.Options{
		Input:        tracker,
		Player:       player,
		Journal:      journal,
		Clock:        clock,
		MoveInterval: opts.MoveInterval,
		FoodInterval: opts.FoodInterval,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var exporter *metrics.Exporter
	if opts.MetricsAddr != "" {
		exporter = metrics.NewExporter(w.Status, session)
		pipeline.Movement.OnTick = exporter.ObserveTick
		core.Go(func() {
			if err := exporter.Serve(ctx, opts.MetricsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("metrics server: %v", err)
			}
		})
	}

	statPaused := w.Status.Bools.Get(status.KeyEnginePaused)
	statMuted := w.Status.Bools.Get(status.KeyAudioMuted)
	statMuted.Store(player.Muted())

	renderer := render.NewTerminalRenderer(screen, w.Status)

	eventCh := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	var hud render.HUD
	var messageUntil time.Time

	for {
		select {
		case <-ctx.Done():
			log.Printf("session %s: signal received", session)
			return

		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch tracker.HandleKey(ev) {
				case input.IntentQuit:
					log.Printf("session %s: quit after %d ticks", session, w.Snake.Ticks())
					return
				case input.IntentTogglePause:
					statPaused.Store(clock.Toggle())
				case input.IntentToggleMute:
					player.SetMuted(!player.Muted())
					statMuted.Store(player.Muted())
				case input.IntentSnapshot:
					hud.Message = "saved " + snapshotPath
					if err := render.SavePNG(snapshotPath, w.Snake.View()); err != nil {
						hud.Message = err.Error()
						log.Printf("snapshot: %v", err)
					}
					messageUntil = time.Now().Add(2 * time.Second)
				}
			}

		case now := <-ticker.C:
			pipeline.Frame()

			if !messageUntil.IsZero() && now.After(messageUntil) {
				hud.Message = ""
				messageUntil = time.Time{}
			}
			hud.Paused = statPaused.Load()
			hud.Muted = statMuted.Load()

			view := w.Snake.View()
			if exporter != nil {
				exporter.Publish(view)
			}
			renderer.RenderFrame(view, hud)
		}
	}
}
