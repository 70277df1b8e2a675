package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/gridsnake/audio"
	"github.com/lixenwraith/gridsnake/cli"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/metrics"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/system"
)

func main() {
	opts := cli.Register(flag.CommandLine)
	flag.Parse()

	cfg, err := opts.Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridsnake-window: %v\n", err)
		os.Exit(2)
	}

	session := uuid.NewString()
	if logFile := cli.SetupLogging(opts.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.SetPrefix("[" + session[:8] + "] ")

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
		fmt.Fprintf(os.Stderr, "gridsnake-window: %v\n", err)
		os.Exit(1)
	}

	var journal *log.Logger
	if opts.Debug {
		journal = log.Default()
	}

	clock := engine.NewPausableClock(nil)
	pipeline := system.NewPipeline(w, system.Options{
		Input:        keyboard{},
		Player:       player,
		Journal:      journal,
		Clock:        clock,
		MoveInterval: opts.MoveInterval,
		FoodInterval: opts.FoodInterval,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var exporter *metrics.Exporter
	if opts.MetricsAddr != "" {
		exporter = metrics.NewExporter(w.Status, session)
		pipeline.Movement.OnTick = exporter.ObserveTick
		core.Go(func() {
			if err := exporter.Serve(ctx, opts.MetricsAddr); err != nil {
				log.Printf("metrics server: %v", err)
			}
		})
	}

	g := newGame(w, pipeline, clock, player, exporter)

	ebiten.SetWindowSize(parameter.WindowSize, parameter.WindowSize)
	ebiten.SetWindowTitle("Snake")

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Printf("run: %v", err)
		fmt.Fprintf(os.Stderr, "gridsnake-window: %v\n", err)
		os.Exit(1)
	}
}
