package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/snake"
)

// Flags holds the command-line options shared by both frontends
type Flags struct {
	Grid         int
	ClampMin     int
	ClampMax     int
	MoveInterval time.Duration
	FoodInterval time.Duration
	Seed         uint64
	Mute         bool
	Debug        bool
	MetricsAddr  string
}

// Register binds the shared options onto fs with their defaults
func Register(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.IntVar(&f.Grid, "grid", parameter.GridSize, "food spawn range, cells per axis")
	fs.IntVar(&f.ClampMin, "clamp-min", parameter.ClampMin, "lowest coordinate the head may reach")
	fs.IntVar(&f.ClampMax, "clamp-max", parameter.ClampMax, "highest coordinate the head may reach")
	fs.DurationVar(&f.MoveInterval, "move-interval", parameter.MoveInterval, "time between movement ticks")
	fs.DurationVar(&f.FoodInterval, "food-interval", parameter.FoodInterval, "time between food spawns")
	fs.Uint64Var(&f.Seed, "seed", 0, "food placement seed, 0 picks a random one")
	fs.BoolVar(&f.Mute, "mute", false, "start with audio disabled")
	fs.BoolVar(&f.Debug, "debug", false, "write a debug log under "+parameter.LogDir+"/")
	fs.StringVar(&f.MetricsAddr, "metrics-addr", "", "serve /metrics, /healthz and /state on this address")
	return f
}

// Config converts the flags into a validated simulation config
func (f *Flags) Config() (snake.Config, error) {
	if f.MoveInterval <= 0 {
		return snake.Config{}, fmt.Errorf("move-interval must be positive, got %v", f.MoveInterval)
	}
	if f.FoodInterval <= 0 {
		return snake.Config{}, fmt.Errorf("food-interval must be positive, got %v", f.FoodInterval)
	}

	cfg := snake.DefaultConfig()
	cfg.GridSize = f.Grid
	cfg.Bounds = snake.Bounds{Min: f.ClampMin, Max: f.ClampMax}
	cfg.Seed = f.Seed
	if err := cfg.Validate(); err != nil {
		return snake.Config{}, err
	}
	return cfg, nil
}
