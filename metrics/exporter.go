package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/gridsnake/snake"
	"github.com/lixenwraith/gridsnake/status"
)

type statusMetric struct {
	name, help, key string
}

// Exported from the status registry; bounded, no per-entity labels
var statusGauges = []statusMetric{
	{"gridsnake_snake_length", "Current number of segments including the head", status.KeySnakeLength},
	{"gridsnake_food_active", "Food cells currently on the board", status.KeyFoodActive},
}

// Monotonic status keys, exported as counters
var statusCounters = []statusMetric{
	{"gridsnake_food_eaten_total", "Food eaten since start", status.KeyFoodEaten},
	{"gridsnake_food_spawned_total", "Food spawned since start", status.KeyFoodSpawned},
	{"gridsnake_growths_total", "Segments appended since start", status.KeySnakeGrowths},
	{"gridsnake_turns_total", "Accepted direction changes", status.KeyTurns},
	{"gridsnake_ticks_total", "Movement ticks processed", status.KeyEngineTicks},
	{"gridsnake_journal_dropped_total", "Journal lines dropped by the rate limiter", status.KeyJournalDrops},
}

// Exporter serves Prometheus metrics and a JSON board snapshot
// The frame loop calls Publish; HTTP handlers only read the published copy
type Exporter struct {
	reg          *prometheus.Registry
	tickDuration prometheus.Histogram
	session      string
	view         atomic.Pointer[snake.View]
}

// NewExporter builds a private registry over st; session labels the build info gauge
func NewExporter(st *status.Registry, session string) *Exporter {
	e := &Exporter{
		reg:     prometheus.NewRegistry(),
		session: session,
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridsnake_tick_duration_seconds",
			Help:    "Time spent in one movement tick",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01},
		}),
	}

	e.reg.MustRegister(e.tickDuration)
	e.reg.MustRegister(collectors.NewGoCollector())

	for _, g := range statusGauges {
		ptr := st.Ints.Get(g.key)
		e.reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: g.name,
			Help: g.help,
		}, func() float64 { return float64(ptr.Load()) }))
	}
	for _, c := range statusCounters {
		ptr := st.Ints.Get(c.key)
		e.reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: c.name,
			Help: c.help,
		}, func() float64 { return float64(ptr.Load()) }))
	}

	paused := st.Bools.Get(status.KeyEnginePaused)
	e.reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "gridsnake_paused",
		Help: "1 while the game clock is paused",
	}, func() float64 {
		if paused.Load() {
			return 1
		}
		return 0
	}))

	info := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "gridsnake_session_info",
		Help:        "Constant 1 labelled with the session id",
		ConstLabels: prometheus.Labels{"session": session},
	})
	info.Set(1)
	e.reg.MustRegister(info)

	return e
}

// ObserveTick records one movement tick duration
func (e *Exporter) ObserveTick(d time.Duration) {
	e.tickDuration.Observe(d.Seconds())
}

// Publish stores the latest board snapshot for /state
func (e *Exporter) Publish(v snake.View) {
	e.view.Store(&v)
}

// Registry exposes the private registry for gathering and extra collectors
func (e *Exporter) Registry() *prometheus.Registry {
	return e.reg
}

type stateResponse struct {
	Session   string   `json:"session"`
	Tick      uint64   `json:"tick"`
	Direction string   `json:"direction"`
	Segments  [][2]int `json:"segments"`
	Foods     [][2]int `json:"foods"`
}

// Handler returns the router: /metrics, /healthz and /state
func (e *Exporter) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(e.reg, promhttp.HandlerOpts{Registry: e.reg}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Get("/state", e.handleState)
	return r
}

func (e *Exporter) handleState(w http.ResponseWriter, _ *http.Request) {
	v := e.view.Load()
	if v == nil {
		http.Error(w, "no frame published yet", http.StatusServiceUnavailable)
		return
	}

	resp := stateResponse{
		Session:   e.session,
		Tick:      v.Ticks,
		Direction: v.Direction.String(),
		Segments:  make([][2]int, 0, len(v.Segments)),
		Foods:     make([][2]int, 0, len(v.Foods)),
	}
	for _, s := range v.Segments {
		resp.Segments = append(resp.Segments, [2]int{s.Loc.X, s.Loc.Y})
	}
	for _, f := range v.Foods {
		resp.Foods = append(resp.Foods, [2]int{f.Loc.X, f.Loc.Y})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("metrics: encode state: %v", err)
	}
}

// Serve listens on addr until ctx is cancelled
func (e *Exporter) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           e.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
