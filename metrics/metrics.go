package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"pfeifer.dev/carcontrol/car"
)

var (
	// Control loop
	CyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "carcontrol",
		Subsystem: "loop",
		Name:      "cycles_total",
		Help:      "Total control cycles run",
	})

	CycleOverruns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "carcontrol",
		Subsystem: "loop",
		Name:      "overruns_total",
		Help:      "Cycles whose work took longer than the control period",
	})

	CycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "carcontrol",
		Subsystem: "loop",
		Name:      "cycle_duration_seconds",
		Help:      "Time spent computing one cycle",
		Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
	})

	SignalsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "carcontrol",
		Subsystem: "can",
		Name:      "signals_received_total",
		Help:      "Decoded signal values received",
	}, []string{"bus"})

	CanValid = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "carcontrol",
		Subsystem: "can",
		Name:      "valid",
		Help:      "1 when the bus inputs are trusted",
	})

	// Vehicle
	VEgo = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "carcontrol",
		Subsystem: "vehicle",
		Name:      "v_ego_meters_per_second",
		Help:      "Filtered vehicle speed",
	})

	AEgo = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "carcontrol",
		Subsystem: "vehicle",
		Name:      "a_ego_meters_per_second_squared",
		Help:      "Filtered vehicle acceleration",
	})

	SteerOverrides = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "carcontrol",
		Subsystem: "vehicle",
		Name:      "steer_overrides_total",
		Help:      "Driver steering override onsets",
	})

	// Steering
	Engaged = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "carcontrol",
		Subsystem: "steering",
		Name:      "engaged",
		Help:      "1 while lateral control is engaged",
	})

	AppliedTorque = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "carcontrol",
		Subsystem: "steering",
		Name:      "applied_torque",
		Help:      "Signed torque of the last steering command",
	})
)

func boolGauge(g prometheus.Gauge, v bool) {
	if v {
		g.Set(1)
	} else {
		g.Set(0)
	}
}

func Observe(s car.Snapshot) {
	VEgo.Set(s.State.VEgo)
	AEgo.Set(s.State.AEgo)
	boolGauge(CanValid, s.State.CanValid)
	boolGauge(Engaged, s.Engaged)
	AppliedTorque.Set(float64(s.Command.Signed()))
	if s.OverrideOnset {
		SteerOverrides.Inc()
	}
}

// Serve exposes /metrics and /healthz on addr until ctx is done.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			slog.Warn("failed to write health response", "error", err)
		}
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
			slog.Warn("metrics server shutdown error", "error", err)
		}
	}()

	slog.Info("metrics server started", "addr", addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return errors.Wrap(err, "metrics server")
	}
	return nil
}
