package main

import (
	"bytes"
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"pfeifer.dev/carcontrol/cli"
	"pfeifer.dev/carcontrol/controls"
	"pfeifer.dev/carcontrol/metrics"
	"pfeifer.dev/carcontrol/mirror"
	"pfeifer.dev/carcontrol/params"
	"pfeifer.dev/carcontrol/settings"
	"pfeifer.dev/carcontrol/utils"
)

func main() {
	cli.Handle(run)
}

// loadSettings layers the persisted settings, the fingerprint param written by
// the fingerprinting service, then command line overrides. The last two are
// re-applied whenever the settings are reloaded at runtime.
func loadSettings(apply func(*settings.ControlSettings)) *settings.ControlSettings {
	s := &settings.ControlSettings{}
	s.UseOverrides(func(s *settings.ControlSettings) {
		fingerprint, err := params.GetParam(params.CAR_FINGERPRINT)
		if err == nil && len(bytes.TrimSpace(fingerprint)) > 0 {
			s.CarFingerprint = string(bytes.TrimSpace(fingerprint))
		}
		utils.Logde(err, "no fingerprint param")

		apply(s)
	})
	s.LoadWithRetries(3)
	return s
}

func run(ctx context.Context, apply func(*settings.ControlSettings)) error {
	params.EnsureParamDirectories()
	s := loadSettings(apply)

	io := controls.OpenIO()
	defer io.Close()

	c, err := controls.New(s, io)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	if s.MetricsAddr != "" {
		g.Go(func() error {
			return metrics.Serve(gCtx, s.MetricsAddr)
		})
	}

	if s.RedisAddr != "" {
		r := mirror.NewRedis(s.RedisAddr)
		defer r.Close()
		utils.Logwe(r.Connect(gCtx), "redis mirror unavailable, will keep trying", "addr", s.RedisAddr)
		sink := c.Sink()
		g.Go(func() error {
			return r.Run(gCtx, sink)
		})
	}

	// sinks are registered above so the loop starts with its full set
	g.Go(func() error {
		return c.Run(gCtx)
	})

	slog.Info("carcontrol started", "fingerprint", s.CarFingerprint)
	return g.Wait()
}
