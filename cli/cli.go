package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"pfeifer.dev/carcontrol/settings"
)

// Daemon runs the control loop. apply is called on the loaded settings so
// command line flags win over the persisted values.
type Daemon func(ctx context.Context, apply func(*settings.ControlSettings)) error

func daemonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Category: "Vehicle",
			Name:     "fingerprint",
			Aliases:  []string{"f"},
			Local:    true,
			Usage:    "Vehicle model to control, overrides the fingerprint param and settings",
		},
		&cli.BoolFlag{
			Category: "Vehicle",
			Name:     "gateway",
			Local:    true,
			Usage:    "Harness is installed at the CAN gateway so ACC status arrives on the extended bus",
		},
		&cli.BoolFlag{
			Category: "Vehicle",
			Name:     "strict-bus-health",
			Local:    true,
			Usage:    "Report the bus invalid when a checked message stops arriving",
		},
		&cli.StringFlag{
			Category: "Outputs",
			Name:     "metrics-addr",
			Local:    true,
			Usage:    "Serve prometheus metrics on this address, for example :9101",
		},
		&cli.StringFlag{
			Category: "Outputs",
			Name:     "redis-addr",
			Local:    true,
			Usage:    "Mirror the vehicle state into redis at this address",
		},
	}
}

func applyDaemonFlags(cmd *cli.Command) func(*settings.ControlSettings) {
	return func(s *settings.ControlSettings) {
		if cmd.IsSet("fingerprint") {
			s.CarFingerprint = cmd.String("fingerprint")
		}
		if cmd.IsSet("gateway") {
			s.ConnectedToGateway = cmd.Bool("gateway")
		}
		if cmd.IsSet("strict-bus-health") {
			s.StrictBusHealth = cmd.Bool("strict-bus-health")
		}
		if cmd.IsSet("metrics-addr") {
			s.MetricsAddr = cmd.String("metrics-addr")
		}
		if cmd.IsSet("redis-addr") {
			s.RedisAddr = cmd.String("redis-addr")
		}
	}
}

func newCommand(daemon Daemon) *cli.Command {
	return &cli.Command{
		Name:  "carcontrol",
		Usage: "Estimate vehicle state and arbitrate steering torque",
		Flags: daemonFlags(),
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Send commands to an active carcontrol instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return interactive()
				},
			},
			watchCommand(),
			tuneCommand(),
			fingerprintsCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return daemon(ctx, applyDaemonFlags(cmd))
		},
	}
}

func Handle(daemon Daemon) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(daemon).Run(ctx, os.Args); err != nil {
		slog.Error("carcontrol failed", "error", err)
		stop()
		os.Exit(1)
	}
}
