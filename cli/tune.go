package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"pfeifer.dev/carcontrol/car/vw"
	"pfeifer.dev/carcontrol/cereal"
	"pfeifer.dev/carcontrol/cereal/custom"
	"pfeifer.dev/carcontrol/params"
	"pfeifer.dev/carcontrol/tune"
)

func parseCurve(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", part)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatCurve(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

func tunePathFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "path",
		Usage: "Live tune file",
		Value: params.LiveTunePath,
	}
}

func tuneFingerprintFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "fingerprint",
		Aliases: []string{"f"},
		Usage:   "Take missing values from this vehicle's baseline tune",
	}
}

func tuneNotifyFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "notify",
		Usage: "Ask a running carcontrol to reload the tune",
		Value: true,
	}
}

func openStore(cmd *cli.Command) (*tune.Store, error) {
	opts := tune.Options{Path: cmd.String("path")}
	if fp := cmd.String("fingerprint"); fp != "" {
		values, err := vw.Lookup(fp)
		if err != nil {
			return nil, err
		}
		opts.Baseline = &values.LateralTuning
	}
	return tune.New(opts)
}

func notifyReloadTune(cmd *cli.Command) {
	if !cmd.Bool("notify") {
		return
	}
	pub, err := cereal.OpenPublisher("controlsIn", cereal.ControlsInCreator)
	if err != nil {
		slog.Warn("could not notify carcontrol", "error", err)
		return
	}
	defer pub.Close()
	err = sendInput(&pub, custom.ControlsInType_reloadTune, inputValue{})
	if err != nil {
		slog.Warn("could not notify carcontrol", "error", err)
	}
}

func printProfile(cmd *cli.Command, p tune.Profile) error {
	data, err := tune.Marshal(p)
	if err != nil {
		return err
	}
	_, err = cmd.Root().Writer.Write(data)
	return err
}

func applyTuneFlags(cmd *cli.Command, p *tune.Profile) {
	if cmd.IsSet("enabled") {
		p.Enabled = cmd.Bool("enabled")
	}
	if cmd.IsSet("kp-bp") {
		p.KpBP = cmd.Float64Slice("kp-bp")
	}
	if cmd.IsSet("kp-v") {
		p.KpV = cmd.Float64Slice("kp-v")
	}
	if cmd.IsSet("ki-bp") {
		p.KiBP = cmd.Float64Slice("ki-bp")
	}
	if cmd.IsSet("ki-v") {
		p.KiV = cmd.Float64Slice("ki-v")
	}
	if cmd.IsSet("kf") {
		p.Kf = cmd.Float64("kf")
	}
}

func tuneCommand() *cli.Command {
	return &cli.Command{
		Name:  "tune",
		Usage: "Inspect or change the live lateral tune",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the live tune",
				Flags: []cli.Flag{tunePathFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					p, err := tune.ReadFile(cmd.String("path"))
					if err != nil {
						return err
					}
					return printProfile(cmd, p)
				},
			},
			{
				Name:  "set",
				Usage: "Change individual tune values",
				Flags: []cli.Flag{
					tunePathFlag(),
					tuneFingerprintFlag(),
					tuneNotifyFlag(),
					&cli.BoolFlag{Name: "enabled", Usage: "Use the live tune instead of the baseline"},
					&cli.Float64SliceFlag{Category: "Proportional", Name: "kp-bp", Usage: "Speed breakpoints in m/s"},
					&cli.Float64SliceFlag{Category: "Proportional", Name: "kp-v", Usage: "Gain at each breakpoint"},
					&cli.Float64SliceFlag{Category: "Integral", Name: "ki-bp", Usage: "Speed breakpoints in m/s"},
					&cli.Float64SliceFlag{Category: "Integral", Name: "ki-v", Usage: "Gain at each breakpoint"},
					&cli.Float64Flag{Name: "kf", Usage: "Feedforward gain"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					store, err := openStore(cmd)
					if err != nil {
						return err
					}
					p := store.Profile()
					applyTuneFlags(cmd, &p)
					if err := store.Set(p); err != nil {
						return err
					}
					if err := store.Save(); err != nil {
						return err
					}
					notifyReloadTune(cmd)
					return printProfile(cmd, store.Profile())
				},
			},
			{
				Name:  "edit",
				Usage: "Edit the live tune with prompts",
				Flags: []cli.Flag{tunePathFlag(), tuneFingerprintFlag(), tuneNotifyFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					store, err := openStore(cmd)
					if err != nil {
						return err
					}
					saved, err := editTune(store)
					if err != nil || !saved {
						return err
					}
					notifyReloadTune(cmd)
					return nil
				},
			},
		},
	}
}

func fingerprintsCommand() *cli.Command {
	return &cli.Command{
		Name:  "fingerprints",
		Usage: "List the supported vehicle fingerprints",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, fp := range vw.Fingerprints() {
				fmt.Fprintln(cmd.Root().Writer, fp)
			}
			return nil
		},
	}
}
