package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	vehicle "pfeifer.dev/carcontrol/car"
	"pfeifer.dev/carcontrol/cereal"
)

func formatWatch(vs vehicle.VehicleState, cmd vehicle.SteeringCommand) string {
	return fmt.Sprintf(
		"speed: %.2f m/s (raw %.2f)\naccel: %.2f m/s²\nstandstill: %t\ngear: %s\nsteering angle: %.1f°\ndriver torque: %.0f (override %t)\nblinkers: left %t right %t\ndoors closed: %t\nseatbelt latched: %t\nacc active: %t\ncan valid: %t\ncommand: %d %s (assist %t, idx %d)",
		vs.VEgo, vs.VEgoRaw,
		vs.AEgo,
		vs.Standstill,
		vs.GearShifter.String(),
		vs.SteeringAngle,
		vs.SteeringTorque, vs.SteerOverride,
		vs.LeftBlinker, vs.RightBlinker,
		vs.DoorAllClosed,
		vs.SeatbeltLatched,
		vs.ACCActive,
		vs.CanValid,
		cmd.Magnitude, cmd.Direction.String(), cmd.AssistEnabled, cmd.RollingIndex,
	)
}

type outputModel struct {
	state vehicle.VehicleState
	cmd   vehicle.SteeringCommand
	valid bool
}

func (m outputModel) Update(msg tea.Msg, mm *uiModel) (outputModel, tea.Cmd) {
	if state, success := mm.stateSub.Read(); success {
		m.valid = true
		m.state = cereal.VehicleState(state)
	}
	if cmd, success := mm.cmdSub.Read(); success {
		m.cmd = cereal.SteeringCommand(cmd)
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		mm.state = showMenu
	}
	return m, nil
}

func (m outputModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for carState (esc to return)\n")
	}
	return docStyle.Render(formatWatch(m.state, m.cmd) + "\n")
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Print the live vehicle state and steering command",
		Flags: []cli.Flag{
			&cli.DurationFlag{Name: "interval", Value: 500 * time.Millisecond, Usage: "Time between prints"},
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "Stop after this many prints, 0 runs until interrupted"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			stateSub, err := cereal.OpenSubscriber("carState", cereal.CarStateReader, true)
			if err != nil {
				return err
			}
			defer stateSub.Close()
			cmdSub, err := cereal.OpenSubscriber("steeringCommand", cereal.SteeringCommandReader, true)
			if err != nil {
				return err
			}
			defer cmdSub.Close()

			ticker := time.NewTicker(cmd.Duration("interval"))
			defer ticker.Stop()

			var steering vehicle.SteeringCommand
			printed := 0
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
				if c, ok := cmdSub.Read(); ok {
					steering = cereal.SteeringCommand(c)
				}
				state, ok := stateSub.Read()
				if !ok {
					continue
				}
				fmt.Fprintf(cmd.Root().Writer, "%s\n\n", formatWatch(cereal.VehicleState(state), steering))
				printed++
				if n := cmd.Int("count"); n > 0 && printed >= n {
					return nil
				}
			}
		},
	}
}
