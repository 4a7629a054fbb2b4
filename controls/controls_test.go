package controls

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"pfeifer.dev/carcontrol/can"
	"pfeifer.dev/carcontrol/car/vw"
	"pfeifer.dev/carcontrol/cereal"
	"pfeifer.dev/carcontrol/cereal/car"
	"pfeifer.dev/carcontrol/cereal/custom"
	"pfeifer.dev/carcontrol/settings"
)

type loopback struct {
	queue [][]byte
}

func (l *loopback) Send(b []byte) {
	l.queue = append(l.queue, b)
}

func (l *loopback) Read() []byte {
	if len(l.queue) == 0 {
		return nil
	}
	b := l.queue[0]
	l.queue = l.queue[1:]
	return b
}

type harness struct {
	controls *Controls

	frames   cereal.Publisher[car.CanSignals]
	requests cereal.Publisher[car.ActuatorRequest]
	inputs   cereal.Publisher[custom.ControlsIn]
	states   cereal.Subscriber[car.CarState]
	commands cereal.Subscriber[car.SteeringCommand]
}

func testSettings(t *testing.T) *settings.ControlSettings {
	s := &settings.ControlSettings{}
	s.Default()
	s.UsePath(filepath.Join(t.TempDir(), "CarControlSettings"))
	s.CarFingerprint = vw.GOLF
	s.LiveTunePath = filepath.Join(t.TempDir(), "live_tune.json")
	return s
}

func newHarness(t *testing.T, s *settings.ControlSettings) *harness {
	canQ, reqQ, inQ, stateQ, cmdQ := &loopback{}, &loopback{}, &loopback{}, &loopback{}, &loopback{}
	io := IO{
		CanSignals:      cereal.NewSubscriberWith(canQ, cereal.CanSignalsReader),
		ActuatorRequest: cereal.NewSubscriberWith(reqQ, cereal.ActuatorRequestReader),
		ControlsIn:      cereal.NewSubscriberWith(inQ, cereal.ControlsInReader),
		CarState:        cereal.NewPublisherWith(stateQ, cereal.CarStateCreator),
		SteeringCommand: cereal.NewPublisherWith(cmdQ, cereal.SteeringCommandCreator),
	}
	c, err := New(s, io)
	require.NoError(t, err)

	return &harness{
		controls: c,
		frames:   cereal.NewPublisherWith(canQ, cereal.CanSignalsCreator),
		requests: cereal.NewPublisherWith(reqQ, cereal.ActuatorRequestCreator),
		inputs:   cereal.NewPublisherWith(inQ, cereal.ControlsInCreator),
		states:   cereal.NewSubscriberWith(stateQ, cereal.CarStateReader),
		commands: cereal.NewSubscriberWith(cmdQ, cereal.SteeringCommandReader),
	}
}

func (h *harness) sendFrame(t *testing.T, bus uint8, values ...can.SignalValue) {
	msg, out := h.frames.NewMessage(true)
	require.NoError(t, cereal.FillCanSignals(out, bus, values))
	require.NoError(t, h.frames.Send(msg))
}

// driving at 36 kph with ACC engaged
func (h *harness) sendDriving(t *testing.T, accStatus float64) {
	h.sendFrame(t, vw.BUS_GATEWAY,
		can.SignalValue{Message: "ESP_19", Signal: "ESP_VL_Radgeschw_02", Value: 36},
		can.SignalValue{Message: "ESP_19", Signal: "ESP_VR_Radgeschw_02", Value: 36},
		can.SignalValue{Message: "ESP_19", Signal: "ESP_HL_Radgeschw_02", Value: 36},
		can.SignalValue{Message: "ESP_19", Signal: "ESP_HR_Radgeschw_02", Value: 36},
		can.SignalValue{Message: "ACC_06", Signal: "ACC_Status_ACC", Value: accStatus},
	)
}

func (h *harness) sendRequest(t *testing.T, steer float32, enabled bool) {
	msg, req := h.requests.NewMessage(true)
	req.SetSteer(steer)
	req.SetEnabled(enabled)
	require.NoError(t, h.requests.Send(msg))
}

func (h *harness) sendInput(t *testing.T, typ custom.ControlsInType, b bool) {
	msg, input := h.inputs.NewMessage(true)
	input.SetType(typ)
	input.SetBool(b)
	require.NoError(t, h.inputs.Send(msg))
}

func magnitudes(h *harness, cycles int) []uint16 {
	out := make([]uint16, 0, cycles)
	for range cycles {
		out = append(out, h.controls.Step().Command.Magnitude)
	}
	return out
}

func TestRampWhileEngaged(t *testing.T) {
	h := newHarness(t, testSettings(t))
	h.sendDriving(t, 3)
	h.sendRequest(t, 1, true)

	assert.Equal(t, []uint16{50, 50, 100, 100, 150, 150}, magnitudes(h, 6))

	for i := range 6 {
		state, ok := h.states.Read()
		require.True(t, ok, "carState for cycle %d", i)
		assert.InDelta(t, 10, state.VEgoRaw(), 1e-4)
		assert.True(t, state.AccActive())

		cmd, ok := h.commands.Read()
		require.True(t, ok, "steeringCommand for cycle %d", i)
		assert.True(t, cmd.AssistEnabled())
		assert.Equal(t, vw.BUS_GATEWAY, cmd.Bus())
	}
	_, ok := h.commands.Read()
	assert.False(t, ok)
}

func TestNotEngagedWithoutACC(t *testing.T) {
	h := newHarness(t, testSettings(t))
	h.sendDriving(t, 2)
	h.sendRequest(t, 1, true)

	for range 4 {
		snap := h.controls.Step()
		assert.False(t, snap.Engaged)
		assert.Equal(t, uint16(0), snap.Command.Magnitude)
	}
}

func TestStaleRequestDisengages(t *testing.T) {
	h := newHarness(t, testSettings(t))
	h.sendDriving(t, 3)
	h.sendRequest(t, 0.5, true)

	var snaps []bool
	for range REQUEST_TIMEOUT_CYCLES + 2 {
		snaps = append(snaps, h.controls.Step().Engaged)
	}
	assert.True(t, snaps[REQUEST_TIMEOUT_CYCLES-1])
	assert.False(t, snaps[REQUEST_TIMEOUT_CYCLES])
}

func TestLateralToggle(t *testing.T) {
	h := newHarness(t, testSettings(t))
	h.sendDriving(t, 3)
	h.sendRequest(t, 1, true)

	assert.True(t, h.controls.Step().Engaged)

	h.sendInput(t, custom.ControlsInType_setLateralEnabled, false)
	assert.True(t, h.controls.Step().Engaged, "inputs apply at the end of the cycle")
	assert.False(t, h.controls.Settings.LateralEnabled)
	assert.False(t, h.controls.Step().Engaged)
}

func TestReloadTune(t *testing.T) {
	s := testSettings(t)
	h := newHarness(t, s)
	assert.InDelta(t, 0.00006, h.controls.Tune.Profile().Kf, 1e-12)

	require.NoError(t, os.WriteFile(s.LiveTunePath, []byte(`{"kf": 0.5, "enabled": true}`), 0o644))
	h.sendInput(t, custom.ControlsInType_reloadTune, false)
	h.controls.Step()

	p := h.controls.Tune.Profile()
	assert.Equal(t, 0.5, p.Kf)
	assert.True(t, p.Enabled)
	assert.Equal(t, []float64{0.6}, p.KpV)
}

func TestSinkGetsLatestSnapshot(t *testing.T) {
	h := newHarness(t, testSettings(t))
	sink := h.controls.Sink()

	for range 2*settings.SINK_RATE_DIVIDER + 1 {
		h.controls.Step()
	}

	snap := <-sink
	assert.Equal(t, uint64(2*settings.SINK_RATE_DIVIDER), snap.Cycle)
	select {
	case <-sink:
		t.Fatal("only one snapshot is kept")
	default:
	}
}

func TestStrictBusHealth(t *testing.T) {
	s := testSettings(t)
	s.StrictBusHealth = true
	h := newHarness(t, s)

	snap := h.controls.Step()
	assert.False(t, snap.State.CanValid)

	state, ok := h.states.Read()
	require.True(t, ok)
	assert.False(t, state.CanValid())
}

func TestUnknownFingerprint(t *testing.T) {
	s := testSettings(t)
	s.CarFingerprint = "TESLA MODEL 3"
	_, err := New(s, IO{})
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	h := newHarness(t, testSettings(t))
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, h.controls.Run(ctx))
	assert.Positive(t, h.controls.Cycle())
}

func TestSinkRegisteredWhileRunning(t *testing.T) {
	h := newHarness(t, testSettings(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.controls.Run(gCtx)
	})

	// registered after the loop started, the way a late consumer would
	for range 3 {
		sink := h.controls.Sink()
		select {
		case snap := <-sink:
			assert.Zero(t, snap.Cycle%settings.SINK_RATE_DIVIDER)
		case <-time.After(2 * time.Second):
			t.Fatal("no snapshot delivered to a sink registered while running")
		}
	}

	cancel()
	require.NoError(t, g.Wait())
}
