package controls

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"pfeifer.dev/carcontrol/can"
	"pfeifer.dev/carcontrol/car"
	"pfeifer.dev/carcontrol/car/vw"
	"pfeifer.dev/carcontrol/cereal"
	"pfeifer.dev/carcontrol/cereal/custom"
	"pfeifer.dev/carcontrol/metrics"
	"pfeifer.dev/carcontrol/settings"
	"pfeifer.dev/carcontrol/tune"
	"pfeifer.dev/carcontrol/utils"
)

const (
	MAX_FRAMES_PER_CYCLE = 256
	MAX_INPUTS_PER_CYCLE = 16
	// an actuator request older than this no longer engages steering
	REQUEST_TIMEOUT_CYCLES = 50
)

type request struct {
	steer   float64
	enabled bool
	cycle   int
}

// Controls runs the estimator and arbiter for one vehicle once per cycle.
type Controls struct {
	Settings *settings.ControlSettings
	Tune     *tune.Store

	io         IO
	carState   *vw.CarState
	controller *vw.CarController
	parsers    map[uint8]*can.Parser
	gateway    *can.Parser
	extended   *can.Parser

	cycle    int
	request  request
	engaged  utils.TrackedState[bool]
	override utils.TrackedState[bool]
	sinksMu  sync.Mutex
	sinks    []*utils.Latest[car.Snapshot]
	loop     utils.UpdateTracker
}

// New wires the vehicle selected by s. An unknown fingerprint or an
// inconsistent baseline tune is returned as an error.
func New(s *settings.ControlSettings, io IO) (*Controls, error) {
	cfg := s.CarConfig()
	values, err := vw.Lookup(cfg.Fingerprint)
	if err != nil {
		return nil, err
	}

	gateway := vw.NewGatewayParser(cfg)
	extended := vw.NewExtendedParser(cfg)

	var opts []vw.CarStateOption
	if s.StrictBusHealth {
		opts = append(opts, vw.WithBusHealth(func() bool {
			return gateway.Valid() && extended.Valid()
		}))
	}
	carState, err := vw.NewCarState(cfg, opts...)
	if err != nil {
		return nil, err
	}

	baseline := values.LateralTuning
	store, err := tune.New(tune.Options{Path: s.LiveTunePath, Baseline: &baseline})
	if err != nil {
		return nil, err
	}

	c := &Controls{
		Settings:   s,
		Tune:       store,
		io:         io,
		carState:   carState,
		controller: vw.NewCarController(values.Control),
		parsers: map[uint8]*can.Parser{
			gateway.Bus:  gateway,
			extended.Bus: extended,
		},
		gateway:  gateway,
		extended: extended,
		request:  request{cycle: -REQUEST_TIMEOUT_CYCLES},
	}
	c.loop.Init(100)

	slog.Info("controls ready",
		"fingerprint", cfg.Fingerprint,
		"topology", cfg.Topology.String(),
		"steerMax", values.Control.SteerMax,
		"strictBusHealth", s.StrictBusHealth,
	)
	return c, nil
}

// Sink returns a mailbox that receives a snapshot every SINK_RATE_DIVIDER
// cycles. Slow consumers only ever see the newest one. Safe to call while Run
// is active.
func (c *Controls) Sink() <-chan car.Snapshot {
	l := utils.NewLatest[car.Snapshot]()
	c.sinksMu.Lock()
	c.sinks = append(c.sinks, l)
	c.sinksMu.Unlock()
	return l.C()
}

func (c *Controls) Cycle() int {
	return c.cycle
}

func (c *Controls) readFrames() {
	for _, frame := range c.io.CanSignals.Drain(MAX_FRAMES_PER_CYCLE) {
		bus, values := cereal.SignalValues(frame)
		parser, ok := c.parsers[bus]
		if !ok {
			continue
		}
		parser.Update(values)
		metrics.SignalsReceived.WithLabelValues(strconv.Itoa(int(bus))).Add(float64(len(values)))
	}
}

func (c *Controls) readRequest() {
	req, ok := c.io.ActuatorRequest.Read()
	if !ok {
		return
	}
	c.request = request{
		steer:   float64(req.Steer()),
		enabled: req.Enabled(),
		cycle:   c.cycle,
	}
}

func (c *Controls) requestFresh() bool {
	return c.cycle-c.request.cycle < REQUEST_TIMEOUT_CYCLES
}

func (c *Controls) publish(state car.VehicleState, cmd car.SteeringCommand) {
	msg, out := c.io.CarState.NewMessage(state.CanValid)
	cereal.FillCarState(out, state)
	utils.Logwe(c.io.CarState.Send(msg), "could not send carState")

	msg, cmdOut := c.io.SteeringCommand.NewMessage(state.CanValid)
	cereal.FillSteeringCommand(cmdOut, cmd, vw.BUS_GATEWAY)
	utils.Logwe(c.io.SteeringCommand.Send(msg), "could not send steeringCommand")
}

func (c *Controls) handleInputs() {
	for _, input := range c.io.ControlsIn.Drain(MAX_INPUTS_PER_CYCLE) {
		if c.Settings.Handle(input) {
			continue
		}
		switch input.Type() {
		case custom.ControlsInType_reloadTune:
			if c.Tune.Load() {
				p := c.Tune.Profile()
				slog.Info("live tune reloaded", "enabled", p.Enabled, "kf", p.Kf)
			}
		default:
			slog.Debug("unhandled controls input", "type", input.Type().String())
		}
	}
}

// Step runs one control cycle. Estimation completes before the arbiter runs.
func (c *Controls) Step() car.Snapshot {
	c.readFrames()
	state := c.carState.Update(c.gateway.Signals(), c.extended.Signals())

	c.readRequest()
	engaged := c.Settings.LateralEnabled && c.request.enabled && c.requestFresh() && state.ACCActive
	cmd := c.controller.Update(engaged, state, c.cycle, c.request.steer)

	c.publish(state, cmd)

	if c.engaged.Update(engaged) {
		slog.Info("lateral engagement changed", "engaged", engaged, "cycle", c.cycle)
	}
	c.override.Update(state.SteerOverride)
	onset := c.override.Rising(true)
	if onset {
		slog.Debug("driver steering override", "torque", state.SteeringTorque)
	}

	snap := car.Snapshot{
		Cycle:         uint64(c.cycle),
		State:         state,
		Command:       cmd,
		Engaged:       engaged,
		OverrideOnset: onset,
	}
	metrics.Observe(snap)
	if c.cycle%settings.SINK_RATE_DIVIDER == 0 {
		c.sinksMu.Lock()
		for _, sink := range c.sinks {
			sink.Offer(snap)
		}
		c.sinksMu.Unlock()
	}

	c.handleInputs()
	c.cycle++
	return snap
}

// Run steps once per LOOP_DELAY until ctx is done.
func (c *Controls) Run(ctx context.Context) error {
	ticker := time.NewTicker(settings.LOOP_DELAY)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("control loop stopped", "cycles", c.cycle)
			return nil
		case <-ticker.C:
		}

		start := time.Now()
		c.Step()
		elapsed := time.Since(start)

		c.loop.Update()
		metrics.CyclesTotal.Inc()
		metrics.CycleDuration.Observe(elapsed.Seconds())
		if elapsed > settings.LOOP_DELAY {
			metrics.CycleOverruns.Inc()
			slog.Warn("control cycle overran", "elapsed", elapsed, "period", c.loop.Period())
		}
	}
}
