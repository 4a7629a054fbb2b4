package vw

import (
	"math"
	"time"

	"pfeifer.dev/carcontrol/car"
	m "pfeifer.dev/carcontrol/math"
)

// CarController shapes the requested steering into a bounded HCA torque.
// It is driven once per cycle and keeps the last applied torque between
// update cycles.
type CarController struct {
	Params    car.ControlParams
	StartTime time.Time

	applySteerLast int
	lastCommand    car.SteeringCommand
}

func NewCarController(params car.ControlParams) *CarController {
	if params.SteerStep < 1 {
		params.SteerStep = 1
	}
	return &CarController{
		Params:    params,
		StartTime: time.Now(),
	}
}

// LastApplied is the signed torque of the most recent update cycle.
func (c *CarController) LastApplied() int {
	return c.applySteerLast
}

// ApplyDriverLimits reduces the torque authority when the driver is
// steering against or with the request.
func ApplyDriverLimits(applySteer, driverTorque float64, p car.ControlParams) float64 {
	steerMax := float64(p.SteerMax)
	allowance := float64(p.SteerDriverAllowance)
	factor := float64(p.SteerDriverFactor)
	multiplier := float64(p.SteerDriverMultiplier)

	driverMaxTorque := steerMax + (allowance+driverTorque*factor)*multiplier
	driverMinTorque := -steerMax + (-allowance+driverTorque*factor)*multiplier
	maxSteerAllowed := math.Max(math.Min(steerMax, driverMaxTorque), 0)
	minSteerAllowed := math.Min(math.Max(-steerMax, driverMinTorque), 0)
	return m.Clip(applySteer, minSteerAllowed, maxSteerAllowed)
}

// ApplyRateLimits bounds the change from the last applied torque. Torque
// moving toward zero may change by the down delta, away from zero by the up
// delta, and a sign change may never overshoot zero by more than the up
// delta.
func ApplyRateLimits(applySteer float64, last int, p car.ControlParams) float64 {
	l := float64(last)
	up := float64(p.SteerDeltaUp)
	down := float64(p.SteerDeltaDown)
	if last > 0 {
		return m.Clip(applySteer, math.Max(l-down, -up), l+up)
	}
	return m.Clip(applySteer, l-up, math.Min(l+down, up))
}

// Update computes the steering command for a cycle. desired is the
// normalized actuator request in [-1, 1]; values outside are clamped.
func (c *CarController) Update(engaged bool, cs car.VehicleState, cycle int, desired float64) car.SteeringCommand {
	p := c.Params
	idx := uint8(((cycle/p.SteerStep)%16 + 16) % 16)

	if cycle%p.SteerStep != 0 {
		cmd := c.lastCommand
		cmd.RollingIndex = idx
		if cs.Standstill {
			cmd.Magnitude = 0
			cmd.Direction = car.DirectionLeft
			cmd.AssistEnabled = false
		}
		return cmd
	}

	applySteer := 0.0
	if engaged && !math.IsNaN(desired) {
		steerMax := float64(p.SteerMax)
		applySteer = m.Clip(desired*steerMax, -steerMax, steerMax)
	}

	applySteer = ApplyDriverLimits(applySteer, cs.SteeringTorque, p)
	applySteer = ApplyRateLimits(applySteer, c.applySteerLast, p)

	apply := int(math.Round(applySteer))

	cmd := car.SteeringCommand{
		RollingIndex:  idx,
		AssistEnabled: true,
	}
	// never fight a stationary car, e.g. while parking. The zero is carried
	// forward so moving off ramps up from nothing.
	if cs.Standstill {
		apply = 0
		cmd.AssistEnabled = false
	}
	c.applySteerLast = apply
	cmd.Magnitude, cmd.Direction = car.SplitTorque(apply)

	c.lastCommand = cmd
	return cmd
}
