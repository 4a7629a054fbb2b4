package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"pfeifer.dev/carcontrol/car"
)

func TestObserve(t *testing.T) {
	before := testutil.ToFloat64(SteerOverrides)

	Observe(car.Snapshot{
		State:         car.VehicleState{VEgo: 12.5, AEgo: -0.5, CanValid: true},
		Command:       car.SteeringCommand{Magnitude: 120, Direction: car.DirectionRight},
		Engaged:       true,
		OverrideOnset: true,
	})

	assert.Equal(t, 12.5, testutil.ToFloat64(VEgo))
	assert.Equal(t, -0.5, testutil.ToFloat64(AEgo))
	assert.Equal(t, 1.0, testutil.ToFloat64(CanValid))
	assert.Equal(t, 1.0, testutil.ToFloat64(Engaged))
	assert.Equal(t, -120.0, testutil.ToFloat64(AppliedTorque))
	assert.Equal(t, before+1, testutil.ToFloat64(SteerOverrides))

	Observe(car.Snapshot{})
	assert.Equal(t, 0.0, testutil.ToFloat64(Engaged))
	assert.Equal(t, before+1, testutil.ToFloat64(SteerOverrides))
}

func TestServeBadAddress(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := Serve(ctx, "not-an-address")
	assert.Error(t, err)
}

func TestCounterIncrementNoPanic(t *testing.T) {
	assert.NotPanics(t, func() { CyclesTotal.Inc() })
	assert.NotPanics(t, func() { CycleOverruns.Inc() })
	assert.NotPanics(t, func() { CycleDuration.Observe(0.001) })
	assert.NotPanics(t, func() { SignalsReceived.WithLabelValues("0").Add(3) })
}
