package mirror

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pfeifer.dev/carcontrol/car"
)

func TestFields(t *testing.T) {
	fields := Fields(car.Snapshot{
		Cycle: 42,
		State: car.VehicleState{
			VEgo:        13.8889,
			GearShifter: car.GearDrive,
			LeftBlinker: true,
			CanValid:    true,
		},
		Command: car.SteeringCommand{Magnitude: 80, Direction: car.DirectionRight},
		Engaged: true,
	})

	assert.Equal(t, "42", fields["cycle"])
	assert.Equal(t, "13.889", fields["speed"])
	assert.Equal(t, "drive", fields["gear"])
	assert.Equal(t, "true", fields["blinker:left"])
	assert.Equal(t, "false", fields["blinker:right"])
	assert.Equal(t, "true", fields["lateral:engaged"])
	assert.Equal(t, "-80", fields["lateral:torque"])
}

func TestPublishUnreachable(t *testing.T) {
	r := NewRedis("127.0.0.1:1")
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.Error(t, r.Connect(ctx))
	assert.Error(t, r.Publish(ctx, car.Snapshot{}))
}

func TestRunStopsOnCancel(t *testing.T) {
	r := NewRedis("127.0.0.1:1")
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan car.Snapshot)
	done := make(chan error)
	go func() { done <- r.Run(ctx, in) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
