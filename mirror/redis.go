// Package mirror copies the latest vehicle state into redis so dashboards and
// other services on the device can read it without speaking msgq.
package mirror

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"pfeifer.dev/carcontrol/car"
)

const (
	HASH    = "vehicle"
	CHANNEL = "vehicle"
)

type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:        addr,
			DB:          0,
			DialTimeout: time.Second,
			MaxRetries:  1,
		}),
	}
}

func (r *Redis) Connect(ctx context.Context) error {
	slog.Info("connecting to redis", "addr", r.client.Options().Addr)
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "redis connection failed")
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}

// Fields flattens a snapshot into the hash layout.
func Fields(s car.Snapshot) map[string]any {
	return map[string]any{
		"cycle":             strconv.FormatUint(s.Cycle, 10),
		"speed":             formatFloat(s.State.VEgo),
		"speed:raw":         formatFloat(s.State.VEgoRaw),
		"acceleration":      formatFloat(s.State.AEgo),
		"standstill":        formatBool(s.State.Standstill),
		"gear":              s.State.GearShifter.String(),
		"steering:angle":    formatFloat(s.State.SteeringAngle),
		"steering:torque":   formatFloat(s.State.SteeringTorque),
		"steering:override": formatBool(s.State.SteerOverride),
		"blinker:left":      formatBool(s.State.LeftBlinker),
		"blinker:right":     formatBool(s.State.RightBlinker),
		"doors:closed":      formatBool(s.State.DoorAllClosed),
		"seatbelt":          formatBool(s.State.SeatbeltLatched),
		"brake":             formatBool(s.State.BrakePressed),
		"acc:active":        formatBool(s.State.ACCActive),
		"can:valid":         formatBool(s.State.CanValid),
		"lateral:engaged":   formatBool(s.Engaged),
		"lateral:torque":    strconv.Itoa(s.Command.Signed()),
	}
}

// Publish sets the hash and notifies subscribers in one round trip.
func (r *Redis) Publish(ctx context.Context, s car.Snapshot) error {
	pipe := r.client.Pipeline()
	pipe.HSet(ctx, HASH, Fields(s))
	pipe.Publish(ctx, CHANNEL, "state")
	_, err := pipe.Exec(ctx)
	return errors.Wrap(err, "could not mirror vehicle state")
}

// Run publishes every snapshot received on in until ctx is done. Failures are
// logged at debug and the next snapshot is tried.
func (r *Redis) Run(ctx context.Context, in <-chan car.Snapshot) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-in:
			err := r.Publish(ctx, s)
			if err != nil && ctx.Err() == nil {
				slog.Debug("mirror publish failed", "error", err)
			}
		}
	}
}
