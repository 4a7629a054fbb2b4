package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vehicle "pfeifer.dev/carcontrol/car"
	"pfeifer.dev/carcontrol/car/vw"
	"pfeifer.dev/carcontrol/cereal"
	"pfeifer.dev/carcontrol/cereal/custom"
	"pfeifer.dev/carcontrol/settings"
	"pfeifer.dev/carcontrol/tune"
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

func run(t *testing.T, args ...string) string {
	var out bytes.Buffer
	cmd := newCommand(func(ctx context.Context, apply func(*settings.ControlSettings)) error {
		t.Fatal("daemon should not start")
		return nil
	})
	cmd.Writer = &out
	require.NoError(t, cmd.Run(context.Background(), append([]string{"carcontrol"}, args...)))
	return out.String()
}

func TestParseCurve(t *testing.T) {
	v, err := parseCurve(" 0, 5.5 ,30")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5.5, 30}, v)

	v, err = parseCurve("")
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = parseCurve("1, two")
	assert.Error(t, err)

	assert.Equal(t, "0, 5.5, 30", formatCurve([]float64{0, 5.5, 30}))
}

func TestSettingsItemInput(t *testing.T) {
	lateral := settingsItem{title: "Lateral", Type: Bool}
	v, err := lateral.parseInput("false")
	require.NoError(t, err)
	assert.False(t, v.b)
	_, err = lateral.parseInput("maybe")
	assert.Error(t, err)

	level := settingsItem{title: "Log Level", Type: String}
	v, err = level.parseInput(" debug ")
	require.NoError(t, err)
	assert.Equal(t, "debug", v.str)

	f := settingsItem{title: "Gain", Type: Float}
	v, err = f.parseInput("0.25")
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), v.f)
}

func TestSendInput(t *testing.T) {
	q := &loopback{}
	pub := cereal.NewPublisherWith(q, cereal.ControlsInCreator)
	require.NoError(t, sendInput(&pub, custom.ControlsInType_setLogLevel, inputValue{str: "warn"}))

	sub := cereal.NewSubscriberWith(q, cereal.ControlsInReader)
	in, ok := sub.Read()
	require.True(t, ok)
	assert.Equal(t, custom.ControlsInType_setLogLevel, in.Type())
	str, err := in.Str()
	require.NoError(t, err)
	assert.Equal(t, "warn", str)
}

func TestSettingsMenuItems(t *testing.T) {
	m := getSettingsModel()
	items := m.list.Items()
	require.NotEmpty(t, items)
	last := items[len(items)-1].(settingsItem)
	assert.Equal(t, settingsExit, last.state)
}

func TestTuneSetAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live_tune.json")

	out := run(t, "tune", "set", "--path", path, "--notify=false",
		"--fingerprint", vw.GOLF,
		"--enabled",
		"--ki-bp", "0", "--ki-bp", "20",
		"--ki-v", "0.1", "--ki-v", "0.3",
	)
	assert.Contains(t, out, `"enabled": true`)

	p, err := tune.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, p.Enabled)
	assert.Equal(t, []float64{0, 20}, p.KiBP)
	assert.Equal(t, []float64{0.1, 0.3}, p.KiV)
	assert.Equal(t, []float64{0.6}, p.KpV, "untouched values come from the baseline")
	assert.InDelta(t, 0.00006, p.Kf, 1e-12)

	out = run(t, "tune", "show", "--path", path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(data), out)
}

func TestTuneSetRejectsMismatchedCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live_tune.json")
	cmd := newCommand(nil)
	cmd.Writer = &bytes.Buffer{}
	err := cmd.Run(context.Background(), []string{"carcontrol", "tune", "set", "--path", path, "--notify=false", "--kp-bp", "0", "--kp-bp", "10"})
	assert.ErrorIs(t, err, tune.ErrCurveLength)
}

func TestFingerprints(t *testing.T) {
	out := run(t, "fingerprints")
	assert.Contains(t, out, vw.GOLF)
	assert.Contains(t, out, vw.A3)
}

func TestDaemonFlags(t *testing.T) {
	var got settings.ControlSettings
	cmd := newCommand(func(ctx context.Context, apply func(*settings.ControlSettings)) error {
		got.Default()
		got.RedisAddr = "persisted:6379"
		apply(&got)
		return nil
	})
	err := cmd.Run(context.Background(), []string{"carcontrol", "--fingerprint", vw.JETTA, "--gateway", "--metrics-addr", ":9101"})
	require.NoError(t, err)

	assert.Equal(t, vw.JETTA, got.CarFingerprint)
	assert.True(t, got.ConnectedToGateway)
	assert.Equal(t, ":9101", got.MetricsAddr)
	assert.Equal(t, "persisted:6379", got.RedisAddr, "unset flags keep the persisted value")
	assert.False(t, got.StrictBusHealth)
}

func TestFormatWatch(t *testing.T) {
	out := formatWatch(
		vehicle.VehicleState{VEgo: 10, GearShifter: vehicle.GearDrive, ACCActive: true},
		vehicle.SteeringCommand{Magnitude: 120, Direction: vehicle.DirectionRight, AssistEnabled: true, RollingIndex: 7},
	)
	assert.Contains(t, out, "speed: 10.00 m/s")
	assert.Contains(t, out, "gear: drive")
	assert.Contains(t, out, "acc active: true")
	assert.Contains(t, out, "command: 120 right (assist true, idx 7)")
}
