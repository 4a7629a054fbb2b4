package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/carcontrol/car"
	"pfeifer.dev/carcontrol/cereal/custom"
)

func newInput(t *testing.T, typ custom.ControlsInType) custom.ControlsIn {
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	require.NoError(t, err)
	input, err := custom.NewRootControlsIn(seg)
	require.NoError(t, err)
	input.SetType(typ)
	return input
}

func tempSettings(t *testing.T) (*ControlSettings, string) {
	path := filepath.Join(t.TempDir(), "CarControlSettings")
	s := &ControlSettings{}
	s.UsePath(path)
	return s, path
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	s, path := tempSettings(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"car_fingerprint": "AUDI A3 3RD GEN", "connected_to_gateway": true}`), 0o644))

	require.True(t, s.Load())
	assert.Equal(t, "AUDI A3 3RD GEN", s.CarFingerprint)
	assert.True(t, s.LateralEnabled)
	assert.Equal(t, "error", s.LogLevel)
	assert.Equal(t, car.Config{Fingerprint: "AUDI A3 3RD GEN", Topology: car.TopologyGateway}, s.CarConfig())
}

func TestLoadMissingOrCorrupt(t *testing.T) {
	s, path := tempSettings(t)
	assert.False(t, s.Load())
	assert.Equal(t, "error", s.LogLevel)

	require.NoError(t, os.WriteFile(path, []byte(`{"log_level": `), 0o644))
	assert.False(t, s.Load())
	assert.True(t, s.LateralEnabled)
}

func TestSaveThenLoad(t *testing.T) {
	s, path := tempSettings(t)
	s.Default()
	s.CarFingerprint = "VOLKSWAGEN JETTA 7TH GEN"
	s.RedisAddr = "127.0.0.1:6379"
	s.StrictBusHealth = true
	s.Save()

	loaded := &ControlSettings{}
	loaded.UsePath(path)
	require.True(t, loaded.Load())
	assert.Equal(t, s, loaded)
}

func TestHandle(t *testing.T) {
	defer slog.SetLogLoggerLevel(slog.LevelInfo)

	s, _ := tempSettings(t)
	s.Default()

	input := newInput(t, custom.ControlsInType_setLateralEnabled)
	input.SetBool(false)
	assert.True(t, s.Handle(input))
	assert.False(t, s.LateralEnabled)

	input = newInput(t, custom.ControlsInType_setLogLevel)
	require.NoError(t, input.SetStr("debug"))
	assert.True(t, s.Handle(input))
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, slog.Default().Enabled(nil, slog.LevelDebug))

	assert.True(t, s.Handle(newInput(t, custom.ControlsInType_loadDefaultSettings)))
	assert.True(t, s.LateralEnabled)
	assert.Equal(t, "error", s.LogLevel)

	assert.False(t, s.Handle(newInput(t, custom.ControlsInType_reloadTune)))
}

func TestReloadKeepsOverrides(t *testing.T) {
	defer slog.SetLogLoggerLevel(slog.LevelInfo)

	s, path := tempSettings(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"lateral_enabled": true, "redis_addr": "10.0.0.2:6379"}`), 0o644))
	s.UseOverrides(func(s *ControlSettings) {
		s.CarFingerprint = "VOLKSWAGEN GOLF 7TH GEN"
		s.LateralEnabled = false
	})

	s.LoadWithRetries(1)
	assert.Equal(t, "VOLKSWAGEN GOLF 7TH GEN", s.CarFingerprint)
	assert.False(t, s.LateralEnabled)
	assert.Equal(t, "10.0.0.2:6379", s.RedisAddr)

	assert.True(t, s.Handle(newInput(t, custom.ControlsInType_reloadSettings)))
	assert.Equal(t, "VOLKSWAGEN GOLF 7TH GEN", s.CarFingerprint)
	assert.False(t, s.LateralEnabled)
	assert.Equal(t, "10.0.0.2:6379", s.RedisAddr)

	assert.True(t, s.Handle(newInput(t, custom.ControlsInType_loadDefaultSettings)))
	assert.Equal(t, "VOLKSWAGEN GOLF 7TH GEN", s.CarFingerprint)
	assert.Empty(t, s.RedisAddr)

	// the startup save holds the persisted values, not the overrides
	persisted := &ControlSettings{}
	persisted.UsePath(path)
	require.True(t, persisted.Load())
	assert.Empty(t, persisted.CarFingerprint)
	assert.True(t, persisted.LateralEnabled)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("verbose"))
}

func TestSegmentSize(t *testing.T) {
	assert.True(t, IsSmallSegment("actuatorRequest"))
	assert.False(t, IsSmallSegment("canSignals"))
}
