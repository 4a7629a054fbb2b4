package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"pfeifer.dev/carcontrol/car"
	"pfeifer.dev/carcontrol/cereal/custom"
	"pfeifer.dev/carcontrol/params"
	"pfeifer.dev/carcontrol/utils"
)

type ControlSettings struct {
	LogLevel           string `json:"log_level"`
	CarFingerprint     string `json:"car_fingerprint"`
	ConnectedToGateway bool   `json:"connected_to_gateway"`
	LateralEnabled     bool   `json:"lateral_enabled"`
	StrictBusHealth    bool   `json:"strict_bus_health"`
	RedisAddr          string `json:"redis_addr"`
	MetricsAddr        string `json:"metrics_addr"`
	LiveTunePath       string `json:"live_tune_path"`

	path      string
	overrides func(*ControlSettings)
}

func (s *ControlSettings) Default() {
	s.LogLevel = "error"
	s.CarFingerprint = ""
	s.ConnectedToGateway = false
	s.LateralEnabled = true
	s.StrictBusHealth = false
	s.RedisAddr = ""
	s.MetricsAddr = ""
	s.LiveTunePath = params.LiveTunePath
}

func (s *ControlSettings) paramPath() string {
	if s.path != "" {
		return s.path
	}
	return params.CONTROL_SETTINGS
}

// UsePath points Load and Save at another file.
func (s *ControlSettings) UsePath(path string) {
	s.path = path
}

// UseOverrides registers values that win over the persisted document, such as
// the fingerprint param and command line flags. They are applied after every
// Load and after loading defaults, and never saved by LoadWithRetries.
func (s *ControlSettings) UseOverrides(apply func(*ControlSettings)) {
	s.overrides = apply
}

func (s *ControlSettings) applyOverrides() {
	if s.overrides != nil {
		s.overrides(s)
	}
	s.setLogLevel()
}

// Load reads the persisted document and re-applies the overrides.
func (s *ControlSettings) Load() (success bool) {
	success = s.loadPersisted()
	s.applyOverrides()
	return success
}

func (s *ControlSettings) loadPersisted() bool {
	s.Default() // keys missing from the param keep their defaults
	data, err := params.GetParam(s.paramPath())
	if err != nil {
		utils.Logde(err, "could not read control settings")
		return false
	}

	err = s.Unmarshal(data)
	if err != nil {
		utils.Loge(err, "could not parse control settings")
		return false
	}

	return true
}

func (s *ControlSettings) Unmarshal(data []byte) error {
	return errors.Wrap(json.Unmarshal(data, s), "invalid control settings")
}

func (s *ControlSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.loadPersisted() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
	s.applyOverrides()
}

func (s *ControlSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err, "could not marshal control settings")
		return
	}
	err = params.PutParam(s.paramPath(), data)
	utils.Loge(err, "could not save control settings")
}

// CarConfig is the wiring the estimator and parsers are built with.
func (s *ControlSettings) CarConfig() car.Config {
	cfg := car.Config{Fingerprint: s.CarFingerprint, Topology: car.TopologyCamera}
	if s.ConnectedToGateway {
		cfg.Topology = car.TopologyGateway
	}
	return cfg
}

func (s *ControlSettings) setLogLevel() {
	slog.SetLogLoggerLevel(ParseLogLevel(s.LogLevel))
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Handle applies a controls input. It reports false for inputs that belong to
// another component.
func (s *ControlSettings) Handle(input custom.ControlsIn) bool {
	switch input.Type() {
	case custom.ControlsInType_reloadSettings:
		s.Load()
	case custom.ControlsInType_saveSettings:
		snapshot := *s
		go snapshot.Save()
	case custom.ControlsInType_setLateralEnabled:
		s.LateralEnabled = input.Bool()
		slog.Info("lateral control toggled", "enabled", s.LateralEnabled)
	case custom.ControlsInType_loadDefaultSettings:
		s.Default()
		s.applyOverrides()
	case custom.ControlsInType_setLogLevel:
		logLevel, err := input.Str()
		if err != nil {
			utils.Loge(err, "could not read log level")
			return true
		}
		s.LogLevel = logLevel
		s.setLogLevel()
	default:
		return false
	}
	return true
}
