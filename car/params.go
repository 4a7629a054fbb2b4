package car

import "github.com/pkg/errors"

// Topology is the fixed wiring of a deployment. It decides which bus carries
// the ACC status message.
type Topology int

const (
	// TopologyCamera is the harness at the lane camera; ACC_06 is on the
	// gateway-side parser.
	TopologyCamera Topology = iota
	// TopologyGateway is the harness at the CAN gateway; ACC_06 arrives on
	// the extended bus.
	TopologyGateway
)

func (t Topology) String() string {
	switch t {
	case TopologyGateway:
		return "gateway"
	default:
		return "camera"
	}
}

// ParseTopology accepts "camera" or "gateway".
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "camera", "":
		return TopologyCamera, nil
	case "gateway":
		return TopologyGateway, nil
	}
	return TopologyCamera, errors.Errorf("unknown topology %q", s)
}

// Config is passed to the estimator and to parser construction so both agree
// on the wiring.
type Config struct {
	Fingerprint string
	Topology    Topology
}

func (c Config) ConnectedToGateway() bool {
	return c.Topology == TopologyGateway
}

// ControlParams are the steering safety limits for one vehicle model.
type ControlParams struct {
	SteerMax              int `yaml:"steer_max"`
	SteerStep             int `yaml:"steer_step"`
	SteerDeltaUp          int `yaml:"steer_delta_up"`
	SteerDeltaDown        int `yaml:"steer_delta_down"`
	SteerDriverAllowance  int `yaml:"steer_driver_allowance"`
	SteerDriverMultiplier int `yaml:"steer_driver_multiplier"`
	SteerDriverFactor     int `yaml:"steer_driver_factor"`
}

// LateralTuning holds the baseline gain curves of a vehicle model.
type LateralTuning struct {
	KpBP []float64 `yaml:"kp_bp"`
	KpV  []float64 `yaml:"kp_v"`
	KiBP []float64 `yaml:"ki_bp"`
	KiV  []float64 `yaml:"ki_v"`
	Kf   float64   `yaml:"kf"`
}

// BusHealth reports whether the bus inputs are trustworthy this cycle.
type BusHealth func() bool

func AlwaysHealthy() bool { return true }
