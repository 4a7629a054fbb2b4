package car

// GearShifter is the selected gear as reported by the transmission.
type GearShifter uint16

const (
	GearUnknown GearShifter = iota
	GearPark
	GearReverse
	GearNeutral
	GearDrive
)

func (g GearShifter) String() string {
	switch g {
	case GearPark:
		return "park"
	case GearReverse:
		return "reverse"
	case GearNeutral:
		return "neutral"
	case GearDrive:
		return "drive"
	default:
		return "unknown"
	}
}

type Doors struct {
	Driver    bool
	Passenger bool
	RearLeft  bool
	RearRight bool
	Trunk     bool
}

// AllClosed is true when none of the doors or the hatch is open.
func (d Doors) AllClosed() bool {
	return !d.Driver && !d.Passenger && !d.RearLeft && !d.RearRight && !d.Trunk
}

type WheelSpeeds struct {
	FL, FR, RL, RR float64 // m/s
}

func (w WheelSpeeds) Mean() float64 {
	return (w.FL + w.FR + w.RL + w.RR) / 4
}

// VehicleState is rebuilt every cycle. Only the blinker previous values carry
// information across cycles.
type VehicleState struct {
	DoorOpen      Doors
	DoorAllClosed bool

	LeftBlinker      bool
	RightBlinker     bool
	PrevLeftBlinker  bool
	PrevRightBlinker bool

	SeatbeltLatched          bool
	SeatbeltWarningDriver    bool
	SeatbeltWarningPassenger bool

	WheelSpeeds WheelSpeeds
	VEgo        float64
	AEgo        float64
	VEgoRaw     float64
	Standstill  bool

	SteeringAngle  float64 // deg
	SteeringRate   float64 // deg/s
	SteeringTorque float64 // driver input
	SteerOverride  bool

	Gas          float64
	BrakePressed bool
	BrakeLights  bool
	GearShifter  GearShifter

	ACCActive   bool
	MainOn      bool
	ESPDisabled bool

	CanValid bool
}

// SignCorrect applies a companion sign flag to a magnitude signal. A flag
// of exactly 1 negates the magnitude.
func SignCorrect(magnitude, signFlag float64) float64 {
	if signFlag == 1 {
		return -magnitude
	}
	return magnitude
}
