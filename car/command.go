package car

type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	if d == DirectionRight {
		return "right"
	}
	return "left"
}

// SteeringCommand is one HCA frame worth of steering data, ready for the
// codec.
type SteeringCommand struct {
	Magnitude     uint16
	Direction     Direction
	RollingIndex  uint8
	AssistEnabled bool
}

// SplitTorque turns a signed torque into magnitude and direction. Zero is
// reported as left.
func SplitTorque(torque int) (uint16, Direction) {
	if torque >= 0 {
		return uint16(torque), DirectionLeft
	}
	return uint16(-torque), DirectionRight
}

// Signed is the inverse of SplitTorque.
func (c SteeringCommand) Signed() int {
	if c.Direction == DirectionRight {
		return -int(c.Magnitude)
	}
	return int(c.Magnitude)
}
