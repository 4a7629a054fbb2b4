package car

// Snapshot is the outcome of one control cycle, handed to slow sinks.
type Snapshot struct {
	Cycle         uint64
	State         VehicleState
	Command       SteeringCommand
	Engaged       bool
	OverrideOnset bool
}
