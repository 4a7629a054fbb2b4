package controls

import (
	"pfeifer.dev/carcontrol/cereal"
	"pfeifer.dev/carcontrol/cereal/car"
	"pfeifer.dev/carcontrol/cereal/custom"
)

// IO bundles the msgq topics the control loop reads and writes.
type IO struct {
	CanSignals      cereal.Subscriber[car.CanSignals]
	ActuatorRequest cereal.Subscriber[car.ActuatorRequest]
	ControlsIn      cereal.Subscriber[custom.ControlsIn]
	CarState        cereal.Publisher[car.CarState]
	SteeringCommand cereal.Publisher[car.SteeringCommand]
}

func OpenIO() IO {
	return IO{
		CanSignals:      cereal.NewSubscriber("canSignals", cereal.CanSignalsReader, false),
		ActuatorRequest: cereal.NewSubscriber("actuatorRequest", cereal.ActuatorRequestReader, true),
		ControlsIn:      cereal.NewSubscriber("controlsIn", cereal.ControlsInReader, false),
		CarState:        cereal.NewPublisher("carState", cereal.CarStateCreator),
		SteeringCommand: cereal.NewPublisher("steeringCommand", cereal.SteeringCommandCreator),
	}
}

func (io *IO) Close() {
	io.CanSignals.Close()
	io.ActuatorRequest.Close()
	io.ControlsIn.Close()
	io.CarState.Close()
	io.SteeringCommand.Close()
}
