package cereal

import (
	"github.com/pkg/errors"
	"pfeifer.dev/carcontrol/cereal/car"
	"pfeifer.dev/carcontrol/cereal/custom"
	"pfeifer.dev/carcontrol/cereal/log"
)

func wrongType(evt log.Event, want log.Event_Which) error {
	return errors.Errorf("event holds %s, not %s", evt.Which(), want)
}

func CanSignalsReader(evt log.Event) (car.CanSignals, error) {
	if evt.Which() != log.Event_Which_canSignals {
		return car.CanSignals{}, wrongType(evt, log.Event_Which_canSignals)
	}
	return evt.CanSignals()
}

func CarStateReader(evt log.Event) (car.CarState, error) {
	if evt.Which() != log.Event_Which_carState {
		return car.CarState{}, wrongType(evt, log.Event_Which_carState)
	}
	return evt.CarState()
}

func SteeringCommandReader(evt log.Event) (car.SteeringCommand, error) {
	if evt.Which() != log.Event_Which_steeringCommand {
		return car.SteeringCommand{}, wrongType(evt, log.Event_Which_steeringCommand)
	}
	return evt.SteeringCommand()
}

func ActuatorRequestReader(evt log.Event) (car.ActuatorRequest, error) {
	if evt.Which() != log.Event_Which_actuatorRequest {
		return car.ActuatorRequest{}, wrongType(evt, log.Event_Which_actuatorRequest)
	}
	return evt.ActuatorRequest()
}

func ControlsInReader(evt log.Event) (custom.ControlsIn, error) {
	if evt.Which() != log.Event_Which_controlsIn {
		return custom.ControlsIn{}, wrongType(evt, log.Event_Which_controlsIn)
	}
	return evt.ControlsIn()
}

func CanSignalsCreator(evt log.Event) (car.CanSignals, error) {
	return evt.NewCanSignals()
}

func CarStateCreator(evt log.Event) (car.CarState, error) {
	return evt.NewCarState()
}

func SteeringCommandCreator(evt log.Event) (car.SteeringCommand, error) {
	return evt.NewSteeringCommand()
}

func ActuatorRequestCreator(evt log.Event) (car.ActuatorRequest, error) {
	return evt.NewActuatorRequest()
}

func ControlsInCreator(evt log.Event) (custom.ControlsIn, error) {
	return evt.NewControlsIn()
}
