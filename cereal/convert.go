package cereal

import (
	"github.com/pkg/errors"
	"pfeifer.dev/carcontrol/can"
	vehicle "pfeifer.dev/carcontrol/car"
	"pfeifer.dev/carcontrol/cereal/car"
)

var gearToMessage = map[vehicle.GearShifter]car.CarState_GearShifter{
	vehicle.GearUnknown: car.CarState_GearShifter_unknown,
	vehicle.GearPark:    car.CarState_GearShifter_park,
	vehicle.GearReverse: car.CarState_GearShifter_reverse,
	vehicle.GearNeutral: car.CarState_GearShifter_neutral,
	vehicle.GearDrive:   car.CarState_GearShifter_drive,
}

func gearFromMessage(g car.CarState_GearShifter) vehicle.GearShifter {
	for k, v := range gearToMessage {
		if v == g {
			return k
		}
	}
	return vehicle.GearUnknown
}

// FillCarState copies an estimator output into a carState message.
func FillCarState(out car.CarState, vs vehicle.VehicleState) {
	out.SetVEgo(float32(vs.VEgo))
	out.SetAEgo(float32(vs.AEgo))
	out.SetVEgoRaw(float32(vs.VEgoRaw))
	out.SetSteeringAngleDeg(float32(vs.SteeringAngle))
	out.SetSteeringRateDeg(float32(vs.SteeringRate))
	out.SetSteeringTorque(float32(vs.SteeringTorque))
	out.SetGas(float32(vs.Gas))
	out.SetWheelSpeedFl(float32(vs.WheelSpeeds.FL))
	out.SetWheelSpeedFr(float32(vs.WheelSpeeds.FR))
	out.SetWheelSpeedRl(float32(vs.WheelSpeeds.RL))
	out.SetWheelSpeedRr(float32(vs.WheelSpeeds.RR))
	out.SetGearShifter(gearToMessage[vs.GearShifter])

	out.SetStandstill(vs.Standstill)
	out.SetSteeringPressed(vs.SteerOverride)
	out.SetBrakePressed(vs.BrakePressed)
	out.SetBrakeLights(vs.BrakeLights)
	out.SetLeftBlinker(vs.LeftBlinker)
	out.SetRightBlinker(vs.RightBlinker)
	out.SetPrevLeftBlinker(vs.PrevLeftBlinker)
	out.SetPrevRightBlinker(vs.PrevRightBlinker)
	out.SetSeatbeltLatched(vs.SeatbeltLatched)
	out.SetDoorDriverOpen(vs.DoorOpen.Driver)
	out.SetDoorPassengerOpen(vs.DoorOpen.Passenger)
	out.SetDoorRearLeftOpen(vs.DoorOpen.RearLeft)
	out.SetDoorRearRightOpen(vs.DoorOpen.RearRight)
	out.SetTrunkOpen(vs.DoorOpen.Trunk)
	out.SetDoorAllClosed(vs.DoorAllClosed)
	out.SetAccActive(vs.ACCActive)
	out.SetMainOn(vs.MainOn)
	out.SetEspDisabled(vs.ESPDisabled)
	out.SetCanValid(vs.CanValid)
}

// VehicleState is the inverse of FillCarState, at float32 precision.
func VehicleState(in car.CarState) vehicle.VehicleState {
	return vehicle.VehicleState{
		DoorOpen: vehicle.Doors{
			Driver:    in.DoorDriverOpen(),
			Passenger: in.DoorPassengerOpen(),
			RearLeft:  in.DoorRearLeftOpen(),
			RearRight: in.DoorRearRightOpen(),
			Trunk:     in.TrunkOpen(),
		},
		DoorAllClosed:    in.DoorAllClosed(),
		LeftBlinker:      in.LeftBlinker(),
		RightBlinker:     in.RightBlinker(),
		PrevLeftBlinker:  in.PrevLeftBlinker(),
		PrevRightBlinker: in.PrevRightBlinker(),
		SeatbeltLatched:  in.SeatbeltLatched(),
		WheelSpeeds: vehicle.WheelSpeeds{
			FL: float64(in.WheelSpeedFl()),
			FR: float64(in.WheelSpeedFr()),
			RL: float64(in.WheelSpeedRl()),
			RR: float64(in.WheelSpeedRr()),
		},
		VEgo:           float64(in.VEgo()),
		AEgo:           float64(in.AEgo()),
		VEgoRaw:        float64(in.VEgoRaw()),
		Standstill:     in.Standstill(),
		SteeringAngle:  float64(in.SteeringAngleDeg()),
		SteeringRate:   float64(in.SteeringRateDeg()),
		SteeringTorque: float64(in.SteeringTorque()),
		SteerOverride:  in.SteeringPressed(),
		Gas:            float64(in.Gas()),
		BrakePressed:   in.BrakePressed(),
		BrakeLights:    in.BrakeLights(),
		GearShifter:    gearFromMessage(in.GearShifter()),
		ACCActive:      in.AccActive(),
		MainOn:         in.MainOn(),
		ESPDisabled:    in.EspDisabled(),
		CanValid:       in.CanValid(),
	}
}

// FillSteeringCommand encodes cmd for transmission on bus. Torque carries the
// signed value for consumers that do not want to recombine direction.
func FillSteeringCommand(out car.SteeringCommand, cmd vehicle.SteeringCommand, bus uint8) {
	out.SetMagnitude(cmd.Magnitude)
	out.SetRollingIndex(cmd.RollingIndex)
	out.SetRight(cmd.Direction == vehicle.DirectionRight)
	out.SetAssistEnabled(cmd.AssistEnabled)
	out.SetTorque(int16(cmd.Signed()))
	out.SetBus(bus)
}

func SteeringCommand(in car.SteeringCommand) vehicle.SteeringCommand {
	cmd := vehicle.SteeringCommand{
		Magnitude:     in.Magnitude(),
		RollingIndex:  in.RollingIndex(),
		AssistEnabled: in.AssistEnabled(),
	}
	if in.Right() {
		cmd.Direction = vehicle.DirectionRight
	}
	return cmd
}

// SignalValues unpacks a canSignals message. Entries whose names cannot be
// read are skipped.
func SignalValues(in car.CanSignals) (bus uint8, values []can.SignalValue) {
	bus = in.Bus()
	list, err := in.Signals()
	if err != nil {
		return bus, nil
	}
	values = make([]can.SignalValue, 0, list.Len())
	for i := range list.Len() {
		sv := list.At(i)
		message, err := sv.MessageName()
		if err != nil {
			continue
		}
		signal, err := sv.SignalName()
		if err != nil {
			continue
		}
		values = append(values, can.SignalValue{Message: message, Signal: signal, Value: sv.Value()})
	}
	return bus, values
}

func FillCanSignals(out car.CanSignals, bus uint8, values []can.SignalValue) error {
	out.SetBus(bus)
	list, err := out.NewSignals(int32(len(values)))
	if err != nil {
		return errors.Wrap(err, "could not allocate signal list")
	}
	for i, v := range values {
		sv := list.At(i)
		sv.SetValue(v.Value)
		err = sv.SetMessageName(v.Message)
		if err != nil {
			return errors.Wrap(err, "could not set message name")
		}
		err = sv.SetSignalName(v.Signal)
		if err != nil {
			return errors.Wrap(err, "could not set signal name")
		}
	}
	return nil
}
