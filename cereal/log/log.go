// Package log holds the Event envelope every message is published in,
// described in cereal/log.capnp.
package log

import (
	"strconv"

	"capnproto.org/go/capnp/v3"
	"pfeifer.dev/carcontrol/cereal/car"
	"pfeifer.dev/carcontrol/cereal/custom"
)

type Event capnp.Struct

func NewEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 1})
	return Event(st), err
}

func NewRootEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 1})
	return Event(st), err
}

func ReadRootEvent(msg *capnp.Message) (Event, error) {
	root, err := msg.Root()
	return Event(root.Struct()), err
}

func (s Event) EncodeAsPtr(seg *capnp.Segment) capnp.Ptr {
	return capnp.Struct(s).EncodeAsPtr(seg)
}

func (Event) DecodeFromPtr(p capnp.Ptr) Event {
	return Event(capnp.Struct{}.DecodeFromPtr(p))
}

func (s Event) ToPtr() capnp.Ptr {
	return capnp.Struct(s).ToPtr()
}

func (s Event) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s Event) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s Event) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s Event) LogMonoTime() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s Event) SetLogMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s Event) Valid() bool {
	return capnp.Struct(s).Bit(64)
}

func (s Event) SetValid(v bool) {
	capnp.Struct(s).SetBit(64, v)
}

type Event_Which uint16

const (
	Event_Which_canSignals      Event_Which = 0
	Event_Which_carState        Event_Which = 1
	Event_Which_steeringCommand Event_Which = 2
	Event_Which_actuatorRequest Event_Which = 3
	Event_Which_controlsIn      Event_Which = 4
)

func (w Event_Which) String() string {
	switch w {
	case Event_Which_canSignals:
		return "canSignals"
	case Event_Which_carState:
		return "carState"
	case Event_Which_steeringCommand:
		return "steeringCommand"
	case Event_Which_actuatorRequest:
		return "actuatorRequest"
	case Event_Which_controlsIn:
		return "controlsIn"
	}
	return "Event_Which(" + strconv.FormatUint(uint64(w), 10) + ")"
}

func (s Event) Which() Event_Which {
	return Event_Which(capnp.Struct(s).Uint16(10))
}

func (s Event) CanSignals() (car.CanSignals, error) {
	if capnp.Struct(s).Uint16(10) != 0 {
		panic("Which() != canSignals")
	}
	p, err := capnp.Struct(s).Ptr(0)
	return car.CanSignals(p.Struct()), err
}

func (s Event) HasCanSignals() bool {
	if capnp.Struct(s).Uint16(10) != 0 {
		return false
	}
	return capnp.Struct(s).HasPtr(0)
}

func (s Event) SetCanSignals(v car.CanSignals) error {
	capnp.Struct(s).SetUint16(10, 0)
	return capnp.Struct(s).SetPtr(0, capnp.Struct(v).ToPtr())
}

// NewCanSignals sets the canSignals field to a newly allocated car.CanSignals struct.
func (s Event) NewCanSignals() (car.CanSignals, error) {
	capnp.Struct(s).SetUint16(10, 0)
	ss, err := car.NewCanSignals(capnp.Struct(s).Segment())
	if err != nil {
		return car.CanSignals{}, err
	}
	err = capnp.Struct(s).SetPtr(0, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) CarState() (car.CarState, error) {
	if capnp.Struct(s).Uint16(10) != 1 {
		panic("Which() != carState")
	}
	p, err := capnp.Struct(s).Ptr(0)
	return car.CarState(p.Struct()), err
}

func (s Event) HasCarState() bool {
	if capnp.Struct(s).Uint16(10) != 1 {
		return false
	}
	return capnp.Struct(s).HasPtr(0)
}

func (s Event) SetCarState(v car.CarState) error {
	capnp.Struct(s).SetUint16(10, 1)
	return capnp.Struct(s).SetPtr(0, capnp.Struct(v).ToPtr())
}

// NewCarState sets the carState field to a newly allocated car.CarState struct.
func (s Event) NewCarState() (car.CarState, error) {
	capnp.Struct(s).SetUint16(10, 1)
	ss, err := car.NewCarState(capnp.Struct(s).Segment())
	if err != nil {
		return car.CarState{}, err
	}
	err = capnp.Struct(s).SetPtr(0, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) SteeringCommand() (car.SteeringCommand, error) {
	if capnp.Struct(s).Uint16(10) != 2 {
		panic("Which() != steeringCommand")
	}
	p, err := capnp.Struct(s).Ptr(0)
	return car.SteeringCommand(p.Struct()), err
}

func (s Event) HasSteeringCommand() bool {
	if capnp.Struct(s).Uint16(10) != 2 {
		return false
	}
	return capnp.Struct(s).HasPtr(0)
}

func (s Event) SetSteeringCommand(v car.SteeringCommand) error {
	capnp.Struct(s).SetUint16(10, 2)
	return capnp.Struct(s).SetPtr(0, capnp.Struct(v).ToPtr())
}

// NewSteeringCommand sets the steeringCommand field to a newly allocated car.SteeringCommand struct.
func (s Event) NewSteeringCommand() (car.SteeringCommand, error) {
	capnp.Struct(s).SetUint16(10, 2)
	ss, err := car.NewSteeringCommand(capnp.Struct(s).Segment())
	if err != nil {
		return car.SteeringCommand{}, err
	}
	err = capnp.Struct(s).SetPtr(0, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) ActuatorRequest() (car.ActuatorRequest, error) {
	if capnp.Struct(s).Uint16(10) != 3 {
		panic("Which() != actuatorRequest")
	}
	p, err := capnp.Struct(s).Ptr(0)
	return car.ActuatorRequest(p.Struct()), err
}

func (s Event) HasActuatorRequest() bool {
	if capnp.Struct(s).Uint16(10) != 3 {
		return false
	}
	return capnp.Struct(s).HasPtr(0)
}

func (s Event) SetActuatorRequest(v car.ActuatorRequest) error {
	capnp.Struct(s).SetUint16(10, 3)
	return capnp.Struct(s).SetPtr(0, capnp.Struct(v).ToPtr())
}

// NewActuatorRequest sets the actuatorRequest field to a newly allocated car.ActuatorRequest struct.
func (s Event) NewActuatorRequest() (car.ActuatorRequest, error) {
	capnp.Struct(s).SetUint16(10, 3)
	ss, err := car.NewActuatorRequest(capnp.Struct(s).Segment())
	if err != nil {
		return car.ActuatorRequest{}, err
	}
	err = capnp.Struct(s).SetPtr(0, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) ControlsIn() (custom.ControlsIn, error) {
	if capnp.Struct(s).Uint16(10) != 4 {
		panic("Which() != controlsIn")
	}
	p, err := capnp.Struct(s).Ptr(0)
	return custom.ControlsIn(p.Struct()), err
}

func (s Event) HasControlsIn() bool {
	if capnp.Struct(s).Uint16(10) != 4 {
		return false
	}
	return capnp.Struct(s).HasPtr(0)
}

func (s Event) SetControlsIn(v custom.ControlsIn) error {
	capnp.Struct(s).SetUint16(10, 4)
	return capnp.Struct(s).SetPtr(0, capnp.Struct(v).ToPtr())
}

// NewControlsIn sets the controlsIn field to a newly allocated custom.ControlsIn struct.
func (s Event) NewControlsIn() (custom.ControlsIn, error) {
	capnp.Struct(s).SetUint16(10, 4)
	ss, err := custom.NewControlsIn(capnp.Struct(s).Segment())
	if err != nil {
		return custom.ControlsIn{}, err
	}
	err = capnp.Struct(s).SetPtr(0, capnp.Struct(ss).ToPtr())
	return ss, err
}
