// Package car holds the capnp bindings for the vehicle messages described in
// cereal/car.capnp.
package car

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

type SignalValue capnp.Struct

func NewSignalValue(s *capnp.Segment) (SignalValue, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 2})
	return SignalValue(st), err
}

func NewRootSignalValue(s *capnp.Segment) (SignalValue, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 2})
	return SignalValue(st), err
}

func ReadRootSignalValue(msg *capnp.Message) (SignalValue, error) {
	root, err := msg.Root()
	return SignalValue(root.Struct()), err
}

func (s SignalValue) EncodeAsPtr(seg *capnp.Segment) capnp.Ptr {
	return capnp.Struct(s).EncodeAsPtr(seg)
}

func (SignalValue) DecodeFromPtr(p capnp.Ptr) SignalValue {
	return SignalValue(capnp.Struct{}.DecodeFromPtr(p))
}

func (s SignalValue) ToPtr() capnp.Ptr {
	return capnp.Struct(s).ToPtr()
}

func (s SignalValue) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s SignalValue) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s SignalValue) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s SignalValue) Value() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(0))
}

func (s SignalValue) SetValue(v float64) {
	capnp.Struct(s).SetUint64(0, math.Float64bits(v))
}

func (s SignalValue) MessageName() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s SignalValue) HasMessageName() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s SignalValue) SetMessageName(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

func (s SignalValue) SignalName() (string, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.Text(), err
}

func (s SignalValue) HasSignalName() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s SignalValue) SetSignalName(v string) error {
	return capnp.Struct(s).SetText(1, v)
}

// SignalValue_List is a list of SignalValue.
type SignalValue_List = capnp.StructList[SignalValue]

func NewSignalValue_List(s *capnp.Segment, sz int32) (SignalValue_List, error) {
	l, err := capnp.NewCompositeList(s, capnp.ObjectSize{DataSize: 8, PointerCount: 2}, sz)
	return capnp.StructList[SignalValue](l), err
}

// CanSignals carries the decoded values of one bus.
type CanSignals capnp.Struct

func NewCanSignals(s *capnp.Segment) (CanSignals, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return CanSignals(st), err
}

func NewRootCanSignals(s *capnp.Segment) (CanSignals, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return CanSignals(st), err
}

func ReadRootCanSignals(msg *capnp.Message) (CanSignals, error) {
	root, err := msg.Root()
	return CanSignals(root.Struct()), err
}

func (s CanSignals) EncodeAsPtr(seg *capnp.Segment) capnp.Ptr {
	return capnp.Struct(s).EncodeAsPtr(seg)
}

func (CanSignals) DecodeFromPtr(p capnp.Ptr) CanSignals {
	return CanSignals(capnp.Struct{}.DecodeFromPtr(p))
}

func (s CanSignals) ToPtr() capnp.Ptr {
	return capnp.Struct(s).ToPtr()
}

func (s CanSignals) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s CanSignals) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s CanSignals) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s CanSignals) Bus() uint8 {
	return capnp.Struct(s).Uint8(0)
}

func (s CanSignals) SetBus(v uint8) {
	capnp.Struct(s).SetUint8(0, v)
}

func (s CanSignals) Signals() (SignalValue_List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return SignalValue_List(p.List()), err
}

func (s CanSignals) HasSignals() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s CanSignals) SetSignals(v SignalValue_List) error {
	return capnp.Struct(s).SetPtr(0, v.ToPtr())
}

// NewSignals sets the signals field to a newly allocated list of the given
// length.
func (s CanSignals) NewSignals(n int32) (SignalValue_List, error) {
	l, err := NewSignalValue_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return SignalValue_List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}

type CarState capnp.Struct

func NewCarState(s *capnp.Segment) (CarState, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 56, PointerCount: 0})
	return CarState(st), err
}

func NewRootCarState(s *capnp.Segment) (CarState, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 56, PointerCount: 0})
	return CarState(st), err
}

func ReadRootCarState(msg *capnp.Message) (CarState, error) {
	root, err := msg.Root()
	return CarState(root.Struct()), err
}

func (s CarState) EncodeAsPtr(seg *capnp.Segment) capnp.Ptr {
	return capnp.Struct(s).EncodeAsPtr(seg)
}

func (CarState) DecodeFromPtr(p capnp.Ptr) CarState {
	return CarState(capnp.Struct{}.DecodeFromPtr(p))
}

func (s CarState) ToPtr() capnp.Ptr {
	return capnp.Struct(s).ToPtr()
}

func (s CarState) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s CarState) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s CarState) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s CarState) VEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s CarState) SetVEgo(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s CarState) AEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s CarState) SetAEgo(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s CarState) VEgoRaw() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s CarState) SetVEgoRaw(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s CarState) SteeringAngleDeg() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s CarState) SetSteeringAngleDeg(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s CarState) SteeringRateDeg() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(16))
}

func (s CarState) SetSteeringRateDeg(v float32) {
	capnp.Struct(s).SetUint32(16, math.Float32bits(v))
}

func (s CarState) SteeringTorque() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(20))
}

func (s CarState) SetSteeringTorque(v float32) {
	capnp.Struct(s).SetUint32(20, math.Float32bits(v))
}

func (s CarState) Gas() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(24))
}

func (s CarState) SetGas(v float32) {
	capnp.Struct(s).SetUint32(24, math.Float32bits(v))
}

func (s CarState) WheelSpeedFl() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(28))
}

func (s CarState) SetWheelSpeedFl(v float32) {
	capnp.Struct(s).SetUint32(28, math.Float32bits(v))
}

func (s CarState) WheelSpeedFr() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(32))
}

func (s CarState) SetWheelSpeedFr(v float32) {
	capnp.Struct(s).SetUint32(32, math.Float32bits(v))
}

func (s CarState) WheelSpeedRl() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(36))
}

func (s CarState) SetWheelSpeedRl(v float32) {
	capnp.Struct(s).SetUint32(36, math.Float32bits(v))
}

func (s CarState) WheelSpeedRr() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(40))
}

func (s CarState) SetWheelSpeedRr(v float32) {
	capnp.Struct(s).SetUint32(40, math.Float32bits(v))
}

func (s CarState) GearShifter() CarState_GearShifter {
	return CarState_GearShifter(capnp.Struct(s).Uint16(44))
}

func (s CarState) SetGearShifter(v CarState_GearShifter) {
	capnp.Struct(s).SetUint16(44, uint16(v))
}

func (s CarState) Standstill() bool {
	return capnp.Struct(s).Bit(368)
}

func (s CarState) SetStandstill(v bool) {
	capnp.Struct(s).SetBit(368, v)
}

func (s CarState) SteeringPressed() bool {
	return capnp.Struct(s).Bit(369)
}

func (s CarState) SetSteeringPressed(v bool) {
	capnp.Struct(s).SetBit(369, v)
}

func (s CarState) BrakePressed() bool {
	return capnp.Struct(s).Bit(370)
}

func (s CarState) SetBrakePressed(v bool) {
	capnp.Struct(s).SetBit(370, v)
}

func (s CarState) BrakeLights() bool {
	return capnp.Struct(s).Bit(371)
}

func (s CarState) SetBrakeLights(v bool) {
	capnp.Struct(s).SetBit(371, v)
}

func (s CarState) LeftBlinker() bool {
	return capnp.Struct(s).Bit(372)
}

func (s CarState) SetLeftBlinker(v bool) {
	capnp.Struct(s).SetBit(372, v)
}

func (s CarState) RightBlinker() bool {
	return capnp.Struct(s).Bit(373)
}

func (s CarState) SetRightBlinker(v bool) {
	capnp.Struct(s).SetBit(373, v)
}

func (s CarState) PrevLeftBlinker() bool {
	return capnp.Struct(s).Bit(374)
}

func (s CarState) SetPrevLeftBlinker(v bool) {
	capnp.Struct(s).SetBit(374, v)
}

func (s CarState) PrevRightBlinker() bool {
	return capnp.Struct(s).Bit(375)
}

func (s CarState) SetPrevRightBlinker(v bool) {
	capnp.Struct(s).SetBit(375, v)
}

func (s CarState) SeatbeltLatched() bool {
	return capnp.Struct(s).Bit(376)
}

func (s CarState) SetSeatbeltLatched(v bool) {
	capnp.Struct(s).SetBit(376, v)
}

func (s CarState) DoorDriverOpen() bool {
	return capnp.Struct(s).Bit(377)
}

func (s CarState) SetDoorDriverOpen(v bool) {
	capnp.Struct(s).SetBit(377, v)
}

func (s CarState) DoorPassengerOpen() bool {
	return capnp.Struct(s).Bit(378)
}

func (s CarState) SetDoorPassengerOpen(v bool) {
	capnp.Struct(s).SetBit(378, v)
}

func (s CarState) DoorRearLeftOpen() bool {
	return capnp.Struct(s).Bit(379)
}

func (s CarState) SetDoorRearLeftOpen(v bool) {
	capnp.Struct(s).SetBit(379, v)
}

func (s CarState) DoorRearRightOpen() bool {
	return capnp.Struct(s).Bit(380)
}

func (s CarState) SetDoorRearRightOpen(v bool) {
	capnp.Struct(s).SetBit(380, v)
}

func (s CarState) TrunkOpen() bool {
	return capnp.Struct(s).Bit(381)
}

func (s CarState) SetTrunkOpen(v bool) {
	capnp.Struct(s).SetBit(381, v)
}

func (s CarState) DoorAllClosed() bool {
	return capnp.Struct(s).Bit(382)
}

func (s CarState) SetDoorAllClosed(v bool) {
	capnp.Struct(s).SetBit(382, v)
}

func (s CarState) AccActive() bool {
	return capnp.Struct(s).Bit(383)
}

func (s CarState) SetAccActive(v bool) {
	capnp.Struct(s).SetBit(383, v)
}

func (s CarState) MainOn() bool {
	return capnp.Struct(s).Bit(384)
}

func (s CarState) SetMainOn(v bool) {
	capnp.Struct(s).SetBit(384, v)
}

func (s CarState) EspDisabled() bool {
	return capnp.Struct(s).Bit(385)
}

func (s CarState) SetEspDisabled(v bool) {
	capnp.Struct(s).SetBit(385, v)
}

func (s CarState) CanValid() bool {
	return capnp.Struct(s).Bit(386)
}

func (s CarState) SetCanValid(v bool) {
	capnp.Struct(s).SetBit(386, v)
}

type CarState_GearShifter uint16

const (
	CarState_GearShifter_unknown CarState_GearShifter = 0
	CarState_GearShifter_park    CarState_GearShifter = 1
	CarState_GearShifter_drive   CarState_GearShifter = 2
	CarState_GearShifter_neutral CarState_GearShifter = 3
	CarState_GearShifter_reverse CarState_GearShifter = 4
)

func (c CarState_GearShifter) String() string {
	switch c {
	case CarState_GearShifter_unknown:
		return "unknown"
	case CarState_GearShifter_park:
		return "park"
	case CarState_GearShifter_drive:
		return "drive"
	case CarState_GearShifter_neutral:
		return "neutral"
	case CarState_GearShifter_reverse:
		return "reverse"
	default:
		return ""
	}
}

func CarState_GearShifterFromString(c string) CarState_GearShifter {
	switch c {
	case "unknown":
		return CarState_GearShifter_unknown
	case "park":
		return CarState_GearShifter_park
	case "drive":
		return CarState_GearShifter_drive
	case "neutral":
		return CarState_GearShifter_neutral
	case "reverse":
		return CarState_GearShifter_reverse
	default:
		return 0
	}
}

type ActuatorRequest capnp.Struct

func NewActuatorRequest(s *capnp.Segment) (ActuatorRequest, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 0})
	return ActuatorRequest(st), err
}

func NewRootActuatorRequest(s *capnp.Segment) (ActuatorRequest, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 0})
	return ActuatorRequest(st), err
}

func ReadRootActuatorRequest(msg *capnp.Message) (ActuatorRequest, error) {
	root, err := msg.Root()
	return ActuatorRequest(root.Struct()), err
}

func (s ActuatorRequest) EncodeAsPtr(seg *capnp.Segment) capnp.Ptr {
	return capnp.Struct(s).EncodeAsPtr(seg)
}

func (ActuatorRequest) DecodeFromPtr(p capnp.Ptr) ActuatorRequest {
	return ActuatorRequest(capnp.Struct{}.DecodeFromPtr(p))
}

func (s ActuatorRequest) ToPtr() capnp.Ptr {
	return capnp.Struct(s).ToPtr()
}

func (s ActuatorRequest) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s ActuatorRequest) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s ActuatorRequest) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s ActuatorRequest) Steer() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s ActuatorRequest) SetSteer(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s ActuatorRequest) Enabled() bool {
	return capnp.Struct(s).Bit(32)
}

func (s ActuatorRequest) SetEnabled(v bool) {
	capnp.Struct(s).SetBit(32, v)
}

type SteeringCommand capnp.Struct

func NewSteeringCommand(s *capnp.Segment) (SteeringCommand, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 0})
	return SteeringCommand(st), err
}

func NewRootSteeringCommand(s *capnp.Segment) (SteeringCommand, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 0})
	return SteeringCommand(st), err
}

func ReadRootSteeringCommand(msg *capnp.Message) (SteeringCommand, error) {
	root, err := msg.Root()
	return SteeringCommand(root.Struct()), err
}

func (s SteeringCommand) EncodeAsPtr(seg *capnp.Segment) capnp.Ptr {
	return capnp.Struct(s).EncodeAsPtr(seg)
}

func (SteeringCommand) DecodeFromPtr(p capnp.Ptr) SteeringCommand {
	return SteeringCommand(capnp.Struct{}.DecodeFromPtr(p))
}

func (s SteeringCommand) ToPtr() capnp.Ptr {
	return capnp.Struct(s).ToPtr()
}

func (s SteeringCommand) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s SteeringCommand) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s SteeringCommand) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s SteeringCommand) Magnitude() uint16 {
	return capnp.Struct(s).Uint16(0)
}

func (s SteeringCommand) SetMagnitude(v uint16) {
	capnp.Struct(s).SetUint16(0, v)
}

func (s SteeringCommand) RollingIndex() uint8 {
	return capnp.Struct(s).Uint8(2)
}

func (s SteeringCommand) SetRollingIndex(v uint8) {
	capnp.Struct(s).SetUint8(2, v)
}

func (s SteeringCommand) Right() bool {
	return capnp.Struct(s).Bit(24)
}

func (s SteeringCommand) SetRight(v bool) {
	capnp.Struct(s).SetBit(24, v)
}

func (s SteeringCommand) AssistEnabled() bool {
	return capnp.Struct(s).Bit(25)
}

func (s SteeringCommand) SetAssistEnabled(v bool) {
	capnp.Struct(s).SetBit(25, v)
}

func (s SteeringCommand) Torque() int16 {
	return int16(capnp.Struct(s).Uint16(4))
}

func (s SteeringCommand) SetTorque(v int16) {
	capnp.Struct(s).SetUint16(4, uint16(v))
}

func (s SteeringCommand) Bus() uint8 {
	return capnp.Struct(s).Uint8(6)
}

func (s SteeringCommand) SetBus(v uint8) {
	capnp.Struct(s).SetUint8(6, v)
}
