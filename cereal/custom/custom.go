// Package custom holds the capnp bindings for the controls input messages
// described in cereal/custom.capnp.
package custom

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

type ControlsInType uint16

const (
	ControlsInType_reloadSettings      ControlsInType = 0
	ControlsInType_saveSettings        ControlsInType = 1
	ControlsInType_setLogLevel         ControlsInType = 2
	ControlsInType_setLateralEnabled   ControlsInType = 3
	ControlsInType_reloadTune          ControlsInType = 4
	ControlsInType_loadDefaultSettings ControlsInType = 5
)

func (c ControlsInType) String() string {
	switch c {
	case ControlsInType_reloadSettings:
		return "reloadSettings"
	case ControlsInType_saveSettings:
		return "saveSettings"
	case ControlsInType_setLogLevel:
		return "setLogLevel"
	case ControlsInType_setLateralEnabled:
		return "setLateralEnabled"
	case ControlsInType_reloadTune:
		return "reloadTune"
	case ControlsInType_loadDefaultSettings:
		return "loadDefaultSettings"
	default:
		return ""
	}
}

func ControlsInTypeFromString(c string) ControlsInType {
	switch c {
	case "reloadSettings":
		return ControlsInType_reloadSettings
	case "saveSettings":
		return ControlsInType_saveSettings
	case "setLogLevel":
		return ControlsInType_setLogLevel
	case "setLateralEnabled":
		return ControlsInType_setLateralEnabled
	case "reloadTune":
		return ControlsInType_reloadTune
	case "loadDefaultSettings":
		return ControlsInType_loadDefaultSettings
	default:
		return 0
	}
}

type ControlsIn capnp.Struct

func NewControlsIn(s *capnp.Segment) (ControlsIn, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return ControlsIn(st), err
}

func NewRootControlsIn(s *capnp.Segment) (ControlsIn, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return ControlsIn(st), err
}

func ReadRootControlsIn(msg *capnp.Message) (ControlsIn, error) {
	root, err := msg.Root()
	return ControlsIn(root.Struct()), err
}

func (s ControlsIn) EncodeAsPtr(seg *capnp.Segment) capnp.Ptr {
	return capnp.Struct(s).EncodeAsPtr(seg)
}

func (ControlsIn) DecodeFromPtr(p capnp.Ptr) ControlsIn {
	return ControlsIn(capnp.Struct{}.DecodeFromPtr(p))
}

func (s ControlsIn) ToPtr() capnp.Ptr {
	return capnp.Struct(s).ToPtr()
}

func (s ControlsIn) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s ControlsIn) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s ControlsIn) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s ControlsIn) Type() ControlsInType {
	return ControlsInType(capnp.Struct(s).Uint16(0))
}

func (s ControlsIn) SetType(v ControlsInType) {
	capnp.Struct(s).SetUint16(0, uint16(v))
}

func (s ControlsIn) Bool() bool {
	return capnp.Struct(s).Bit(16)
}

func (s ControlsIn) SetBool(v bool) {
	capnp.Struct(s).SetBit(16, v)
}

func (s ControlsIn) Float() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s ControlsIn) SetFloat(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s ControlsIn) Str() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s ControlsIn) HasStr() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s ControlsIn) SetStr(v string) error {
	return capnp.Struct(s).SetText(0, v)
}
