package cli

import (
	"pfeifer.dev/carcontrol/cereal"
	"pfeifer.dev/carcontrol/cereal/custom"
)

type inputValue struct {
	b   bool
	f   float32
	str string
}

// sendInput publishes one controls input.
func sendInput(pub *cereal.Publisher[custom.ControlsIn], typ custom.ControlsInType, v inputValue) error {
	msg, input := pub.NewMessage(true)
	input.SetType(typ)
	input.SetBool(v.b)
	input.SetFloat(v.f)
	if v.str != "" {
		if err := input.SetStr(v.str); err != nil {
			return err
		}
	}
	return pub.Send(msg)
}
