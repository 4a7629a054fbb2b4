package vw

import (
	"log/slog"

	"pfeifer.dev/carcontrol/can"
	"pfeifer.dev/carcontrol/car"
	m "pfeifer.dev/carcontrol/math"
	ms "pfeifer.dev/carcontrol/settings"
	"pfeifer.dev/carcontrol/utils"
)

const (
	STANDSTILL_SPEED      = 0.01 // m/s
	STEER_OVERRIDE_TORQUE = 100
	ACC_ACTIVE_STATUS     = 2 // ACC_Status_ACC above this is engaged
)

// gear mnemonic to gear. Sport on modern VWs is a momentary contact that
// springs back to drive, so it is treated as drive.
var gearMnemonics = map[string]car.GearShifter{
	"P": car.GearPark,
	"R": car.GearReverse,
	"N": car.GearNeutral,
	"D": car.GearDrive,
	"S": car.GearDrive,
}

// ParseGearShifter maps a raw GE_Fahrstufe code through the dbc value table.
// A momentary unknown gear is expected when shifting P-R or R-P.
func ParseGearShifter(code int, values map[int]string) car.GearShifter {
	mnemonic, ok := values[code]
	if !ok {
		return car.GearUnknown
	}
	gear, ok := gearMnemonics[mnemonic]
	if !ok {
		return car.GearUnknown
	}
	return gear
}

// CarState turns decoded gateway and extended bus signals into a
// car.VehicleState. It owns the speed filter and the blinker history.
type CarState struct {
	cfg           car.Config
	shifterValues map[int]string
	vEgoKF        *m.KF1D
	busHealth     car.BusHealth
	accSignals    func(gw, ex can.Signals) can.Signals

	leftBlinker  utils.TrackedState[bool]
	rightBlinker utils.TrackedState[bool]
	gear         utils.TrackedState[car.GearShifter]
}

type CarStateOption func(*CarState)

// WithBusHealth replaces the default always valid liveness check.
func WithBusHealth(h car.BusHealth) CarStateOption {
	return func(cs *CarState) {
		if h != nil {
			cs.busHealth = h
		}
	}
}

func NewCarState(cfg car.Config, opts ...CarStateOption) (*CarState, error) {
	values, err := Lookup(cfg.Fingerprint)
	if err != nil {
		return nil, err
	}
	cs := &CarState{
		cfg:           cfg,
		shifterValues: GearTable(values.DBC),
		vEgoKF:        m.NewSpeedKF(ms.DT_CTRL),
		busHealth:     car.AlwaysHealthy,
		accSignals:    gatewayBus,
	}
	if cfg.ConnectedToGateway() {
		cs.accSignals = extendedBus
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs, nil
}

func gatewayBus(gw, _ can.Signals) can.Signals  { return gw }
func extendedBus(_, ex can.Signals) can.Signals { return ex }

func signed(s can.Signals, message, magnitude, sign string) float64 {
	return car.SignCorrect(s.Get(message, magnitude), s.Get(message, sign))
}

func (cs *CarState) Update(gw, ex can.Signals) car.VehicleState {
	ret := car.VehicleState{}

	ret.CanValid = cs.busHealth()

	// Update door and trunk/hatch lid open status
	ret.DoorOpen = car.Doors{
		Driver:    gw.Bool("Gateway_72", "ZV_FT_offen"),
		Passenger: gw.Bool("Gateway_72", "ZV_BT_offen"),
		RearLeft:  gw.Bool("Gateway_72", "ZV_HFS_offen"),
		RearRight: gw.Bool("Gateway_72", "ZV_HBFS_offen"),
		Trunk:     gw.Bool("Gateway_72", "ZV_HD_offen"),
	}
	ret.DoorAllClosed = ret.DoorOpen.AllClosed()

	// momentary turn stalk state, not the flashing lamp
	cs.leftBlinker.Update(gw.Bool("Gateway_72", "BH_Blinker_li"))
	cs.rightBlinker.Update(gw.Bool("Gateway_72", "BH_Blinker_re"))
	ret.PrevLeftBlinker = cs.leftBlinker.LastValue
	ret.PrevRightBlinker = cs.rightBlinker.LastValue
	ret.LeftBlinker = cs.leftBlinker.Value
	ret.RightBlinker = cs.rightBlinker.Value

	ret.SeatbeltLatched = !gw.Bool("Airbag_02", "AB_Gurtschloss_FA")
	ret.SeatbeltWarningDriver = gw.Bool("Airbag_01", "AB_Gurtwarn_VF")
	ret.SeatbeltWarningPassenger = gw.Bool("Airbag_01", "AB_Gurtwarn_VB")

	// Update speed from ABS wheel speeds
	ret.WheelSpeeds = car.WheelSpeeds{
		FL: gw.Get("ESP_19", "ESP_VL_Radgeschw_02") * ms.KPH_TO_MS,
		FR: gw.Get("ESP_19", "ESP_VR_Radgeschw_02") * ms.KPH_TO_MS,
		RL: gw.Get("ESP_19", "ESP_HL_Radgeschw_02") * ms.KPH_TO_MS,
		RR: gw.Get("ESP_19", "ESP_HR_Radgeschw_02") * ms.KPH_TO_MS,
	}
	ret.VEgoRaw = ret.WheelSpeeds.Mean()
	x := cs.vEgoKF.Update(ret.VEgoRaw)
	ret.VEgo = x[0]
	ret.AEgo = x[1]
	ret.Standstill = ret.VEgoRaw < STANDSTILL_SPEED

	ret.SteeringAngle = signed(gw, "LWI_01", "LWI_Lenkradwinkel", "LWI_VZ_Lenkradwinkel")
	ret.SteeringRate = signed(gw, "LWI_01", "LWI_Lenkradw_Geschw", "LWI_VZ_Lenkradw_Geschw")
	ret.SteeringTorque = signed(gw, "EPS_01", "Driver_Strain", "Driver_Strain_VZ")
	ret.SteerOverride = m.Abs(ret.SteeringTorque) > STEER_OVERRIDE_TORQUE

	ret.Gas = gw.Get("Motor_20", "MO_Fahrpedalrohwert_01")
	ret.BrakePressed = gw.Bool("ESP_05", "ESP_Fahrer_bremst")
	ret.BrakeLights = gw.Bool("ESP_05", "ESP_Status_Bremsdruck")
	ret.ESPDisabled = gw.Bool("ESP_21", "ESP_Tastung_passiv")

	ret.GearShifter = ParseGearShifter(int(gw.Get("Getriebe_11", "GE_Fahrstufe")), cs.shifterValues)
	if cs.gear.Update(ret.GearShifter) && ret.GearShifter == car.GearUnknown {
		slog.Debug("gear selector in transition", "from", cs.gear.LastValue.String())
	}

	ret.ACCActive = cs.accSignals(gw, ex).Get("ACC_06", "ACC_Status_ACC") > ACC_ACTIVE_STATUS
	ret.MainOn = ret.ACCActive

	return ret
}

func (cs *CarState) Config() car.Config {
	return cs.cfg
}
