package vw

import (
	"pfeifer.dev/carcontrol/can"
	"pfeifer.dev/carcontrol/car"
)

const (
	BUS_GATEWAY  uint8 = 0
	BUS_EXTENDED uint8 = 1
)

var accStatusSignal = can.SignalSpec{Signal: "ACC_Status_ACC", Message: "ACC_06"} // ACC engagement status
var accStatusCheck = can.CheckSpec{Message: "ACC_06", Frequency: 50}              // From J428 ACC radar control module

// signal registers name in message with a default of 0.
func signal(name, message string) can.SignalSpec {
	return can.SignalSpec{Signal: name, Message: message}
}

// check monitors message at hz.
func check(message string, hz int) can.CheckSpec {
	return can.CheckSpec{Message: message, Frequency: hz}
}

func GatewaySignals(cfg car.Config) ([]can.SignalSpec, []can.CheckSpec) {
	signals := []can.SignalSpec{
		// signal, message
		signal("LWI_Lenkradwinkel", "LWI_01"),        // Absolute steering angle
		signal("LWI_VZ_Lenkradwinkel", "LWI_01"),     // Steering angle sign
		signal("LWI_Lenkradw_Geschw", "LWI_01"),      // Absolute steering rate
		signal("LWI_VZ_Lenkradw_Geschw", "LWI_01"),   // Steering rate sign
		signal("ESP_VL_Radgeschw_02", "ESP_19"),      // ABS wheel speed, front left
		signal("ESP_VR_Radgeschw_02", "ESP_19"),      // ABS wheel speed, front right
		signal("ESP_HL_Radgeschw_02", "ESP_19"),      // ABS wheel speed, rear left
		signal("ESP_HR_Radgeschw_02", "ESP_19"),      // ABS wheel speed, rear right
		signal("ZV_FT_offen", "Gateway_72"),          // Door open, driver
		signal("ZV_BT_offen", "Gateway_72"),          // Door open, passenger
		signal("ZV_HFS_offen", "Gateway_72"),         // Door open, rear left
		signal("ZV_HBFS_offen", "Gateway_72"),        // Door open, rear right
		signal("ZV_HD_offen", "Gateway_72"),          // Trunk or hatch open
		signal("BH_Blinker_li", "Gateway_72"),        // Left turn signal on
		signal("BH_Blinker_re", "Gateway_72"),        // Right turn signal on
		signal("GE_Fahrstufe", "Getriebe_11"),        // Transmission gear selector position
		signal("AB_Gurtwarn_VF", "Airbag_01"),        // Seatbelt warning, driver
		signal("AB_Gurtwarn_VB", "Airbag_01"),        // Seatbelt warning, passenger
		signal("AB_Gurtschloss_FA", "Airbag_02"),     // Seatbelt lock, driver
		signal("ESP_Fahrer_bremst", "ESP_05"),        // Brake pedal pressed
		signal("ESP_Status_Bremsdruck", "ESP_05"),    // Brake pressure
		signal("MO_Fahrpedalrohwert_01", "Motor_20"), // Accelerator pedal value
		signal("Driver_Strain", "EPS_01"),            // Absolute driver torque input
		signal("Driver_Strain_VZ", "EPS_01"),         // Driver torque input sign
		signal("ESP_Tastung_passiv", "ESP_21"),       // Stability control disabled
	}

	checks := []can.CheckSpec{
		// message, frequency
		check("LWI_01", 100),     // From J500 Steering Assist with integrated sensors
		check("EPS_01", 100),     // From J500 Steering Assist with integrated sensors
		check("ESP_19", 100),     // From J104 ABS/ESP controller
		check("ESP_05", 50),      // From J104 ABS/ESP controller
		check("ESP_21", 50),      // From J104 ABS/ESP controller
		check("Motor_20", 50),    // From J623 Engine control module
		check("Gateway_72", 10),  // From J533 CAN gateway (aggregated data)
		check("Getriebe_11", 20), // From J743 Auto transmission control module
		check("Airbag_01", 20),   // From J234 Airbag control module
	}

	if !cfg.ConnectedToGateway() {
		signals = append(signals, accStatusSignal)
		checks = append(checks, accStatusCheck)
	}
	return signals, checks
}

func ExtendedSignals(cfg car.Config) ([]can.SignalSpec, []can.CheckSpec) {
	signals := []can.SignalSpec{}
	checks := []can.CheckSpec{}

	if cfg.ConnectedToGateway() {
		signals = append(signals, accStatusSignal)
		checks = append(checks, accStatusCheck)
	}
	return signals, checks
}

func NewGatewayParser(cfg car.Config) *can.Parser {
	signals, checks := GatewaySignals(cfg)
	return can.NewParser(BUS_GATEWAY, signals, checks)
}

func NewExtendedParser(cfg car.Config) *can.Parser {
	signals, checks := ExtendedSignals(cfg)
	return can.NewParser(BUS_EXTENDED, signals, checks)
}
