package vw

import (
	_ "embed"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"pfeifer.dev/carcontrol/car"
)

const (
	GOLF  = "VOLKSWAGEN GOLF 7TH GEN"
	JETTA = "VOLKSWAGEN JETTA 7TH GEN"
	A3    = "AUDI A3 3RD GEN"
)

//go:embed values.yaml
var valuesYaml []byte

type CarValues struct {
	DBC           string            `yaml:"dbc"`
	Control       car.ControlParams `yaml:"control"`
	LateralTuning car.LateralTuning `yaml:"lateral_tuning"`
}

type DBCValues struct {
	GearShifter map[int]string `yaml:"gear_shifter"`
}

type Values struct {
	DBCs map[string]DBCValues `yaml:"dbcs"`
	Cars map[string]CarValues `yaml:"cars"`
}

var loadValues = sync.OnceValues(func() (Values, error) {
	return ParseValues(valuesYaml)
})

func ParseValues(data []byte) (Values, error) {
	v := Values{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return v, errors.Wrap(err, "could not parse vehicle values")
	}
	for name, c := range v.Cars {
		if _, ok := v.DBCs[c.DBC]; !ok {
			return v, errors.Errorf("car %q references unknown dbc %q", name, c.DBC)
		}
	}
	return v, nil
}

// Lookup returns the values for a fingerprint.
func Lookup(fingerprint string) (CarValues, error) {
	v, err := loadValues()
	if err != nil {
		return CarValues{}, err
	}
	c, ok := v.Cars[fingerprint]
	if !ok {
		return CarValues{}, errors.Errorf("unsupported fingerprint %q", fingerprint)
	}
	return c, nil
}

// GearTable returns the GE_Fahrstufe code to mnemonic table for a dbc.
func GearTable(dbc string) map[int]string {
	v, err := loadValues()
	if err != nil {
		return nil
	}
	return v.DBCs[dbc].GearShifter
}

func Fingerprints() []string {
	v, err := loadValues()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(v.Cars))
	for name := range v.Cars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
