package cli

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"pfeifer.dev/carcontrol/tune"
)

const (
	editSave = "Save"
	editQuit = "Quit without saving"
)

// editTune walks the user through the tune fields until they save or quit.
func editTune(store *tune.Store) (saved bool, err error) {
	p := store.Profile()
	for {
		fields := []string{
			fmt.Sprintf("%s: %t", tune.KEY_ENABLED, p.Enabled),
			fmt.Sprintf("%s: %s", tune.KEY_KP_BP, formatCurve(p.KpBP)),
			fmt.Sprintf("%s: %s", tune.KEY_KP_V, formatCurve(p.KpV)),
			fmt.Sprintf("%s: %s", tune.KEY_KI_BP, formatCurve(p.KiBP)),
			fmt.Sprintf("%s: %s", tune.KEY_KI_V, formatCurve(p.KiV)),
			fmt.Sprintf("%s: %g", tune.KEY_KF, p.Kf),
			editSave,
			editQuit,
		}
		prompt := promptui.Select{
			Label: "Select Field",
			Items: fields,
			Size:  len(fields),
		}
		idx, result, err := prompt.Run()
		if err != nil {
			return false, err
		}

		switch result {
		case editQuit:
			return false, nil
		case editSave:
			if err := store.Set(p); err != nil {
				fmt.Printf("Cannot save: %v\n", err)
				continue
			}
			return true, store.Save()
		}

		switch idx {
		case 0:
			sel := promptui.Select{Label: tune.KEY_ENABLED, Items: []string{"true", "false"}}
			_, v, err := sel.Run()
			if err != nil {
				return false, err
			}
			p.Enabled = v == "true"
		case 5:
			v, err := promptValue(tune.KEY_KF, strconv.FormatFloat(p.Kf, 'g', -1, 64), func(s string) error {
				_, err := strconv.ParseFloat(s, 64)
				return err
			})
			if err != nil {
				return false, err
			}
			p.Kf, _ = strconv.ParseFloat(v, 64)
		default:
			curves := []*[]float64{nil, &p.KpBP, &p.KpV, &p.KiBP, &p.KiV}
			labels := []string{"", tune.KEY_KP_BP, tune.KEY_KP_V, tune.KEY_KI_BP, tune.KEY_KI_V}
			target := curves[idx]
			v, err := promptValue(labels[idx], formatCurve(*target), func(s string) error {
				_, err := parseCurve(s)
				return err
			})
			if err != nil {
				return false, err
			}
			*target, _ = parseCurve(v)
		}
	}
}

func promptValue(label, current string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  current,
		Validate: validate,
	}
	return prompt.Run()
}
