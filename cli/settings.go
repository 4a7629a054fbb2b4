package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"pfeifer.dev/carcontrol/cereal/custom"
)

type SettingType int

const (
	String SettingType = iota
	Float
	Bool
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	settingsAction
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType custom.ControlsInType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	status       string
}

// parseInput converts what was typed for it into the value of its message.
func (i settingsItem) parseInput(text string) (v inputValue, err error) {
	text = strings.TrimSpace(text)
	switch i.Type {
	case String:
		v.str = text
	case Bool:
		v.b, err = strconv.ParseBool(text)
	case Float:
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		v.f = float32(f)
	}
	return v, errors.Wrapf(err, "invalid value for %s", i.title)
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.state == settingsInput {
			m.state = showSettingsMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.status = ""
			switch it.state {
			case settingsExit:
				mm.state = showMenu
			case settingsInput:
				m.state = settingsInput
				m.prompt = it.Title()
				m.textInput.SetValue("")
				m.textInput.Focus()
				return m, textinput.Blink
			case settingsAction:
				m.status = m.send(mm, it, inputValue{})
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			v, err := m.selectedItem.parseInput(m.textInput.Value())
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.state = showSettingsMenu
			m.textInput.Blur()
			m.status = m.send(mm, m.selectedItem, v)
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-2)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) send(mm *uiModel, it settingsItem, v inputValue) string {
	if err := sendInput(mm.pub, it.MessageType, v); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("sent %s", it.MessageType.String())
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s\n%s",
			m.prompt,
			m.textInput.View(),
			m.status,
			"(esc to cancel)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View() + "\n" + m.status)
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title:       "Lateral Control Enabled",
			desc:        "When disabled carcontrol never applies steering torque (true/false)",
			MessageType: custom.ControlsInType_setLateralEnabled,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Log Level",
			desc:        "One of debug, info, warn or error",
			MessageType: custom.ControlsInType_setLogLevel,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Reload Live Tune",
			desc:        "Re-read the live tune file",
			MessageType: custom.ControlsInType_reloadTune,
			state:       settingsAction,
		},
		settingsItem{
			title:       "Reload Settings",
			desc:        "Discard unsaved changes and re-read the persisted settings",
			MessageType: custom.ControlsInType_reloadSettings,
			state:       settingsAction,
		},
		settingsItem{
			title:       "Load Default Settings",
			desc:        "Reset every setting to its default value",
			MessageType: custom.ControlsInType_loadDefaultSettings,
			state:       settingsAction,
		},
		settingsItem{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			MessageType: custom.ControlsInType_saveSettings,
			state:       settingsAction,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: textinput.New()}
	m.list.Title = "Carcontrol Settings"
	return m
}
