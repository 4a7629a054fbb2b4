package cli

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"pfeifer.dev/carcontrol/cereal"
	"pfeifer.dev/carcontrol/cereal/car"
	"pfeifer.dev/carcontrol/cereal/custom"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showOutput
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list     list.Model
	state    mainState
	settings settingsModel
	output   outputModel
	pub      *cereal.Publisher[custom.ControlsIn]
	stateSub *cereal.Subscriber[car.CarState]
	cmdSub   *cereal.Subscriber[car.SteeringCommand]
	err      error
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func newModel(pub *cereal.Publisher[custom.ControlsIn], stateSub *cereal.Subscriber[car.CarState], cmdSub *cereal.Subscriber[car.SteeringCommand]) uiModel {
	items := []list.Item{
		item{title: "Settings", desc: "Modify settings of an active instance of carcontrol", state: showSettings},
		item{title: "Watch", desc: "Watch the live vehicle state and steering command", state: showOutput},
	}

	listDelegate := list.NewDefaultDelegate()
	m := uiModel{
		list:     list.New(items, listDelegate, 0, 0),
		settings: getSettingsModel(),
		pub:      pub,
		stateSub: stateSub,
		cmdSub:   cmdSub,
	}
	m.list.Title = "Carcontrol Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.settings, _ = m.settings.Update(msg, &m)
	case TickMsg:
		if m.state == showOutput {
			m.output, _ = m.output.Update(msg, &m)
		}
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showOutput:
		m.output, cmd = m.output.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showOutput:
		return m.output.View()
	}
	view := m.list.View()
	if m.err != nil {
		view += "\n" + m.err.Error()
	}
	return docStyle.Render(view)
}

func interactive() error {
	pub, err := cereal.OpenPublisher("controlsIn", cereal.ControlsInCreator)
	if err != nil {
		return err
	}
	defer pub.Close()
	stateSub, err := cereal.OpenSubscriber("carState", cereal.CarStateReader, true)
	if err != nil {
		return err
	}
	defer stateSub.Close()
	cmdSub, err := cereal.OpenSubscriber("steeringCommand", cereal.SteeringCommandReader, true)
	if err != nil {
		return err
	}
	defer cmdSub.Close()

	p := tea.NewProgram(newModel(&pub, &stateSub, &cmdSub), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "interactive session failed")
	}
	return nil
}
