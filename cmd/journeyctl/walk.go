package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/milk9111/journey/motion"
	"github.com/milk9111/journey/prefabs"
	"github.com/milk9111/journey/scene"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

const (
	walkFPS   = 30
	barWidth  = 48
	popupWrap = 44
	logLines  = 5
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Walk a journey in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := prefabs.LoadJourney(journeyFile)
		if err != nil {
			return err
		}
		m, err := newWalkModel(j)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

type walkKeys struct {
	Forward  key.Binding
	Backward key.Binding
	Stop     key.Binding
	Interact key.Binding
	Close    key.Binding
	Yes      key.Binding
	No       key.Binding
	Quit     key.Binding
}

func defaultWalkKeys() walkKeys {
	return walkKeys{
		Forward:  key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "forward")),
		Backward: key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "back")),
		Stop:     key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "stop")),
		Interact: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "open")),
		Close:    key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "close")),
		Yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "not yet")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type walkTickMsg time.Time

// walkModel drives a scene.Session from terminal input. Terminals report
// key presses but not releases, so a direction key keeps walking until Stop
// or the other direction.
type walkModel struct {
	journey *prefabs.Journey
	session *scene.Session
	sched   *scene.ManualScheduler
	driver  *scene.Driver
	keys    walkKeys

	intent   motion.Intent
	interact bool
	snap     scene.Snapshot
	log      []string
}

func newWalkModel(j *prefabs.Journey) (*walkModel, error) {
	s, err := scene.NewSession(j.Config, j.Registry, j.Index)
	if err != nil {
		return nil, err
	}
	m := &walkModel{
		journey: j,
		session: s,
		sched:   &scene.ManualScheduler{},
		keys:    defaultWalkKeys(),
	}
	m.driver = scene.NewDriver(s, m.sched, scene.InputFunc(m.poll))
	m.driver.AfterUpdate = m.afterUpdate
	m.snap = s.Snapshot()
	m.driver.Start()
	return m, nil
}

// poll hands the frame's input to the driver. Interact is a single frame
// press.
func (m *walkModel) poll() scene.Input {
	in := scene.Input{Intent: m.intent, Interact: m.interact}
	m.interact = false
	return in
}

func (m *walkModel) afterUpdate(s *scene.Session, dt float64) {
	for _, evt := range s.Events().Drain() {
		m.record(describe(evt))
	}
	m.snap = s.Snapshot()
}

func (m *walkModel) record(line string) {
	if line == "" {
		return
	}
	m.log = append(m.log, line)
	if len(m.log) > logLines {
		m.log = m.log[len(m.log)-logLines:]
	}
}

func describe(evt scene.Event) string {
	switch data := evt.Data.(type) {
	case scene.OpenCheckpoint:
		return fmt.Sprintf("opened %s", data.Checkpoint.ID)
	case scene.OpenGate:
		return fmt.Sprintf("gate %s", data.Gate)
	case scene.SceneChanged:
		return fmt.Sprintf("%s -> %s", data.From, data.To)
	}
	return ""
}

func (m *walkModel) tick() tea.Cmd {
	return tea.Tick(time.Second/walkFPS, func(t time.Time) tea.Msg {
		return walkTickMsg(t)
	})
}

func (m *walkModel) Init() tea.Cmd { return m.tick() }

func (m *walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case walkTickMsg:
		m.sched.Step(time.Time(msg))
		return m, m.tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *walkModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case m.snap.Modal == scene.ModalCheckpoint:
		if key.Matches(msg, m.keys.Close) {
			m.session.CloseCheckpoint()
			m.snap = m.session.Snapshot()
		}
	case m.snap.Modal == scene.ModalGate:
		m.handleGate(msg)
	case key.Matches(msg, m.keys.Forward):
		m.intent = motion.Intent{Forward: true}
	case key.Matches(msg, m.keys.Backward):
		m.intent = motion.Intent{Backward: true}
	case key.Matches(msg, m.keys.Stop):
		m.intent = motion.Intent{}
	case key.Matches(msg, m.keys.Interact):
		m.interact = true
	}
	return nil
}

func (m *walkModel) handleGate(msg tea.KeyMsg) {
	var r scene.Resolution
	switch {
	case m.snap.Gate == scene.GateMainEnd && key.Matches(msg, m.keys.Yes):
		r = scene.Unlocked
	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Close):
		r = scene.Dismissed
	default:
		return
	}
	m.session.ResolveGate(r)
	m.intent = motion.Intent{}
	m.snap = m.session.Snapshot()
}

func (m *walkModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(m.journey.Spec.Name))
	b.WriteString(styleMuted.Render(fmt.Sprintf("  %s  %s", m.snap.Scene, m.snap.State)))
	b.WriteString("\n\n")
	b.WriteString(progressBar(m.snap.S, m.snap.TotalLength, barWidth))
	b.WriteString(styleMuted.Render(fmt.Sprintf("  %.0f / %.0f", m.snap.S, m.snap.TotalLength)))
	b.WriteString("\n")
	b.WriteString(styleCell.Render(fmt.Sprintf("memories %d/%d", len(m.snap.Passed), m.snap.MainTotal)))
	if m.snap.Unlocked {
		b.WriteString(styleOK.Render("  island unlocked"))
	}
	b.WriteString("\n")
	if m.snap.Nearest != "" && m.snap.Modal == scene.ModalNone {
		b.WriteString(styleOK.Render(fmt.Sprintf("press e to open %s", m.snap.Nearest)))
	}
	b.WriteString("\n\n")

	if popup := m.popup(); popup != "" {
		b.WriteString(popup)
		b.WriteString("\n\n")
	}
	for _, l := range m.log {
		b.WriteString(styleMuted.Render(l))
		b.WriteString("\n")
	}
	b.WriteString(styleMuted.Render(m.help()))
	return b.String()
}

func (m *walkModel) popup() string {
	switch m.snap.Modal {
	case scene.ModalCheckpoint:
		c, ok := m.journey.Index.Get(m.snap.OpenCheckpoint)
		if !ok {
			return ""
		}
		return stylePopup.Render(checkpointText(c.Payload.DisplayTitle(), c.Payload.Date, c.Payload.TagFor(0), c.Payload.Text))
	case scene.ModalGate:
		if m.snap.Gate == scene.GateMainEnd {
			return stylePopup.Render("You reached the end of the path.\nUnlock the island? [y]es / [n]ot yet")
		}
		return stylePopup.Render("This is where the road goes for now.\n[enter] ok")
	}
	return ""
}

func checkpointText(title, date, tag, text string) string {
	head := styleTitle.Render(title)
	meta := styleMuted.Render(strings.TrimSpace(date + "  " + tag))
	return lipgloss.JoinVertical(lipgloss.Left, head, meta, "", wordwrap.String(text, popupWrap))
}

func (m *walkModel) help() string {
	bindings := []key.Binding{m.keys.Backward, m.keys.Forward, m.keys.Stop, m.keys.Interact, m.keys.Quit}
	switch m.snap.Modal {
	case scene.ModalCheckpoint:
		bindings = []key.Binding{m.keys.Close, m.keys.Quit}
	case scene.ModalGate:
		bindings = []key.Binding{m.keys.Yes, m.keys.No, m.keys.Quit}
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " | ")
}

// progressBar draws s out of total as a fixed width bar.
func progressBar(s, total float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = int(s / total * float64(width))
	}
	filled = max(0, min(width, filled))
	return styleOK.Render(strings.Repeat("=", filled)) + styleMuted.Render(strings.Repeat("-", width-filled))
}
