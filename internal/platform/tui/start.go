package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fisherman/internal/storage"
)

// Start screen limits
const (
	maxNameLength   = 24
	maxListedScores = 10
)

const emptyNameMessage = "Please enter your name."

var (
	startTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	startPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	startErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	startHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const fishermanBanner = `
 _____ _     _
|  ___(_)___| |__   ___ _ __ _ __ ___   __ _ _ __
| |_  | / __| '_ \ / _ \ '__| '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \
|  _| | \__ \ | | |  __/ |  | | | | | | (_| | | | |
|_|   |_|___/_| |_|\___|_|  |_| |_| |_|\__,_|_| |_|`

// StartModel asks for the player's name and lists the latest scores.
type StartModel struct {
	input          textinput.Model
	records        []storage.Record
	loadErr        error
	errMsg         string
	width          int
	height         int
	name           string
	openScoreboard bool
	quitting       bool
}

// NewStartModel creates the start screen. scores and logger may be nil.
// prefill seeds the name field, e.g. with the SSH user or the previous player.
func NewStartModel(scores *storage.ScoreFile, prefill string, width, height int, logger *log.Logger) StartModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength
	ti.Prompt = "Name: "
	ti.SetValue(prefill)
	ti.Focus()

	m := StartModel{
		input:  ti,
		width:  width,
		height: height,
	}

	if scores != nil {
		m.records, m.loadErr = scores.LoadScores()
		if m.loadErr != nil && logger != nil {
			logger.Warn("Failed to load scores", "path", scores.Path(), "error", m.loadErr)
		}
	}
	return m
}

// Init starts the cursor blinking.
func (m StartModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the start screen.
func (m StartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.openScoreboard = true
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				m.errMsg = emptyNameMessage
				return m, nil
			}
			m.name = name
			return m, nil
		}
		m.errMsg = ""

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the start screen.
func (m StartModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	for _, line := range strings.Split(strings.TrimPrefix(fishermanBanner, "\n"), "\n") {
		b.WriteString(centerText(startTitleStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText("Catch as many fish as you can in 60 seconds.", m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(centerText(startErrorStyle.Render(m.errMsg), m.width))
	}
	b.WriteString("\n\n")

	for _, line := range strings.Split(startPanelStyle.Render(m.scoresPanel()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Enter: Start  |  Tab: Scoreboard  |  Esc: Quit"
	b.WriteString(centerText(startHintStyle.Render(controls), m.width))
	b.WriteString("\n")
	help := "In game: ←/→ move  |  Space cast  |  P pause  |  R restart"
	b.WriteString(centerText(startHintStyle.Render(help), m.width))

	return b.String()
}

// scoresPanel lists the most recent results, newest first.
func (m StartModel) scoresPanel() string {
	var b strings.Builder
	b.WriteString("Latest catches\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(startErrorStyle.Render("scores unavailable"))
	case len(m.records) == 0:
		b.WriteString(startHintStyle.Render("No scores yet."))
	default:
		for i, r := range m.records {
			if i == maxListedScores {
				break
			}
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("%-*s %3d", maxNameLength, r.Name, r.Score))
		}
	}
	return b.String()
}

// Name returns the confirmed player name, or "" while still editing.
func (m StartModel) Name() string {
	return m.name
}

// Records returns the scores listed on the screen.
func (m StartModel) Records() []storage.Record {
	return m.records
}

// WantsScoreboard returns true if the user pressed Tab.
func (m StartModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// IsQuitting returns true if user requested to quit.
func (m StartModel) IsQuitting() bool {
	return m.quitting
}

// ErrorMessage returns the inline validation message, if any.
func (m StartModel) ErrorMessage() string {
	return m.errMsg
}
