package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/sim"
)

const (
	canvasWidth  = 72
	canvasHeight = 24
)

var (
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	crashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type (
	snapMsg sim.Snapshot
	tickMsg time.Time
	doneMsg struct{}
)

// Model is a live terminal view of a snapshot stream. It pulls one snapshot
// per frame, so the bounded stream throttles the simulation to the display
// rate once the buffer fills.
type Model struct {
	snaps     <-chan sim.Snapshot
	stop      func()
	title     string
	frameRate int

	latest   sim.Snapshot
	consumed int
	done     bool
	crashed  bool
}

func NewModel(title string, snaps <-chan sim.Snapshot, stop func(), frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 30
	}
	return Model{
		snaps:     snaps,
		stop:      stop,
		title:     title,
		frameRate: frameRate,
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForSnapshot()
}

func (m Model) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.snaps
		if !ok {
			return doneMsg{}
		}
		return snapMsg(snap)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.stop()
			return m, tea.Quit
		}
	case snapMsg:
		m.latest = sim.Snapshot(msg)
		m.consumed++
		for _, b := range m.latest.Bodies {
			if math.Abs(float64(b.X)) > sim.Boundary || math.Abs(float64(b.Y)) > sim.Boundary {
				m.crashed = true
			}
		}
		return m, tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return tickMsg(t) })
	case tickMsg:
		return m, m.waitForSnapshot()
	case doneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("gravstream — "+m.title) + "\n")
	b.WriteString(panelStyle.Render(m.renderCanvas()) + "\n")

	status := fmt.Sprintf("%s %s   %s %s   %s %s",
		labelStyle.Render("t ="), valueStyle.Render(fmt.Sprintf("%.3f", m.latest.Timestamp)),
		labelStyle.Render("bodies:"), valueStyle.Render(fmt.Sprintf("%d", len(m.latest.Bodies))),
		labelStyle.Render("frames:"), valueStyle.Render(fmt.Sprintf("%d", m.consumed)),
	)
	if m.crashed {
		status += "   " + crashStyle.Render("CRASHED")
	}
	if m.done {
		status += "   " + labelStyle.Render("stream complete")
	}
	b.WriteString(status + "\n")
	b.WriteString(helpStyle.Render("q: quit"))
	return b.String()
}

func (m Model) renderCanvas() string {
	grid := make([][]rune, canvasHeight)
	for y := range grid {
		grid[y] = make([]rune, canvasWidth)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	// Scale the view to the current extent, never tighter than ±2.
	extent := 2.0
	for _, bs := range m.latest.Bodies {
		extent = math.Max(extent, math.Max(math.Abs(float64(bs.X)), math.Abs(float64(bs.Y))))
	}
	extent *= 1.1

	for _, bs := range m.latest.Bodies {
		cx := int((float64(bs.X)/extent + 1) / 2 * float64(canvasWidth-1))
		cy := int((1 - float64(bs.Y)/extent) / 2 * float64(canvasHeight-1))
		if cx < 0 || cx >= canvasWidth || cy < 0 || cy >= canvasHeight {
			continue
		}
		grid[cy][cx] = glyph(bs.Type)
	}

	rows := make([]string, canvasHeight)
	for y, row := range grid {
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n")
}

func glyph(t body.Type) rune {
	switch t {
	case body.Solar:
		return '@'
	case body.BlackHole:
		return '#'
	case body.Moon:
		return '.'
	default:
		return 'o'
	}
}

// Run blocks until the stream completes or the user quits.
func Run(title string, snaps <-chan sim.Snapshot, stop func(), frameRate int) error {
	p := tea.NewProgram(NewModel(title, snaps, stop, frameRate))
	_, err := p.Run()
	return err
}
